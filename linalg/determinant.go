package linalg

import "fmt"

// MaxRank is the largest square-matrix rank the determinant kernels
// accept. It equals the maximum hull dimensionality plus one, so that
// the homogeneous (d+1)×(d+1) orientation matrices of a 5-D hull still
// fit in the fixed scratch buffers.
const MaxRank = 6

// Det computes the determinant of the flat row-major n×n matrix m by
// recursive cofactor expansion along the first row.
//
// Det(m, 0) is 1 by convention (the empty product), matching the base
// case of the recursion.
//
// Det panics if n is outside [0, MaxRank] or len(m) < n*n; both are
// programmer errors, never data errors.
func Det(m []float64, n int) float64 {
	if n < 0 || n > MaxRank {
		panic(fmt.Sprintf("linalg: Det rank %d outside [0, %d]", n, MaxRank))
	}
	if len(m) < n*n {
		panic(fmt.Sprintf("linalg: Det needs %d elements, got %d", n*n, len(m)))
	}

	return det(m, n)
}

// det is the unchecked recursion behind Det. Each level extracts the
// first-row minors into a stack-allocated scratch buffer.
func det(m []float64, n int) float64 {
	if n == 0 {
		return 1.0
	}
	if n == 1 {
		return m[0]
	}
	if n == 2 {
		return m[0]*m[3] - m[1]*m[2]
	}

	var sub [MaxRank * MaxRank]float64
	sum := 0.0
	sign := 1.0
	for i := 0; i < n; i++ {
		minor(m, n, i, sub[:])
		sum += sign * m[i] * det(sub[:(n-1)*(n-1)], n-1)
		sign = -sign
	}

	return sum
}

// minor writes into dst the (n-1)×(n-1) matrix obtained from m by
// deleting the first row and column i.
func minor(m []float64, n, i int, dst []float64) {
	k := 0
	for j := n; j < n*n; j++ {
		if j%n != i {
			dst[k] = m[j]
			k++
		}
	}
}

// Det4 computes the determinant of a flat row-major 4×4 matrix via the
// fully expanded 24-term closed form. It agrees with Det(m, 4) up to
// floating-point rounding and exists because 4×4 determinants dominate
// the 3-D hull path (one per orientation test).
//
// Det4 panics if len(m) < 16.
func Det4(m []float64) float64 {
	if len(m) < 16 {
		panic(fmt.Sprintf("linalg: Det4 needs 16 elements, got %d", len(m)))
	}

	return m[3]*m[6]*m[9]*m[12] - m[2]*m[7]*m[9]*m[12] -
		m[3]*m[5]*m[10]*m[12] + m[1]*m[7]*m[10]*m[12] +
		m[2]*m[5]*m[11]*m[12] - m[1]*m[6]*m[11]*m[12] -
		m[3]*m[6]*m[8]*m[13] + m[2]*m[7]*m[8]*m[13] +
		m[3]*m[4]*m[10]*m[13] - m[0]*m[7]*m[10]*m[13] -
		m[2]*m[4]*m[11]*m[13] + m[0]*m[6]*m[11]*m[13] +
		m[3]*m[5]*m[8]*m[14] - m[1]*m[7]*m[8]*m[14] -
		m[3]*m[4]*m[9]*m[14] + m[0]*m[7]*m[9]*m[14] +
		m[1]*m[4]*m[11]*m[14] - m[0]*m[5]*m[11]*m[14] -
		m[2]*m[5]*m[8]*m[15] + m[1]*m[6]*m[8]*m[15] +
		m[2]*m[4]*m[9]*m[15] - m[0]*m[6]*m[9]*m[15] -
		m[1]*m[4]*m[10]*m[15] + m[0]*m[5]*m[10]*m[15]
}
