package linalg

import (
	"fmt"
	"math"
)

// Hyperplane fits the (d-1)-dimensional flat through the d points given
// in pts (flat row-major, d points × d coordinates) and returns its unit
// normal and scalar offset, satisfying
//
//	normal·x + offset == 0
//
// for every input point x.
//
// Algorithm outline:
//  1. Form the d-1 pairwise difference vectors p[i+1]-p[i].
//  2. Each normal component i is the signed (d-1)-minor of the
//     difference matrix with column i removed, signs alternating —
//     the generalized cross product.
//  3. Normalize to unit length; offset = -normal·p0.
//
// d == 3 takes a dedicated closed-form path (2×2 minors); it produces
// the same result as the general path and only skips recursion.
//
// If the points are affinely dependent the normal has ~zero length and
// the division by it yields non-finite components. That is deliberate:
// callers detect the condition downstream via orientation tests, per
// the engine's perturbation-based robustness policy.
//
// Hyperplane panics if d is outside [3, MaxRank-1] or pts is short.
func Hyperplane(pts []float64, d int) (normal []float64, offset float64) {
	if d < 3 || d > MaxRank-1 {
		panic(fmt.Sprintf("linalg: Hyperplane dimension %d outside [3, %d]", d, MaxRank-1))
	}
	if len(pts) < d*d {
		panic(fmt.Sprintf("linalg: Hyperplane needs %d coordinates, got %d", d*d, len(pts)))
	}
	if d == 3 {
		return hyperplane3(pts)
	}

	// Difference vectors between consecutive points: (d-1) rows × d cols.
	var diff [(MaxRank - 1) * MaxRank]float64
	for i := 0; i < d-1; i++ {
		for j := 0; j < d; j++ {
			diff[i*d+j] = pts[(i+1)*d+j] - pts[i*d+j]
		}
	}

	normal = make([]float64, d)
	n := d - 1
	var sub [(MaxRank - 1) * (MaxRank - 1)]float64
	sign := 1.0
	for i := 0; i < d; i++ {
		// Minor with column i removed.
		for j := 0; j < n; j++ {
			l := 0
			for k := 0; k < d; k++ {
				if k != i {
					sub[j*n+l] = diff[j*d+k]
					l++
				}
			}
		}
		// n is d-1, so 3 or 4 here; d == 3 never reaches this path.
		var dv float64
		if n == 4 {
			dv = Det4(sub[:16])
		} else {
			dv = det(sub[:n*n], n)
		}
		normal[i] = sign * dv
		sign = -sign
	}

	return finishPlane(pts, normal)
}

// hyperplane3 is the closed-form d=3 specialization: the normal is the
// cross product of the two edge vectors, written as signed 2×2 minors to
// mirror the general path term for term.
func hyperplane3(pts []float64) (normal []float64, offset float64) {
	var diff [2][3]float64
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			diff[i][j] = pts[(i+1)*3+j] - pts[i*3+j]
		}
	}

	normal = make([]float64, 3)
	sign := 1.0
	for i := 0; i < 3; i++ {
		var sub [2][2]float64
		for j := 0; j < 2; j++ {
			l := 0
			for k := 0; k < 3; k++ {
				if k != i {
					sub[j][l] = diff[j][k]
					l++
				}
			}
		}
		normal[i] = sign * (sub[0][0]*sub[1][1] - sub[1][0]*sub[0][1])
		sign = -sign
	}

	return finishPlane(pts, normal)
}

// finishPlane normalizes the raw normal to unit length and derives the
// offset from the first fitted point.
func finishPlane(pts, normal []float64) ([]float64, float64) {
	norm := 0.0
	for _, c := range normal {
		norm += c * c
	}
	norm = math.Sqrt(norm)
	for i := range normal {
		normal[i] /= norm
	}

	offset := 0.0
	for i := range normal {
		offset -= pts[i] * normal[i]
	}

	return normal, offset
}
