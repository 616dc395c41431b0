package linalg_test

import (
	"math/rand"
	"testing"

	"github.com/holoplot/convhull-3d/linalg"
)

// randomMatrix fills a fresh n×n flat matrix with seeded values.
func randomMatrix(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	m := make([]float64, n*n)
	for i := range m {
		m[i] = rng.Float64()*2 - 1
	}

	return m
}

// BenchmarkDet4_ClosedForm measures the fully expanded 4×4 path used by
// every 3-D orientation test.
func BenchmarkDet4_ClosedForm(b *testing.B) {
	m := randomMatrix(4, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = linalg.Det4(m)
	}
}

// BenchmarkDet_Rank4Recursive measures the generic cofactor path on the
// same size, for comparison against the closed form.
func BenchmarkDet_Rank4Recursive(b *testing.B) {
	m := randomMatrix(4, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = linalg.Det(m, 4)
	}
}

// BenchmarkDet_Rank6Recursive measures the worst rank the engine ever
// requests (homogeneous matrices of a 5-D hull).
func BenchmarkDet_Rank6Recursive(b *testing.B) {
	m := randomMatrix(6, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = linalg.Det(m, 6)
	}
}

// BenchmarkHyperplane_3D measures the closed-form plane fit.
func BenchmarkHyperplane_3D(b *testing.B) {
	pts := randomMatrix(3, 2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = linalg.Hyperplane(pts, 3)
	}
}

// BenchmarkHyperplane_5D measures the general cofactor plane fit at the
// maximum supported dimensionality.
func BenchmarkHyperplane_5D(b *testing.B) {
	pts := randomMatrix(5, 2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = linalg.Hyperplane(pts, 5)
	}
}
