package delaunay_test

import (
	"math/rand"
	"testing"

	"github.com/holoplot/convhull-3d/delaunay"
)

// benchmarkMesh triangulates a seeded random cloud of n points in nd
// dimensions.
func benchmarkMesh(b *testing.B, n, nd int) {
	rng := rand.New(rand.NewSource(1))
	points := make([][]float64, n)
	for i := range points {
		row := make([]float64, nd)
		for j := range row {
			row[j] = rng.Float64() * 10
		}
		points[i] = row
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := delaunay.Mesh(points, nil); err != nil {
			b.Fatalf("Mesh failed: %v", err)
		}
	}
}

// BenchmarkMesh2D_100 measures planar triangulation of a small cloud.
func BenchmarkMesh2D_100(b *testing.B) { benchmarkMesh(b, 100, 2) }

// BenchmarkMesh2D_500 measures planar triangulation of a medium cloud.
func BenchmarkMesh2D_500(b *testing.B) { benchmarkMesh(b, 500, 2) }

// BenchmarkMesh3D_150 measures tetrahedralization, the 4-D hull path.
func BenchmarkMesh3D_150(b *testing.B) { benchmarkMesh(b, 150, 3) }
