package hull_test

import (
	"math/rand"
	"testing"

	"github.com/holoplot/convhull-3d/hull"
)

// benchmarkBuild runs BuildND over a seeded random cloud of n points in
// d dimensions, regenerating nothing inside the timed loop.
func benchmarkBuild(b *testing.B, n, d int) {
	rng := rand.New(rand.NewSource(1))
	points := make([][]float64, n)
	for i := range points {
		row := make([]float64, d)
		for j := range row {
			row[j] = rng.Float64()*2 - 1
		}
		points[i] = row
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := hull.BuildND(points, d, nil); err != nil {
			b.Fatalf("BuildND failed: %v", err)
		}
	}
}

// BenchmarkBuild3D_100 measures a small 3-D cloud.
func BenchmarkBuild3D_100(b *testing.B) { benchmarkBuild(b, 100, 3) }

// BenchmarkBuild3D_1000 measures a medium 3-D cloud.
func BenchmarkBuild3D_1000(b *testing.B) { benchmarkBuild(b, 1000, 3) }

// BenchmarkBuild4D_200 measures the 4-D path the Delaunay layer uses.
func BenchmarkBuild4D_200(b *testing.B) { benchmarkBuild(b, 200, 4) }

// BenchmarkBuild5D_64 measures the maximum supported dimensionality.
func BenchmarkBuild5D_64(b *testing.B) { benchmarkBuild(b, 64, 5) }
