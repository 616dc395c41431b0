package delaunay_test

import (
	"fmt"

	"github.com/holoplot/convhull-3d/delaunay"
)

// ExampleMesh triangulates a square with its center point. The center
// sits inside every corner-triangle circumcircle, so the only Delaunay
// triangulation is the four-triangle fan around it.
func ExampleMesh() {
	points := [][]float64{
		{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0.5, 0.5},
	}

	mesh, err := delaunay.Mesh(points, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println("triangles:", len(mesh))
	// Output:
	// triangles: 4
}
