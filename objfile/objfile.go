package objfile

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/holoplot/convhull-3d/hull"
)

// normGuard keeps the normalisation of near-zero cross products finite.
const normGuard = 2.23e-9

// checkTriangles validates that faces is a non-empty triangle list with
// indices inside verts.
func checkTriangles(verts []hull.Vertex, faces [][]int) error {
	if len(faces) == 0 {
		return ErrNoFaces
	}
	for _, f := range faces {
		if len(f) != 3 {
			return ErrNoFaces
		}
		for _, v := range f {
			if v < 0 || v >= len(verts) {
				return fmt.Errorf("%w: index %d out of range", ErrNoFaces, v)
			}
		}
	}

	return nil
}

// faceNormal returns the unit normal of the triangle (a, b, c) via the
// cross product of its two edge vectors. The guard term keeps the
// result finite for degenerate triangles.
func faceNormal(a, b, c hull.Vertex) [3]float64 {
	var e1, e2 [3]float64
	for i := 0; i < 3; i++ {
		e1[i] = b[i] - a[i]
		e2[i] = c[i] - a[i]
	}
	n := [3]float64{
		e1[1]*e2[2] - e1[2]*e2[1],
		e1[2]*e2[0] - e1[0]*e2[2],
		e1[0]*e2[1] - e1[1]*e2[0],
	}
	scale := 1 / (math.Sqrt(n[0]*n[0]+n[1]*n[1]+n[2]*n[2]) + normGuard)
	n[0] *= scale
	n[1] *= scale
	n[2] *= scale

	return n
}

// WriteOBJ streams verts and triangle faces to w in Wavefront OBJ form:
// an `o` header, `v` lines, one outward unit `vn` per face, and
// 1-indexed `f a//n b//n c//n` lines.
//
// With onlyUsed set, vertices are written per face corner (three `v`
// lines per face, in face order) and the `f` lines index those corners,
// so input vertices no face references end up dropped from the file.
//
// Faces must be triangles with in-range indices; anything else returns
// ErrNoFaces and nothing useful is written.
func WriteOBJ(w io.Writer, verts []hull.Vertex, faces [][]int, onlyUsed bool) error {
	if err := checkTriangles(verts, faces); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "o")

	if onlyUsed {
		for _, f := range faces {
			for _, vi := range f {
				v := verts[vi]
				fmt.Fprintf(bw, "v %f %f %f\n", v[0], v[1], v[2])
			}
		}
	} else {
		for _, v := range verts {
			fmt.Fprintf(bw, "v %f %f %f\n", v[0], v[1], v[2])
		}
	}

	for _, f := range faces {
		n := faceNormal(verts[f[0]], verts[f[1]], verts[f[2]])
		fmt.Fprintf(bw, "vn %f %f %f\n", n[0], n[1], n[2])
	}

	if onlyUsed {
		for i := range faces {
			fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n",
				3*i+1, i+1, 3*i+2, i+1, 3*i+3, i+1)
		}
	} else {
		for i, f := range faces {
			fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n",
				f[0]+1, i+1, f[1]+1, i+1, f[2]+1, i+1)
		}
	}

	return bw.Flush()
}

// WriteM streams a standalone MATLAB verification script to w: a
// `vertices` matrix with one row per vertex and a 1-indexed `faces`
// matrix with one row per triangle.
func WriteM(w io.Writer, verts []hull.Vertex, faces [][]int) error {
	if err := checkTriangles(verts, faces); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "vertices = [")
	for _, v := range verts {
		fmt.Fprintf(bw, "%f, %f, %f;\n", v[0], v[1], v[2])
	}
	fmt.Fprint(bw, "];\n\n\n")
	fmt.Fprintln(bw, "faces = [")
	for _, f := range faces {
		fmt.Fprintf(bw, " %d, %d, %d;\n", f[0]+1, f[1]+1, f[2]+1)
	}
	fmt.Fprint(bw, "];\n\n\n")

	return bw.Flush()
}

// ReadVertices extracts the `v x y z` vertex lines from an OBJ stream,
// ignoring comments, normals, faces and any other directives. A `v`
// line that does not carry exactly three numeric fields returns
// ErrFormat.
func ReadVertices(r io.Reader) ([]hull.Vertex, error) {
	var verts []hull.Vertex

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if !strings.HasPrefix(line, "v ") {
			continue
		}
		fields := strings.Fields(line[2:])
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: %q", ErrFormat, line)
		}

		var v hull.Vertex
		for i, f := range fields {
			x, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrFormat, line)
			}
			v[i] = x
		}
		verts = append(verts, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("objfile: read: %w", err)
	}

	return verts, nil
}
