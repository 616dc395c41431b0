package objfile_test

import (
	"strings"
	"testing"

	"github.com/holoplot/convhull-3d/hull"
	"github.com/holoplot/convhull-3d/objfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unitTriangle is a single right triangle in the z = 0 plane, wound
// counter-clockwise so its normal points along +z.
func unitTriangle() ([]hull.Vertex, [][]int) {
	verts := []hull.Vertex{
		{0, 0, 0},
		{1, 0, 0},
		{0, 1, 0},
	}

	return verts, [][]int{{0, 1, 2}}
}

// TestWriteOBJ_SingleTriangle pins the exact byte output for the
// simplest mesh: header, vertices, one +z normal, one 1-indexed face.
func TestWriteOBJ_SingleTriangle(t *testing.T) {
	verts, faces := unitTriangle()

	var sb strings.Builder
	require.NoError(t, objfile.WriteOBJ(&sb, verts, faces, false))

	want := "o\n" +
		"v 0.000000 0.000000 0.000000\n" +
		"v 1.000000 0.000000 0.000000\n" +
		"v 0.000000 1.000000 0.000000\n" +
		"vn 0.000000 0.000000 1.000000\n" +
		"f 1//1 2//1 3//1\n"
	assert.Equal(t, want, sb.String())
}

// TestWriteOBJ_OnlyUsed verifies that unreferenced vertices are dropped
// and faces re-index the per-corner vertex stream.
func TestWriteOBJ_OnlyUsed(t *testing.T) {
	verts := []hull.Vertex{
		{5, 5, 5}, // never referenced
		{0, 0, 0},
		{1, 0, 0},
		{0, 1, 0},
	}
	faces := [][]int{{1, 2, 3}}

	var sb strings.Builder
	require.NoError(t, objfile.WriteOBJ(&sb, verts, faces, true))

	out := sb.String()
	assert.NotContains(t, out, "v 5.000000", "unreferenced vertex must be dropped")
	assert.Contains(t, out, "f 1//1 2//1 3//1\n", "faces index the per-corner stream")
	assert.Equal(t, 3, strings.Count(out, "\nv "), "exactly one vertex per face corner")
}

// TestWriteOBJ_HullRoundTrip exports a built hull and re-imports the
// vertices, confirming the two forms agree.
func TestWriteOBJ_HullRoundTrip(t *testing.T) {
	verts := []hull.Vertex{
		{1, 1, 1},
		{1, -1, -1},
		{-1, 1, -1},
		{-1, -1, 1},
	}
	h, err := hull.Build3D(verts, nil)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, objfile.WriteOBJ(&sb, verts, h.Faces, false))

	got, err := objfile.ReadVertices(strings.NewReader(sb.String()))
	require.NoError(t, err)
	assert.Equal(t, verts, got)
}

// TestWriteM pins the MATLAB script layout: vertices rows, then
// 1-indexed faces rows.
func TestWriteM(t *testing.T) {
	verts, faces := unitTriangle()

	var sb strings.Builder
	require.NoError(t, objfile.WriteM(&sb, verts, faces))

	want := "vertices = [\n" +
		"0.000000, 0.000000, 0.000000;\n" +
		"1.000000, 0.000000, 0.000000;\n" +
		"0.000000, 1.000000, 0.000000;\n" +
		"];\n\n\n" +
		"faces = [\n" +
		" 1, 2, 3;\n" +
		"];\n\n\n"
	assert.Equal(t, want, sb.String())
}

// TestWrite_RejectsNonTriangles verifies both writers refuse facet
// shapes OBJ cannot carry.
func TestWrite_RejectsNonTriangles(t *testing.T) {
	verts, _ := unitTriangle()

	var sb strings.Builder
	assert.ErrorIs(t, objfile.WriteOBJ(&sb, verts, nil, false), objfile.ErrNoFaces)
	assert.ErrorIs(t, objfile.WriteOBJ(&sb, verts, [][]int{{0, 1, 2, 2}}, false), objfile.ErrNoFaces)
	assert.ErrorIs(t, objfile.WriteOBJ(&sb, verts, [][]int{{0, 1, 7}}, false), objfile.ErrNoFaces)
	assert.ErrorIs(t, objfile.WriteM(&sb, verts, [][]int{{0, 1}}), objfile.ErrNoFaces)
}

// TestReadVertices_SkipsOtherDirectives checks that comments, normals
// and faces are ignored while vertices parse.
func TestReadVertices_SkipsOtherDirectives(t *testing.T) {
	const obj = `# a comment
o mesh
v 1.5 -2.25 3e2
vn 0.0 0.0 1.0
v 0 0 0
vt 0.5 0.5
f 1//1 2//1 1//1
`

	verts, err := objfile.ReadVertices(strings.NewReader(obj))
	require.NoError(t, err)
	assert.Equal(t, []hull.Vertex{{1.5, -2.25, 300}, {0, 0, 0}}, verts)
}

// TestReadVertices_Malformed rejects vertex lines with the wrong arity
// or non-numeric fields.
func TestReadVertices_Malformed(t *testing.T) {
	_, err := objfile.ReadVertices(strings.NewReader("v 1 2\n"))
	assert.ErrorIs(t, err, objfile.ErrFormat)

	_, err = objfile.ReadVertices(strings.NewReader("v 1 2 x\n"))
	assert.ErrorIs(t, err, objfile.ErrFormat)
}

// TestReadVertices_Empty returns no vertices for a stream with none.
func TestReadVertices_Empty(t *testing.T) {
	verts, err := objfile.ReadVertices(strings.NewReader("# nothing here\n"))
	require.NoError(t, err)
	assert.Empty(t, verts)
}
