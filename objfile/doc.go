// Package objfile reads and writes 3-D triangle meshes in Wavefront
// OBJ form, plus a MATLAB script writer for quick visual verification.
//
// ✨ What it covers:
//
//   - WriteOBJ — vertices, per-face outward unit normals, and
//     1-indexed `f a//n b//n c//n` faces. With onlyUsed set, vertices
//     are emitted per face corner so unreferenced input points never
//     reach the file.
//   - WriteM — a standalone MATLAB script declaring `vertices` and
//     1-indexed `faces` matrices, ready for patch()-style plotting.
//   - ReadVertices — extracts the `v x y z` lines from an OBJ stream,
//     ignoring everything else.
//
// The writers consume exactly what hull.Build3D produces: a vertex
// slice and triangle index triples. They are 3-D only; higher
// dimensional facets have no OBJ representation and are rejected with
// ErrNoFaces.
//
// All functions stream to/from io interfaces; no filesystem paths are
// handled here.
package objfile
