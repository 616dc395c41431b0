// Package convhull computes convex hulls of point sets in 3-D and
// N-dimensional space, and Delaunay triangulations via paraboloid lifting.
//
// 🚀 What is convhull-3d?
//
//	A pure-Go implementation of the incremental quickhull algorithm
//	(Barber, Dobkin & Huhdanpaa, 1993), providing:
//	  • 3-D convex hulls of vertex clouds (triangle facets, outward oriented)
//	  • N-D convex hulls for 3 ≤ d ≤ 5, with facet hyperplane coefficients
//	  • N-D Delaunay meshes through the standard paraboloid-lifting reduction
//	  • Wavefront OBJ export/import and MATLAB verification-script export
//
// ✨ Why choose convhull-3d?
//
//   - Minimal API — one Build call in, one Hull value out
//   - Deterministic — per-build seeded perturbation, no global state
//   - Robust on real data — duplicate and near-coplanar points are
//     defused by tiny random noise rather than exact arithmetic
//   - Pure Go — no cgo, no BLAS, no hidden deps
//
// Everything is organized under small focused subpackages:
//
//	linalg/   — determinants and hyperplane fitting (the affine-geometry core)
//	order/    — value+index sorting and integer membership masks
//	hull/     — the incremental hull-construction engine
//	delaunay/ — paraboloid lifting and lower-hull filtering
//	objfile/  — OBJ / MATLAB-script serialization of finished hulls
//
// Quick ASCII example:
//
//	      .p3
//	     / | \
//	    /  |  \
//	  p0---|---p2
//	    \  |  /
//	     \ | /
//	      .p1
//
//	four points in general position produce a tetrahedron of four facets.
//
// Dive into the package docs and example tests for full usage, and into
// hull/doc.go for the algorithm walkthrough.
//
//	go get github.com/holoplot/convhull-3d/hull
package convhull
