// Package hull builds convex hulls of finite point sets in 3-D and
// N-dimensional Euclidean space (3 ≤ d ≤ MaxDimensions) with the
// incremental quickhull algorithm.
//
// 🚀 What is quickhull?
//
//	The hull is grown one point at a time. Each insertion only touches
//	the locally affected region: the facets the new point can "see" are
//	torn out and the hole is re-stitched to the point along its horizon.
//	Reference: "The Quickhull Algorithm for Convex Hulls", C. Bradford
//	Barber, David P. Dobkin and Hannu Huhdanpaa, Geometry Center
//	Technical Report GCG53, July 30, 1993.
//
// Algorithm outline:
//  1. Perturb every coordinate by tiny positive noise and append a
//     homogeneous 1, so duplicate/coplanar points are defused and all
//     orientation tests become plain (d+1)×(d+1) determinants.
//  2. Reject inputs whose per-axis span is numerically zero — such
//     points do not span all d dimensions and have no d-dimensional hull.
//  3. Seed the hull with the (d+1)-facet simplex of the first d+1
//     points (facet i omits point i), fit a hyperplane per facet and
//     orient each one outward via the signed-volume test against the
//     excluded simplex point.
//  4. Scan the remaining points in decreasing normalized distance from
//     their centroid — far points tend to swallow many interior points
//     early and keep the live facet set small.
//  5. Per point: facets whose plane evaluates strictly positive at the
//     point are visible. No visible facet ⇒ the point is interior,
//     drop it. Otherwise remove the visible facets, find the horizon
//     (each (d-1)-vertex set shared between exactly one visible and one
//     non-visible facet), stitch one new facet per horizon edge to the
//     point, and re-orient the new facets against a non-coplanar
//     witness point.
//  6. Emit the facet index array plus per-facet hyperplanes as a fresh
//     caller-owned Hull.
//
// Numeric policy:
//
//	All sign tests are exact comparisons on the perturbed floats; the
//	perturbation is the sole robustness safeguard. No exact arithmetic,
//	no tolerance knobs. Builds are deterministic for a given Options.Seed.
//
// Resource model:
//
//	A build is single-threaded and synchronous; every working buffer is
//	owned by the in-flight call. The only self-imposed bound is the
//	MaxFacets ceiling, a runaway-computation guard — exceeding it fails
//	the whole build, never returns a partial hull. Callers wanting
//	parallelism run independent builds.
//
// ⚙️ Usage:
//
//	h, err := hull.Build3D(verts, nil)
//	if err != nil {
//	  // errors.Is against ErrInsufficientInput / ErrDegenerateInput / ...
//	}
//	for _, face := range h.Faces { ... } // outward-oriented index triples
//
// Complexity: O(n log n) expected for well-distributed 3-D inputs,
// O(n·f) worst case where f is the live facet count.
package hull
