// Package delaunay computes Delaunay triangulations of N-dimensional
// point sets (2 ≤ n ≤ 4) via the classic paraboloid-lifting reduction
// to convex hulls.
//
// 🚀 How the reduction works:
//
//	Every n-dimensional point gains one extra coordinate equal to the
//	sum of squares of its original coordinates, placing it on a convex
//	paraboloid in n+1 dimensions. The convex hull of the lifted set is
//	then built with the hull package; the facets of its "lower" side —
//	the ones visible from far beneath the paraboloid — project exactly
//	onto the Delaunay simplices of the original points.
//
// The probe point for the lower-hull test is derived from the highest
// lifted point: the tangent hyperplane to the paraboloid there crosses
// the lift axis at w0 - Σ 2·p0j², and the crossing is pushed a further
// 1000×|w| down the axis so floating-point error cannot hide a facet.
//
// ⚙️ Usage:
//
//	mesh, err := delaunay.Mesh(points, nil)
//	// mesh is k × (n+1) vertex indices; k may be 0, which is not an error
//
// The mesh is a read-only derived view: recomputed fresh per call, no
// state shared with the hull it came from. Hull-level failures
// (insufficient, degenerate or oversized input) propagate wrapped, so
// errors.Is against the hull sentinels keeps working.
//
// Complexity: that of the underlying (n+1)-dimensional hull build plus
// one plane evaluation per hull facet.
package delaunay
