// Package linalg provides the small fixed-rank linear-algebra kernels
// behind the convex-hull engine: square-matrix determinants and
// hyperplane fitting from d affinely-independent points.
//
// 🚀 What lives here?
//
//   - Det — generic n×n determinant by cofactor expansion (n ≤ MaxRank)
//   - Det4 — closed-form 4×4 determinant, the hot path of 3-D hulls
//   - Hyperplane — unit normal + offset of the flat spanned by d points
//
// All matrices are flat row-major []float64 slices, the same storage
// convention the hull engine uses for its augmented point table. Ranks
// are bounded by MaxRank so every recursion level works out of a
// fixed-capacity stack buffer; nothing escapes to the heap.
//
// ⚙️ Usage:
//
//	n, off := linalg.Hyperplane(facetPoints, 3)
//	// n·x + off == 0 for every facet vertex
//
// Numeric policy: these kernels do straight floating-point arithmetic.
// Degenerate input (e.g. collinear points making the fitted normal
// vanish) is a caller-level contract violation and is not trapped here;
// it surfaces later as a failed orientation test in the hull engine.
//
// Complexity: Det is O(n!) worst case (cofactor expansion), which is
// intentional — n never exceeds MaxRank, and the closed forms cover the
// sizes that dominate real workloads.
package linalg
