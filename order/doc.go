// Package order provides the ordering utilities the hull engine leans
// on: value+original-index sorting and integer membership masks.
//
// 🚀 What lives here?
//
//   - SortWithIndex — sorted copy of a float slice plus the original
//     index of each sorted element (ascending or descending). Used to
//     process insertion candidates by decreasing centroid distance.
//   - SortedInts — ascending copy of an int slice, used to canonicalize
//     facet vertex tuples before comparison.
//   - Member — per-element membership mask of one int slice in another.
//     Two facets share a sub-facet exactly when d-1 entries of one
//     sorted vertex tuple appear in the other; that test is how the
//     engine finds the horizon.
//
// Determinism note: SortWithIndex gives no stability promise for equal
// values — ties are equal under the comparator and callers must not
// rely on their relative order. For a fixed input the result is still
// reproducible, which is all the engine needs.
package order
