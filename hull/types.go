// Package hull: public types, options and tuning constants.
package hull

const (
	// MaxDimensions is the largest supported ambient dimensionality.
	// It is one less than linalg.MaxRank so that the homogeneous
	// (d+1)×(d+1) orientation determinants stay within rank bounds.
	MaxDimensions = 5

	// MaxFacets is the hard ceiling on the live facet count during a
	// build. Exceeding it aborts the build with ErrFacetLimit; it exists
	// to stop runaway rebuilds on pathological input, not as a retry
	// threshold.
	MaxFacets = 50000

	// noiseScale bounds the pseudo-random perturbation added to every
	// input coordinate. The noise breaks exact coincidences (duplicate
	// or coplanar points) so that all sign tests can stay exact.
	noiseScale = 1e-7

	// spanEpsilon is the minimum per-axis extent of the perturbed input.
	// Anything below it means the points are confined to a hyperplane.
	spanEpsilon = 1e-7
)

// Vertex is a 3-D input point for the Build3D fast path.
type Vertex [3]float64

// Hull is the finished convex hull: caller-owned copies of the facet
// index array and the per-facet outward hyperplanes.
//
// Fields:
//   - Dim     — ambient dimensionality d.
//   - Faces   — m facets × d vertex indices into the input point slice.
//     Vertex order encodes the outward orientation.
//   - Normals — m outward unit normals (d components each).
//   - Offsets — m scalar plane offsets; Normals[i]·x + Offsets[i] == 0
//     on facet i, > 0 strictly outside it.
//
// The hyperplanes are fitted to the internally perturbed points, so
// original input points may sit within noise distance of a plane rather
// than exactly on it.
type Hull struct {
	Dim     int
	Faces   [][]int
	Normals [][]float64
	Offsets []float64
}

// Options configures a build.
//
// Fields:
//   - Seed — seeds the per-build noise source. Builds with the same
//     input and seed are bit-for-bit reproducible; there is no global
//     RNG state.
//
// A nil *Options passed to Build3D/BuildND means DefaultOptions().
type Options struct {
	Seed int64
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{Seed: 1}
}
