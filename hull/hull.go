package hull

import "math/rand"

// Build3D computes the convex hull of a 3-D vertex cloud and returns
// its triangular facets, outward oriented.
//
// Shorthand for BuildND with d=3; this path uses the closed-form 4×4
// determinant and plane fit throughout.
//
// Errors: ErrInsufficientInput (nil or fewer than 4 vertices),
// ErrDegenerateInput (vertices confined to a plane), ErrFacetLimit,
// ErrOrientation.
//
// Example:
//
//	h, err := hull.Build3D(verts, nil) // nil opts = DefaultOptions()
func Build3D(verts []Vertex, opts *Options) (*Hull, error) {
	points := make([][]float64, len(verts))
	for i, v := range verts {
		points[i] = []float64{v[0], v[1], v[2]}
	}

	return BuildND(points, 3, opts)
}

// BuildND computes the convex hull of an N-dimensional point set,
// 3 ≤ d ≤ MaxDimensions. Every row of points must have exactly d
// coordinates.
//
// The returned Hull carries the m×d facet index array plus the per-facet
// outward unit normals and offsets. On any error the result is nil —
// never a partial hull.
//
// Errors:
//   - ErrDimension         — d outside [3, MaxDimensions] or ragged rows.
//   - ErrInsufficientInput — nil input or fewer than d+1 points.
//   - ErrDegenerateInput   — points do not span all d dimensions.
//   - ErrFacetLimit        — live facet count exceeded MaxFacets.
//   - ErrOrientation       — internal orientation invariant violated.
func BuildND(points [][]float64, d int, opts *Options) (*Hull, error) {
	if d < 3 || d > MaxDimensions {
		return nil, ErrDimension
	}
	if len(points) < d+1 {
		return nil, ErrInsufficientInput
	}
	for _, p := range points {
		if len(p) != d {
			return nil, ErrDimension
		}
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	b := newBuilder(points, d, rand.New(rand.NewSource(o.Seed)))
	if err := b.checkSpan(); err != nil {
		return nil, err
	}
	b.initSimplex()
	if err := b.scan(); err != nil {
		return nil, err
	}

	return b.emit(), nil
}
