package hull

import "errors"

var (
	// ErrInsufficientInput indicates a nil input or fewer than d+1 points,
	// which cannot span the initial simplex.
	ErrInsufficientInput = errors.New("hull: need at least d+1 points")

	// ErrDegenerateInput indicates the points do not span all d dimensions
	// within numerical tolerance (some axis has ~zero extent). Reduce the
	// dimensionality of the data and build in a lower d instead.
	ErrDegenerateInput = errors.New("hull: input points do not span all d dimensions")

	// ErrDimension indicates an unsupported dimensionality (outside
	// [3, MaxDimensions]) or a point row whose width disagrees with d.
	ErrDimension = errors.New("hull: unsupported or inconsistent dimensionality")

	// ErrFacetLimit indicates the live facet count would exceed MaxFacets
	// during a rebuild. This is a hard ceiling, not a soft retry; the
	// build fails with no partial output.
	ErrFacetLimit = errors.New("hull: facet count exceeds the hard ceiling")

	// ErrOrientation indicates a facet could not be consistently oriented:
	// either no non-coplanar witness point exists, or the post-repair
	// signed-volume check still failed. This is an internal-consistency
	// violation, not a user-data error.
	ErrOrientation = errors.New("hull: facet cannot be properly oriented")
)
