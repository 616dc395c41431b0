package delaunay

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/holoplot/convhull-3d/hull"
)

// liftNoise bounds the perturbation applied while lifting; the lifted
// coordinate is computed from the perturbed values so the points stay
// exactly on the paraboloid.
const liftNoise = 1e-7

// probePush scales how far past the tangent-plane crossing the probe is
// moved down the lift axis, guarding the lower-hull test against
// floating-point roundoff.
const probePush = 1000.0

// Mesh computes the Delaunay triangulation of an n-dimensional point
// set, 2 ≤ n ≤ hull.MaxDimensions-1. Every row of points must have the
// same width n.
//
// The result is a k×(n+1) slice of simplex vertex indices into points;
// k == 0 is a valid result (not an error). opts seeds the perturbation
// noise exactly as in the hull package; nil means hull.DefaultOptions().
//
// Algorithm outline:
//  1. Lift each point to n+1 dimensions: perturbed coordinates plus
//     their sum of squares.
//  2. Build the (n+1)-dimensional convex hull of the lifted set with
//     full hyperplane output.
//  3. From the highest lifted point, drop the paraboloid tangent-plane
//     crossing of the lift axis and push it probePush×|w| further down.
//  4. Hull facets whose plane evaluates strictly positive at that probe
//     form the lower hull — their vertex index tuples, unmodified, are
//     the Delaunay simplices.
//
// Errors: hull failures propagate wrapped (match them with errors.Is
// against hull.ErrInsufficientInput, hull.ErrDegenerateInput,
// hull.ErrDimension, hull.ErrFacetLimit).
func Mesh(points [][]float64, opts *hull.Options) ([][]int, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("delaunay: %w", hull.ErrInsufficientInput)
	}
	nd := len(points[0])
	if nd < 2 || nd > hull.MaxDimensions-1 {
		return nil, fmt.Errorf("delaunay: %w", hull.ErrDimension)
	}
	for _, p := range points {
		if len(p) != nd {
			return nil, fmt.Errorf("delaunay: %w", hull.ErrDimension)
		}
	}

	o := hull.DefaultOptions()
	if opts != nil {
		o = *opts
	}
	rng := rand.New(rand.NewSource(o.Seed))

	// Project onto the (n+1)-dimensional paraboloid.
	lifted := make([][]float64, len(points))
	for i, p := range points {
		row := make([]float64, nd+1)
		for j := 0; j < nd; j++ {
			c := p[j] + liftNoise*rng.Float64()
			row[j] = c
			row[nd] += c * c
		}
		lifted[i] = row
	}

	h, err := hull.BuildND(lifted, nd+1, &o)
	if err != nil {
		return nil, fmt.Errorf("delaunay: lifted hull: %w", err)
	}

	// Highest point on the paraboloid.
	maxIdx := 0
	for i := range lifted {
		if lifted[i][nd] > lifted[maxIdx][nd] {
			maxIdx = i
		}
	}

	// Tangent-plane crossing of the lift axis, pushed far enough down
	// that it sees every lower-hull facet despite roundoff.
	w := lifted[maxIdx][nd]
	for j := 0; j < nd; j++ {
		w -= 2 * lifted[maxIdx][j] * lifted[maxIdx][j]
	}
	probeW := w - probePush*math.Abs(w)

	// The probe is (0,...,0,probeW), so each plane evaluation reduces to
	// its last normal component.
	mesh := make([][]int, 0, len(h.Faces))
	for f := range h.Faces {
		if h.Normals[f][nd]*probeW+h.Offsets[f] > 0 {
			mesh = append(mesh, append([]int(nil), h.Faces[f]...))
		}
	}

	return mesh, nil
}
