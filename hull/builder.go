// Package hull: internal engine state and the per-point rebuild cycle.
package hull

import (
	"math"
	"math/rand"

	"github.com/holoplot/convhull-3d/linalg"
	"github.com/holoplot/convhull-3d/order"
)

// facet is one (d-1)-simplex of the live hull: d distinct vertex indices
// whose order encodes orientation, plus the fitted outward hyperplane.
type facet struct {
	verts  []int
	normal []float64
	offset float64
}

// flip reverses the facet's orientation: swap the last two vertices
// (negating the signed volume) and negate the hyperplane.
func (fc *facet) flip(d int) {
	fc.verts[d-2], fc.verts[d-1] = fc.verts[d-1], fc.verts[d-2]
	for j := range fc.normal {
		fc.normal[j] = -fc.normal[j]
	}
	fc.offset = -fc.offset
}

// builder owns every working buffer of one build call. Nothing here is
// shared across calls or goroutines.
type builder struct {
	d      int       // ambient dimensionality
	n      int       // number of input points
	stride int       // d+1, width of one augmented point row
	pts    []float64 // n × stride: perturbed coordinates + homogeneous 1
	span   []float64 // per-axis extent of the perturbed input
	facets []facet   // the live facet set
}

// newBuilder copies the input into the augmented point table: each
// coordinate gets independent positive noise in [0, noiseScale) and a
// trailing homogeneous 1 so orientation tests are plain determinants.
func newBuilder(points [][]float64, d int, rng *rand.Rand) *builder {
	n := len(points)
	s := d + 1
	b := &builder{
		d:      d,
		n:      n,
		stride: s,
		pts:    make([]float64, n*s),
		span:   make([]float64, d),
	}
	for i, p := range points {
		for j := 0; j < d; j++ {
			b.pts[i*s+j] = p[j] + noiseScale*rng.Float64()
		}
		b.pts[i*s+d] = 1
	}

	return b
}

// checkSpan measures the perturbed per-axis extent and rejects inputs
// confined to a hyperplane. The noise itself spans less than
// spanEpsilon, so a constant axis always trips the check.
func (b *builder) checkSpan() error {
	for j := 0; j < b.d; j++ {
		lo, hi := math.Inf(1), math.Inf(-1)
		for i := 0; i < b.n; i++ {
			v := b.pts[i*b.stride+j]
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
		b.span[j] = hi - lo
		if b.span[j] < spanEpsilon {
			return ErrDegenerateInput
		}
	}

	return nil
}

// initSimplex seeds the hull with the (d+1)-facet simplex of points
// 0..d, facet i omitting point i, and orients every facet so its
// excluded point lies on the non-positive side.
func (b *builder) initSimplex() {
	d := b.d
	b.facets = make([]facet, 0, d+1)
	for i := 0; i <= d; i++ {
		verts := make([]int, 0, d)
		for j := 0; j <= d; j++ {
			if j != i {
				verts = append(verts, j)
			}
		}
		b.facets = append(b.facets, b.newFacet(verts))
	}
	for i := 0; i <= d; i++ {
		if b.homDet(b.facets[i].verts, i) < 0 {
			b.facets[i].flip(d)
		}
	}
}

// scanOrder returns the non-simplex point indices sorted by decreasing
// squared distance from their centroid, with coordinates normalized by
// the per-axis span so no axis dominates. Far points first tends to
// swallow interior points early and keeps the live facet count small.
func (b *builder) scanOrder() []int {
	d, s := b.d, b.stride
	rest := b.n - d - 1

	mean := make([]float64, d)
	for i := d + 1; i < b.n; i++ {
		for j := 0; j < d; j++ {
			mean[j] += b.pts[i*s+j]
		}
	}
	for j := 0; j < d; j++ {
		mean[j] /= float64(rest)
	}

	rel := make([]float64, rest)
	for k := 0; k < rest; k++ {
		i := k + d + 1
		for j := 0; j < d; j++ {
			a := (b.pts[i*s+j] - mean[j]) / b.span[j]
			rel[k] += a * a
		}
	}

	_, idx := order.SortWithIndex(rel, true)
	pending := make([]int, rest)
	for i, k := range idx {
		pending[i] = k + d + 1
	}

	return pending
}

// scan runs the main quickhull loop over all pending points.
func (b *builder) scan() error {
	if b.n == b.d+1 {
		return nil // the initial simplex already is the hull
	}
	for _, p := range b.scanOrder() {
		if err := b.insert(p); err != nil {
			return err
		}
	}

	return nil
}

// insert processes one pending point: visibility test, horizon
// detection, rebuild of the visible region, orientation repair.
// Interior points leave the hull untouched.
func (b *builder) insert(p int) error {
	d, s := b.d, b.stride

	visible := make([]bool, len(b.facets))
	anyVisible := false
	for f := range b.facets {
		dot := b.facets[f].offset
		for j := 0; j < d; j++ {
			dot += b.pts[p*s+j] * b.facets[f].normal[j]
		}
		if dot > 0 {
			visible[f] = true
			anyVisible = true
		}
	}
	if !anyVisible {
		return nil
	}

	// Partition the live set. keep survives; gone is the visible region.
	keep := make([]facet, 0, len(b.facets))
	gone := make([]facet, 0, d+1)
	for f := range b.facets {
		if visible[f] {
			gone = append(gone, b.facets[f])
		} else {
			keep = append(keep, b.facets[f])
		}
	}

	// A horizon edge is a (d-1)-vertex subset shared between exactly one
	// visible and one non-visible facet. The edge keeps the non-visible
	// facet's vertex order.
	var horizon [][]int
	for _, vf := range gone {
		sorted := order.SortedInts(vf.verts)
		for _, nf := range keep {
			mask := order.Member(nf.verts, sorted)
			if order.SharedCount(mask) != d-1 {
				continue
			}
			edge := make([]int, 0, d-1)
			for l, m := range mask {
				if m {
					edge = append(edge, nf.verts[l])
				}
			}
			horizon = append(horizon, edge)
		}
	}

	// Stitch one new facet per horizon edge to the inserted point.
	next := keep
	start := len(next)
	for _, edge := range horizon {
		verts := make([]int, d)
		copy(verts, edge)
		verts[d-1] = p
		next = append(next, b.newFacet(verts))
		if len(next) > MaxFacets {
			return ErrFacetLimit
		}
	}
	b.facets = next

	for f := start; f < len(b.facets); f++ {
		if err := b.orient(f); err != nil {
			return err
		}
	}

	return nil
}

// newFacet fits the hyperplane through the given vertex indices.
func (b *builder) newFacet(verts []int) facet {
	d, s := b.d, b.stride
	ps := make([]float64, d*d)
	for k, v := range verts {
		copy(ps[k*d:(k+1)*d], b.pts[v*s:v*s+d])
	}
	normal, offset := linalg.Hyperplane(ps, d)

	return facet{verts: verts, normal: normal, offset: offset}
}

// orient repairs the orientation of facet f against a witness point.
//
// The witness is the first point that is neither a facet vertex nor
// coplanar with it (exact-zero determinant skips to the next candidate;
// the perturbation guarantees one exists for well-formed builds). A
// negative signed volume flips the facet; the repaired facet is
// re-checked against the same witness and must come out strictly
// positive, otherwise the orientation invariant itself is broken.
func (b *builder) orient(f int) error {
	fc := &b.facets[f]
	det := 0.0
	witness := -1
	for c := 0; c < b.n && det == 0; c++ {
		if containsInt(fc.verts, c) {
			continue
		}
		det = b.homDet(fc.verts, c)
		witness = c
	}
	if det == 0 {
		return ErrOrientation
	}
	if det < 0 {
		fc.flip(b.d)
		if b.homDet(fc.verts, witness) <= 0 {
			return ErrOrientation
		}
	}

	return nil
}

// homDet is the signed-volume test: the determinant of the homogeneous
// (d+1)×(d+1) matrix of the facet's vertices plus point p. The 3-D path
// uses the closed-form 4×4 expansion.
func (b *builder) homDet(verts []int, p int) float64 {
	s := b.stride
	var a [linalg.MaxRank * linalg.MaxRank]float64
	for i, v := range verts {
		copy(a[i*s:(i+1)*s], b.pts[v*s:v*s+s])
	}
	copy(a[b.d*s:(b.d+1)*s], b.pts[p*s:p*s+s])
	if b.d == 3 {
		return linalg.Det4(a[:16])
	}

	return linalg.Det(a[:s*s], s)
}

// emit materializes the live facet set into a fresh caller-owned Hull.
func (b *builder) emit() *Hull {
	h := &Hull{
		Dim:     b.d,
		Faces:   make([][]int, len(b.facets)),
		Normals: make([][]float64, len(b.facets)),
		Offsets: make([]float64, len(b.facets)),
	}
	for i := range b.facets {
		h.Faces[i] = append([]int(nil), b.facets[i].verts...)
		h.Normals[i] = append([]float64(nil), b.facets[i].normal...)
		h.Offsets[i] = b.facets[i].offset
	}

	return h
}

// containsInt reports whether v occurs in s.
func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}

	return false
}
