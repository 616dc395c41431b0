package order

import "sort"

// SortWithIndex returns a sorted copy of vals together with the original
// index of every sorted element, so that sorted[i] == vals[idx[i]].
// With descending=false the order is ascending, otherwise descending.
//
// Equal values compare equal; no tie-break rule is promised.
func SortWithIndex(vals []float64, descending bool) (sorted []float64, idx []int) {
	idx = make([]int, len(vals))
	for i := range idx {
		idx[i] = i
	}
	if descending {
		sort.Slice(idx, func(a, b int) bool { return vals[idx[a]] > vals[idx[b]] })
	} else {
		sort.Slice(idx, func(a, b int) bool { return vals[idx[a]] < vals[idx[b]] })
	}

	sorted = make([]float64, len(vals))
	for i, j := range idx {
		sorted[i] = vals[j]
	}

	return sorted, idx
}

// SortedInts returns an ascending copy of v, leaving v untouched.
func SortedInts(v []int) []int {
	out := make([]int, len(v))
	copy(out, v)
	sort.Ints(out)

	return out
}

// Member reports, for each element of a, whether it occurs anywhere in b.
func Member(a, b []int) []bool {
	mask := make([]bool, len(a))
	for i, x := range a {
		for _, y := range b {
			if x == y {
				mask[i] = true

				break
			}
		}
	}

	return mask
}

// SharedCount counts the true flags in a membership mask. A visible and
// a non-visible facet border each other across a horizon edge when the
// count over one facet's vertex tuple is exactly d-1.
func SharedCount(mask []bool) int {
	n := 0
	for _, m := range mask {
		if m {
			n++
		}
	}

	return n
}
