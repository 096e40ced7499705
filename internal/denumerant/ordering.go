package denumerant

import "sort"

// ReorderParts returns a reordered copy of the restriction list that groups
// elements with large shared common factors together at the end, where they
// are processed last. Shared factors shrink the gcd/lcm periods that
// dominate construction cost, so deferring high-affinity elements keeps the
// intermediate representations small for longer.
//
// The ordering is advisory only: evaluation results are independent of the
// input order and of whether reordering is applied; only construction cost
// and internal representation shape vary.
func ReorderParts(parts []int64) []int64 {
	out := make([]int64, len(parts))
	copy(out, parts)
	if len(out) < 3 {
		return out
	}

	// Affinity score: the largest factor an element shares with any other
	// element of the list.
	scores := make(map[int]int64, len(out))
	for i, a := range out {
		best := int64(1)
		for j, b := range out {
			if i == j {
				continue
			}
			if g := gcd(a, b); g > best {
				best = g
			}
		}
		scores[i] = best
	}

	idx := make([]int, len(out))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		si, sj := scores[idx[i]], scores[idx[j]]
		if si != sj {
			return si < sj
		}
		return out[idx[i]] < out[idx[j]]
	})

	ordered := make([]int64, len(out))
	for k, i := range idx {
		ordered[k] = out[i]
	}
	return ordered
}
