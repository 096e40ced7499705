package denumerant

import (
	"math/big"
	"sort"
)

// CoefficientGroup is a compacting collection of PeriodicFunctions that all
// contribute additively to the coefficient of one power of t. It maintains
// the invariant that no period in the collection is an exact multiple of
// another period in the collection: violating functions are merged on
// insertion, so the collection stays as small as the period structure allows.
type CoefficientGroup struct {
	fns []*PeriodicFunction
}

// NewCoefficientGroup creates an empty group.
func NewCoefficientGroup() *CoefficientGroup { return &CoefficientGroup{} }

// Len returns the number of period objects in the group.
func (g *CoefficientGroup) Len() int { return len(g.fns) }

// Functions returns the period objects in the group. The slice and its
// elements are shared and must not be mutated by callers.
func (g *CoefficientGroup) Functions() []*PeriodicFunction { return g.fns }

// Periods returns the sorted periods of the group's functions.
func (g *CoefficientGroup) Periods() []int64 {
	ps := make([]int64, len(g.fns))
	for i, f := range g.fns {
		ps[i] = f.period
	}
	sort.Slice(ps, func(i, j int) bool { return ps[i] < ps[j] })
	return ps
}

// MergeOrAppend inserts fn into the group, preserving the group's total
// functional value and restoring the no-period-divides-another invariant.
// Cases, in order:
//
//  1. An existing function with the same period absorbs fn pointwise.
//  2. An existing function whose period is a multiple of fn's period absorbs
//     fn by folding fn's values into every matching residue (the larger
//     period is kept, nothing is discarded).
//  3. fn absorbs every existing function whose period divides fn's period;
//     the absorbed functions are removed and the combined fn is appended.
//  4. No period relation exists: fn is appended unchanged.
//
// fn is consumed: the group takes ownership and may mutate it.
func (g *CoefficientGroup) MergeOrAppend(fn *PeriodicFunction) {
	// Case 1: identical period.
	for _, e := range g.fns {
		if e.period == fn.period {
			for r := int64(0); r < e.period; r++ {
				e.values[r].Add(e.values[r], fn.values[r])
			}
			return
		}
	}

	// Case 2: an existing period is a multiple of fn's.
	for _, e := range g.fns {
		if e.period%fn.period == 0 {
			for r := int64(0); r < e.period; r++ {
				e.values[r].Add(e.values[r], fn.values[r%fn.period])
			}
			return
		}
	}

	// Case 3: fn's period is a multiple of one or more existing periods.
	kept := g.fns[:0]
	absorbed := false
	for _, e := range g.fns {
		if fn.period%e.period == 0 {
			for r := int64(0); r < fn.period; r++ {
				fn.values[r].Add(fn.values[r], e.values[r%e.period])
			}
			absorbed = true
			continue
		}
		kept = append(kept, e)
	}
	g.fns = kept
	if absorbed {
		g.fns = append(g.fns, fn)
		return
	}

	// Case 4: unrelated period.
	g.fns = append(g.fns, fn)
}

// ValueAt returns the group's aggregate value at t, the sum of every member
// function evaluated at t.
func (g *CoefficientGroup) ValueAt(t *big.Int) *big.Rat {
	sum := new(big.Rat)
	for _, f := range g.fns {
		sum.Add(sum, f.At(t))
	}
	return sum
}

// valueAtInt returns the aggregate value at a small nonnegative t.
func (g *CoefficientGroup) valueAtInt(t int64) *big.Rat {
	sum := new(big.Rat)
	for _, f := range g.fns {
		sum.Add(sum, f.atInt(t))
	}
	return sum
}

// Clone returns a deep copy of the group.
func (g *CoefficientGroup) Clone() *CoefficientGroup {
	fns := make([]*PeriodicFunction, len(g.fns))
	for i, f := range g.fns {
		fns[i] = f.Clone()
	}
	return &CoefficientGroup{fns: fns}
}
