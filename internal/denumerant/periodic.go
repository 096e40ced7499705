package denumerant

import (
	"math/big"
)

// PeriodicFunction is an exact-rational-valued periodic function of a
// nonnegative integer argument, stored as its period and one value per
// residue class: f(t) = values[t mod period].
//
// A PeriodicFunction is created by an update kernel, may be mutated exactly
// once while being merged into a CoefficientGroup, and is read-only
// afterwards.
type PeriodicFunction struct {
	period int64
	values []*big.Rat
}

// NewPeriodicFunction creates a zero-valued function with the given period.
// It panics if period < 1; periods originate from validated restriction-list
// elements, so a non-positive period is a programming error.
func NewPeriodicFunction(period int64) *PeriodicFunction {
	if period < 1 {
		panic("denumerant: period must be >= 1")
	}
	values := make([]*big.Rat, period)
	for i := range values {
		values[i] = new(big.Rat)
	}
	return &PeriodicFunction{period: period, values: values}
}

// NewPeriodicFunctionFromValues creates a function whose period is
// len(values). The slice is retained, not copied.
func NewPeriodicFunctionFromValues(values []*big.Rat) *PeriodicFunction {
	if len(values) == 0 {
		panic("denumerant: empty value sequence")
	}
	return &PeriodicFunction{period: int64(len(values)), values: values}
}

// Period returns the period P of the function.
func (f *PeriodicFunction) Period() int64 { return f.period }

// Value returns the value at residue r, 0 <= r < period. The returned
// rational is shared with the function and must not be mutated by callers.
func (f *PeriodicFunction) Value(r int64) *big.Rat { return f.values[r] }

// At returns f(t) = values[t mod period] for a nonnegative t of arbitrary
// magnitude. The returned rational is shared and must not be mutated.
func (f *PeriodicFunction) At(t *big.Int) *big.Rat {
	return f.values[residueOf(t, f.period)]
}

// atInt returns f(t) for a small nonnegative t.
func (f *PeriodicFunction) atInt(t int64) *big.Rat {
	return f.values[t%f.period]
}

// Clone returns a deep copy of f.
func (f *PeriodicFunction) Clone() *PeriodicFunction {
	values := make([]*big.Rat, f.period)
	for i, v := range f.values {
		values[i] = new(big.Rat).Set(v)
	}
	return &PeriodicFunction{period: f.period, values: values}
}

// Equal reports whether f and g have the same period and identical values
// (exact rational equality).
func (f *PeriodicFunction) Equal(g *PeriodicFunction) bool {
	if f.period != g.period {
		return false
	}
	for i, v := range f.values {
		if v.Cmp(g.values[i]) != 0 {
			return false
		}
	}
	return true
}

// IsZero reports whether every value of f is zero.
func (f *PeriodicFunction) IsZero() bool {
	for _, v := range f.values {
		if v.Sign() != 0 {
			return false
		}
	}
	return true
}

// residueOf returns t mod period for a nonnegative big t.
func residueOf(t *big.Int, period int64) int64 {
	if t.IsInt64() {
		return t.Int64() % period
	}
	r := new(big.Int).Mod(t, big.NewInt(period))
	return r.Int64()
}
