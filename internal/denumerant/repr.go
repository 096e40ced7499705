package denumerant

import (
	"math/big"

	apperrors "github.com/agbru/partcalc/internal/errors"
)

// RestrictedPartitionFunction is the finished (or in-construction)
// quasi-polynomial representation of a denumerant:
//
//	d(t) = sum over m of t^m * (sum of f(t) for f in coefficients[m])
//
// where coefficients[m] is the CoefficientGroup for power m. The level, the
// number of restriction-list elements incorporated so far, equals the number
// of power slots. Once fully built the representation is immutable and may
// be evaluated any number of times, from multiple goroutines.
type RestrictedPartitionFunction struct {
	parts  []int64
	coeffs []*CoefficientGroup
}

// newBase returns the level-1 representation for the singleton restriction
// list [a]: one PeriodicFunction of period a with values (1, 0, ..., 0),
// counting exactly the multiples of a.
func newBase(a int64) *RestrictedPartitionFunction {
	f := NewPeriodicFunction(a)
	f.values[0].SetInt64(1)
	group := NewCoefficientGroup()
	group.MergeOrAppend(f)
	return &RestrictedPartitionFunction{
		parts:  []int64{a},
		coeffs: []*CoefficientGroup{group},
	}
}

// Level returns the number of restriction-list elements incorporated.
func (d *RestrictedPartitionFunction) Level() int { return len(d.coeffs) }

// Parts returns a copy of the restriction list as actually consumed,
// in incorporation order.
func (d *RestrictedPartitionFunction) Parts() []int64 {
	out := make([]int64, len(d.parts))
	copy(out, d.parts)
	return out
}

// Coefficients returns the per-power coefficient groups, indexed by power.
// The groups are shared and must not be mutated by callers.
func (d *RestrictedPartitionFunction) Coefficients() []*CoefficientGroup {
	return d.coeffs
}

// PeriodObjectCount returns the total number of period objects across all
// power slots.
func (d *RestrictedPartitionFunction) PeriodObjectCount() int {
	n := 0
	for _, g := range d.coeffs {
		n += g.Len()
	}
	return n
}

// valueAt evaluates the representation at t as an exact rational, by
// Horner's rule from the top power down.
func (d *RestrictedPartitionFunction) valueAt(t *big.Int) *big.Rat {
	acc := new(big.Rat)
	tRat := new(big.Rat).SetInt(t)
	for m := len(d.coeffs) - 1; m >= 0; m-- {
		acc.Add(acc, d.coeffs[m].ValueAt(t))
		if m > 0 {
			acc.Mul(acc, tRat)
		}
	}
	return acc
}

// valueAtInt evaluates the representation at a small nonnegative t as an
// exact rational.
func (d *RestrictedPartitionFunction) valueAtInt(t int64) *big.Rat {
	acc := new(big.Rat)
	tRat := new(big.Rat).SetInt64(t)
	for m := len(d.coeffs) - 1; m >= 0; m-- {
		acc.Add(acc, d.coeffs[m].valueAtInt(t))
		if m > 0 {
			acc.Mul(acc, tRat)
		}
	}
	return acc
}

// Evaluate returns the number of partitions of t with parts drawn from the
// restriction list. t must be a nonnegative integer; the result is exact
// and costs O(level) big-number operations regardless of the magnitude of t.
//
// A non-integer or negative accumulated value means the representation's
// core invariant was broken during construction; that surfaces as an
// InternalError and should be treated as fatal.
func (d *RestrictedPartitionFunction) Evaluate(t *big.Int) (*big.Int, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}
	if t == nil {
		return nil, apperrors.ValidationError{
			Field:   "t",
			Message: "evaluation point must be a nonnegative integer",
		}
	}
	if t.Sign() < 0 {
		return nil, apperrors.ValidationError{
			Field:   "t",
			Value:   t.String(),
			Message: "evaluation point must be a nonnegative integer",
		}
	}
	acc := d.valueAt(t)
	if !acc.IsInt() {
		return nil, apperrors.InternalError{
			Op:     "Evaluate",
			Detail: "representation produced non-integer count " + acc.RatString() + " at t=" + t.String(),
		}
	}
	if acc.Sign() < 0 {
		return nil, apperrors.InternalError{
			Op:     "Evaluate",
			Detail: "representation produced negative count " + acc.RatString() + " at t=" + t.String(),
		}
	}
	return new(big.Int).Set(acc.Num()), nil
}

// validate checks structural sanity of the representation.
func (d *RestrictedPartitionFunction) validate() error {
	if d == nil || len(d.coeffs) == 0 || len(d.parts) != len(d.coeffs) {
		return apperrors.ValidationError{
			Field:   "representation",
			Message: "not a valid restricted partition function representation",
		}
	}
	return nil
}
