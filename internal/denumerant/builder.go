package denumerant

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/agbru/partcalc/internal/errors"
	"github.com/agbru/partcalc/internal/logging"
)

// Observer receives construction progress notifications. Implementations
// must be cheap; they are invoked on the construction hot path.
type Observer interface {
	// KernelInvoked is called once per (power, period object) update with
	// the strategy that was selected.
	KernelInvoked(kind KernelKind)
	// PartIncorporated is called after each restriction-list element has
	// been fully merged, including its boundary correction.
	PartIncorporated(part int64, level int, duration time.Duration)
}

// nopObserver discards all notifications.
type nopObserver struct{}

func (nopObserver) KernelInvoked(KernelKind)                   {}
func (nopObserver) PartIncorporated(int64, int, time.Duration) {}

// Builder drives the incremental construction of a
// RestrictedPartitionFunction, one restriction-list element at a time.
// A Builder is not safe for concurrent use; construction is a
// single-threaded pure computation by contract. The finished
// representations it returns are independent of the Builder and of each
// other.
type Builder struct {
	log     logging.Logger
	cache   *MathCache
	obs     Observer
	force   KernelKind
	reorder bool
	tracer  trace.Tracer
}

// Option configures a Builder during construction.
type Option func(*Builder)

// WithLogger sets the construction logger.
func WithLogger(log logging.Logger) Option {
	return func(b *Builder) { b.log = log }
}

// WithCache sets the memo cache used by the kernels. Sharing one cache
// across builders amortizes the binomial/Bernoulli tables; the cache grows
// without bound until its Flush is called.
func WithCache(mc *MathCache) Option {
	return func(b *Builder) { b.cache = mc }
}

// WithObserver sets the construction progress observer.
func WithObserver(obs Observer) Option {
	return func(b *Builder) { b.obs = obs }
}

// WithForcedKernel bypasses the cost predicate for every power >= 1 update,
// always applying the given strategy. KernelAuto restores the predicate.
// Power-0 updates always use the telescoping closed form.
func WithForcedKernel(kind KernelKind) Option {
	return func(b *Builder) { b.force = kind }
}

// WithOrdering enables or disables the list-ordering preprocessor applied
// by Build. Ordering is advisory: it changes construction cost and internal
// representation shape, never evaluation results.
func WithOrdering(enabled bool) Option {
	return func(b *Builder) { b.reorder = enabled }
}

// NewBuilder creates a Builder with a fresh cache, discarded logs, and the
// ordering preprocessor enabled.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		log:     logging.NewNopLogger(),
		cache:   NewMathCache(),
		obs:     nopObserver{},
		force:   KernelAuto,
		reorder: true,
		tracer:  otel.Tracer("partcalc/denumerant"),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Cache returns the memo cache owned by the builder.
func (b *Builder) Cache() *MathCache { return b.cache }

// Build constructs the representation for the given restriction list. Every
// element must be a positive integer and the list must be non-empty. The
// context carries tracing only; construction is not cancellable.
func (b *Builder) Build(ctx context.Context, parts []int64) (*RestrictedPartitionFunction, error) {
	if len(parts) == 0 {
		return nil, apperrors.ValidationError{
			Field:   "parts",
			Message: "restriction list must not be empty",
		}
	}
	for _, a := range parts {
		if a < 1 {
			return nil, apperrors.ValidationError{
				Field:   "parts",
				Value:   fmt.Sprintf("%d", a),
				Message: "restriction list elements must be positive integers",
			}
		}
	}

	ctx, span := b.tracer.Start(ctx, "denumerant.Build",
		trace.WithAttributes(attribute.Int("parts.count", len(parts))))
	defer span.End()

	ordered := make([]int64, len(parts))
	copy(ordered, parts)
	if b.reorder {
		ordered = ReorderParts(ordered)
	}

	start := time.Now()
	d := newBase(ordered[0])
	b.obs.PartIncorporated(ordered[0], 1, time.Since(start))
	for _, a := range ordered[1:] {
		d = b.extend(ctx, d, a)
	}
	b.log.Info("representation built",
		logging.Int("level", d.Level()),
		logging.Int("period_objects", d.PeriodObjectCount()),
		logging.Float64("seconds", time.Since(start).Seconds()))
	return d, nil
}

// Extend produces a new representation counting partitions into the
// existing parts plus a. The existing representation is left untouched and
// remains independently usable.
func (b *Builder) Extend(ctx context.Context, d *RestrictedPartitionFunction, a int64) (*RestrictedPartitionFunction, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}
	if a < 1 {
		return nil, apperrors.ValidationError{
			Field:   "part",
			Value:   fmt.Sprintf("%d", a),
			Message: "extension part must be a positive integer",
		}
	}
	return b.extend(ctx, d, a), nil
}

// extend performs one incremental step: every period object of every power
// slot is pushed through a kernel, the outputs are merged into the new
// representation, and the boundary correction repairs the residues below a.
func (b *Builder) extend(ctx context.Context, d *RestrictedPartitionFunction, a int64) *RestrictedPartitionFunction {
	start := time.Now()
	n := d.Level()
	_, span := b.tracer.Start(ctx, "denumerant.Extend",
		trace.WithAttributes(
			attribute.Int64("part", a),
			attribute.Int("level", n+1)))
	defer span.End()

	out := &RestrictedPartitionFunction{
		parts:  append(d.Parts(), a),
		coeffs: make([]*CoefficientGroup, n+1),
	}
	for i := range out.coeffs {
		out.coeffs[i] = NewCoefficientGroup()
	}

	for m := 0; m < n; m++ {
		for _, f := range d.coeffs[m].Functions() {
			kind := b.force
			if m == 0 || kind == KernelAuto {
				kind = selectKernel(m, f.Period(), a)
			}
			b.obs.KernelInvoked(kind)
			ko := applyKernel(kind, f, m, a, b.cache)
			out.coeffs[m+1].MergeOrAppend(ko.top)
			for j, lf := range ko.lower {
				out.coeffs[j].MergeOrAppend(lf)
			}
		}
	}

	b.applyBoundaryCorrection(d, out, a)

	elapsed := time.Since(start)
	b.obs.PartIncorporated(a, n+1, elapsed)
	b.log.Debug("part incorporated",
		logging.Int64("part", a),
		logging.Int("level", n+1),
		logging.Int("period_objects", out.PeriodObjectCount()),
		logging.Float64("seconds", elapsed.Seconds()))
	return out
}

// applyBoundaryCorrection compares the assembled representation against the
// true counts on t in [0, a) and merges the exact difference, packed into
// one period-a function, into power 0. The kernels' closed forms are exact
// up to a period-a function at power 0, so repairing those residues makes
// the representation exact for every t >= 0.
func (b *Builder) applyBoundaryCorrection(d, out *RestrictedPartitionFunction, a int64) {
	corr := NewPeriodicFunction(a)
	nonzero := false
	for r := int64(0); r < a; r++ {
		// For t < a the new part cannot occur, so the true extended count
		// at r is the old representation's value.
		truth := d.valueAtInt(r)
		assembled := out.valueAtInt(r)
		diff := corr.values[r]
		diff.Sub(truth, assembled)
		if diff.Sign() != 0 {
			nonzero = true
		}
	}
	if nonzero {
		out.coeffs[0].MergeOrAppend(corr)
	}
}

// defaultBuilder serves the package-level convenience entry points; its
// memo cache is process-wide and grows with usage until flushed.
var defaultBuilder = NewBuilder()

// Build constructs a representation for parts using the package-wide
// default builder.
func Build(parts []int64) (*RestrictedPartitionFunction, error) {
	return defaultBuilder.Build(context.Background(), parts)
}

// Extend extends an existing representation by one part using the
// package-wide default builder.
func Extend(d *RestrictedPartitionFunction, a int64) (*RestrictedPartitionFunction, error) {
	return defaultBuilder.Extend(context.Background(), d, a)
}

// Evaluate returns the number of partitions of t with parts drawn from d's
// restriction list.
func Evaluate(d *RestrictedPartitionFunction, t *big.Int) (*big.Int, error) {
	return d.Evaluate(t)
}

// FlushDefaultCache clears the process-wide memo cache used by the
// package-level Build and Extend.
func FlushDefaultCache() { defaultBuilder.cache.Flush() }
