package denumerant

// The incremental step multiplies one old quasi-polynomial term f(t)*t^m
// (f periodic with period P) by the generating-function factor for the new
// part a. Every kernel implements the same contract: it returns one
// PeriodicFunction of period gcd(a, P) contributing to power m+1, and m+1
// PeriodicFunctions of period P contributing to powers 0..m. The kernels
// differ only in numeric strategy and cost; where more than one applies
// they produce bit-identical rational outputs.
//
// The power-0 output is normalized only up to an additive function of
// period gcd(a, P): since gcd(a, P) divides a, the per-step boundary
// correction (period a, power 0) repairs the difference exactly.

// KernelKind identifies one of the interchangeable update strategies.
type KernelKind int

const (
	// KernelAuto lets the cost predicate choose the strategy.
	KernelAuto KernelKind = iota
	// KernelBase is the closed-form telescoping strategy for power 0 terms.
	KernelBase
	// KernelDirect expands the update in closed form with Bernoulli-number
	// power sums over arithmetic progressions.
	KernelDirect
	// KernelInterpolation samples the extended sum and recovers the
	// coefficients by quasi-polynomial interpolation per residue class.
	KernelInterpolation
)

// String returns the kernel name used in logs and metric labels.
func (k KernelKind) String() string {
	switch k {
	case KernelAuto:
		return "auto"
	case KernelBase:
		return "base"
	case KernelDirect:
		return "direct"
	case KernelInterpolation:
		return "interpolation"
	default:
		return "unknown"
	}
}

// kernelOutput carries one kernel invocation's contributions: top goes to
// power m+1, lower[j] goes to power j for j = 0..m.
type kernelOutput struct {
	top   *PeriodicFunction
	lower []*PeriodicFunction
}

// selectKernel is the pure cost predicate choosing a strategy for a term of
// power m and period p extended by part a. The threshold is an empirical
// performance heuristic with no correctness consequence: the direct kernel
// costs on the order of P*L*m rational operations (L = P/gcd(a,P)), the
// interpolation kernel on the order of (m+2)*lcm(a,P) sample updates.
func selectKernel(m int, p, a int64) KernelKind {
	if m == 0 {
		return KernelBase
	}
	if int64(m+2)*lcm(a, p) < p*int64((m+1)*(m+1)) {
		return KernelInterpolation
	}
	return KernelDirect
}

// applyKernel dispatches one update. kind must not be KernelAuto; KernelBase
// requires m == 0.
func applyKernel(kind KernelKind, f *PeriodicFunction, m int, a int64, mc *MathCache) kernelOutput {
	switch kind {
	case KernelBase:
		return baseKernel(f, a)
	case KernelDirect:
		return directKernel(f, m, a, mc)
	case KernelInterpolation:
		return interpolationKernel(f, m, a)
	default:
		panic("denumerant: unresolved kernel kind")
	}
}
