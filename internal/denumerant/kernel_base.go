package denumerant

import "math/big"

// baseKernel extends a power-0 term f by part a using the closed-form
// telescoping identity. The extended sum S(t) = sum of f over s <= t,
// s ≡ t (mod a) satisfies S(t) - S(t-a) = f(t), so its linear coefficient
// is the coset average of f and its power-0 coefficient follows by walking
// the difference equation around each gcd-coset cycle of Z_P.
func baseKernel(f *PeriodicFunction, a int64) kernelOutput {
	p := f.period
	g := gcd(a, p)
	l := p / g // residues of Z_P visited per coset cycle
	m64 := a / g * p

	top := NewPeriodicFunction(g)
	low := NewPeriodicFunction(p)
	step := a % p
	for rho0 := int64(0); rho0 < g; rho0++ {
		// Coset sum C = sum of f over residues ≡ rho0 (mod g).
		c := new(big.Rat)
		for rho := rho0; rho < p; rho += g {
			c.Add(c, f.values[rho])
		}
		// Linear coefficient C/lcm(a, P), constant on the coset.
		top.values[rho0].Quo(c, new(big.Rat).SetInt64(m64))

		// Telescope h(rho) = h(rho-a) + f(rho) - a*C/lcm around the cycle,
		// anchored at h(rho0) = 0. The anchor choice shifts the output by a
		// period-g function only, which the boundary correction absorbs.
		decrement := new(big.Rat).Mul(big.NewRat(a, 1), top.values[rho0])
		prev := rho0
		cur := (rho0 + step) % p
		for i := int64(1); i < l; i++ {
			h := low.values[cur]
			h.Add(low.values[prev], f.values[cur])
			h.Sub(h, decrement)
			prev = cur
			cur = (cur + step) % p
		}
	}
	return kernelOutput{top: top, lower: []*PeriodicFunction{low}}
}
