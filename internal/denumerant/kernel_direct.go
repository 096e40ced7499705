package denumerant

import "math/big"

// directKernel extends a term f(t)*t^m by part a in closed form. For every
// output residue rho mod P it reconstructs the exact polynomial the extended
// sum follows on the anchor class t ≡ sigma (mod lcm(a, P)), where sigma is
// the CRT lift of rho mod P and rho mod gcd(a, P) mod a. The class
// restriction splits the extended sum into lcm-spaced sub-progressions, one
// per old residue in rho's gcd-coset, each summed exactly with the
// Bernoulli/Faulhaber identities from the shared MathCache.
//
// Anchoring every class at rho mod gcd(a, P) in the mod-a coordinate keeps
// the power-0 ambiguity down to a period-gcd function, which the boundary
// correction absorbs.
func directKernel(f *PeriodicFunction, m int, a int64, mc *MathCache) kernelOutput {
	p := f.period
	g := gcd(a, p)
	m64 := a / g * p

	top := NewPeriodicFunction(g)
	lower := make([]*PeriodicFunction, m+1)
	for j := range lower {
		lower[j] = NewPeriodicFunction(p)
	}

	one := big.NewRat(1, 1)
	minusOne := big.NewRat(-1, 1)
	invM := big.NewRat(1, m64)

	for rho := int64(0); rho < p; rho++ {
		sigma := crt(rho, p, rho%g, a)

		// Accumulate the class polynomial in n, where t = sigma + n*lcm.
		q := newRatPoly(m + 1)
		for rhoOld := rho % g; rhoOld < p; rhoOld += g {
			fv := f.values[rhoOld]
			if fv.Sign() == 0 {
				continue
			}
			sigmaOld := crt(rhoOld, p, sigma%a, a)
			ps := mc.powerSumAP(sigmaOld, m64, m)
			if sigma < sigmaOld {
				// The sub-progression starts one lcm-step later on this
				// class: substitute n-1 for n.
				ps = ps.composeLinear(one, minusOne)
			}
			q.addScaled(ps, fv)
		}

		// Convert to a polynomial in t via n = (t - sigma)/lcm.
		qt := q.composeLinear(invM, big.NewRat(-sigma, m64))
		for j := 0; j <= m; j++ {
			lower[j].values[rho].Set(qt.coeff(j))
		}
		if rho < g {
			top.values[rho].Set(qt.coeff(m + 1))
		}
	}
	return kernelOutput{top: top, lower: lower}
}
