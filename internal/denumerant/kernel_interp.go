package denumerant

import "math/big"

// interpolationKernel extends a term f(t)*t^m by part a by sampling instead
// of closed-form summation. The extended sum S(t) obeys the recurrence
// S(t) = f(t)*t^m + S(t-a), so a prefix of its values costs O(1) rational
// operations per point. On each anchor class t ≡ sigma (mod lcm(a, P)) the
// sum is exactly a polynomial of degree m+1; sampling m+2 lcm-spaced points
// and running Newton finite differences recovers that polynomial per output
// residue. The anchor classes are the same ones the direct kernel expands,
// so both kernels produce bit-identical rational outputs.
//
// The fixed sampling overhead of (m+2)*lcm(a, P) points trades against the
// direct kernel's growth in P; the cost predicate selects this kernel
// precisely when that trade wins.
func interpolationKernel(f *PeriodicFunction, m int, a int64) kernelOutput {
	p := f.period
	g := gcd(a, p)
	m64 := a / g * p

	// Sample S(0) .. S((m+2)*lcm - 1).
	count := int64(m+2) * m64
	samples := make([]*big.Rat, count)
	tBig := new(big.Int)
	mExp := big.NewInt(int64(m))
	for t := int64(0); t < count; t++ {
		v := new(big.Rat)
		fv := f.values[t%p]
		if fv.Sign() != 0 {
			tBig.SetInt64(t)
			tPow := new(big.Int).Exp(tBig, mExp, nil)
			v.SetInt(tPow)
			v.Mul(v, fv)
		}
		if t >= a {
			v.Add(v, samples[t-a])
		}
		samples[t] = v
	}

	top := NewPeriodicFunction(g)
	lower := make([]*PeriodicFunction, m+1)
	for j := range lower {
		lower[j] = NewPeriodicFunction(p)
	}

	diffs := make([]*big.Rat, m+2)
	for rho := int64(0); rho < p; rho++ {
		sigma := crt(rho, p, rho%g, a)

		// Newton divided differences over the equally spaced nodes
		// x_i = sigma + i*lcm; spacing makes the divisor k*lcm at depth k.
		for i := range diffs {
			diffs[i] = new(big.Rat).Set(samples[sigma+int64(i)*m64])
		}
		for k := 1; k <= m+1; k++ {
			div := big.NewRat(1, int64(k)*m64)
			for i := m + 1; i >= k; i-- {
				diffs[i].Sub(diffs[i], diffs[i-1])
				diffs[i].Mul(diffs[i], div)
			}
		}

		// Expand the Newton form into monomial coefficients.
		qt := newRatPoly(m + 1)
		basis := ratPoly{big.NewRat(1, 1)}
		qt.addScaled(basis, diffs[0])
		one := big.NewRat(1, 1)
		for k := 1; k <= m+1; k++ {
			node := big.NewRat(-(sigma + int64(k-1)*m64), 1)
			basis = basis.mulLinear(one, node)
			qt.addScaled(basis, diffs[k])
		}

		for j := 0; j <= m; j++ {
			lower[j].values[rho].Set(qt.coeff(j))
		}
		if rho < g {
			top.values[rho].Set(qt.coeff(m + 1))
		}
	}
	return kernelOutput{top: top, lower: lower}
}
