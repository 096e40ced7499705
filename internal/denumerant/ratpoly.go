package denumerant

import "math/big"

// ratPoly is a dense polynomial with exact rational coefficients;
// index i holds the coefficient of x^i.
type ratPoly []*big.Rat

// newRatPoly returns the zero polynomial with room for degree deg.
func newRatPoly(deg int) ratPoly {
	p := make(ratPoly, deg+1)
	for i := range p {
		p[i] = new(big.Rat)
	}
	return p
}

// coeff returns the coefficient of x^i, zero beyond the stored degree.
// The returned rational is shared and must not be mutated.
func (p ratPoly) coeff(i int) *big.Rat {
	if i >= len(p) {
		return new(big.Rat)
	}
	return p[i]
}

// addScaled adds c*q into p. p must have room for every term of q.
func (p ratPoly) addScaled(q ratPoly, c *big.Rat) {
	tmp := new(big.Rat)
	for i, qc := range q {
		if qc.Sign() == 0 {
			continue
		}
		p[i].Add(p[i], tmp.Mul(qc, c))
	}
}

// mulLinear returns p(x)*(alpha*x + beta) as a new polynomial.
func (p ratPoly) mulLinear(alpha, beta *big.Rat) ratPoly {
	out := newRatPoly(len(p))
	tmp := new(big.Rat)
	for i, c := range p {
		if c.Sign() == 0 {
			continue
		}
		out[i].Add(out[i], tmp.Mul(c, beta))
		out[i+1].Add(out[i+1], tmp.Mul(c, alpha))
	}
	return out
}

// composeLinear returns p(alpha*x + beta) as a new polynomial, evaluated by
// Horner's rule over the linear substitution.
func (p ratPoly) composeLinear(alpha, beta *big.Rat) ratPoly {
	out := ratPoly{new(big.Rat)}
	for i := len(p) - 1; i >= 0; i-- {
		out = out.mulLinear(alpha, beta)
		out[0].Add(out[0], p[i])
	}
	return out
}

// clone returns a deep copy of p.
func (p ratPoly) clone() ratPoly {
	out := make(ratPoly, len(p))
	for i, c := range p {
		out[i] = new(big.Rat).Set(c)
	}
	return out
}
