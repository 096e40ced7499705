package denumerant

import (
	"fmt"
	"math/big"

	gocache "github.com/patrickmn/go-cache"
)

// This file implements the power-sum identities the direct-summation kernel
// is built on: Bernoulli numbers, Faulhaber polynomials for sums of j^i, and
// their extension to sums of (sigma + j*M)^m over arithmetic progressions.

// Bernoulli returns the q-th Bernoulli number with the B(1) = +1/2
// convention, memoized. That convention makes the Faulhaber expansion of
// the inclusive power sum come out without a separate boundary term.
func (mc *MathCache) Bernoulli(q int) *big.Rat {
	key := fmt.Sprintf("B/%d", q)
	if v, ok := mc.lookup(key); ok {
		return v.(*big.Rat)
	}
	// Fill the table up to q using the defining recurrence
	//   B(m) = -1/(m+1) * sum_{j<m} C(m+1, j) B(j)
	// for the B(1) = -1/2 convention, flipping the sign at index 1 on store.
	table := make([]*big.Rat, q+1)
	table[0] = big.NewRat(1, 1)
	tmp := new(big.Rat)
	for m := 1; m <= q; m++ {
		sum := new(big.Rat)
		for j := 0; j < m; j++ {
			sum.Add(sum, tmp.Mul(mc.Binomial(int64(m)+1, int64(j)), table[j]))
		}
		table[m] = sum.Mul(sum, big.NewRat(-1, int64(m)+1))
	}
	if q >= 1 {
		// Convert B(1) from -1/2 to +1/2; every other index is unaffected
		// (odd Bernoulli numbers above 1 are zero).
		table[1] = big.NewRat(1, 2)
	}
	for m, b := range table {
		mc.store.Set(fmt.Sprintf("B/%d", m), b, gocache.NoExpiration)
	}
	return table[q]
}

// Faulhaber returns the polynomial F_i with F_i(n) = sum_{j=0..n} j^i,
// memoized. The returned polynomial is shared and read-only.
func (mc *MathCache) Faulhaber(i int) ratPoly {
	key := fmt.Sprintf("F/%d", i)
	if v, ok := mc.lookup(key); ok {
		return v.(ratPoly)
	}
	var p ratPoly
	if i == 0 {
		// sum_{j=0..n} 1 = n + 1
		p = ratPoly{big.NewRat(1, 1), big.NewRat(1, 1)}
	} else {
		// F_i(n) = 1/(i+1) * sum_{q=0..i} C(i+1, q) B(q) n^{i+1-q}
		p = newRatPoly(i + 1)
		inv := big.NewRat(1, int64(i)+1)
		tmp := new(big.Rat)
		for q := 0; q <= i; q++ {
			b := mc.Bernoulli(q)
			if b.Sign() == 0 {
				continue
			}
			tmp.Mul(mc.Binomial(int64(i)+1, int64(q)), b)
			tmp.Mul(tmp, inv)
			p[i+1-q].Set(tmp)
		}
	}
	mc.store.Set(key, p, gocache.NoExpiration)
	return p
}

// powerSumAP returns the polynomial in n giving the inclusive power sum
// over an arithmetic progression,
//
//	sum_{j=0..n} (sigma + j*M)^m,
//
// memoized by (sigma, M, m). Expanding the binomial and applying Faulhaber
// row by row gives
//
//	sum_{i=0..m} C(m, i) sigma^{m-i} M^i F_i(n).
func (mc *MathCache) powerSumAP(sigma, m64 int64, m int) ratPoly {
	key := fmt.Sprintf("S/%d/%d/%d", sigma, m64, m)
	if v, ok := mc.lookup(key); ok {
		return v.(ratPoly)
	}
	out := newRatPoly(m + 1)
	sigmaPow := big.NewRat(1, 1) // sigma^{m-i}, built from the i = m end
	weight := new(big.Rat)
	sigmaRat := big.NewRat(sigma, 1)
	mPow := big.NewRat(1, 1) // M^i
	mRat := big.NewRat(m64, 1)
	// Accumulate i = 0..m; powers are maintained incrementally.
	pows := make([]*big.Rat, m+1) // pows[i] = sigma^{m-i} M^i
	for i := 0; i <= m; i++ {
		pows[i] = new(big.Rat).Set(mPow)
		mPow = new(big.Rat).Mul(mPow, mRat)
	}
	for i := m; i >= 0; i-- {
		pows[i].Mul(pows[i], sigmaPow)
		sigmaPow = new(big.Rat).Mul(sigmaPow, sigmaRat)
	}
	for i := 0; i <= m; i++ {
		if pows[i].Sign() == 0 {
			continue
		}
		weight.Mul(mc.Binomial(int64(m), int64(i)), pows[i])
		out.addScaled(mc.Faulhaber(i), weight)
	}
	mc.store.Set(key, out, gocache.NoExpiration)
	return out
}
