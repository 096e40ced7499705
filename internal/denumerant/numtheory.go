package denumerant

import (
	"math"
	"math/big"
	"math/bits"
)

// gcd returns the greatest common divisor of two positive integers.
func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// lcm returns the least common multiple of two positive integers.
func lcm(a, b int64) int64 {
	return a / gcd(a, b) * b
}

// egcd returns (g, x, y) with a*x + b*y = g = gcd(a, b), a, b > 0.
func egcd(a, b int64) (int64, int64, int64) {
	if b == 0 {
		return a, 1, 0
	}
	g, x, y := egcd(b, a%b)
	return g, y, x - (a/b)*y
}

// crt returns the unique x in [0, lcm(p, q)) with x ≡ rp (mod p) and
// x ≡ rq (mod q). The system must be consistent: rp ≡ rq (mod gcd(p, q)).
func crt(rp, p, rq, q int64) int64 {
	g, _, _ := egcd(p, q)
	if (rp-rq)%g != 0 {
		panic("denumerant: inconsistent congruence system")
	}
	pp, qq := p/g, q/g
	// Solve pp*k ≡ (rq-rp)/g (mod qq); pp is invertible mod qq.
	_, inv, _ := egcd(mod64(pp, qq), qq)
	delta := (rq - rp) / g
	k := mulmod(mod64(delta, qq), mod64(inv, qq), qq)
	m := p / g * q
	return mod64(rp+p*k, m)
}

// mulmod returns a*b mod m for 0 <= a, b < m without intermediate overflow.
func mulmod(a, b, m int64) int64 {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi == 0 && lo <= math.MaxInt64 {
		return int64(lo) % m
	}
	p := new(big.Int).Mul(big.NewInt(a), big.NewInt(b))
	return p.Mod(p, big.NewInt(m)).Int64()
}

// mod64 returns a mod m in [0, m).
func mod64(a, m int64) int64 {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
