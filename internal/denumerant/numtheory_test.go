package denumerant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGcdLcm(t *testing.T) {
	tests := []struct {
		a, b, g, l int64
	}{
		{4, 6, 2, 12},
		{7, 13, 1, 91},
		{10, 10, 10, 10},
		{1, 9, 1, 9},
		{18, 24, 6, 72},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.g, gcd(tt.a, tt.b), "gcd(%d,%d)", tt.a, tt.b)
		assert.Equal(t, tt.l, lcm(tt.a, tt.b), "lcm(%d,%d)", tt.a, tt.b)
	}
}

func TestCrt(t *testing.T) {
	cases := []struct {
		p, a int64
	}{
		{6, 4}, {9, 6}, {5, 7}, {12, 18}, {30, 42}, {1, 5}, {5, 1},
	}
	for _, tc := range cases {
		g := gcd(tc.a, tc.p)
		l := lcm(tc.a, tc.p)
		for x := int64(0); x < l; x++ {
			got := crt(x%tc.p, tc.p, x%tc.a, tc.a)
			require.Equal(t, x, got, "crt must invert residue splitting for x=%d mod (%d,%d)", x, tc.p, tc.a)
		}
		_ = g
	}
}

func TestCrt_LargeModuli(t *testing.T) {
	// Coprime moduli near 2^31 force the 128-bit multiplication path.
	p := int64(2147483647) // prime
	a := int64(2147483629) // prime
	x := int64(987654321098765432)
	l := lcm(p, a)
	got := crt(mod64(x, p), p, mod64(x, a), a)
	assert.Equal(t, mod64(x, l), got)
}
