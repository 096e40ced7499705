package denumerant

import (
	"context"
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// The central contract, checked over random restriction lists: every
// evaluation is a nonnegative integer equal to the brute-force count, and
// shuffling the list does not change any evaluation.
func TestBuild_RandomListsAgreeWithBruteForce(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 40

	properties := gopter.NewProperties(parameters)

	genParts := gen.SliceOfN(3, gen.Int64Range(1, 12)).
		SuchThat(func(parts []int64) bool { return len(parts) > 0 })

	properties.Property("evaluations equal the brute-force counts",
		prop.ForAll(func(parts []int64) bool {
			b := NewBuilder()
			d, err := b.Build(context.Background(), parts)
			if err != nil {
				return false
			}
			const tMax = 80
			want := bruteCounts(parts, tMax)
			for tv := int64(0); tv <= tMax; tv++ {
				got, err := d.Evaluate(big.NewInt(tv))
				if err != nil || want[tv].Cmp(got) != 0 {
					return false
				}
			}
			return true
		}, genParts))

	properties.Property("reversing the list changes nothing",
		prop.ForAll(func(parts []int64) bool {
			rev := make([]int64, len(parts))
			for i, p := range parts {
				rev[len(parts)-1-i] = p
			}
			b := NewBuilder()
			d1, err1 := b.Build(context.Background(), parts)
			d2, err2 := b.Build(context.Background(), rev)
			if err1 != nil || err2 != nil {
				return false
			}
			for tv := int64(0); tv <= 60; tv++ {
				v1, err1 := d1.Evaluate(big.NewInt(tv))
				v2, err2 := d2.Evaluate(big.NewInt(tv))
				if err1 != nil || err2 != nil || v1.Cmp(v2) != 0 {
					return false
				}
			}
			return true
		}, genParts))

	properties.TestingRun(t)
}
