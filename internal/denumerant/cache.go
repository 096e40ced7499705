package denumerant

import (
	"fmt"
	"math/big"
	"sync/atomic"

	gocache "github.com/patrickmn/go-cache"
)

// MathCache memoizes the number-theoretic quantities that recur heavily
// across kernel invocations: binomial coefficients, Bernoulli numbers,
// Faulhaber polynomials and power sums over arithmetic progressions, keyed
// by their defining integers.
//
// The cache is an explicit object owned by a Builder rather than ambient
// global state, so construction stays reentrant and testable in isolation.
// Storage never expires; callers that need to bound memory call Flush.
// Cached values are shared and must be treated as read-only.
//
// A MathCache is safe for use from a single logical thread, matching the
// single-threaded construction contract.
type MathCache struct {
	store  *gocache.Cache
	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewMathCache creates an empty cache with no expiration and no janitor
// goroutine.
func NewMathCache() *MathCache {
	return &MathCache{store: gocache.New(gocache.NoExpiration, 0)}
}

// Flush discards every cached value.
func (mc *MathCache) Flush() { mc.store.Flush() }

// Hits returns the number of cache lookups that were served from storage.
func (mc *MathCache) Hits() uint64 { return mc.hits.Load() }

// Misses returns the number of cache lookups that required computation.
func (mc *MathCache) Misses() uint64 { return mc.misses.Load() }

// Size returns the number of cached entries.
func (mc *MathCache) Size() int { return mc.store.ItemCount() }

// lookup fetches a cached value, counting the hit or miss.
func (mc *MathCache) lookup(key string) (any, bool) {
	v, ok := mc.store.Get(key)
	if ok {
		mc.hits.Add(1)
	} else {
		mc.misses.Add(1)
	}
	return v, ok
}

// Binomial returns C(n, k) as a rational, memoized.
func (mc *MathCache) Binomial(n, k int64) *big.Rat {
	if k < 0 || k > n {
		return new(big.Rat)
	}
	key := fmt.Sprintf("C/%d/%d", n, k)
	if v, ok := mc.lookup(key); ok {
		return v.(*big.Rat)
	}
	b := new(big.Int).Binomial(n, k)
	r := new(big.Rat).SetInt(b)
	mc.store.Set(key, r, gocache.NoExpiration)
	return r
}
