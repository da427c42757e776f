package primehash

import (
	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

// stringBase is the multiplier of the polynomial string fold.
const stringBase = 37

// Hasher maps a key to a bucket index in [0, capacity). Implementations
// must be deterministic: bucket placement is re-derived on every lookup,
// so two calls with the same key and capacity have to agree.
type Hasher[K comparable] interface {
	Index(key K, capacity int) int
}

// Universal holds the parameters of the universal hash
// ((A*x + B) mod M) mod capacity. M is expected to be a Mersenne prime.
type Universal struct {
	A, B, M uint64
}

// DefaultUniversal uses a=53, b=97 and M=2^19-1.
var DefaultUniversal = Universal{A: 53, B: 97, M: 1<<19 - 1}

// Index applies the universal formula to an already folded key.
// All arithmetic is uint64 and wraps on overflow.
func (u Universal) Index(x uint64, capacity int) int {
	u = u.withDefaults()
	return int((u.A*x + u.B) % u.M % uint64(capacity))
}

// withDefaults fills unset parameters from DefaultUniversal. A and M are
// never usable as zero; B = 0 is a valid offset and only defaults when the
// whole value is unset.
func (u Universal) withDefaults() Universal {
	if u == (Universal{}) {
		return DefaultUniversal
	}
	if u.A == 0 {
		u.A = DefaultUniversal.A
	}
	if u.M == 0 {
		u.M = DefaultUniversal.M
	}
	return u
}

// IntHasher hashes integer keys directly with the universal formula.
// Negative keys hash through their two's complement bits.
type IntHasher[K constraints.Integer] struct {
	U Universal
}

func (h IntHasher[K]) Index(key K, capacity int) int {
	return h.U.Index(uint64(key), capacity)
}

// StringHasher folds the key bytes into one integer with
// acc = 37*acc + b before applying the universal formula.
type StringHasher struct {
	U Universal
}

func (h StringHasher) Index(key string, capacity int) int {
	return h.U.Index(foldString(key), capacity)
}

func foldString(s string) uint64 {
	var acc uint64
	for i := 0; i < len(s); i++ {
		acc = stringBase*acc + uint64(s[i])
	}
	return acc
}

// DigestHasher folds string keys with xxhash64 instead of the polynomial.
// The fold mixes every byte into all 64 bits, which spreads long keys
// sharing a prefix better than the base-37 fold does.
type DigestHasher struct {
	U Universal
}

func (h DigestHasher) Index(key string, capacity int) int {
	return h.U.Index(xxhash.Sum64String(key), capacity)
}
