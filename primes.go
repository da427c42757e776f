package primehash

import (
	"math"
	"sort"
)

// seedWatermark is the bound every new catalog is pre-sieved to.
const seedWatermark = 10

// GeneratePrimesUpTo returns all primes <= n in ascending order using the
// sieve of Eratosthenes. It returns an empty slice when n < 2.
func GeneratePrimesUpTo(n int) []int {
	if n < 2 {
		return []int{}
	}

	composite := make([]bool, n+1)
	for i := 2; i*i <= n; i++ {
		if composite[i] {
			continue
		}
		for j := i * i; j <= n; j += i {
			composite[j] = true
		}
	}

	primes := make([]int, 0, primeCountEstimate(n))
	for i := 2; i <= n; i++ {
		if !composite[i] {
			primes = append(primes, i)
		}
	}
	return primes
}

// primeCountEstimate over-approximates pi(n) with 1.26*n/ln(n), which is
// above the true count for every n >= 2.
func primeCountEstimate(n int) int {
	return int(float64(n)/math.Log(float64(n))*1.26) + 1
}

// PrimeCatalog caches an ascending list of primes and answers
// smallest-prime-at-least-n queries, extending the cache on demand.
// A catalog belongs to exactly one table and is not safe for concurrent use.
type PrimeCatalog struct {
	primes    []int
	watermark int
}

// NewPrimeCatalog returns a catalog pre-sieved up to 10.
func NewPrimeCatalog() *PrimeCatalog {
	c := &PrimeCatalog{}
	c.extend(seedWatermark)
	return c
}

// NextPrime returns the smallest prime >= n.
func (c *PrimeCatalog) NextPrime(n int) int {
	if n > c.watermark {
		c.extend(2 * n)
	}
	if n < 2 {
		return 2
	}

	i := sort.SearchInts(c.primes, n)
	if i == len(c.primes) {
		// n is under the watermark but past the largest cached prime.
		c.extend(2 * n)
		i = sort.SearchInts(c.primes, n)
	}
	return c.primes[i]
}

// Watermark reports the bound the cache was last sieved to.
func (c *PrimeCatalog) Watermark() int {
	return c.watermark
}

// Primes returns a copy of the cached primes.
func (c *PrimeCatalog) Primes() []int {
	out := make([]int, len(c.primes))
	copy(out, c.primes)
	return out
}

// extend regenerates the cache from scratch; the sieve is a pure function
// of the bound so there is nothing to patch incrementally.
func (c *PrimeCatalog) extend(n int) {
	c.primes = GeneratePrimesUpTo(n)
	c.watermark = n
}
