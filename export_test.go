package primehash

import "fmt"

// CheckInvariants verifies the structural invariants of t and returns the
// first violation found.
func (t *Table[K, V]) CheckInvariants() error {
	capacity := t.Capacity()
	if !isPrime(capacity) {
		return fmt.Errorf("capacity %d is not prime", capacity)
	}

	seen := make(map[K]struct{}, t.count)
	total := 0
	for i := range t.store.chains {
		for _, e := range t.store.chains[i].entries {
			if idx := t.hasher.Index(e.Key, capacity); idx != i {
				return fmt.Errorf("key %v stored in bucket %d, hashes to %d", e.Key, i, idx)
			}
			if _, dup := seen[e.Key]; dup {
				return fmt.Errorf("key %v stored twice", e.Key)
			}
			seen[e.Key] = struct{}{}
			total++
		}
	}
	if total != t.count {
		return fmt.Errorf("count %d, chains hold %d", t.count, total)
	}
	return nil
}

// Catalog exposes the table's prime catalog.
func (t *Table[K, V]) Catalog() *PrimeCatalog {
	return t.primes
}

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	for d := 2; d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

var IsPrime = isPrime
