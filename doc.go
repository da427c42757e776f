/*
Package primehash provides an in-memory hash table using separate chaining,
prime bucket counts and a universal hash family.

Table maps keys to values with amortized constant-time operations. It grows
and shrinks its bucket array automatically and keeps the bucket count prime
so that the universal hash spreads keys evenly across buckets.

Basic usage:

	import "github.com/theflywheel/primehash"

	// String keys, polynomial fold + universal hash
	t := primehash.NewString[int]()

	t.Insert("apple", 1)
	t.Insert("banana", 2)

	if e, ok := t.Retrieve("apple"); ok {
		fmt.Println(e.Key, e.Value)
	}

	t.Remove("apple")
	fmt.Println(t.Size(), t.Capacity())

Any comparable key type works once it has a Hasher:

	t := primehash.New[Point, string](pointHasher{})

Features:

  - Separate chaining, one slice-backed chain per bucket
  - Prime capacities chosen from a lazily sieved PrimeCatalog
  - Universal hashing ((53*x + 97) mod (2^19-1)) mod capacity
  - Integer, polynomial string and xxhash string strategies
  - Grows when size exceeds capacity/2, shrinks below ceil(capacity/8)
  - Optional resize tracing via WithLogger

Implementation Details:

Every operation hashes the key against the current capacity, scans that one
chain and, for inserts and removes, checks the load-factor thresholds. A
grow rehashes into nextPrime(2*capacity) buckets; a shrink rehashes into
nextPrime(ceil(capacity/2)). A table leaving its bootstrap capacity of 3 is
always rebuilt with 17 buckets. Rehashing allocates a new bucket array and
reinserts every entry against the new capacity, since bucket placement
depends on it.

The thresholds bound entries per bucket, not entries per chain. Short chains
follow only if the hasher spreads the key set uniformly; Stats exposes the
longest chain for a given workload. The universal modulus also caps the
number of distinct indices at 2^19-1, so tables larger than that share
buckets.

Duplicate inserts and missing keys are reported with booleans. Growing past
WithMaxCapacity is fatal: Insert panics with an error wrapping
ErrCapacityExhausted before touching the table.

A Table is not safe for concurrent use; callers that share one must
serialize access themselves.
*/
package primehash
