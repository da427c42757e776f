package primehash

import (
	"fmt"

	"github.com/valyala/bytebufferpool"
	"golang.org/x/exp/constraints"
)

const (
	// bootstrapCapacity is the capacity whose resize target is pinned to
	// bootstrapOverride regardless of direction.
	bootstrapCapacity = 3
	bootstrapOverride = 17
)

// Entry is a key/value pair. Two entries are the same entry when their
// keys are equal.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Table is a separate-chaining hash table with a prime bucket count.
// It grows when Size exceeds Capacity/2 and shrinks when Size drops below
// ceil(Capacity/8). A Table is not safe for concurrent use.
type Table[K comparable, V any] struct {
	store  *bucketStore[K, V]
	count  int
	primes *PrimeCatalog
	hasher Hasher[K]
	opts   *options
}

// New creates a table that places keys with hasher.
func New[K comparable, V any](hasher Hasher[K], opts ...Option) *Table[K, V] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	t := &Table[K, V]{
		primes: NewPrimeCatalog(),
		hasher: hasher,
		opts:   o,
	}

	capacity := t.primes.NextPrime(o.initialCapacity)
	if capacity > o.maxCapacity {
		panic(fmt.Errorf("%w: initial capacity %d exceeds limit %d",
			ErrCapacityExhausted, capacity, o.maxCapacity))
	}
	t.store = newBucketStore[K, V](hasher, capacity)
	return t
}

// NewInt creates a table keyed by an integer type using IntHasher.
func NewInt[K constraints.Integer, V any](opts ...Option) *Table[K, V] {
	return New[K, V](IntHasher[K]{U: DefaultUniversal}, opts...)
}

// NewString creates a string-keyed table using StringHasher.
func NewString[V any](opts ...Option) *Table[string, V] {
	return New[string, V](StringHasher{U: DefaultUniversal}, opts...)
}

// Contains reports whether key is stored.
func (t *Table[K, V]) Contains(key K) bool {
	return t.store.locate(key).found()
}

// Retrieve returns a copy of the entry stored under key.
func (t *Table[K, V]) Retrieve(key K) (Entry[K, V], bool) {
	c := t.store.locate(key)
	if !c.found() {
		return Entry[K, V]{}, false
	}
	return *t.store.at(c), true
}

// Insert adds key with value. It returns false and leaves the table
// untouched if key is already present.
func (t *Table[K, V]) Insert(key K, value V) bool {
	return t.InsertEntry(Entry[K, V]{Key: key, Value: value})
}

// InsertEntry is Insert for a prepared entry.
//
// If the insert needs a resize beyond the configured maximum capacity,
// InsertEntry panics with an error wrapping ErrCapacityExhausted before
// the table is modified.
func (t *Table[K, V]) InsertEntry(e Entry[K, V]) bool {
	if t.store.locate(e.Key).found() {
		return false
	}

	grow := t.count+1 > t.Capacity()/2
	target := 0
	if grow {
		target = t.growTarget()
	}

	t.store.insertInto(e)
	t.count++

	if grow {
		t.rehash(target, "grow")
	}
	return true
}

// Update replaces the value stored under key. It returns false if key is
// absent. Update never resizes the table.
func (t *Table[K, V]) Update(key K, value V) bool {
	c := t.store.locate(key)
	if !c.found() {
		return false
	}
	t.store.at(c).Value = value
	return true
}

// Remove deletes key. It returns false if key is absent.
func (t *Table[K, V]) Remove(key K) bool {
	c := t.store.locate(key)
	if !c.found() {
		return false
	}

	t.store.removeFrom(c)
	t.count--

	if t.count < ceilDiv(t.Capacity(), 8) {
		target := t.resizeTarget(t.primes.NextPrime(ceilDiv(t.Capacity(), 2)))
		if target != t.Capacity() && target <= t.opts.maxCapacity {
			t.rehash(target, "shrink")
		}
	}
	return true
}

// Size returns the number of stored entries.
func (t *Table[K, V]) Size() int {
	return t.count
}

// Capacity returns the current bucket count. It is always prime.
func (t *Table[K, V]) Capacity() int {
	return t.store.capacity()
}

// Range calls fn for every entry in bucket order until fn returns false.
// The table must not be modified during the walk.
func (t *Table[K, V]) Range(fn func(key K, value V) bool) {
	t.store.each(func(e *Entry[K, V]) bool {
		return fn(e.Key, e.Value)
	})
}

// Keys returns the stored keys in bucket order.
func (t *Table[K, V]) Keys() []K {
	keys := make([]K, 0, t.count)
	t.store.each(func(e *Entry[K, V]) bool {
		keys = append(keys, e.Key)
		return true
	})
	return keys
}

// Stats describes the current shape of the bucket array.
type Stats struct {
	Size         int
	Capacity     int
	LoadFactor   float64
	LongestChain int
	EmptyBuckets int
}

// Stats reports load and chain lengths. The load-factor bounds only keep
// the average chain short when the hasher spreads keys uniformly;
// LongestChain shows how far a particular key set is from that.
func (t *Table[K, V]) Stats() Stats {
	s := Stats{
		Size:       t.count,
		Capacity:   t.Capacity(),
		LoadFactor: float64(t.count) / float64(t.Capacity()),
	}
	for i := range t.store.chains {
		n := t.store.chains[i].len()
		if n == 0 {
			s.EmptyBuckets++
		}
		if n > s.LongestChain {
			s.LongestChain = n
		}
	}
	return s
}

// String renders the table as primehash.Table{k:v ...} in bucket order.
func (t *Table[K, V]) String() string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	buf.WriteString("primehash.Table{")
	first := true
	t.store.each(func(e *Entry[K, V]) bool {
		if !first {
			buf.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(buf, "%v:%v", e.Key, e.Value)
		return true
	})
	buf.WriteByte('}')
	return buf.String()
}

// growTarget picks the capacity for a grow and panics if it is past the
// limit.
func (t *Table[K, V]) growTarget() int {
	capacity := t.Capacity()
	if 2*capacity > t.opts.maxCapacity && capacity != bootstrapCapacity {
		panic(fmt.Errorf("%w: cannot grow past %d buckets (limit %d)",
			ErrCapacityExhausted, capacity, t.opts.maxCapacity))
	}

	target := t.resizeTarget(t.primes.NextPrime(2 * capacity))
	if target > t.opts.maxCapacity {
		panic(fmt.Errorf("%w: cannot grow to %d buckets (limit %d)",
			ErrCapacityExhausted, target, t.opts.maxCapacity))
	}
	return target
}

// resizeTarget applies the bootstrap override: a table leaving capacity 3
// always goes to 17.
func (t *Table[K, V]) resizeTarget(want int) int {
	if t.Capacity() == bootstrapCapacity {
		return bootstrapOverride
	}
	return want
}

// rehash rebuilds the bucket array at capacity and reinserts every entry.
// Reinsertion goes straight to the new store, so no load-factor check
// runs until the rebuild is complete.
func (t *Table[K, V]) rehash(capacity int, trigger string) {
	old := t.store
	if l := t.opts.logger; l != nil {
		l.Printf("primehash: %s triggered at %d entries, %d -> %d buckets",
			trigger, t.count, old.capacity(), capacity)
	}

	next := newBucketStore[K, V](t.hasher, capacity)
	old.each(func(e *Entry[K, V]) bool {
		next.insertInto(*e)
		return true
	})
	t.store = next
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
