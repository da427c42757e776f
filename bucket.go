package primehash

// bucketStore is the bucket array: one chain per bucket, len(chains) is the
// table capacity. Chain i holds exactly the entries whose key hashes to i
// at the current capacity.
type bucketStore[K comparable, V any] struct {
	chains []chain[K, V]
	hasher Hasher[K]
}

func newBucketStore[K comparable, V any](hasher Hasher[K], capacity int) *bucketStore[K, V] {
	return &bucketStore[K, V]{
		chains: make([]chain[K, V], capacity),
		hasher: hasher,
	}
}

func (s *bucketStore[K, V]) capacity() int {
	return len(s.chains)
}

// locate finds the entry for key, stopping at the first match.
func (s *bucketStore[K, V]) locate(key K) cursor {
	idx := s.hasher.Index(key, len(s.chains))
	slot := s.chains[idx].find(key)
	if slot < 0 {
		return absent
	}
	return cursor{bucket: idx, slot: slot}
}

// insertInto appends e to the chain its key hashes to. The caller must
// have checked that the key is absent.
func (s *bucketStore[K, V]) insertInto(e Entry[K, V]) {
	idx := s.hasher.Index(e.Key, len(s.chains))
	s.chains[idx].append(e)
}

// removeFrom deletes the entry at c, which must come from locate.
func (s *bucketStore[K, V]) removeFrom(c cursor) {
	s.chains[c.bucket].erase(c.slot)
}

// at returns the stored entry behind c. The pointer is invalidated by the
// next mutation of the store.
func (s *bucketStore[K, V]) at(c cursor) *Entry[K, V] {
	return &s.chains[c.bucket].entries[c.slot]
}

// each visits every entry in bucket order until fn returns false.
func (s *bucketStore[K, V]) each(fn func(e *Entry[K, V]) bool) {
	for i := range s.chains {
		entries := s.chains[i].entries
		for j := range entries {
			if !fn(&entries[j]) {
				return
			}
		}
	}
}
