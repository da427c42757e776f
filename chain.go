package primehash

// cursor addresses one entry inside the bucket store.
type cursor struct {
	bucket int
	slot   int
}

// absent is the cursor returned when a key is not stored.
var absent = cursor{bucket: -1, slot: -1}

func (c cursor) found() bool {
	return c.slot >= 0
}

// chain is the sequence of entries owned by one bucket. Order carries no
// meaning, so removal swaps the last entry into the hole.
type chain[K comparable, V any] struct {
	entries []Entry[K, V]
}

// find returns the slot holding key, or -1.
func (c *chain[K, V]) find(key K) int {
	for i := range c.entries {
		if c.entries[i].Key == key {
			return i
		}
	}
	return -1
}

func (c *chain[K, V]) append(e Entry[K, V]) {
	c.entries = append(c.entries, e)
}

func (c *chain[K, V]) erase(slot int) {
	last := len(c.entries) - 1
	c.entries[slot] = c.entries[last]
	var zero Entry[K, V]
	c.entries[last] = zero
	c.entries = c.entries[:last]
	if last == 0 {
		c.entries = nil
	}
}

func (c *chain[K, V]) len() int {
	return len(c.entries)
}
