package hashmap

// Entry represents a single key-value pair stored in a ChainedMap.
// Entries handed out by the map are borrowed: they stay owned by the map and must not be used after Destroy.
type Entry struct {
	key   int
	value int
}

// Key returns the key of the entry
func (entry *Entry) Key() int {
	return entry.key
}

// Value returns the value currently assigned to the entry's key
func (entry *Entry) Value() int {
	return entry.value
}

// allocator hands out entries and keeps track of how many of them are alive.
// A limit of 0 means that the amount of entries is unbounded.
type allocator struct {
	limit int
	live  int
}

func (alloc *allocator) allocate(key, value int) (*Entry, error) {
	if alloc.limit > 0 && alloc.live >= alloc.limit {
		return nil, &AllocationError{
			Wrapping: ErrAllocation,
			Key:      key,
			Limit:    alloc.limit,
		}
	}
	alloc.live++
	return &Entry{
		key:   key,
		value: value,
	}, nil
}

// release clears the given chain and gives its entries back
func (alloc *allocator) release(chain []*Entry) {
	for i := range chain {
		chain[i] = nil
	}
	alloc.live -= len(chain)
}
