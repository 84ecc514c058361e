package hashmap

// ChainedMap implements the Map interface using a fixed amount of buckets.
// Every bucket owns a chain of entries sharing the same hash, ordered by their insertion.
// The bucket count is fixed at construction; the map never resizes.
//
// A ChainedMap is not safe for concurrent use, see threadsafe.Map for a locked variant.
type ChainedMap struct {
	buckets [][]*Entry
	size    int
	alloc   allocator
}

var _ Map = (*ChainedMap)(nil)

// New creates a new chained map with size buckets and no limit on the amount of entries
func New(size int) (*ChainedMap, error) {
	return NewLimited(size, 0)
}

// NewLimited creates a new chained map with size buckets that holds at most maxEntries entries.
// Inserting a new key beyond that limit fails with an AllocationError. A maxEntries of 0 disables the limit.
func NewLimited(size, maxEntries int) (*ChainedMap, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	if maxEntries < 0 {
		return nil, ErrInvalidLimit
	}
	return &ChainedMap{
		buckets: make([][]*Entry, size),
		size:    size,
		alloc:   allocator{limit: maxEntries},
	}, nil
}

// Buckets returns the fixed amount of buckets
func (obj *ChainedMap) Buckets() int {
	if obj == nil {
		return 0
	}
	return obj.size
}

// Len returns the amount of stored key-value pairs
func (obj *ChainedMap) Len() int {
	if obj == nil {
		return 0
	}
	return obj.alloc.live
}

// IsDestroyed returns whether Destroy was called on this map
func (obj *ChainedMap) IsDestroyed() bool {
	return obj == nil || obj.buckets == nil
}

// Insert assigns value to key.
// If the key already exists, its entry is updated in place and the chain stays untouched.
// Otherwise, a new entry is appended to the tail of the key's chain.
// If the new entry can not be allocated, the map is left exactly as it was.
func (obj *ChainedMap) Insert(key, value int) error {
	if obj.IsDestroyed() {
		return ErrDestroyed
	}

	h := Hash(key, obj.size)
	for _, entry := range obj.buckets[h] {
		if entry.key == key {
			entry.value = value
			return nil
		}
	}

	entry, err := obj.alloc.allocate(key, value)
	if err != nil {
		return err
	}
	obj.buckets[h] = append(obj.buckets[h], entry)
	return nil
}

// Lookup returns the entry of the given key and a boolean indicating whether it exists.
// The returned entry is borrowed from the map and reflects later updates of its value.
func (obj *ChainedMap) Lookup(key int) (*Entry, bool) {
	if obj.IsDestroyed() {
		return nil, false
	}
	for _, entry := range obj.buckets[Hash(key, obj.size)] {
		if entry.key == key {
			return entry, true
		}
	}
	return nil, false
}

// Has returns whether a value is assigned to the given key
func (obj *ChainedMap) Has(key int) bool {
	_, ok := obj.Lookup(key)
	return ok
}

// Get returns the value assigned to the given key and a boolean indicating whether the key exists at all
func (obj *ChainedMap) Get(key int) (int, bool) {
	entry, ok := obj.Lookup(key)
	if !ok {
		return 0, false
	}
	return entry.value, true
}

// Chain returns a copy of the entries of a single bucket, head first.
// Out of range buckets yield an empty chain.
func (obj *ChainedMap) Chain(bucket int) []Entry {
	if obj.IsDestroyed() || bucket < 0 || bucket >= obj.size {
		return nil
	}
	chain := make([]Entry, 0, len(obj.buckets[bucket]))
	for _, entry := range obj.buckets[bucket] {
		chain = append(chain, *entry)
	}
	return chain
}

// Range calls action for every entry, walking the buckets in index order and each chain from its head.
// Iteration stops as soon as action returns false.
func (obj *ChainedMap) Range(action func(entry *Entry) bool) {
	if obj.IsDestroyed() {
		return
	}
	for _, chain := range obj.buckets {
		for _, entry := range chain {
			if !action(entry) {
				return
			}
		}
	}
}

// Destroy releases every entry of every chain and the bucket array itself.
// Afterwards the map is terminally destroyed: Insert fails with ErrDestroyed and Lookup finds nothing.
// Destroying a nil or already destroyed map is a no-op.
func (obj *ChainedMap) Destroy() {
	if obj.IsDestroyed() {
		return
	}
	for i, chain := range obj.buckets {
		obj.alloc.release(chain)
		obj.buckets[i] = nil
	}
	obj.buckets = nil
}
