package threadsafe

import (
	"sync"

	"github.com/skybi/classics/internal/hashmap"
)

// Map provides a simple locked hashmap.ChainedMap in order to make it thread safe
type Map struct {
	sync.RWMutex
	chained *hashmap.ChainedMap
}

var _ hashmap.Map = (*Map)(nil)

// NewMap creates a new thread safe map with size buckets
func NewMap(size int) (*Map, error) {
	chained, err := hashmap.New(size)
	if err != nil {
		return nil, err
	}
	return Wrap(chained), nil
}

// Wrap guards an existing chained map.
// The chained map must not be used directly anymore afterwards.
func Wrap(chained *hashmap.ChainedMap) *Map {
	return &Map{
		chained: chained,
	}
}

// Buckets returns the fixed amount of buckets
func (safeMap *Map) Buckets() int {
	safeMap.RLock()
	defer safeMap.RUnlock()
	return safeMap.chained.Buckets()
}

// Len returns the amount of stored K-V-pairs
func (safeMap *Map) Len() int {
	safeMap.RLock()
	defer safeMap.RUnlock()
	return safeMap.chained.Len()
}

// Has checks if a specific key has an assigned value
func (safeMap *Map) Has(key int) bool {
	_, ok := safeMap.Lookup(key)
	return ok
}

// Lookup looks up a specific key and returns a copy of its entry and a boolean indicating if it was found.
// The copy does not observe later updates.
func (safeMap *Map) Lookup(key int) (hashmap.Entry, bool) {
	safeMap.RLock()
	defer safeMap.RUnlock()
	entry, ok := safeMap.chained.Lookup(key)
	if !ok {
		return hashmap.Entry{}, false
	}
	return *entry, true
}

// Get looks up a specific key and returns the corresponding value and a boolean indicating if it was found
func (safeMap *Map) Get(key int) (int, bool) {
	entry, ok := safeMap.Lookup(key)
	return entry.Value(), ok
}

// Insert sets the value of a specific key
func (safeMap *Map) Insert(key, value int) error {
	safeMap.Lock()
	defer safeMap.Unlock()
	return safeMap.chained.Insert(key, value)
}

// Destroy destroys the underlying map
func (safeMap *Map) Destroy() {
	safeMap.Lock()
	defer safeMap.Unlock()
	safeMap.chained.Destroy()
}

// GetUnderlyingMap returns the underlying chained map.
// This method effectively bypasses the thread safety this structure implements.
// Manual calls to Lock and Unlock while using this map are required to keep thread safety.
func (safeMap *Map) GetUnderlyingMap() *hashmap.ChainedMap {
	return safeMap.chained
}
