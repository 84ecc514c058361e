package hashmap

import (
	"errors"
	"testing"

	"github.com/skybi/classics/internal/random"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsInvalidArguments(t *testing.T) {
	for _, size := range []int{0, -1, -20} {
		m, err := New(size)
		require.ErrorIs(t, err, ErrInvalidSize)
		require.Nil(t, m)
	}

	m, err := NewLimited(10, -1)
	require.ErrorIs(t, err, ErrInvalidLimit)
	require.Nil(t, m)
}

func TestNewCreatesEmptyBuckets(t *testing.T) {
	m, err := New(20)
	require.NoError(t, err)
	require.Equal(t, 20, m.Buckets())
	require.Equal(t, 0, m.Len())
	for i := 0; i < 20; i++ {
		require.Empty(t, m.Chain(i))
	}
}

func TestInsertThenLookup(t *testing.T) {
	m, err := New(16)
	require.NoError(t, err)

	keys := random.DistinctInts(200, -10_000, 10_000)
	for i, key := range keys {
		require.NoError(t, m.Insert(key, i))
	}
	require.Equal(t, len(keys), m.Len())

	for i, key := range keys {
		entry, ok := m.Lookup(key)
		require.True(t, ok)
		require.Equal(t, key, entry.Key())
		require.Equal(t, i, entry.Value())
	}
}

func TestInsertUpdatesInPlace(t *testing.T) {
	m, err := New(4)
	require.NoError(t, err)
	require.NoError(t, m.Insert(1, 10))
	require.NoError(t, m.Insert(5, 50))

	borrowed, ok := m.Lookup(1)
	require.True(t, ok)

	require.NoError(t, m.Insert(1, 11))
	require.Equal(t, 2, m.Len())
	require.Len(t, m.Chain(1), 2)
	require.Equal(t, []Entry{{key: 1, value: 11}, {key: 5, value: 50}}, m.Chain(1))

	// the borrowed entry is the one stored in the map
	require.Equal(t, 11, borrowed.Value())

	val, ok := m.Get(1)
	require.True(t, ok)
	require.Equal(t, 11, val)
}

func TestLookupAbsence(t *testing.T) {
	m, err := New(8)
	require.NoError(t, err)

	entry, ok := m.Lookup(42)
	require.False(t, ok)
	require.Nil(t, entry)

	// same bucket, different key
	require.NoError(t, m.Insert(2, 0))
	entry, ok = m.Lookup(10)
	require.False(t, ok)
	require.Nil(t, entry)

	// a stored zero value is not the same as absence
	val, ok := m.Get(2)
	require.True(t, ok)
	require.Equal(t, 0, val)
	require.False(t, m.Has(10))
	require.True(t, m.Has(2))
}

func TestChainKeepsInsertionOrder(t *testing.T) {
	m, err := New(10)
	require.NoError(t, err)

	keys := []int{7, 17, -27, 37, 27}
	for i, key := range keys {
		require.NoError(t, m.Insert(key, i))
	}

	chain := m.Chain(7)
	require.Len(t, chain, len(keys))
	for i, entry := range chain {
		require.Equal(t, keys[i], entry.Key())
	}

	require.Nil(t, m.Chain(-1))
	require.Nil(t, m.Chain(10))
}

func TestNegativeAndPositiveKeysCollide(t *testing.T) {
	m, err := New(20)
	require.NoError(t, err)
	require.NoError(t, m.Insert(5, 1))
	require.NoError(t, m.Insert(-5, 2))

	require.Equal(t, []Entry{{key: 5, value: 1}, {key: -5, value: 2}}, m.Chain(5))
	val, _ := m.Get(-5)
	require.Equal(t, 2, val)
	val, _ = m.Get(5)
	require.Equal(t, 1, val)
}

func TestAllocationFailureLeavesMapUnchanged(t *testing.T) {
	m, err := NewLimited(3, 2)
	require.NoError(t, err)
	require.NoError(t, m.Insert(0, 0))
	require.NoError(t, m.Insert(3, 3))

	err = m.Insert(6, 6)
	require.ErrorIs(t, err, ErrAllocation)
	var allocErr *AllocationError
	require.True(t, errors.As(err, &allocErr))
	require.Equal(t, 6, allocErr.Key)
	require.Equal(t, 2, allocErr.Limit)

	require.Equal(t, 2, m.Len())
	require.Equal(t, []Entry{{key: 0, value: 0}, {key: 3, value: 3}}, m.Chain(0))
	require.False(t, m.Has(6))

	// updating an existing key needs no allocation
	require.NoError(t, m.Insert(3, 33))
	val, _ := m.Get(3)
	require.Equal(t, 33, val)
}

func TestRange(t *testing.T) {
	m, err := New(3)
	require.NoError(t, err)
	for _, key := range []int{4, 1, 2, 0, 3} {
		require.NoError(t, m.Insert(key, key*10))
	}

	var visited []int
	m.Range(func(entry *Entry) bool {
		visited = append(visited, entry.Key())
		return true
	})
	require.Equal(t, []int{0, 3, 4, 1, 2}, visited)

	visited = visited[:0]
	m.Range(func(entry *Entry) bool {
		visited = append(visited, entry.Key())
		return len(visited) < 2
	})
	require.Equal(t, []int{0, 3}, visited)
}

func TestDestroy(t *testing.T) {
	m, err := New(5)
	require.NoError(t, err)
	for _, key := range random.DistinctInts(50, 0, 1000) {
		require.NoError(t, m.Insert(key, key))
	}
	require.Equal(t, 50, m.Len())

	m.Destroy()
	require.True(t, m.IsDestroyed())
	require.Equal(t, 0, m.Len())
	require.False(t, m.Has(1))
	require.Nil(t, m.Chain(0))
	require.ErrorIs(t, m.Insert(1, 1), ErrDestroyed)

	require.NotPanics(t, m.Destroy)
}

func TestDestroyEmptyAndNil(t *testing.T) {
	m, err := New(1)
	require.NoError(t, err)
	require.NotPanics(t, m.Destroy)
	require.True(t, m.IsDestroyed())

	var absent *ChainedMap
	require.NotPanics(t, absent.Destroy)
	require.True(t, absent.IsDestroyed())
	_, ok := absent.Lookup(1)
	require.False(t, ok)
}

func TestEndToEndScenario(t *testing.T) {
	m, err := New(20)
	require.NoError(t, err)

	require.NoError(t, m.Insert(3, 2))
	require.NoError(t, m.Insert(3, 7))

	entry, ok := m.Lookup(3)
	require.True(t, ok)
	require.Equal(t, 7, entry.Value())

	_, ok = m.Lookup(99)
	require.False(t, ok)

	m.Destroy()
	require.True(t, m.IsDestroyed())
}
