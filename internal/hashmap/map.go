package hashmap

// Map represents the interface every integer map provided by this module has to implement
type Map interface {
	// Buckets returns the fixed amount of buckets
	Buckets() int

	// Len returns the amount of stored key-value pairs
	Len() int

	// Has returns whether a value is assigned to the given key
	Has(key int) bool

	// Get returns the value assigned to the given key and a boolean indicating whether the key exists at all
	Get(key int) (int, bool)

	// Insert assigns value to key, overwriting an existing value in place
	Insert(key, value int) error

	// Destroy releases every entry and the bucket array. Calling it more than once is a no-op.
	Destroy()
}
