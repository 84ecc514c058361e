package hashmap

// Hash returns the bucket index of key in a map with size buckets.
// Negative keys are folded onto their magnitude, so -k and k always share a bucket.
func Hash(key, size int) int {
	if size <= 0 {
		panic(ErrInvalidSize)
	}
	// |math.MinInt| does not fit into an int; the remainder does
	rem := key % size
	if rem < 0 {
		return -rem
	}
	return rem
}
