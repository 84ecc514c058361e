package random

import "math/rand"

// Ints generates a slice of the given length holding random integers out of [min, max)
func Ints(length, min, max int) []int {
	buf := make([]int, length)
	for i := range buf {
		buf[i] = min + rand.Intn(max-min)
	}
	return buf
}

// DistinctInts generates a slice of the given length holding pairwise distinct random integers out of [min, max).
// It panics if the range holds less than length integers.
func DistinctInts(length, min, max int) []int {
	if max-min < length {
		panic("random: range too small for the requested amount of distinct integers")
	}
	seen := make(map[int]struct{}, length)
	buf := make([]int, 0, length)
	for len(buf) < length {
		val := min + rand.Intn(max-min)
		if _, ok := seen[val]; ok {
			continue
		}
		seen[val] = struct{}{}
		buf = append(buf, val)
	}
	return buf
}
