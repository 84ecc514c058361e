package sorting

import "cmp"

// Bubble sorts values in place in ascending order using bubble sort.
// It stops as soon as a pass does not swap anything and returns the amount of passes it took.
func Bubble[T cmp.Ordered](values []T) int {
	passes := 0
	for i := len(values) - 1; i > 0; i-- {
		passes++
		swapped := false
		for j := 0; j < i; j++ {
			if values[j+1] < values[j] {
				values[j], values[j+1] = values[j+1], values[j]
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}
	return passes
}
