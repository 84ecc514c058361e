package hashmap

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSize  = errors.New("the bucket count has to be a positive integer")
	ErrInvalidLimit = errors.New("the entry limit must not be negative")
	ErrAllocation   = errors.New("could not allocate a new entry")
	ErrDestroyed    = errors.New("the map has already been destroyed")
)

// AllocationError is returned by Insert when a new entry could not be allocated because the entry budget is exhausted
type AllocationError struct {
	Wrapping error
	Key      int
	Limit    int
}

func (err *AllocationError) Error() string {
	return fmt.Sprintf("%s (key %d, limit of %d entries reached)", err.Wrapping.Error(), err.Key, err.Limit)
}

func (err *AllocationError) Unwrap() error {
	return err.Wrapping
}
