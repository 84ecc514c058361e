package stack

import (
	"errors"
	"strconv"
	"strings"
)

var (
	ErrInvalidSize = errors.New("the stack size has to be a positive integer")
	ErrNil         = errors.New("the stack is nil")
	ErrEmpty       = errors.New("the stack is empty")
	ErrFull        = errors.New("the stack is full")
)

// Stack represents a bounded LIFO stack of natural numbers.
// Its capacity is fixed at construction.
type Stack struct {
	data []uint
	size int
}

// New creates a new empty stack holding at most size values
func New(size int) (*Stack, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	return &Stack{
		data: make([]uint, 0, size),
		size: size,
	}, nil
}

// Size returns the capacity of the stack
func (stack *Stack) Size() int {
	if stack == nil {
		return 0
	}
	return stack.size
}

// Depth returns the amount of values currently on the stack
func (stack *Stack) Depth() int {
	if stack == nil {
		return 0
	}
	return len(stack.data)
}

// IsEmpty returns whether the stack holds no values. A nil stack is empty.
func (stack *Stack) IsEmpty() bool {
	return stack.Depth() == 0
}

// IsFull returns whether the stack reached its capacity. A nil stack is never full.
func (stack *Stack) IsFull() bool {
	return stack != nil && len(stack.data) >= stack.size
}

// Push puts value on top of the stack
func (stack *Stack) Push(value uint) error {
	if stack == nil {
		return ErrNil
	}
	if stack.IsFull() {
		return ErrFull
	}
	stack.data = append(stack.data, value)
	return nil
}

// Pop removes the value on top of the stack and returns it
func (stack *Stack) Pop() (uint, error) {
	top, err := stack.Top()
	if err != nil {
		return 0, err
	}
	stack.data = stack.data[:len(stack.data)-1]
	return top, nil
}

// Top returns the value on top of the stack without removing it
func (stack *Stack) Top() (uint, error) {
	if stack == nil {
		return 0, ErrNil
	}
	if stack.IsEmpty() {
		return 0, ErrEmpty
	}
	return stack.data[len(stack.data)-1], nil
}

// Values returns a copy of the stacked values, bottom first
func (stack *Stack) Values() []uint {
	if stack == nil {
		return nil
	}
	values := make([]uint, len(stack.data))
	copy(values, stack.data)
	return values
}

// String renders the stacked values bottom first, i.e. "22 -> 5 -> 12"
func (stack *Stack) String() string {
	values := stack.Values()
	parts := make([]string, 0, len(values))
	for _, val := range values {
		parts = append(parts, strconv.FormatUint(uint64(val), 10))
	}
	return strings.Join(parts, " -> ")
}
