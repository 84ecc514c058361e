package linkedlist

import (
	"strconv"
	"strings"
)

type node struct {
	value int
	next  *node
}

// List represents a singly linked list of integers that grows at its tail.
// The zero value is an empty list ready to use.
type List struct {
	head *node
	tail *node
	len  int
}

// New creates a new empty list
func New() *List {
	return new(List)
}

// Append adds value to the end of the list
func (list *List) Append(value int) {
	cell := &node{value: value}
	if list.tail == nil {
		list.head = cell
	} else {
		list.tail.next = cell
	}
	list.tail = cell
	list.len++
}

// Len returns the amount of values in the list
func (list *List) Len() int {
	return list.len
}

// Head returns the first value and a boolean indicating whether the list holds any value
func (list *List) Head() (int, bool) {
	if list.head == nil {
		return 0, false
	}
	return list.head.value, true
}

// Tail returns the last value and a boolean indicating whether the list holds any value
func (list *List) Tail() (int, bool) {
	if list.tail == nil {
		return 0, false
	}
	return list.tail.value, true
}

// Values returns the values of the list from head to tail
func (list *List) Values() []int {
	values := make([]int, 0, list.len)
	for cell := list.head; cell != nil; cell = cell.next {
		values = append(values, cell.value)
	}
	return values
}

// Clear unlinks every cell of the list
func (list *List) Clear() {
	for cell := list.head; cell != nil; {
		next := cell.next
		cell.next = nil
		cell = next
	}
	list.head = nil
	list.tail = nil
	list.len = 0
}

// String renders the list from head to tail, i.e. "12 -> 23 -> 16"
func (list *List) String() string {
	var builder strings.Builder
	for cell := list.head; cell != nil; cell = cell.next {
		builder.WriteString(strconv.Itoa(cell.value))
		if cell.next != nil {
			builder.WriteString(" -> ")
		}
	}
	return builder.String()
}
