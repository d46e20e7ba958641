/*
Package seqlist implements a position-indexed singly linked list with in-place structural transforms.

Positions are 1-based. Positional access walks the list from the front and is O(position).
*/
package seqlist

import (
	"github.com/mgnsk/seqlist/internal/list"
)

// List is an ordered sequence of values addressed by 1-based position.
//
// List is not safe for concurrent use. Callers must serialize access.
type List[T comparable] struct {
	chain list.List[T]
	rand  Rand
}

// New creates an empty list.
func New[T comparable](opts ...Option) *List[T] {
	o := newDefaultListOptions()
	for _, opt := range opts {
		opt.apply(&o)
	}

	return &List[T]{
		rand: o.rand,
	}
}

// Of creates a list holding values in order.
func Of[T comparable](values []T, opts ...Option) *List[T] {
	l := New[T](opts...)

	// Build from the back so that each value is a constant time PushFront.
	for i := len(values) - 1; i >= 0; i-- {
		l.chain.PushFront(values[i])
	}

	return l
}

// Clear removes all values from the list.
func (l *List[T]) Clear() {
	l.chain.Init()
}

// Len returns the number of values in the list.
func (l *List[T]) Len() int {
	return l.chain.Len()
}

// IsEmpty returns whether the list holds no values.
func (l *List[T]) IsEmpty() bool {
	return l.chain.Len() == 0
}

// Add appends value to the back of the list.
func (l *List[T]) Add(value T) {
	l.chain.PushBack(value)
}

// Insert inserts value so that it becomes the value at position,
// shifting the values at and after position back by one.
// Valid positions are 1 through Len()+1.
func (l *List[T]) Insert(position int, value T) error {
	if position < 1 || position > l.chain.Len()+1 {
		return outOfRange("insert", position, l.chain.Len())
	}

	if position == 1 {
		l.chain.PushFront(value)
	} else {
		l.chain.InsertAfter(value, l.elementAt(position-1))
	}

	return nil
}

// Remove removes and returns the value at position.
func (l *List[T]) Remove(position int) (T, error) {
	if err := l.checkPosition("remove", position); err != nil {
		var zero T
		return zero, err
	}

	var e *list.Element[T]
	if position == 1 {
		e = l.chain.RemoveFront()
	} else {
		e = l.chain.RemoveAfter(l.elementAt(position - 1))
	}

	return e.Value, nil
}

// Replace replaces the value at position and returns the previous value.
func (l *List[T]) Replace(position int, value T) (T, error) {
	if err := l.checkPosition("replace", position); err != nil {
		var zero T
		return zero, err
	}

	e := l.elementAt(position)
	prev := e.Value
	e.Value = value

	return prev, nil
}

// Get returns the value at position.
func (l *List[T]) Get(position int) (T, error) {
	if err := l.checkPosition("get", position); err != nil {
		var zero T
		return zero, err
	}

	return l.elementAt(position).Value, nil
}

// Contains returns whether any value in the list equals value.
func (l *List[T]) Contains(value T) bool {
	found := false
	l.chain.Do(func(e *list.Element[T]) bool {
		found = e.Value == value
		return !found
	})

	return found
}

// ToSlice returns a snapshot of the values in list order.
// The slice does not share memory with the list.
func (l *List[T]) ToSlice() []T {
	values := make([]T, 0, l.chain.Len())
	l.chain.Do(func(e *list.Element[T]) bool {
		values = append(values, e.Value)
		return true
	})

	return values
}

// checkPosition validates a position that must refer to an existing value.
func (l *List[T]) checkPosition(op string, position int) error {
	if position < 1 || position > l.chain.Len() {
		return outOfRange(op, position, l.chain.Len())
	}
	return nil
}

func (l *List[T]) elementAt(position int) *list.Element[T] {
	return l.chain.At(position - 1)
}
