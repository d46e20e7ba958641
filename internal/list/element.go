package list

// Element is a list element.
type Element[V any] struct {
	next  *Element[V]
	Value V
}

// NewElement creates a list element.
func NewElement[V any](v V) *Element[V] {
	return &Element[V]{
		Value: v,
	}
}

// Next returns the next element or nil if e is the last element in its list.
func (e *Element[V]) Next() *Element[V] {
	return e.next
}

// link inserts an element after this element.
func (e *Element[V]) link(s *Element[V]) {
	s.next = e.next
	e.next = s
}

// unlink detaches the element following this element and returns it.
func (e *Element[V]) unlink() *Element[V] {
	s := e.next
	if s == nil {
		panic("list: invalid element")
	}
	e.next = s.next
	s.next = nil
	return s
}
