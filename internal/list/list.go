package list

// List is a singly linked list.
//
// The zero value is a ready to use empty list.
type List[V any] struct {
	head *Element[V]
	len  int
}

// Init clears list l.
func (l *List[V]) Init() *List[V] {
	l.head = nil
	l.len = 0
	return l
}

// Len returns the number of elements in the list.
func (l *List[V]) Len() int {
	return l.len
}

// Front returns the first element of the list or nil.
func (l *List[V]) Front() *Element[V] {
	return l.head
}

// Back returns the last element of the list or nil.
// The list keeps no tail reference so Back walks the whole list.
func (l *List[V]) Back() *Element[V] {
	if l.head == nil {
		return nil
	}
	return l.At(l.len - 1)
}

// At returns the element at zero-based index i.
func (l *List[V]) At(i int) *Element[V] {
	if i < 0 || i >= l.len {
		panic("list: index out of range")
	}

	e := l.head
	for ; i > 0; i-- {
		e = e.next
	}

	return e
}

// PushFront inserts a value at the front of list l and returns the new element.
func (l *List[V]) PushFront(value V) *Element[V] {
	e := NewElement(value)
	l.PushFrontElem(e)
	return e
}

// PushFrontElem inserts a new element at the front of list l.
func (l *List[V]) PushFrontElem(e *Element[V]) {
	e.next = l.head
	l.head = e
	l.len++
}

// PushBack inserts a value at the back of list l and returns the new element.
func (l *List[V]) PushBack(value V) *Element[V] {
	e := NewElement(value)
	l.PushBackElem(e)
	return e
}

// PushBackElem inserts a new element at the back of list l.
func (l *List[V]) PushBackElem(e *Element[V]) {
	if l.head == nil {
		l.PushFrontElem(e)
		return
	}

	l.Back().link(e)
	l.len++
}

// InsertAfter inserts a value after mark and returns the new element.
func (l *List[V]) InsertAfter(value V, mark *Element[V]) *Element[V] {
	if mark == nil {
		panic("list: invalid element")
	}

	e := NewElement(value)
	mark.link(e)
	l.len++

	return e
}

// RemoveFront removes the front element and returns it.
func (l *List[V]) RemoveFront() *Element[V] {
	e := l.head
	if e == nil {
		panic("list: invalid element")
	}

	l.head = e.next
	e.next = nil
	l.len--

	return e
}

// RemoveAfter removes the element following mark and returns it.
func (l *List[V]) RemoveAfter(mark *Element[V]) *Element[V] {
	if mark == nil {
		panic("list: invalid element")
	}

	e := mark.unlink()
	l.len--

	return e
}

// Do calls function f on each element of the list, in forward order.
// If f returns false, Do stops the iteration.
// f must not change l.
func (l *List[V]) Do(f func(e *Element[V]) bool) {
	for e := l.head; e != nil; e = e.next {
		if !f(e) {
			return
		}
	}
}

// Reverse reverses the order of elements in place by relinking.
func (l *List[V]) Reverse() {
	var prev *Element[V]
	cur := l.head

	for cur != nil {
		next := cur.next
		cur.next = prev
		prev = cur
		cur = next
	}

	l.head = prev
}

// Split keeps the first n elements in l and moves the rest
// into a new list which is returned.
func (l *List[V]) Split(n int) *List[V] {
	if n < 0 || n > l.len {
		panic("list: index out of range")
	}

	rest := &List[V]{}

	if n == 0 {
		rest.head, rest.len = l.head, l.len
		l.Init()
		return rest
	}

	mark := l.At(n - 1)
	rest.head = mark.next
	rest.len = l.len - n
	mark.next = nil
	l.len = n

	return rest
}

// Riffle merges other into l by alternately taking an element of l
// and an element of other, starting with l. Elements left over in the
// longer list keep their order at the back. other is left empty.
func (l *List[V]) Riffle(other *List[V]) {
	if other == l {
		panic("list: invalid list")
	}

	if l.head == nil {
		l.head, l.len = other.head, other.len
		other.Init()
		return
	}

	a, b := l.head, other.head
	for a != nil && b != nil {
		an, bn := a.next, b.next
		a.next = b
		if an == nil {
			// The rest of other stays linked behind b.
			break
		}
		b.next = an
		a, b = an, bn
	}

	l.len += other.len
	other.Init()
}
