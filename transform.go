package seqlist

import "github.com/sirkon/errors"

// MoveToBack moves the value at position to the back of the list.
func (l *List[T]) MoveToBack(position int) error {
	value, err := l.Remove(position)
	if err != nil {
		return errors.Wrap(err, "move to back")
	}

	l.Add(value)

	return nil
}

// Reverse reverses the order of values in place.
func (l *List[T]) Reverse() {
	if l.chain.Len() < 2 {
		return
	}

	l.chain.Reverse()
}

// RandomPermutation reorders the list by visiting each position i in turn
// and swapping its value with the value at a position drawn from the whole list.
//
// Drawing from the whole list on every step does not produce a uniform
// distribution of permutations. Use Shuffle for a uniform shuffle.
func (l *List[T]) RandomPermutation() {
	n := l.chain.Len()
	if n < 2 {
		return
	}

	for i := 1; i <= n; i++ {
		l.swap(i, l.rand.Intn(n)+1)
	}
}

// Shuffle reorders the list uniformly at random (Fisher-Yates).
func (l *List[T]) Shuffle() {
	for i := l.chain.Len(); i > 1; i-- {
		l.swap(i, l.rand.Intn(i)+1)
	}
}

// Interleave splits the list into a front half of ceil(Len()/2) values and a
// back half of the remaining values, then rebuilds it by alternately taking
// the next value from the front half and from the back half.
//
// For example [1 2 3 4 5] becomes [1 4 2 5 3].
func (l *List[T]) Interleave() {
	n := l.chain.Len()
	if n < 3 {
		return
	}

	back := l.chain.Split((n + 1) / 2)
	l.chain.Riffle(back)
}

func (l *List[T]) swap(i, j int) {
	if i == j {
		return
	}

	a, b := l.elementAt(i), l.elementAt(j)
	a.Value, b.Value = b.Value, a.Value
}
