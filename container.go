package seqlist

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/containers"
	"github.com/mgnsk/seqlist/internal/list"
)

// Container returns a view of l that implements containers.Container.
// The view reads and clears l directly.
func (l *List[T]) Container() containers.Container {
	return container[T]{l: l}
}

type container[T comparable] struct {
	l *List[T]
}

var _ containers.Container = container[int]{}

func (c container[T]) Empty() bool {
	return c.l.IsEmpty()
}

func (c container[T]) Size() int {
	return c.l.Len()
}

func (c container[T]) Clear() {
	c.l.Clear()
}

func (c container[T]) Values() []interface{} {
	values := make([]interface{}, 0, c.l.Len())
	c.l.chain.Do(func(e *list.Element[T]) bool {
		values = append(values, e.Value)
		return true
	})

	return values
}

// String formats the values as { <1> <2> <3> }.
func (c container[T]) String() string {
	var b strings.Builder
	b.WriteString("{ ")
	c.l.chain.Do(func(e *list.Element[T]) bool {
		fmt.Fprintf(&b, "<%v> ", e.Value)
		return true
	})
	b.WriteString("}")

	return b.String()
}
