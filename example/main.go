package main

import (
	"errors"
	"fmt"

	"github.com/mgnsk/seqlist"
)

func main() {
	l := seqlist.Of([]int{1, 2, 3, 4, 5})

	l.Interleave()
	fmt.Println(l.Container())

	if err := l.MoveToBack(1); err != nil {
		panic(err)
	}
	fmt.Println(l.Container())

	l.Reverse()
	fmt.Println(l.ToSlice())

	// Positions are 1-based.
	if _, err := l.Get(0); errors.Is(err, seqlist.ErrOutOfRange) {
		fmt.Println(err)
	}
}
