package seqlist

import "github.com/sirkon/errors"

// ErrOutOfRange indicates a position outside the valid range of an operation.
const ErrOutOfRange errors.Const = "position out of range"

func outOfRange(op string, position, length int) error {
	return errors.Wrap(ErrOutOfRange, op).Int("position", position).Int("length", length)
}
