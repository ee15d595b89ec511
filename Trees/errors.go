package Trees

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is matched by every *InvalidArgumentError through errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrNotFound is matched by every *NotFoundError through errors.Is.
var ErrNotFound = errors.New("node not found")

// InvalidArgumentError is returned when Op was given a nil node.
type InvalidArgumentError struct {
	Op string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s: nil node", e.Op)
}

func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// NotFoundError is returned by Remove when the node isn't part of the tree.
type NotFoundError struct {
	Op string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: node is not in the tree", e.Op)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// InvalidSliceError describes where a slice given to From isn't strictly ascending.
// Prev and Next are the offending pair and At is the index of Next.
type InvalidSliceError[E any] struct {
	Prev, Next E
	At         int
}

func (e InvalidSliceError[E]) Error() string {
	return fmt.Sprintf("slice not strictly ascending at %d: %v then %v", e.At, e.Prev, e.Next)
}
