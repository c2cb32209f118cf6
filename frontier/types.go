package frontier

import (
	"errors"

	"github.com/katalvlaran/mazepath/grid"
)

// ErrInvalidFrontierOperation is returned by operations that need at least one entry.
var ErrInvalidFrontierOperation = errors.New("frontier: invalid operation on empty frontier")

// Positioned is anything stored in a frontier: it must know its grid cell.
type Positioned interface {
	Pos() grid.Position
}

// Frontier is the container contract shared by List and Heap.
type Frontier[T Positioned] interface {
	// Push adds item.
	Push(item T)
	// Pop removes and returns the next item according to the container's order.
	Pop() (T, error)
	// Contains reports whether any entry sits at p.
	Contains(p grid.Position) bool
	// Replace swaps the entry at item.Pos() for item. It reports false when no
	// such entry exists.
	Replace(item T) bool
	// Empty reports whether there are no entries.
	Empty() bool
	// Len returns the number of entries.
	Len() int
}

// Discipline selects the pop order of a List.
type Discipline int

const (
	// Queue pops the earliest pushed entry (FIFO).
	Queue Discipline = iota
	// Stack pops the most recently pushed entry (LIFO).
	Stack
)

// String returns "queue" or "stack".
func (d Discipline) String() string {
	switch d {
	case Queue:
		return "queue"
	case Stack:
		return "stack"
	default:
		return "unknown"
	}
}
