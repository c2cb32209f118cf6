package frontier

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/mazepath/grid"
)

// List is a slice-backed frontier. The head is index 0.
type List[T Positioned] struct {
	discipline Discipline
	items      []T
}

// NewList returns an empty List with the given pop discipline.
func NewList[T Positioned](d Discipline) *List[T] {
	return &List[T]{discipline: d}
}

// Discipline reports the pop order of l.
func (l *List[T]) Discipline() Discipline { return l.discipline }

// Push appends item at the tail.
func (l *List[T]) Push(item T) {
	l.items = append(l.items, item)
}

// Pop removes the tail (Stack) or the head (Queue).
func (l *List[T]) Pop() (T, error) {
	var zero T
	if len(l.items) == 0 {
		return zero, fmt.Errorf("%w: pop from empty %s", ErrInvalidFrontierOperation, l.discipline)
	}
	var item T
	if l.discipline == Stack {
		last := len(l.items) - 1
		item = l.items[last]
		l.items[last] = zero
		l.items = l.items[:last]
	} else {
		item = l.items[0]
		l.items[0] = zero
		l.items = l.items[1:]
	}
	return item, nil
}

// Contains scans the entries for position p. O(n).
func (l *List[T]) Contains(p grid.Position) bool {
	return l.index(p) >= 0
}

// Replace removes the entry at item.Pos() and appends item at the tail,
// which makes it the newest entry for FIFO tie-breaking.
func (l *List[T]) Replace(item T) bool {
	i := l.index(item.Pos())
	if i < 0 {
		return false
	}
	l.items = slices.Delete(l.items, i, i+1)
	l.items = append(l.items, item)
	return true
}

// ReorderByKey stable-sorts the entries by ascending key, placing the
// minimum at the head. Equal keys keep their relative order.
// Complexity: O(n log n).
func (l *List[T]) ReorderByKey(key func(T) int) error {
	if len(l.items) == 0 {
		return fmt.Errorf("%w: reorder of empty %s", ErrInvalidFrontierOperation, l.discipline)
	}
	slices.SortStableFunc(l.items, func(a, b T) int {
		return key(a) - key(b)
	})
	return nil
}

// Empty reports whether l has no entries.
func (l *List[T]) Empty() bool { return len(l.items) == 0 }

// Len returns the number of entries.
func (l *List[T]) Len() int { return len(l.items) }

// Items returns a copy of the entries from head to tail.
func (l *List[T]) Items() []T {
	return slices.Clone(l.items)
}

// index returns the position of the first entry at p, or -1.
func (l *List[T]) index(p grid.Position) int {
	for i, it := range l.items {
		if it.Pos() == p {
			return i
		}
	}
	return -1
}
