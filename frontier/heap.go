package frontier

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/mazepath/grid"
)

// Heap is a min-heap frontier ordered by key, then by insertion sequence.
// It also indexes entries by position, so Contains and Replace are O(1) and
// O(log n) respectively.
type Heap[T Positioned] struct {
	key   func(T) int
	pq    entryPQ[T]
	byPos map[grid.Position]*entry[T]
	seq   uint64
}

// NewHeap returns an empty Heap ordered by key. The key of an item must not
// change while the item is stored; use Replace to change it.
func NewHeap[T Positioned](key func(T) int) *Heap[T] {
	return &Heap[T]{
		key:   key,
		byPos: make(map[grid.Position]*entry[T]),
	}
}

// Push inserts item.
// Complexity: O(log n).
func (h *Heap[T]) Push(item T) {
	e := &entry[T]{item: item, key: h.key(item), seq: h.seq}
	h.seq++
	heap.Push(&h.pq, e)
	h.byPos[item.Pos()] = e
}

// Pop removes the entry with the smallest key; ties go to the oldest entry.
// Complexity: O(log n).
func (h *Heap[T]) Pop() (T, error) {
	if h.pq.Len() == 0 {
		var zero T
		return zero, fmt.Errorf("%w: pop from empty heap", ErrInvalidFrontierOperation)
	}
	e := heap.Pop(&h.pq).(*entry[T])
	if h.byPos[e.item.Pos()] == e {
		delete(h.byPos, e.item.Pos())
	}
	return e.item, nil
}

// Peek returns the entry Pop would return without removing it.
func (h *Heap[T]) Peek() (T, bool) {
	if h.pq.Len() == 0 {
		var zero T
		return zero, false
	}
	return h.pq[0].item, true
}

// Contains reports whether an entry sits at p. O(1).
func (h *Heap[T]) Contains(p grid.Position) bool {
	_, ok := h.byPos[p]
	return ok
}

// Get returns the entry at p.
func (h *Heap[T]) Get(p grid.Position) (T, bool) {
	e, ok := h.byPos[p]
	if !ok {
		var zero T
		return zero, false
	}
	return e.item, true
}

// Replace swaps the entry at item.Pos() for item in place (decrease-key or
// increase-key) and gives it a fresh sequence number.
// Complexity: O(log n).
func (h *Heap[T]) Replace(item T) bool {
	e, ok := h.byPos[item.Pos()]
	if !ok {
		return false
	}
	e.item = item
	e.key = h.key(item)
	e.seq = h.seq
	h.seq++
	heap.Fix(&h.pq, e.index)
	return true
}

// Empty reports whether h has no entries.
func (h *Heap[T]) Empty() bool { return h.pq.Len() == 0 }

// Len returns the number of entries.
func (h *Heap[T]) Len() int { return h.pq.Len() }

// entry is one heap slot. index is maintained by Swap for heap.Fix.
type entry[T Positioned] struct {
	item  T
	key   int
	seq   uint64
	index int
}

// entryPQ implements heap.Interface over *entry.
type entryPQ[T Positioned] []*entry[T]

func (pq entryPQ[T]) Len() int { return len(pq) }

func (pq entryPQ[T]) Less(i, j int) bool {
	if pq[i].key != pq[j].key {
		return pq[i].key < pq[j].key
	}
	return pq[i].seq < pq[j].seq
}

func (pq entryPQ[T]) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *entryPQ[T]) Push(x any) {
	e := x.(*entry[T])
	e.index = len(*pq)
	*pq = append(*pq, e)
}

func (pq *entryPQ[T]) Pop() any {
	old := *pq
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*pq = old[:n-1]
	return e
}
