package frontier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/frontier"
	"github.com/katalvlaran/mazepath/grid"
)

// item is a minimal Positioned value with a mutable-by-copy key.
type item struct {
	pos grid.Position
	key int
}

func (i item) Pos() grid.Position { return i.pos }

func at(x, key int) item { return item{pos: grid.Position{X: x}, key: key} }

func byKey(i item) int { return i.key }

var (
	_ frontier.Frontier[item] = (*frontier.List[item])(nil)
	_ frontier.Frontier[item] = (*frontier.Heap[item])(nil)
)

// popAll drains f and returns the X coordinates in pop order.
func popAll(t *testing.T, f frontier.Frontier[item]) []int {
	t.Helper()
	var xs []int
	for !f.Empty() {
		it, err := f.Pop()
		require.NoError(t, err)
		xs = append(xs, it.pos.X)
	}
	return xs
}

//----------------------------------------------------------------------------//
// List
//----------------------------------------------------------------------------//

func TestList_StackIsLIFO(t *testing.T) {
	l := frontier.NewList[item](frontier.Stack)
	for x := 1; x <= 3; x++ {
		l.Push(at(x, 0))
	}
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, []int{3, 2, 1}, popAll(t, l))
}

func TestList_QueueIsFIFO(t *testing.T) {
	l := frontier.NewList[item](frontier.Queue)
	for x := 1; x <= 3; x++ {
		l.Push(at(x, 0))
	}
	assert.Equal(t, []int{1, 2, 3}, popAll(t, l))
}

func TestList_InterleavedQueue(t *testing.T) {
	l := frontier.NewList[item](frontier.Queue)
	l.Push(at(1, 0))
	l.Push(at(2, 0))
	first, err := l.Pop()
	require.NoError(t, err)
	l.Push(at(3, 0))
	assert.Equal(t, 1, first.pos.X)
	assert.Equal(t, []int{2, 3}, popAll(t, l))
}

func TestList_EmptyOperations(t *testing.T) {
	for _, d := range []frontier.Discipline{frontier.Stack, frontier.Queue} {
		l := frontier.NewList[item](d)
		assert.True(t, l.Empty())

		_, err := l.Pop()
		assert.ErrorIs(t, err, frontier.ErrInvalidFrontierOperation, d.String())

		err = l.ReorderByKey(byKey)
		assert.ErrorIs(t, err, frontier.ErrInvalidFrontierOperation, d.String())
	}
}

func TestList_Contains(t *testing.T) {
	l := frontier.NewList[item](frontier.Queue)
	l.Push(at(4, 0))
	assert.True(t, l.Contains(grid.Position{X: 4}))
	assert.False(t, l.Contains(grid.Position{X: 5}))

	_, err := l.Pop()
	require.NoError(t, err)
	assert.False(t, l.Contains(grid.Position{X: 4}))
}

// TestList_ReorderByKeyIsStable verifies minimum-first order with FIFO ties.
func TestList_ReorderByKeyIsStable(t *testing.T) {
	l := frontier.NewList[item](frontier.Queue)
	l.Push(at(1, 5))
	l.Push(at(2, 3))
	l.Push(at(3, 5))
	l.Push(at(4, 3))
	l.Push(at(5, 1))

	require.NoError(t, l.ReorderByKey(byKey))
	assert.Equal(t, []int{5, 2, 4, 1, 3}, popAll(t, l))
}

// TestList_ReplaceMovesToTail checks that a replaced entry loses its place among ties.
func TestList_ReplaceMovesToTail(t *testing.T) {
	l := frontier.NewList[item](frontier.Queue)
	l.Push(at(1, 4))
	l.Push(at(2, 2))
	l.Push(at(3, 2))

	assert.True(t, l.Replace(at(1, 2)))
	assert.False(t, l.Replace(at(9, 0)))
	assert.Equal(t, 3, l.Len())

	require.NoError(t, l.ReorderByKey(byKey))
	items := l.Items()
	require.Len(t, items, 3)
	assert.Equal(t, at(1, 2), items[2])
	assert.Equal(t, []int{2, 3, 1}, popAll(t, l))
}

func TestDiscipline_String(t *testing.T) {
	assert.Equal(t, "queue", frontier.Queue.String())
	assert.Equal(t, "stack", frontier.Stack.String())
	assert.Equal(t, "unknown", frontier.Discipline(7).String())
	assert.Equal(t, frontier.Stack, frontier.NewList[item](frontier.Stack).Discipline())
}

//----------------------------------------------------------------------------//
// Heap
//----------------------------------------------------------------------------//

func TestHeap_MinFirstWithFIFOTies(t *testing.T) {
	h := frontier.NewHeap(byKey)
	h.Push(at(1, 5))
	h.Push(at(2, 3))
	h.Push(at(3, 5))
	h.Push(at(4, 3))
	h.Push(at(5, 1))

	top, ok := h.Peek()
	require.True(t, ok)
	assert.Equal(t, 5, top.pos.X)
	assert.Equal(t, []int{5, 2, 4, 1, 3}, popAll(t, h))
}

func TestHeap_EmptyOperations(t *testing.T) {
	h := frontier.NewHeap(byKey)
	assert.True(t, h.Empty())
	_, err := h.Pop()
	assert.ErrorIs(t, err, frontier.ErrInvalidFrontierOperation)
	_, ok := h.Peek()
	assert.False(t, ok)
}

func TestHeap_ContainsAndGet(t *testing.T) {
	h := frontier.NewHeap(byKey)
	h.Push(at(7, 2))
	assert.True(t, h.Contains(grid.Position{X: 7}))

	got, ok := h.Get(grid.Position{X: 7})
	require.True(t, ok)
	assert.Equal(t, 2, got.key)

	_, err := h.Pop()
	require.NoError(t, err)
	assert.False(t, h.Contains(grid.Position{X: 7}))
	_, ok = h.Get(grid.Position{X: 7})
	assert.False(t, ok)
}

// TestHeap_ReplaceDecreasesKey checks decrease-key and the fresh tie sequence.
func TestHeap_ReplaceDecreasesKey(t *testing.T) {
	h := frontier.NewHeap(byKey)
	h.Push(at(1, 4))
	h.Push(at(2, 2))
	h.Push(at(3, 2))

	assert.True(t, h.Replace(at(1, 2)))
	assert.False(t, h.Replace(at(9, 0)))
	assert.Equal(t, 3, h.Len())
	assert.Equal(t, []int{2, 3, 1}, popAll(t, h))
}

func TestHeap_ReplaceToFront(t *testing.T) {
	h := frontier.NewHeap(byKey)
	for x := 1; x <= 6; x++ {
		h.Push(at(x, 10+x))
	}
	require.True(t, h.Replace(at(6, 0)))
	require.True(t, h.Replace(at(1, 20)))
	assert.Equal(t, []int{6, 2, 3, 4, 5, 1}, popAll(t, h))
}

// TestHeapMatchesReorderedQueue drives both containers with the same script
// and expects identical pop sequences.
func TestHeapMatchesReorderedQueue(t *testing.T) {
	type op struct {
		push    []item
		replace []item
	}
	script := []op{
		{push: []item{at(1, 6), at(2, 4), at(3, 6)}},
		{push: []item{at(4, 4), at(5, 8)}, replace: []item{at(3, 4)}},
		{push: []item{at(6, 4)}},
		{replace: []item{at(5, 2)}},
		{},
		{push: []item{at(7, 6)}},
	}

	l := frontier.NewList[item](frontier.Queue)
	h := frontier.NewHeap(byKey)
	var fromList, fromHeap []int
	for _, step := range script {
		for _, it := range step.push {
			l.Push(it)
			h.Push(it)
		}
		for _, it := range step.replace {
			require.True(t, l.Replace(it))
			require.True(t, h.Replace(it))
		}
		require.NoError(t, l.ReorderByKey(byKey))

		a, err := l.Pop()
		require.NoError(t, err)
		b, err := h.Pop()
		require.NoError(t, err)
		fromList = append(fromList, a.pos.X)
		fromHeap = append(fromHeap, b.pos.X)
	}
	assert.Equal(t, fromList, fromHeap)
	assert.Equal(t, popAll(t, l), popAll(t, h))
}
