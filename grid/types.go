package grid

import (
	"errors"
	"fmt"
)

// ErrMalformedGrid indicates that the maze text could not be turned into a Grid.
var ErrMalformedGrid = errors.New("grid: malformed grid")

// MalformedGridError describes why a maze text was rejected.
// Row is 1-based; it is 0 when the problem is not tied to a single row.
type MalformedGridError struct {
	Row    int
	Reason string
}

// Error implements the error interface.
func (e *MalformedGridError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("%v: row %d: %s", ErrMalformedGrid, e.Row, e.Reason)
	}
	return fmt.Sprintf("%v: %s", ErrMalformedGrid, e.Reason)
}

// Unwrap lets errors.Is match ErrMalformedGrid.
func (e *MalformedGridError) Unwrap() error { return ErrMalformedGrid }

// Maze symbols.
const (
	StartSymbol    = 'S'
	GoalSymbol     = 'G'
	FreeSymbol     = ' '
	ObstacleSymbol = '#'
)

// Position is a cell coordinate. X grows to the right, Y grows downwards.
type Position struct {
	X, Y int
}

// Add returns p shifted by d.
func (p Position) Add(d Position) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// String formats p as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Steps are the unit moves tried by Neighbors, in order.
var Steps = [4]Position{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

// Grid is an immutable maze. blocked[y][x] reports an obstacle at (x,y).
type Grid struct {
	Width, Height int
	Start, Goal   Position
	blocked       [][]bool
}
