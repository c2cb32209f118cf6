package grid

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Load parses maze text into a Grid.
// One trailing newline is ignored and a trailing '\r' is stripped from every
// row, so files written on any platform load the same way.
// Returns a *MalformedGridError for empty text, ragged rows, or a start or
// goal marker that is missing or duplicated.
func Load(text string) (*Grid, error) {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil, &MalformedGridError{Reason: "empty text"}
	}
	rows := strings.Split(text, "\n")
	for i := range rows {
		rows[i] = strings.TrimSuffix(rows[i], "\r")
	}

	w := len([]rune(rows[0]))
	if w == 0 {
		return nil, &MalformedGridError{Row: 1, Reason: "empty row"}
	}
	g := &Grid{
		Width:   w,
		Height:  len(rows),
		blocked: make([][]bool, len(rows)),
	}

	var starts, goals int
	for y, row := range rows {
		cells := []rune(row)
		if len(cells) != w {
			return nil, &MalformedGridError{
				Row:    y + 1,
				Reason: fmt.Sprintf("width %d differs from first row width %d", len(cells), w),
			}
		}
		g.blocked[y] = make([]bool, w)
		for x, c := range cells {
			switch c {
			case StartSymbol:
				starts++
				if starts > 1 {
					return nil, &MalformedGridError{Row: y + 1, Reason: "duplicate start marker"}
				}
				g.Start = Position{x, y}
			case GoalSymbol:
				goals++
				if goals > 1 {
					return nil, &MalformedGridError{Row: y + 1, Reason: "duplicate goal marker"}
				}
				g.Goal = Position{x, y}
			case FreeSymbol:
			default:
				g.blocked[y][x] = true
			}
		}
	}
	if starts == 0 {
		return nil, &MalformedGridError{Reason: "missing start marker"}
	}
	if goals == 0 {
		return nil, &MalformedGridError{Reason: "missing goal marker"}
	}

	return g, nil
}

// LoadReader reads all of r and parses it with Load.
func LoadReader(r io.Reader) (*Grid, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("grid: read: %w", err)
	}
	return Load(string(data))
}

// LoadFile reads the maze stored at path.
func LoadFile(path string) (*Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("grid: %w", err)
	}
	g, err := Load(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// InBounds reports whether p lies inside the grid.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Blocked reports whether p is an obstacle. Out-of-bounds positions count as blocked.
func (g *Grid) Blocked(p Position) bool {
	if !g.InBounds(p) {
		return true
	}
	return g.blocked[p.Y][p.X]
}

// Neighbors returns the free cells adjacent to p, trying Steps in order.
// Complexity: O(1).
func (g *Grid) Neighbors(p Position) []Position {
	out := make([]Position, 0, len(Steps))
	for _, d := range Steps {
		n := p.Add(d)
		if !g.Blocked(n) {
			out = append(out, n)
		}
	}
	return out
}

// FreeCells counts the cells that are not obstacles, start and goal included.
func (g *Grid) FreeCells() int {
	n := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if !g.blocked[y][x] {
				n++
			}
		}
	}
	return n
}

// String returns the canonical text of g: obstacles as '#', one row per line,
// no trailing newline. Load(g.String()) yields an equal Grid.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.Width; x++ {
			p := Position{x, y}
			switch {
			case g.blocked[y][x]:
				sb.WriteRune(ObstacleSymbol)
			case p == g.Start:
				sb.WriteRune(StartSymbol)
			case p == g.Goal:
				sb.WriteRune(GoalSymbol)
			default:
				sb.WriteRune(FreeSymbol)
			}
		}
	}
	return sb.String()
}
