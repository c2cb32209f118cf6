// Package render draws a grid and an optional solution path as text.
//
// Each cell becomes one character:
//
//	'#' obstacle    'S' start    'G' goal
//	'+' path cell (start and goal keep their own marks)
//	' ' free cell
//
// Rows end with '\n'. Render has no side effects; Write sends the same text
// to an io.Writer.
package render

import (
	"io"
	"strings"

	"github.com/katalvlaran/mazepath/grid"
)

// PathSymbol marks a solution cell.
const PathSymbol = '+'

// Render returns the text picture of g with path overlaid.
// Complexity: O(W×H + len(path)).
func Render(g *grid.Grid, path []grid.Position) string {
	onPath := make(map[grid.Position]struct{}, len(path))
	for _, p := range path {
		onPath[p] = struct{}{}
	}

	var sb strings.Builder
	sb.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			sb.WriteRune(Symbol(g, grid.Position{X: x, Y: y}, onPath))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Write renders g and path to w.
func Write(w io.Writer, g *grid.Grid, path []grid.Position) error {
	_, err := io.WriteString(w, Render(g, path))
	return err
}

// Symbol returns the character for p. Obstacles win over every other mark.
func Symbol(g *grid.Grid, p grid.Position, onPath map[grid.Position]struct{}) rune {
	switch {
	case g.Blocked(p):
		return grid.ObstacleSymbol
	case p == g.Start:
		return grid.StartSymbol
	case p == g.Goal:
		return grid.GoalSymbol
	}
	if _, ok := onPath[p]; ok {
		return PathSymbol
	}
	return grid.FreeSymbol
}
