// Package term paints a solved maze onto a tcell screen.
//
// Cells are drawn with the same characters as render.Render. Expanded cells
// that are not on the path get a background shaded along a gradient by
// expansion order, so the shape of the search is visible: BFS spreads in
// rings, DFS snakes, A* leans towards the goal. A status line below the maze
// names the algorithm and its counts.
package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/render"
	"github.com/katalvlaran/mazepath/search"
)

// Palette holds the styles used by Paint.
type Palette struct {
	Wall, Start, Goal, Path, Free, Status tcell.Style

	// ExploredFrom and ExploredTo are the gradient ends for the first and
	// last expanded cell.
	ExploredFrom, ExploredTo colorful.Color
}

// DefaultPalette returns a dark-background palette.
func DefaultPalette() Palette {
	base := tcell.StyleDefault.Background(tcell.ColorBlack)
	return Palette{
		Wall:         base.Foreground(tcell.ColorGray),
		Start:        base.Foreground(tcell.ColorLime).Bold(true),
		Goal:         base.Foreground(tcell.ColorRed).Bold(true),
		Path:         base.Foreground(tcell.ColorYellow).Bold(true),
		Free:         base,
		Status:       tcell.StyleDefault.Reverse(true),
		ExploredFrom: colorful.Color{R: 0.12, G: 0.23, B: 0.45},
		ExploredTo:   colorful.Color{R: 0.55, G: 0.16, B: 0.40},
	}
}

// ExploredColor returns the background for the i-th of n expanded cells.
// Colours are blended in CIE-L*a*b*.
func ExploredColor(p Palette, i, n int) tcell.Color {
	t := 0.0
	if n > 1 {
		t = float64(i) / float64(n-1)
	}
	r, g, b := p.ExploredFrom.BlendLab(p.ExploredTo, t).Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Paint draws g, the path and exploration of res, and a status line onto s,
// starting at the top-left corner. res may be nil to draw the bare maze.
// Cells outside the screen are skipped. Paint does not call Show.
func Paint(s tcell.Screen, g *grid.Grid, res *search.Result, p Palette) {
	s.Clear()

	onPath := make(map[grid.Position]struct{})
	explored := make(map[grid.Position]int)
	if res != nil {
		for _, c := range res.Path {
			onPath[c] = struct{}{}
		}
		for i, c := range res.Order {
			explored[c] = i
		}
	}

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := grid.Position{X: x, Y: y}
			sym := render.Symbol(g, c, onPath)
			s.SetContent(x, y, sym, nil, cellStyle(p, sym, c, explored, res))
		}
	}

	if res != nil {
		drawText(s, 0, g.Height+1, p.Status, Status(res))
	}
}

// Status summarises res on one line.
func Status(res *search.Result) string {
	if !res.Found {
		return fmt.Sprintf(" %s: no solution, explored %d ", res.Algorithm, res.Explored)
	}
	return fmt.Sprintf(" %s: %d steps, explored %d ", res.Algorithm, len(res.Path), res.Explored)
}

// Run paints the maze on an initialised screen and redraws on resize until
// the user presses q, Escape or Enter. The caller owns Init and Fini.
func Run(s tcell.Screen, g *grid.Grid, res *search.Result, p Palette) {
	Paint(s, g, res, p)
	s.Show()
	for {
		switch ev := s.PollEvent().(type) {
		case *tcell.EventResize:
			s.Sync()
			Paint(s, g, res, p)
			s.Show()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyEnter || ev.Rune() == 'q' {
				return
			}
		case nil:
			// screen finalised
			return
		}
	}
}

func cellStyle(p Palette, sym rune, c grid.Position, explored map[grid.Position]int, res *search.Result) tcell.Style {
	switch sym {
	case grid.ObstacleSymbol:
		return p.Wall
	case grid.StartSymbol:
		return p.Start
	case grid.GoalSymbol:
		return p.Goal
	case render.PathSymbol:
		return p.Path
	}
	if i, ok := explored[c]; ok {
		return p.Free.Background(ExploredColor(p, i, len(res.Order)))
	}
	return p.Free
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}
