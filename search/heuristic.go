package search

import (
	"fmt"

	"github.com/katalvlaran/mazepath/grid"
)

// Heuristic estimates the number of steps from a to b.
// Informed search relies on it being admissible (never above the true
// distance) and consistent (h(n) ≤ 1 + h(n') for every move n→n').
type Heuristic func(a, b grid.Position) int

// Manhattan returns |ax−bx| + |ay−by|, exact on an empty grid with
// 4-directional unit moves.
func Manhattan(a, b grid.Position) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// Zero always returns 0. A* with Zero is uniform-cost search.
func Zero(_, _ grid.Position) int { return 0 }

// ValidateHeuristic checks h against every free cell of g:
//  1. h(goal, goal) == 0
//  2. h(p, goal) ≥ 0
//  3. h(p, goal) ≤ 1 + h(n, goal) for every neighbour n of p
//
// Together these imply admissibility. Returns ErrInconsistentHeuristic
// wrapped with the first offending cell.
// Complexity: O(W×H).
func ValidateHeuristic(g *grid.Grid, h Heuristic) error {
	if g == nil {
		return ErrGridNil
	}
	if h == nil {
		return fmt.Errorf("%w: heuristic is nil", ErrOptionViolation)
	}
	if v := h(g.Goal, g.Goal); v != 0 {
		return fmt.Errorf("%w: h(goal) = %d, want 0", ErrInconsistentHeuristic, v)
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := grid.Position{X: x, Y: y}
			if g.Blocked(p) {
				continue
			}
			hp := h(p, g.Goal)
			if hp < 0 {
				return fmt.Errorf("%w: h%v = %d is negative", ErrInconsistentHeuristic, p, hp)
			}
			for _, n := range g.Neighbors(p) {
				if hn := h(n, g.Goal); hp > 1+hn {
					return fmt.Errorf("%w: h%v = %d exceeds 1 + h%v = %d",
						ErrInconsistentHeuristic, p, hp, n, 1+hn)
				}
			}
		}
	}
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
