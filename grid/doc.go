// Package grid parses a textual maze into an immutable 2D obstacle map
// with a single start cell and a single goal cell.
//
// What:
//
//   - Grid wraps a rectangular block of text, one row per line.
//   - 'S' marks the start, 'G' marks the goal, ' ' is free space and any
//     other character (usually '#') is an obstacle.
//   - Neighbors yields the 4-connected free cells around a position in a
//     fixed order: (+1,0), (0,+1), (-1,0), (0,-1).
//
// Why:
//
//   - The neighbor order is part of the contract: BFS, DFS and A* break ties
//     by discovery order, so a stable order makes every search reproducible.
//   - A Grid is never mutated after Load, so it can be shared freely between
//     searches.
//
// Complexity:
//
//   - Load:      O(W×H) time, O(W×H) memory.
//   - Neighbors: O(1).
//
// Errors:
//
//   - ErrMalformedGrid: empty text, ragged rows, or a missing or duplicated
//     start/goal marker. Load returns a *MalformedGridError carrying the row
//     and reason; test for it with errors.Is(err, ErrMalformedGrid).
package grid
