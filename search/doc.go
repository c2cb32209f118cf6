// Package search finds a path from the start cell to the goal cell of a
// grid.Grid using breadth-first, depth-first, greedy best-first or A* search.
//
// What
//
//   - Every algorithm shares one loop: pop a node from the frontier, stop if
//     it is the goal, otherwise mark it visited and push its unvisited
//     neighbours that are not already waiting in the frontier.
//   - BFS uses a FIFO frontier, DFS a LIFO frontier. Both record parent
//     links; BFS paths have the fewest possible steps, DFS paths are merely
//     valid.
//   - A* orders the frontier by cost-so-far plus a heuristic estimate and
//     replaces a waiting entry when a strictly cheaper route to it is found,
//     so the first time the goal is popped its path is optimal.
//   - Greedy orders the frontier by the heuristic alone. It is fast on open
//     maps but gives no optimality guarantee.
//
// Engine lifecycle
//
//	Ready ──Run──▶ Running ──▶ Succeeded (goal popped)
//	                       └──▶ Failed    (frontier exhausted)
//
// A Failed run is not an error: Run returns a Result with Found == false
// and a nil error. Running the same Engine again rebuilds all per-run state,
// so results are identical.
//
// Nodes
//
//	Each run owns an arena of Node values. A Node stores its parent as an
//	arena index, so the parent chain is a tree and a path is rebuilt by
//	walking indices from the goal node back to the start.
//
// Heuristics
//
//	Manhattan is admissible and consistent for unit-cost 4-directional moves.
//	A custom Heuristic passed with WithHeuristic is checked against the grid
//	with ValidateHeuristic before an informed search starts.
//
// Options
//
//   - DefaultOptions(): Manhattan heuristic, heap frontier, discard logger.
//   - WithHeuristic(h):             replace the heuristic (validated).
//   - WithFrontierMode(m):          HeapFrontier or ReorderFrontier for A*/Greedy.
//   - WithStaleFrontierEntries():   never replace waiting entries (legacy behaviour).
//   - WithLogger(l):                *slog.Logger for debug output.
//   - WithObserver(o):              receives Stats after every run.
//   - WithOnExpand(fn):             hook called for every expanded cell.
//
// Errors
//
//   - ErrGridNil                    if the grid is nil.
//   - ErrUnknownAlgorithm           if the algorithm is not one of the constants.
//   - ErrOptionViolation            if an Option was given an invalid value.
//   - ErrInconsistentHeuristic      if a custom heuristic fails validation.
//   - frontier.ErrInvalidFrontierOperation (wrapped) if the engine misuses its
//     frontier; this indicates a bug and aborts the run.
package search
