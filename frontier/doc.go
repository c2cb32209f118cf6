// Package frontier holds the discovered-but-not-yet-expanded nodes of a
// grid search.
//
// Two containers share the Frontier interface:
//
//   - List, parameterised by Discipline: Stack pops the most recently pushed
//     entry (depth-first), Queue pops the earliest entry still present
//     (breadth-first). ReorderByKey stable-sorts the entries by an ascending
//     key so a Queue pops the minimum next; A* calls it after every expansion.
//   - Heap, a binary min-heap ordered by (key, insertion sequence). It pops
//     exactly what a Queue reordered after every push would pop, in
//     O(log n) instead of O(n log n).
//
// Neither container rejects duplicate positions; callers check Contains
// before pushing. Replace swaps the entry at a position for a new one and
// gives it a fresh insertion sequence, so ties keep FIFO order in both
// containers.
//
// Errors:
//
//   - ErrInvalidFrontierOperation: Pop on an empty frontier, or
//     ReorderByKey on an empty List. Reaching it means the caller skipped an
//     Empty check.
package frontier
