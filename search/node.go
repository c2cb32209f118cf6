package search

import "github.com/katalvlaran/mazepath/grid"

// noParent marks the root of a parent chain.
const noParent = -1

// Node is one discovery of a cell. Nodes are never modified after creation;
// a cheaper route to a cell creates a new Node.
//   - Parent:   arena index of the discovering node, or -1 for the start.
//   - Cost:     steps from the start.
//   - Estimate: frontier key; Cost+h for A*, h for Greedy, 0 otherwise.
type Node struct {
	Pos      grid.Position
	Parent   int
	Cost     int
	Estimate int
}

// ref is the frontier handle of an arena node.
type ref struct {
	id  int
	pos grid.Position
}

// Pos implements frontier.Positioned.
func (r ref) Pos() grid.Position { return r.pos }

// arena owns every Node created during one run.
type arena struct {
	nodes []Node
}

// add stores n and returns its handle.
func (a *arena) add(n Node) ref {
	a.nodes = append(a.nodes, n)
	return ref{id: len(a.nodes) - 1, pos: n.Pos}
}

// get returns the node behind r.
func (a *arena) get(r ref) Node {
	return a.nodes[r.id]
}

// path walks parent links from id back to the root and returns the cells in
// start→goal order. The root (start) is not included.
func (a *arena) path(id int) []grid.Position {
	var rev []grid.Position
	for n := a.nodes[id]; n.Parent != noParent; n = a.nodes[n.Parent] {
		rev = append(rev, n.Pos)
	}
	out := make([]grid.Position, len(rev))
	for i, p := range rev {
		out[len(rev)-1-i] = p
	}
	return out
}
