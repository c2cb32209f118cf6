package search

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/mazepath/frontier"
	"github.com/katalvlaran/mazepath/grid"
)

// Engine runs one algorithm against one grid. It may be run repeatedly;
// every Run starts from scratch. An Engine is not safe for concurrent Run
// calls, but any number of Engines may share a Grid.
type Engine struct {
	grid  *grid.Grid
	alg   Algorithm
	opts  Options
	state State
}

// NewEngine validates its inputs and returns a Ready engine.
// Returns ErrGridNil, ErrUnknownAlgorithm, ErrOptionViolation, or
// ErrInconsistentHeuristic for a custom heuristic used by an informed algorithm.
func NewEngine(g *grid.Grid, alg Algorithm, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if !alg.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(alg))
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if alg.Informed() && o.customHeuristic {
		if err := ValidateHeuristic(g, o.Heuristic); err != nil {
			return nil, err
		}
	}

	return &Engine{grid: g, alg: alg, opts: o, state: Ready}, nil
}

// Search builds an Engine and runs it once.
func Search(g *grid.Grid, alg Algorithm, opts ...Option) (*Result, error) {
	e, err := NewEngine(g, alg, opts...)
	if err != nil {
		return nil, err
	}
	return e.Run()
}

// State reports where the engine is in its lifecycle.
func (e *Engine) State() State { return e.state }

// Algorithm reports the algorithm the engine runs.
func (e *Engine) Algorithm() Algorithm { return e.alg }

// Run executes the search. A run that exhausts the frontier returns
// Found == false and a nil error. A non-nil error means the engine misused
// its frontier; the state is then Failed and the result nil.
func (e *Engine) Run() (*Result, error) {
	e.state = Running
	log := e.opts.Logger.With(slog.String("algorithm", e.alg.String()))
	log.Debug("search started",
		slog.Int("width", e.grid.Width),
		slog.Int("height", e.grid.Height),
		slog.String("start", e.grid.Start.String()),
		slog.String("goal", e.grid.Goal.String()))

	began := time.Now()
	w := newWalker(e.grid, e.alg, e.opts)
	var err error
	switch e.alg {
	case BFS:
		err = w.uninformed(frontier.Queue)
	case DFS:
		err = w.uninformed(frontier.Stack)
	case AStar:
		err = w.informed(func(cost, h int) int { return cost + h }, !e.opts.StaleEntries)
	case Greedy:
		err = w.informed(func(_, h int) int { return h }, false)
	}
	elapsed := time.Since(began)

	if err != nil {
		e.state = Failed
		log.Error("search aborted", slog.Any("error", err))
		return nil, err
	}
	res := w.res
	if res.Found {
		e.state = Succeeded
	} else {
		e.state = Failed
	}
	log.Debug("search finished",
		slog.String("state", e.state.String()),
		slog.Int("explored", res.Explored),
		slog.Int("path_length", len(res.Path)),
		slog.Duration("elapsed", elapsed))

	if e.opts.Observer != nil {
		e.opts.Observer.ObserveSearch(Stats{
			Algorithm:  e.alg,
			Found:      res.Found,
			Explored:   res.Explored,
			PathLength: len(res.Path),
			Elapsed:    elapsed,
		})
	}
	return res, nil
}

// walker holds the mutable state of one run.
type walker struct {
	grid    *grid.Grid
	opts    Options
	nodes   arena
	visited map[grid.Position]struct{}
	res     *Result
}

func newWalker(g *grid.Grid, alg Algorithm, o Options) *walker {
	n := g.FreeCells()
	return &walker{
		grid:    g,
		opts:    o,
		nodes:   arena{nodes: make([]Node, 0, n)},
		visited: make(map[grid.Position]struct{}, n),
		res: &Result{
			Algorithm: alg,
			Order:     make([]grid.Position, 0, n),
		},
	}
}

// uninformed runs BFS (Queue) or DFS (Stack).
func (w *walker) uninformed(d frontier.Discipline) error {
	f := frontier.NewList[ref](d)
	f.Push(w.nodes.add(Node{Pos: w.grid.Start, Parent: noParent}))

	for !f.Empty() {
		cur, err := f.Pop()
		if err != nil {
			return fmt.Errorf("search: %s: %w", d, err)
		}
		if cur.pos == w.grid.Goal {
			w.succeed(cur)
			return nil
		}
		w.expand(cur)

		cost := w.nodes.get(cur).Cost + 1
		for _, n := range w.grid.Neighbors(cur.pos) {
			if w.isVisited(n) || f.Contains(n) {
				continue
			}
			f.Push(w.nodes.add(Node{Pos: n, Parent: cur.id, Cost: cost}))
		}
	}
	return nil
}

// informed runs A* or Greedy. score combines a node's cost and heuristic
// into its Estimate, the frontier key. When relax is set, a waiting entry is
// replaced as soon as a strictly cheaper route to its cell appears.
func (w *walker) informed(score func(cost, h int) int, relax bool) error {
	keyOf := func(r ref) int { return w.nodes.get(r).Estimate }

	var f frontier.Frontier[ref]
	var list *frontier.List[ref]
	if w.opts.FrontierMode == ReorderFrontier {
		list = frontier.NewList[ref](frontier.Queue)
		f = list
	} else {
		f = frontier.NewHeap(keyOf)
	}

	h, goal := w.opts.Heuristic, w.grid.Goal
	discover := func(p grid.Position, parent, cost int) Node {
		return Node{Pos: p, Parent: parent, Cost: cost, Estimate: score(cost, h(p, goal))}
	}
	// open maps a waiting cell to the arena index of its frontier entry.
	open := make(map[grid.Position]int)
	push := func(n Node) {
		r := w.nodes.add(n)
		f.Push(r)
		open[n.Pos] = r.id
	}
	push(discover(w.grid.Start, noParent, 0))

	for !f.Empty() {
		cur, err := f.Pop()
		if err != nil {
			return fmt.Errorf("search: informed: %w", err)
		}
		delete(open, cur.pos)
		if cur.pos == goal {
			w.succeed(cur)
			return nil
		}
		w.expand(cur)

		tentative := w.nodes.get(cur).Cost + 1
		for _, n := range w.grid.Neighbors(cur.pos) {
			if w.isVisited(n) {
				continue
			}
			if f.Contains(n) {
				if !relax || tentative >= w.nodes.nodes[open[n]].Cost {
					continue
				}
				r := w.nodes.add(discover(n, cur.id, tentative))
				if !f.Replace(r) {
					return fmt.Errorf("search: informed: %w: replace of missing %v",
						frontier.ErrInvalidFrontierOperation, n)
				}
				open[n] = r.id
				continue
			}
			push(discover(n, cur.id, tentative))
		}

		if list != nil && !list.Empty() {
			if err := list.ReorderByKey(keyOf); err != nil {
				return fmt.Errorf("search: informed: %w", err)
			}
		}
	}
	return nil
}

// expand marks cur visited and records it.
func (w *walker) expand(cur ref) {
	w.visited[cur.pos] = struct{}{}
	w.res.Explored++
	w.res.Order = append(w.res.Order, cur.pos)
	w.opts.OnExpand(cur.pos, w.res.Explored)
}

func (w *walker) isVisited(p grid.Position) bool {
	_, ok := w.visited[p]
	return ok
}

// succeed rebuilds the path to goal node g.
func (w *walker) succeed(g ref) {
	w.res.Found = true
	w.res.Path = w.nodes.path(g.id)
}
