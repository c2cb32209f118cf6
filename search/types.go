package search

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/katalvlaran/mazepath/grid"
)

// Sentinel errors for engine construction and execution.
var (
	// ErrGridNil is returned when a nil *grid.Grid is passed.
	ErrGridNil = errors.New("search: grid is nil")

	// ErrUnknownAlgorithm is returned for an Algorithm outside the defined constants
	// or an unrecognised algorithm name.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrInconsistentHeuristic is returned when a heuristic is not admissible
	// and consistent on the grid it is used with.
	ErrInconsistentHeuristic = errors.New("search: heuristic is not consistent")
)

// Algorithm selects the frontier discipline and ordering.
type Algorithm int

const (
	// BFS expands the shallowest node first.
	BFS Algorithm = iota
	// DFS expands the deepest node first.
	DFS
	// AStar expands the node with the lowest cost plus heuristic.
	AStar
	// Greedy expands the node with the lowest heuristic.
	Greedy
)

var algorithmNames = [...]string{BFS: "bfs", DFS: "dfs", AStar: "astar", Greedy: "greedy"}

// Algorithms lists every supported algorithm in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{BFS, DFS, AStar, Greedy}
}

// String returns the lower-case name accepted by ParseAlgorithm.
func (a Algorithm) String() string {
	if !a.valid() {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// Informed reports whether the algorithm uses a heuristic.
func (a Algorithm) Informed() bool {
	return a == AStar || a == Greedy
}

func (a Algorithm) valid() bool {
	return a >= BFS && a <= Greedy
}

// ParseAlgorithm maps a case-insensitive name to an Algorithm.
// Accepted: bfs, dfs, astar, a*, greedy, gbfs.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bfs":
		return BFS, nil
	case "dfs":
		return DFS, nil
	case "astar", "a*":
		return AStar, nil
	case "greedy", "gbfs":
		return Greedy, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// State is the lifecycle position of an Engine.
type State int

const (
	// Ready means the engine has not run yet.
	Ready State = iota
	// Running means a run is in progress.
	Running
	// Succeeded means the last run reached the goal.
	Succeeded
	// Failed means the last run exhausted the frontier, or aborted with an error.
	Failed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	case Running:
		return "running"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// FrontierMode selects the container used by informed searches.
type FrontierMode int

const (
	// HeapFrontier keeps entries in a binary heap with decrease-key.
	HeapFrontier FrontierMode = iota
	// ReorderFrontier keeps entries in a FIFO list that is stable-sorted by
	// estimate after every expansion.
	ReorderFrontier
)

// String returns "heap" or "reorder".
func (m FrontierMode) String() string {
	switch m {
	case HeapFrontier:
		return "heap"
	case ReorderFrontier:
		return "reorder"
	default:
		return fmt.Sprintf("FrontierMode(%d)", int(m))
	}
}

// ParseFrontierMode maps "heap" or "reorder" to a FrontierMode.
func ParseFrontierMode(name string) (FrontierMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "heap":
		return HeapFrontier, nil
	case "reorder":
		return ReorderFrontier, nil
	}
	return 0, fmt.Errorf("%w: unknown frontier mode %q", ErrOptionViolation, name)
}

// Result is the outcome of one run.
//   - Found:    the goal was reached. False is the NotFound outcome.
//   - Path:     cells from the first step to the goal; the start is excluded.
//   - Explored: number of expanded nodes.
//   - Order:    expanded cells in expansion order; len(Order) == Explored.
type Result struct {
	Algorithm Algorithm
	Found     bool
	Path      []grid.Position
	Explored  int
	Order     []grid.Position
}

// Stats summarises a finished run for an Observer.
type Stats struct {
	Algorithm  Algorithm
	Found      bool
	Explored   int
	PathLength int
	Elapsed    time.Duration
}

// Observer receives Stats after every successful or unsuccessful run.
type Observer interface {
	ObserveSearch(s Stats)
}

// Option configures an Engine via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by NewEngine.
type Option func(*Options)

// Options holds the tunable parameters of an Engine.
type Options struct {
	// Heuristic estimates the remaining distance for informed searches.
	Heuristic Heuristic

	// FrontierMode selects the informed-search container.
	FrontierMode FrontierMode

	// StaleEntries disables replacement of waiting frontier entries when a
	// cheaper route is found.
	StaleEntries bool

	// Logger receives debug records for every run.
	Logger *slog.Logger

	// Observer, if non-nil, receives Stats after every run.
	Observer Observer

	// OnExpand is called with each expanded cell and the running explored count.
	OnExpand func(p grid.Position, explored int)

	// customHeuristic marks a heuristic that must be validated.
	customHeuristic bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Manhattan heuristic
//   - HeapFrontier
//   - replacement of waiting entries enabled
//   - a logger that discards everything
//   - no observer and a no-op OnExpand hook
func DefaultOptions() Options {
	return Options{
		Heuristic:    Manhattan,
		FrontierMode: HeapFrontier,
		Logger:       slog.New(slog.DiscardHandler),
		OnExpand:     func(grid.Position, int) {},
	}
}

// WithHeuristic replaces the heuristic. A nil function is an option violation.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("%w: heuristic is nil", ErrOptionViolation)
			return
		}
		o.Heuristic = h
		o.customHeuristic = true
	}
}

// WithFrontierMode selects the container used by informed searches.
func WithFrontierMode(m FrontierMode) Option {
	return func(o *Options) {
		if m != HeapFrontier && m != ReorderFrontier {
			o.err = fmt.Errorf("%w: unknown frontier mode %d", ErrOptionViolation, int(m))
			return
		}
		o.FrontierMode = m
	}
}

// WithStaleFrontierEntries keeps the first entry pushed for a cell even when a
// cheaper route to it is found later. A* may then return a longer path.
func WithStaleFrontierEntries() Option {
	return func(o *Options) {
		o.StaleEntries = true
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithObserver registers an Observer notified after every run.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		o.Observer = obs
	}
}

// WithOnExpand registers a hook called for every expanded cell.
func WithOnExpand(fn func(p grid.Position, explored int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}
