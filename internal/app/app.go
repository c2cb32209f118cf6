package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/metrics"
	"github.com/katalvlaran/mazepath/plan"
	"github.com/katalvlaran/mazepath/render"
	"github.com/katalvlaran/mazepath/render/term"
	"github.com/katalvlaran/mazepath/report"
	"github.com/katalvlaran/mazepath/script"
	"github.com/katalvlaran/mazepath/search"
)

// App holds one invocation's configuration and collaborators.
type App struct {
	outW      io.Writer
	logW      io.Writer
	logger    *slog.Logger
	cfg       *Config
	collector *metrics.Collector
	newScreen func() (tcell.Screen, error)
}

// Option customises an App.
type Option func(*App)

// WithScreen replaces the terminal used by Config.View. fn must return an
// initialised screen; the App calls Fini when done.
func WithScreen(fn func() (tcell.Screen, error)) Option {
	return func(a *App) { a.newScreen = fn }
}

// NewApp returns an App writing results to outW and logs to logW.
// Metrics follow the results in text mode and go to logW in JSON mode, so
// outW holds a single JSON document.
func NewApp(outW, logW io.Writer, cfg *Config, opts ...Option) *App {
	a := &App{
		outW:      outW,
		logW:      logW,
		logger:    newLogger(cfg.LogLevel, cfg.LogFormat, logW),
		cfg:       cfg,
		newScreen: openTerminal,
	}
	if cfg.Metrics {
		a.collector = metrics.New()
	}
	for _, opt := range opts {
		opt(a)
	}
	a.logger.Debug("app configured",
		slog.String("maze", cfg.MazePath),
		slog.String("plan", cfg.PlanPath),
		slog.String("format", cfg.Format))
	return a
}

// job is one search to run.
type job struct {
	maze     string
	grid     *grid.Grid
	alg      search.Algorithm
	frontier search.FrontierMode
}

// Run loads the mazes, runs every search and writes the output.
// Malformed input fails before any search starts.
func (a *App) Run(ctx context.Context) error {
	jobs, err := a.jobs()
	if err != nil {
		return err
	}

	var h *script.Heuristic
	if a.cfg.HeuristicPath != "" {
		if h, err = script.Load(ctx, a.cfg.HeuristicPath); err != nil {
			return err
		}
		defer h.Close()
		a.logger.Info("heuristic script loaded", slog.String("path", a.cfg.HeuristicPath))
	}

	runs := make([]report.Run, 0, len(jobs))
	for _, j := range jobs {
		res, err := a.search(j, h)
		if err != nil {
			return fmt.Errorf("maze %q, %s: %w", j.maze, j.alg, err)
		}
		runs = append(runs, report.Run{Maze: j.maze, Grid: j.grid, Frontier: j.frontier, Result: res})
	}

	if a.cfg.Format == FormatJSON {
		err = report.Write(a.outW, runs)
	} else {
		err = writeText(a.outW, runs, a.cfg.PlanPath != "")
	}
	if err != nil {
		return fmt.Errorf("write results: %w", err)
	}

	if a.cfg.View {
		if err := a.view(runs); err != nil {
			return err
		}
	}
	if a.collector != nil {
		metricsW := a.outW
		if a.cfg.Format == FormatJSON {
			metricsW = a.logW
		}
		if err := a.collector.WriteText(metricsW); err != nil {
			return err
		}
	}
	return nil
}

// jobs loads every maze up front so a bad file aborts before any search.
func (a *App) jobs() ([]job, error) {
	if a.cfg.PlanPath == "" {
		g, err := grid.LoadFile(a.cfg.MazePath)
		if err != nil {
			return nil, err
		}
		a.logLoaded(a.cfg.MazePath, g)
		return []job{{maze: a.cfg.MazePath, grid: g, alg: a.cfg.algorithm, frontier: a.cfg.frontier}}, nil
	}

	p, err := plan.Load(a.cfg.PlanPath)
	if err != nil {
		return nil, err
	}
	jobs := make([]job, 0, p.Jobs())
	for _, m := range p.Mazes {
		g, err := m.Grid()
		if err != nil {
			return nil, fmt.Errorf("maze %q: %w", m.Name, err)
		}
		a.logLoaded(m.Name, g)
		for _, alg := range m.Algorithms {
			jobs = append(jobs, job{maze: m.Name, grid: g, alg: alg, frontier: m.Frontier})
		}
	}
	return jobs, nil
}

func (a *App) logLoaded(name string, g *grid.Grid) {
	a.logger.Info("maze loaded",
		slog.String("maze", name),
		slog.Int("width", g.Width),
		slog.Int("height", g.Height),
		slog.Int("free_cells", g.FreeCells()))
}

func (a *App) search(j job, h *script.Heuristic) (*search.Result, error) {
	opts := []search.Option{
		search.WithLogger(a.logger.With(slog.String("maze", j.maze))),
		search.WithFrontierMode(j.frontier),
	}
	if a.cfg.StaleFrontier {
		opts = append(opts, search.WithStaleFrontierEntries())
	}
	if a.collector != nil {
		opts = append(opts, search.WithObserver(a.collector))
	}
	if h != nil && j.alg.Informed() {
		if err := h.Validate(j.grid); err != nil {
			return nil, err
		}
		opts = append(opts, search.WithHeuristic(h.Func()))
	}

	res, err := search.Search(j.grid, j.alg, opts...)
	if err != nil {
		return nil, err
	}
	if h != nil {
		if err := h.Err(); err != nil {
			return nil, err
		}
	}
	a.logger.Info("search complete",
		slog.String("maze", j.maze),
		slog.String("algorithm", j.alg.String()),
		slog.Bool("found", res.Found),
		slog.Int("explored", res.Explored),
		slog.Int("path_length", len(res.Path)))
	return res, nil
}

// writeText prints each run as the bare maze, the explored count, then the
// solved maze. Plan runs get a title line.
func writeText(w io.Writer, runs []report.Run, titled bool) error {
	var b strings.Builder
	for i, r := range runs {
		if i > 0 {
			b.WriteString("\n")
		}
		if titled {
			fmt.Fprintf(&b, "== %s (%s) ==\n", r.Maze, r.Result.Algorithm)
		}
		b.WriteString("Before:\n")
		b.WriteString(render.Render(r.Grid, nil))
		fmt.Fprintf(&b, "\nExplored: %d\n\n", r.Result.Explored)
		if !r.Result.Found {
			b.WriteString("No solution.\n")
			continue
		}
		b.WriteString("After:\n")
		b.WriteString(render.Render(r.Grid, r.Result.Path))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func (a *App) view(runs []report.Run) error {
	s, err := a.newScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer s.Fini()

	p := term.DefaultPalette()
	for _, r := range runs {
		term.Run(s, r.Grid, r.Result, p)
	}
	return nil
}

func openTerminal() (tcell.Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	return s, nil
}
