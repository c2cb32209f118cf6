package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/mazepath/internal/app"
)

// Exit codes.
const (
	ExitRuntime = 1
	ExitUsage   = 2
)

// ExitError is an error carrying the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config, a
// flag telling the caller to exit cleanly (help was requested or printed), or
// an *ExitError with ExitUsage.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("mazesearch", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
mazesearch - solve grid mazes with BFS, DFS, A* or greedy best-first search.

Usage:
  mazesearch [options] MAZE_FILE
  mazesearch [options] -plan PLAN.hcl

Arguments:
  MAZE_FILE
    Text maze: S start, G goal, space free, anything else a wall.

Options:
`)
		flagSet.PrintDefaults()
	}

	algorithmFlag := flagSet.String("algorithm", "bfs", "Search algorithm: bfs, dfs, astar or greedy.")
	planFlag := flagSet.String("plan", "", "HCL plan listing mazes and algorithms to run.")
	formatFlag := flagSet.String("format", "text", "Output format: 'text' or 'json'.")
	heuristicFlag := flagSet.String("heuristic", "", "Lua script defining heuristic(ax, ay, bx, by) for astar and greedy.")
	staleFlag := flagSet.Bool("stale-frontier", false, "A*: keep waiting frontier entries when a cheaper route appears.")
	frontierFlag := flagSet.String("frontier", "heap", "Informed-search frontier: 'heap' or 'reorder'. Plans set it per maze.")
	viewFlag := flagSet.Bool("view", false, "Show each result on the terminal; press q to continue.")
	metricsFlag := flagSet.Bool("metrics", false, "Print Prometheus metrics after the searches (to stderr with -format json).")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: ExitUsage, Message: "expected a single maze file"}
	}
	path := flagSet.Arg(0)
	if path == "" && *planFlag == "" {
		flagSet.Usage()
		return nil, false, &ExitError{Code: ExitUsage, Message: "no maze file or plan given"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	config, err := app.NewConfig(app.Config{
		MazePath:      path,
		PlanPath:      *planFlag,
		Algorithm:     *algorithmFlag,
		Frontier:      *frontierFlag,
		StaleFrontier: *staleFlag,
		HeuristicPath: *heuristicFlag,
		Format:        *formatFlag,
		View:          *viewFlag,
		Metrics:       *metricsFlag,
		LogFormat:     logFormat,
		LogLevel:      logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	return config, false, nil
}
