package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/mazepath/search"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds everything an App needs to run.
type Config struct {
	MazePath string // single maze file
	PlanPath string // HCL plan; excludes MazePath

	Algorithm     string // single-maze mode only
	Frontier      string // single-maze mode only; plans set it per maze
	StaleFrontier bool
	HeuristicPath string // Lua heuristic for informed searches

	Format  string
	View    bool
	Metrics bool

	LogFormat string
	LogLevel  string

	algorithm search.Algorithm
	frontier  search.FrontierMode
}

// NewConfig validates cfg and returns a copy ready for NewApp.
func NewConfig(cfg Config) (*Config, error) {
	switch {
	case cfg.MazePath == "" && cfg.PlanPath == "":
		return nil, errors.New("a maze file or a plan is required")
	case cfg.MazePath != "" && cfg.PlanPath != "":
		return nil, errors.New("a maze file and a plan are mutually exclusive")
	}

	if cfg.Algorithm == "" {
		cfg.Algorithm = search.BFS.String()
	}
	alg, err := search.ParseAlgorithm(cfg.Algorithm)
	if err != nil {
		return nil, fmt.Errorf("invalid algorithm %q: must be one of %s", cfg.Algorithm, algorithmNames())
	}
	cfg.algorithm = alg

	if cfg.Frontier == "" {
		cfg.Frontier = search.HeapFrontier.String()
	}
	mode, err := search.ParseFrontierMode(cfg.Frontier)
	if err != nil {
		return nil, fmt.Errorf("invalid frontier %q: must be 'heap' or 'reorder'", cfg.Frontier)
	}
	cfg.frontier = mode

	cfg.Format = strings.ToLower(cfg.Format)
	switch cfg.Format {
	case "":
		cfg.Format = FormatText
	case FormatText, FormatJSON:
	default:
		return nil, fmt.Errorf("invalid format %q: must be 'text' or 'json'", cfg.Format)
	}

	return &cfg, nil
}

func algorithmNames() string {
	algs := search.Algorithms()
	names := make([]string, len(algs))
	for i, a := range algs {
		names[i] = a.String()
	}
	return strings.Join(names, ", ")
}
