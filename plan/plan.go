package plan

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/search"
)

// ErrInvalidPlan is returned for plans that parse but make no sense:
// no mazes, duplicate names, a bad source, algorithm or frontier mode.
var ErrInvalidPlan = errors.New("plan: invalid plan")

// Plan is a decoded plan file.
type Plan struct {
	// Path is the file the plan came from, as given to Load.
	Path  string
	Mazes []Maze
}

// Maze is one maze block with defaults applied.
type Maze struct {
	Name string
	// File is the maze file with relative paths resolved; empty for inline mazes.
	File string
	// Text is the inline maze; empty for file mazes.
	Text       string
	Algorithms []search.Algorithm
	Frontier   search.FrontierMode
}

// Grid loads the maze from its file or inline text.
func (m Maze) Grid() (*grid.Grid, error) {
	if m.File != "" {
		return grid.LoadFile(m.File)
	}
	return grid.Load(m.Text)
}

// Jobs returns the number of searches the plan asks for.
func (p *Plan) Jobs() int {
	n := 0
	for _, m := range p.Mazes {
		n += len(m.Algorithms)
	}
	return n
}

// hclPlanFile is the top-level structure of a plan file for decoding.
type hclPlanFile struct {
	Mazes []*hclMaze `hcl:"maze,block"`
}

type hclMaze struct {
	Name       string   `hcl:"name,label"`
	File       *string  `hcl:"file,optional"`
	Text       *string  `hcl:"text,optional"`
	Algorithms []string `hcl:"algorithms,optional"`
	Frontier   *string  `hcl:"frontier,optional"`
}

// Load reads and decodes the plan at path.
func Load(path string) (*Plan, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("plan: %w", err)
	}
	return Parse(src, path)
}

// Parse decodes plan source. filename is used in diagnostics and as the base
// for relative maze files.
func Parse(src []byte, filename string) (*Plan, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("plan: failed to parse %s: %w", filename, diags)
	}

	var parsed hclPlanFile
	diags = gohcl.DecodeBody(file.Body, EvalContext(), &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("plan: failed to decode %s: %w", filename, diags)
	}
	if len(parsed.Mazes) == 0 {
		return nil, fmt.Errorf("%w: %s: no maze blocks", ErrInvalidPlan, filename)
	}

	p := &Plan{Path: filename, Mazes: make([]Maze, 0, len(parsed.Mazes))}
	seen := make(map[string]struct{}, len(parsed.Mazes))
	base := filepath.Dir(filename)
	for _, hm := range parsed.Mazes {
		if _, dup := seen[hm.Name]; dup {
			return nil, fmt.Errorf("%w: maze %q declared twice", ErrInvalidPlan, hm.Name)
		}
		seen[hm.Name] = struct{}{}

		m, err := hm.resolve(base)
		if err != nil {
			return nil, err
		}
		p.Mazes = append(p.Mazes, m)
	}
	return p, nil
}

func (hm *hclMaze) resolve(base string) (Maze, error) {
	m := Maze{Name: hm.Name}

	switch {
	case hm.File != nil && hm.Text != nil:
		return m, fmt.Errorf("%w: maze %q: set file or text, not both", ErrInvalidPlan, hm.Name)
	case hm.File != nil:
		m.File = *hm.File
		if !filepath.IsAbs(m.File) {
			m.File = filepath.Join(base, m.File)
		}
	case hm.Text != nil:
		m.Text = *hm.Text
	default:
		return m, fmt.Errorf("%w: maze %q: one of file or text is required", ErrInvalidPlan, hm.Name)
	}

	if hm.Algorithms == nil {
		m.Algorithms = search.Algorithms()
	} else {
		if len(hm.Algorithms) == 0 {
			return m, fmt.Errorf("%w: maze %q: empty algorithms list", ErrInvalidPlan, hm.Name)
		}
		for _, name := range hm.Algorithms {
			alg, err := search.ParseAlgorithm(name)
			if err != nil {
				return m, fmt.Errorf("%w: maze %q: %w", ErrInvalidPlan, hm.Name, err)
			}
			m.Algorithms = append(m.Algorithms, alg)
		}
	}

	if hm.Frontier != nil {
		mode, err := search.ParseFrontierMode(*hm.Frontier)
		if err != nil {
			return m, fmt.Errorf("%w: maze %q: %w", ErrInvalidPlan, hm.Name, err)
		}
		m.Frontier = mode
	}
	return m, nil
}

// EvalContext returns the variables available to plan expressions.
func EvalContext() *hcl.EvalContext {
	algs := search.Algorithms()
	names := make([]cty.Value, len(algs))
	for i, a := range algs {
		names[i] = cty.StringVal(a.String())
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"all_algorithms": cty.ListVal(names),
		},
	}
}
