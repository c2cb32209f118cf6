// Package report renders search results as a JSON document.
//
// The document has one element in "runs" per search:
//
//	{
//	  "runs": [
//	    {
//	      "maze": "corridor",
//	      "algorithm": "astar",
//	      "frontier": "heap",
//	      "width": 4, "height": 3,
//	      "start": [0, 0], "goal": [3, 0],
//	      "found": true,
//	      "explored": 9,
//	      "path_length": 7,
//	      "path": [[1, 0], [1, 1], ...],
//	      "solution": ["S+#G", " +#+", " +++"]
//	    }
//	  ]
//	}
//
// A run that finds no path has found=false, an empty path and path_length 0.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/render"
	"github.com/katalvlaran/mazepath/search"
)

// ErrIncompleteRun is returned for a Run without a grid or result.
var ErrIncompleteRun = errors.New("report: run needs a grid and a result")

// Run is one search to report.
type Run struct {
	Maze     string
	Grid     *grid.Grid
	Frontier search.FrontierMode
	Result   *search.Result
}

// Encode builds the report for runs. The output is indented and ends with a
// newline.
func Encode(runs []Run) ([]byte, error) {
	doc := []byte(`{"runs":[]}`)
	for i, r := range runs {
		obj, err := encodeRun(r)
		if err != nil {
			return nil, fmt.Errorf("report: run %d (%s): %w", i, r.Maze, err)
		}
		if doc, err = sjson.SetRawBytes(doc, "runs.-1", obj); err != nil {
			return nil, fmt.Errorf("report: run %d (%s): %w", i, r.Maze, err)
		}
	}
	return pretty.Pretty(doc), nil
}

// Write encodes runs to w.
func Write(w io.Writer, runs []Run) error {
	doc, err := Encode(runs)
	if err != nil {
		return err
	}
	_, err = w.Write(doc)
	return err
}

type field struct {
	key   string
	value any
}

func encodeRun(r Run) ([]byte, error) {
	if r.Grid == nil || r.Result == nil {
		return nil, ErrIncompleteRun
	}
	g, res := r.Grid, r.Result

	path := make([][2]int, len(res.Path))
	for i, p := range res.Path {
		path[i] = pair(p)
	}
	solution := strings.Split(strings.TrimSuffix(render.Render(g, res.Path), "\n"), "\n")

	fields := []field{
		{"maze", r.Maze},
		{"algorithm", res.Algorithm.String()},
	}
	// Uninformed searches ignore the frontier mode.
	if res.Algorithm.Informed() {
		fields = append(fields, field{"frontier", r.Frontier.String()})
	}
	fields = append(fields,
		field{"width", g.Width},
		field{"height", g.Height},
		field{"start", pair(g.Start)},
		field{"goal", pair(g.Goal)},
		field{"found", res.Found},
		field{"explored", res.Explored},
		field{"path_length", len(res.Path)},
		field{"path", path},
		field{"solution", solution},
	)

	obj := []byte(`{}`)
	var err error
	for _, f := range fields {
		if obj, err = sjson.SetBytes(obj, f.key, f.value); err != nil {
			return nil, fmt.Errorf("set %s: %w", f.key, err)
		}
	}
	return obj, nil
}

func pair(p grid.Position) [2]int { return [2]int{p.X, p.Y} }
