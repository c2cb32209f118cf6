package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/internal/cli"
)

func writeMaze(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "maze.txt")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o600))
	return path
}

func TestRun_SolvesMaze(t *testing.T) {
	t.Parallel()
	path := writeMaze(t, "S #G\n  # \n    \n")

	var out, logs bytes.Buffer
	require.NoError(t, run(&out, &logs, []string{"-algorithm", "astar", path}))

	want := "Before:\n" +
		"S #G\n  # \n    \n" +
		"\nExplored: 9\n\n" +
		"After:\n" +
		"S+#G\n +#+\n +++\n"
	assert.Equal(t, want, out.String())
	assert.Empty(t, logs.String())
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	require.NoError(t, run(&out, &bytes.Buffer{}, []string{"-h"}))
	assert.Contains(t, out.String(), "Usage:")
}

func TestRun_UsageError(t *testing.T) {
	t.Parallel()
	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"--not-a-flag"})
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, cli.ExitUsage, exitErr.Code)
}

func TestRun_MalformedMaze(t *testing.T) {
	t.Parallel()
	path := writeMaze(t, "S  \n G\n")

	var out bytes.Buffer
	err := run(&out, &bytes.Buffer{}, []string{path})
	require.Error(t, err)
	assert.ErrorIs(t, err, grid.ErrMalformedGrid)

	var exitErr *cli.ExitError
	assert.False(t, errors.As(err, &exitErr))
	assert.Empty(t, out.String())
}

func TestRun_Testdata(t *testing.T) {
	t.Parallel()
	tests := []struct {
		args     []string
		explored string
		solved   string
	}{
		{[]string{"testdata/maze1.txt"}, "Explored: 28", "#S++#+++++G#"},
		{[]string{"-algorithm", "astar", "testdata/maze1.txt"}, "Explored: 15", "#S++#+++++G#"},
		{[]string{"-algorithm", "greedy", "-frontier", "reorder", "testdata/maze1.txt"}, "Explored: 13", "# #+++#    #"},
		{[]string{"-algorithm", "astar", "-heuristic", "testdata/manhattan.lua", "testdata/maze1.txt"}, "Explored: 15", "# #+#+### ##"},
		{[]string{"-algorithm", "dfs", "testdata/sealed.txt"}, "Explored: 17", "No solution."},
	}
	for _, tc := range tests {
		var out bytes.Buffer
		require.NoError(t, run(&out, &bytes.Buffer{}, tc.args), tc.args)
		assert.Contains(t, out.String(), tc.explored, tc.args)
		assert.Contains(t, out.String(), tc.solved, tc.args)
	}
}

func TestRun_TestdataPlan(t *testing.T) {
	t.Parallel()
	var out, logs bytes.Buffer
	require.NoError(t, run(&out, &logs, []string{"-plan", "testdata/batch.hcl", "-format", "json", "-metrics"}))

	s := out.String()
	// 4 runs for maze1, 2 for sealed, 1 for corridor.
	assert.Equal(t, 7, strings.Count(s, `"maze":`))
	assert.NotContains(t, s, "mazepath_")
	assert.Contains(t, logs.String(), `mazepath_searches_total{algorithm="bfs",outcome="not_found"} 1`)
	assert.Contains(t, logs.String(), `mazepath_searches_total{algorithm="dfs",outcome="found"} 2`)
}
