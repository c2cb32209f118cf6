package script_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/script"
	"github.com/katalvlaran/mazepath/search"
)

const manhattanLua = `
function heuristic(ax, ay, bx, by)
  return math.abs(ax - bx) + math.abs(ay - by)
end
`

func load(t *testing.T, src string) *script.Heuristic {
	t.Helper()
	h, err := script.LoadString(context.Background(), src, t.Name())
	require.NoError(t, err)
	t.Cleanup(h.Close)
	return h
}

func TestEstimate_Manhattan(t *testing.T) {
	h := load(t, manhattanLua)
	v, err := h.Estimate(grid.Position{X: 0, Y: 0}, grid.Position{X: 3, Y: 4})
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	for _, p := range []grid.Position{{X: 2, Y: 9}, {X: 5, Y: 0}, {X: 1, Y: 1}} {
		goal := grid.Position{X: 4, Y: 4}
		got, err := h.Estimate(p, goal)
		require.NoError(t, err)
		assert.Equal(t, search.Manhattan(p, goal), got, "at %v", p)
	}
}

func TestEstimate_FloorsFractions(t *testing.T) {
	h := load(t, `function heuristic(ax, ay, bx, by) return 2.9 end`)
	v, err := h.Estimate(grid.Position{}, grid.Position{})
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestEstimate_BadResults(t *testing.T) {
	for name, body := range map[string]string{
		"string":   `return "far"`,
		"nil":      `return nil`,
		"negative": `return -1`,
		"nan":      `return 0/0`,
		"inf":      `return math.huge`,
		"huge":     `return 1e300`,
		"2^63":     `return 2^63`,
		"above":    `return 2^53 + 2`,
	} {
		t.Run(name, func(t *testing.T) {
			h := load(t, "function heuristic(ax, ay, bx, by) "+body+" end")
			_, err := h.Estimate(grid.Position{}, grid.Position{X: 1})
			assert.ErrorIs(t, err, script.ErrBadResult)
		})
	}
}

func TestEstimate_LargestAccepted(t *testing.T) {
	h := load(t, `function heuristic(ax, ay, bx, by) return 2^53 end`)
	v, err := h.Estimate(grid.Position{}, grid.Position{X: 1})
	require.NoError(t, err)
	assert.Equal(t, 1<<53, v)
}

func TestEstimate_Concurrent(t *testing.T) {
	h := load(t, manhattanLua)
	goal := grid.Position{X: 9, Y: 9}

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				p := grid.Position{X: w, Y: i % 10}
				v, err := h.Estimate(p, goal)
				if err == nil && v != search.Manhattan(p, goal) {
					err = fmt.Errorf("estimate %v = %d", p, v)
				}
				if err != nil {
					errs <- err
					return
				}
			}
		}(w)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestEstimate_RuntimeError(t *testing.T) {
	h := load(t, `function heuristic() error("boom") end`)
	_, err := h.Estimate(grid.Position{}, grid.Position{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestLoadString_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := script.LoadString(ctx, `x = 1`, "nofunc")
	assert.ErrorIs(t, err, script.ErrNoHeuristic)

	_, err = script.LoadString(ctx, `heuristic = 3`, "notfunc")
	assert.ErrorIs(t, err, script.ErrNoHeuristic)

	_, err = script.LoadString(ctx, `function heuristic(`, "syntax")
	assert.Error(t, err)

	_, err = script.LoadString(ctx, `error("at load")`, "loaderr")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at load")
}

func TestSandbox(t *testing.T) {
	ctx := context.Background()
	for _, src := range []string{
		`dofile("/etc/passwd")`,
		`loadstring("x = 1")()`,
		`require("os")`,
		`io.write("x")`,
		`os.exit(1)`,
		`debug.traceback()`,
	} {
		_, err := script.LoadString(ctx, src+"\n"+manhattanLua, "sandbox")
		assert.Error(t, err, src)
	}

	// The safe libraries are available.
	h := load(t, `
local t = {}
table.insert(t, string.len("ab"))
function heuristic(ax, ay, bx, by) return t[1] * math.max(0, math.abs(ax - bx) - 1) end
`)
	v, err := h.Estimate(grid.Position{X: 5}, grid.Position{})
	require.NoError(t, err)
	assert.Equal(t, 8, v)
}

func TestContextBoundsExecution(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	h, err := script.LoadString(ctx, `function heuristic() while true do end end`, "spin")
	require.NoError(t, err)
	defer h.Close()

	_, err = h.Estimate(grid.Position{}, grid.Position{})
	assert.Error(t, err)
}

func TestFunc_DrivesSearch(t *testing.T) {
	g, err := grid.Load("G  \n## \n   \n # \n S ")
	require.NoError(t, err)
	h := load(t, manhattanLua)
	require.NoError(t, h.Validate(g))

	scripted, err := search.Search(g, search.AStar, search.WithHeuristic(h.Func()))
	require.NoError(t, err)
	builtin, err := search.Search(g, search.AStar)
	require.NoError(t, err)

	assert.Equal(t, builtin.Path, scripted.Path)
	assert.Equal(t, builtin.Explored, scripted.Explored)
	assert.NoError(t, h.Err())
}

func TestValidate_Inconsistent(t *testing.T) {
	g, err := grid.Load("S  G")
	require.NoError(t, err)

	h := load(t, `function heuristic(ax, ay, bx, by) if ax == bx and ay == by then return 0 end return 100 end`)
	assert.ErrorIs(t, h.Validate(g), search.ErrInconsistentHeuristic)

	_, err = search.NewEngine(g, search.AStar, search.WithHeuristic(h.Func()))
	assert.ErrorIs(t, err, search.ErrInconsistentHeuristic)
}

func TestValidate_ScriptFailure(t *testing.T) {
	g, err := grid.Load("S  G")
	require.NoError(t, err)

	h := load(t, `function heuristic(ax, ay, bx, by) if ax == 1 then return "x" end return 0 end`)
	err = h.Validate(g)
	assert.ErrorIs(t, err, script.ErrBadResult)
	assert.ErrorIs(t, h.Err(), script.ErrBadResult)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "h.lua")
	require.NoError(t, os.WriteFile(path, []byte(manhattanLua), 0o644))

	h, err := script.Load(context.Background(), path)
	require.NoError(t, err)
	defer h.Close()
	v, err := h.Estimate(grid.Position{X: 1, Y: 1}, grid.Position{})
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	_, err = script.Load(context.Background(), filepath.Join(t.TempDir(), "absent.lua"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestClose(t *testing.T) {
	h, err := script.LoadString(context.Background(), manhattanLua, "c")
	require.NoError(t, err)
	h.Close()
	h.Close()

	_, err = h.Estimate(grid.Position{}, grid.Position{})
	assert.ErrorIs(t, err, script.ErrClosed)
	assert.Equal(t, 0, h.Func()(grid.Position{X: 3}, grid.Position{}))
	assert.ErrorIs(t, h.Err(), script.ErrClosed)
}
