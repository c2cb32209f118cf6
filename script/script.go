package script

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/search"
)

// FuncName is the global the script must define.
const FuncName = "heuristic"

var (
	// ErrNoHeuristic is returned when the script defines no heuristic function.
	ErrNoHeuristic = errors.New("script: heuristic function not defined")

	// ErrBadResult is returned when the function yields something other than
	// a finite, non-negative number.
	ErrBadResult = errors.New("script: heuristic returned an invalid value")

	// ErrClosed is returned by calls on a closed Heuristic.
	ErrClosed = errors.New("script: heuristic is closed")
)

// maxEstimate is the largest script result accepted.
const maxEstimate = 1 << 53

// unsafeGlobals load code from outside the script.
var unsafeGlobals = []string{"dofile", "loadfile", "load", "loadstring", "require", "module"}

// Heuristic is a compiled Lua heuristic. It is safe for concurrent use;
// calls are serialised on one Lua state.
type Heuristic struct {
	mu     sync.Mutex
	name   string
	state  *lua.LState
	fn     *lua.LFunction
	err    error
	closed bool
}

// Load reads and compiles the script at path. ctx bounds script execution
// for the lifetime of the Heuristic: once it is done, running calls fail.
func Load(ctx context.Context, path string) (*Heuristic, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	return LoadString(ctx, string(src), path)
}

// LoadString compiles src. name appears in Lua error messages.
func LoadString(ctx context.Context, src, name string) (*Heuristic, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(L)
	L.SetContext(ctx)

	h := &Heuristic{name: name, state: L}
	if err := h.protect(func() error {
		chunk, err := L.Load(strings.NewReader(src), name)
		if err != nil {
			return err
		}
		L.Push(chunk)
		return L.PCall(0, lua.MultRet, nil)
	}); err != nil {
		L.Close()
		return nil, fmt.Errorf("script: load %s: %w", name, err)
	}

	fn, ok := L.GetGlobal(FuncName).(*lua.LFunction)
	if !ok {
		L.Close()
		return nil, fmt.Errorf("%w: %s", ErrNoHeuristic, name)
	}
	h.fn = fn
	return h, nil
}

func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
	for _, g := range unsafeGlobals {
		L.SetGlobal(g, lua.LNil)
	}
}

// Estimate calls the script for the pair (a, b).
func (h *Heuristic) Estimate(a, b grid.Position) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return 0, ErrClosed
	}

	var ret lua.LValue
	err := h.protect(func() error {
		if err := h.state.CallByParam(lua.P{Fn: h.fn, NRet: 1, Protect: true},
			lua.LNumber(a.X), lua.LNumber(a.Y), lua.LNumber(b.X), lua.LNumber(b.Y)); err != nil {
			return err
		}
		ret = h.state.Get(-1)
		h.state.Pop(1)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("script: %s%v%v: %w", FuncName, a, b, err)
	}

	n, ok := ret.(lua.LNumber)
	if !ok {
		return 0, fmt.Errorf("%w: %s%v%v = %s", ErrBadResult, FuncName, a, b, ret.Type())
	}
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 || f > maxEstimate {
		return 0, fmt.Errorf("%w: %s%v%v = %v", ErrBadResult, FuncName, a, b, f)
	}
	return int(math.Floor(f)), nil
}

// Func adapts h to a search.Heuristic. A failed call yields 0 and records
// the first failure for Err.
func (h *Heuristic) Func() search.Heuristic {
	return func(a, b grid.Position) int {
		v, err := h.Estimate(a, b)
		if err != nil {
			h.mu.Lock()
			if h.err == nil {
				h.err = err
			}
			h.mu.Unlock()
			return 0
		}
		return v
	}
}

// Err returns the first failure recorded by Func.
func (h *Heuristic) Err() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.err
}

// Validate checks that h is a consistent heuristic on g and that the script
// ran cleanly on every cell.
func (h *Heuristic) Validate(g *grid.Grid) error {
	if err := search.ValidateHeuristic(g, h.Func()); err != nil {
		return errors.Join(err, h.Err())
	}
	return h.Err()
}

// Close releases the Lua state. It is safe to call more than once.
func (h *Heuristic) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.state.Close()
	h.closed = true
}

func (h *Heuristic) protect(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return fn()
}
