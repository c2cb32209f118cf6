// Package script loads search heuristics written in Lua.
//
// A script defines a global function
//
//	function heuristic(ax, ay, bx, by)
//	  return math.abs(ax - bx) + math.abs(ay - by)
//	end
//
// that estimates the steps from (ax, ay) to (bx, by). Non-integer results are
// floored; negative, NaN, non-numeric results and results above 2^53 are
// errors.
//
// Scripts run in a sandbox holding only the base, table, string and math
// libraries; io, os, debug and package are never opened, and the globals that
// load code (dofile, loadfile, load, loadstring, require) are removed.
//
// A Heuristic is not itself a search.Heuristic, because Lua calls can fail.
// Func adapts it; failures inside Func are recorded and reported by Err.
// Validate runs the search package's consistency check and folds in any
// script failure it provoked, so a script that passes Validate on a grid
// will not fail during a search of that grid.
package script
