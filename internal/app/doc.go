// Package app runs mazesearch: it loads mazes from a file or a plan, runs the
// requested searches and writes text or JSON output, optionally showing each
// result on a terminal screen and printing metrics. It is decoupled from the
// command line; see internal/cli for flag handling.
package app
