// Package cli parses mazesearch command-line arguments, validates them and
// maps usage problems to exit codes. It turns flags into an app.Config.
package cli
