// Package plan reads batch plans: HCL files naming mazes and the algorithms
// to run on each.
//
// A plan holds one or more maze blocks:
//
//	maze "corridor" {
//	  file       = "mazes/corridor.txt"
//	  algorithms = ["bfs", "astar"]
//	}
//
//	maze "inline" {
//	  text = <<EOT
//	S  #
//	#  G
//	EOT
//	  algorithms = all_algorithms
//	  frontier   = "reorder"
//	}
//
// Each block sets exactly one of file or text. Relative files resolve against
// the directory holding the plan. algorithms defaults to all_algorithms, a
// variable listing every algorithm the search package knows. frontier is
// "heap" (default) or "reorder".
package plan
