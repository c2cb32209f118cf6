// Package mazepath solves grid mazes with uninformed and informed
// state-space search.
//
// What is mazepath?
//
//	A small library and command-line tool that brings together:
//		• A grid model: text mazes with a start, a goal and obstacles
//		• Frontiers: stack, queue and a keyed min-heap over one interface
//		• Search: BFS, DFS, A* and greedy best-first on a shared engine
//		• Heuristics: Manhattan, zero, or a Lua script checked for consistency
//		• Output: text, JSON reports, a tcell terminal view and Prometheus metrics
//
// Packages:
//
//	grid/        maze loading, neighbours, canonical text
//	frontier/    List (stack/queue + stable reorder) and Heap containers
//	search/      Engine, algorithms, options, heuristics
//	render/      plain-text rendering; render/term paints a tcell screen
//	plan/        HCL batch plans
//	report/      JSON reports
//	script/      sandboxed Lua heuristics
//	metrics/     Prometheus collector for search statistics
//	cmd/mazesearch/  the command-line tool
//
// Quick example:
//
//	S #G          S+#G
//	  #     →      +#+
//	               +++
//
//	g, _ := grid.Load("S #G\n  # \n    ")
//	res, _ := search.Search(g, search.AStar)
//	fmt.Print(render.Render(g, res.Path))
package mazepath
