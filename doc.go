// Package gridpath finds shortest paths on 2D obstacle grids with A*.
//
// What is in the box:
//
//	gridgraph/     — fixed-size obstacle grid: construction, ASCII parse,
//	                 8-neighbor enumeration, free-cell components, random fill
//	astar/         — A* search with a per-searcher scratch table, FIFO tie-break,
//	                 lazy frontier deletion and post-search diagnostics
//	render/        — draw a grid, explored cells and a path to tcell or text
//	cmd/astarview/ — terminal viewer for random or loaded layouts
//
// Quick ASCII example:
//
//	S . #        S → (1,1) → G
//	. . #
//	. . G
//
// Movement is 8-directional with unit cost per move; the default heuristic is
// Euclidean distance.
//
//	go get github.com/katalvlaran/gridpath
package gridpath
