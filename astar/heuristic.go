package astar

import (
	"math"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Euclidean returns the straight-line distance between a and b.
func Euclidean(a, b gridgraph.Point) float64 {
	dx, dy := float64(a.X-b.X), float64(a.Y-b.Y)

	return math.Sqrt(dx*dx + dy*dy)
}

// Chebyshev returns max(|dx|, |dy|), the exact unit-cost 8-move distance on
// an obstacle-free grid.
func Chebyshev(a, b gridgraph.Point) float64 {
	return float64(max(abs(a.X-b.X), abs(a.Y-b.Y)))
}

// Manhattan returns |dx| + |dy|.
func Manhattan(a, b gridgraph.Point) float64 {
	return float64(abs(a.X-b.X) + abs(a.Y-b.Y))
}

// Zero always returns 0, which turns the search into uniform-cost search.
func Zero(_, _ gridgraph.Point) float64 { return 0 }

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
