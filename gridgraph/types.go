// Package gridgraph defines the core grid types for the gridgraph subpackage
// of github.com/katalvlaran/gridpath.
package gridgraph

import "fmt"

// Glyphs used by Parse and String.
const (
	GlyphFree     = '.'
	GlyphObstacle = '#'
)

// Point is an integer cell coordinate. X grows to the right, Y grows downward.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// String formats the point as "(x,y)".
func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Grid is a fixed-size rectangle of cells with per-cell obstacle flags.
// Dimensions are fixed for the grid's lifetime; only obstacle flags mutate.
// blocked is stored row-major: blocked[y*width+x].
type Grid struct {
	width, height int
	blocked       []bool
}

// neighborOffsets lists the eight Chebyshev-distance-1 offsets in row-major
// order (dy outer, dx inner). Every search over a Grid expands in this order.
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}
