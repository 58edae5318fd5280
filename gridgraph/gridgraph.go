// Package gridgraph provides the obstacle grid used by the path finders:
//
//   - Construction from dimensions, a [][]bool layout, or ASCII text
//   - Per-cell obstacle mutation with bounds checking
//   - 8-directional neighbor enumeration (pure geometry)
//   - Row-major index <-> coordinate conversion for dense side tables
//
// Cells with an obstacle flag are impassable; all other cells are free.
package gridgraph

import (
	"fmt"
	"strings"
)

// New allocates a width×height grid with every cell free.
// Returns ErrInvalidDimensions if width or height is not positive.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d height=%d", ErrInvalidDimensions, width, height)
	}

	return &Grid{
		width:   width,
		height:  height,
		blocked: make([]bool, width*height),
	}, nil
}

// From2D constructs a Grid from a non-empty, rectangular 2D slice where
// rows[y][x] == true marks an obstacle. The input is copied.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func From2D(rows [][]bool) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g, err := New(w, h)
	if err != nil {
		return nil, err
	}
	for y := 0; y < h; y++ {
		copy(g.blocked[y*w:(y+1)*w], rows[y])
	}

	return g, nil
}

// Parse builds a Grid from an ASCII layout: one line per row, GlyphObstacle
// ('#') for obstacles and GlyphFree ('.') for free cells. Blank lines and
// surrounding whitespace are ignored.
// Returns ErrEmptyGrid, ErrNonRectangular, or ErrBadGlyph.
func Parse(text string) (*Grid, error) {
	var rows [][]bool
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row := make([]bool, 0, len(line))
		for col, r := range line {
			switch r {
			case GlyphFree:
				row = append(row, false)
			case GlyphObstacle:
				row = append(row, true)
			default:
				return nil, fmt.Errorf("%w: %q at row %d col %d", ErrBadGlyph, r, len(rows), col)
			}
		}
		rows = append(rows, row)
	}

	return From2D(rows)
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Len returns the total number of cells, Width×Height.
func (g *Grid) Len() int { return len(g.blocked) }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Contains reports whether p lies within the grid boundaries.
func (g *Grid) Contains(p Point) bool { return g.InBounds(p.X, p.Y) }

// SetObstacle sets the obstacle flag of cell (x,y).
// Returns ErrOutOfBounds if (x,y) is outside the grid.
func (g *Grid) SetObstacle(x, y int, flag bool) error {
	if !g.InBounds(x, y) {
		return g.boundsErr(x, y)
	}
	g.blocked[g.index(x, y)] = flag

	return nil
}

// Obstacle reports the obstacle flag of cell (x,y).
// Returns ErrOutOfBounds if (x,y) is outside the grid.
func (g *Grid) Obstacle(x, y int) (bool, error) {
	if !g.InBounds(x, y) {
		return false, g.boundsErr(x, y)
	}

	return g.blocked[g.index(x, y)], nil
}

// Blocked reports whether p cannot be entered: it is an obstacle or lies
// outside the grid.
func (g *Grid) Blocked(p Point) bool {
	if !g.Contains(p) {
		return true
	}

	return g.blocked[g.index(p.X, p.Y)]
}

// Obstacles returns the number of obstacle cells.
// Complexity: O(W×H).
func (g *Grid) Obstacles() int {
	n := 0
	for _, b := range g.blocked {
		if b {
			n++
		}
	}

	return n
}

// Clear marks every cell free.
func (g *Grid) Clear() {
	for i := range g.blocked {
		g.blocked[i] = false
	}
}

// Clone returns an independent grid with the same dimensions and obstacle
// layout. Mutating either grid afterwards does not affect the other.
// Complexity: O(W×H).
func (g *Grid) Clone() *Grid {
	blocked := make([]bool, len(g.blocked))
	copy(blocked, g.blocked)

	return &Grid{width: g.width, height: g.height, blocked: blocked}
}

// Neighbors returns the in-bounds cells at Chebyshev distance 1 from (x,y),
// in row-major offset order. Obstacles are not filtered out.
// Complexity: O(1).
func (g *Grid) Neighbors(x, y int) []Point {
	return g.AppendNeighbors(make([]Point, 0, len(neighborOffsets)), Pt(x, y))
}

// AppendNeighbors appends the in-bounds neighbors of p to dst and returns
// the extended slice. It is the allocation-free form of Neighbors.
func (g *Grid) AppendNeighbors(dst []Point, p Point) []Point {
	for _, d := range neighborOffsets {
		nx, ny := p.X+d[0], p.Y+d[1]
		if g.InBounds(nx, ny) {
			dst = append(dst, Point{X: nx, Y: ny})
		}
	}

	return dst
}

// Index maps p to its row-major index y*Width + x.
// The result is meaningful only for in-bounds points.
// Complexity: O(1).
func (g *Grid) Index(p Point) int {
	return g.index(p.X, p.Y)
}

// Coordinate converts a row-major index back to a Point.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Point {
	return Point{X: idx % g.width, Y: idx / g.width}
}

// String renders the grid in the layout accepted by Parse.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.blocked[g.index(x, y)] {
				sb.WriteRune(GlyphObstacle)
			} else {
				sb.WriteRune(GlyphFree)
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// index maps (x,y) to a row-major index: y*Width + x.
func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

func (g *Grid) boundsErr(x, y int) error {
	return fmt.Errorf("%w: (%d,%d) not in %dx%d grid", ErrOutOfBounds, x, y, g.width, g.height)
}
