// Package render draws a grid, the cells a search explored, and the path it
// found, either onto a tcell.Screen or as plain text.
//
// Colors follow the classic visualization: obstacles black, explored cells
// grey, free cells white, start green, goal red, path blue.
package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Text glyphs.
const (
	GlyphStart    = 'S'
	GlyphGoal     = 'G'
	GlyphPath     = '*'
	GlyphExplored = 'o'
)

// CellWidth is the number of terminal columns drawn per grid cell, which
// keeps cells roughly square in most fonts.
const CellWidth = 2

var (
	styleFree     = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack)
	styleObstacle = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleExplored = tcell.StyleDefault.Background(tcell.NewRGBColor(128, 128, 128)).Foreground(tcell.ColorBlack)
	styleStart    = tcell.StyleDefault.Background(tcell.ColorGreen).Foreground(tcell.ColorBlack)
	styleGoal     = tcell.StyleDefault.Background(tcell.ColorRed).Foreground(tcell.ColorWhite)
	stylePath     = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

// Scene is everything to draw on top of the grid itself.
type Scene struct {
	Start, Goal gridgraph.Point
	Path        []gridgraph.Point
	Explored    []gridgraph.Point
	Status      string // optional line drawn below the grid
}

// kind classifies one cell for drawing. Later kinds win.
type kind uint8

const (
	kindFree kind = iota
	kindObstacle
	kindExplored
	kindPath
	kindStart
	kindGoal
)

// classify resolves the kind of every cell, row-major.
func classify(g *gridgraph.Grid, sc Scene) []kind {
	kinds := make([]kind, g.Len())
	for i := range kinds {
		if g.Blocked(g.Coordinate(i)) {
			kinds[i] = kindObstacle
		}
	}
	mark := func(p gridgraph.Point, k kind) {
		if g.Contains(p) {
			kinds[g.Index(p)] = k
		}
	}
	for _, p := range sc.Explored {
		mark(p, kindExplored)
	}
	for _, p := range sc.Path {
		mark(p, kindPath)
	}
	mark(sc.Start, kindStart)
	mark(sc.Goal, kindGoal)

	return kinds
}

// Text renders the scene as one line per row: '#' obstacle, '.' free,
// 'o' explored, '*' path, 'S' start, 'G' goal.
func Text(g *gridgraph.Grid, sc Scene) string {
	kinds := classify(g, sc)
	var sb strings.Builder
	sb.Grow((g.Width() + 1) * g.Height())
	for i, k := range kinds {
		sb.WriteRune(glyph(k))
		if (i+1)%g.Width() == 0 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

// Draw paints the scene onto screen starting at the top-left corner and
// calls Show. Cells beyond the screen size are clipped.
func Draw(screen tcell.Screen, g *gridgraph.Grid, sc Scene) {
	screen.Clear()
	kinds := classify(g, sc)
	for i, k := range kinds {
		p := g.Coordinate(i)
		style, r := cellLook(k)
		for dx := 0; dx < CellWidth; dx++ {
			screen.SetContent(p.X*CellWidth+dx, p.Y, r, nil, style)
		}
	}
	if sc.Status != "" {
		drawString(screen, 0, g.Height()+1, sc.Status, styleStatus)
	}
	screen.Show()
}

func glyph(k kind) rune {
	switch k {
	case kindObstacle:
		return gridgraph.GlyphObstacle
	case kindExplored:
		return GlyphExplored
	case kindPath:
		return GlyphPath
	case kindStart:
		return GlyphStart
	case kindGoal:
		return GlyphGoal
	default:
		return gridgraph.GlyphFree
	}
}

// cellLook returns the style and rune for a cell kind. Path cells keep the
// explored background and show a dot, like the original circle markers.
func cellLook(k kind) (tcell.Style, rune) {
	switch k {
	case kindObstacle:
		return styleObstacle, ' '
	case kindExplored:
		return styleExplored, ' '
	case kindPath:
		return stylePath.Background(tcell.NewRGBColor(128, 128, 128)), '●'
	case kindStart:
		return styleStart, ' '
	case kindGoal:
		return styleGoal, ' '
	default:
		return styleFree, ' '
	}
}

func drawString(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
