package astar

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors returned by the astar package.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Heuristic estimates the remaining cost from a to b.
type Heuristic func(a, b gridgraph.Point) float64

// Options configures a Searcher.
type Options struct {
	// Heuristic estimates the cost to the goal. Default: Euclidean.
	Heuristic Heuristic

	// OnVisit is called when a cell is settled (removed from the frontier
	// and expanded). The goal is never settled; the search stops on it.
	OnVisit func(p gridgraph.Point)

	// OnPush is called whenever a cell enters the frontier with priority f.
	OnPush func(p gridgraph.Point, f float64)

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring a Searcher.
type Option func(*Options)

// DefaultOptions returns Options with the Euclidean heuristic and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Heuristic: Euclidean,
		OnVisit:   func(gridgraph.Point) {},
		OnPush:    func(gridgraph.Point, float64) {},
	}
}

// WithHeuristic replaces the heuristic. A nil h is recorded as
// ErrOptionViolation and surfaced by NewSearcher.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("%w: heuristic cannot be nil", ErrOptionViolation)
			return
		}
		o.Heuristic = h
	}
}

// WithOnVisit registers a callback to run when a cell is settled.
func WithOnVisit(fn func(p gridgraph.Point)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnPush registers a callback to run on every frontier push.
func WithOnPush(fn func(p gridgraph.Point, f float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPush = fn
		}
	}
}

// CellState is a read-only snapshot of one cell's search state.
//
// G, H and F are zero for cells the last search never discovered.
// Parent is meaningful only when HasParent is true.
type CellState struct {
	G, H, F   float64
	Parent    gridgraph.Point
	HasParent bool
	Visited   bool
}
