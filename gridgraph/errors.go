package gridgraph

import "errors"

var (
	// ErrInvalidDimensions indicates a grid was requested with width or height ≤ 0.
	ErrInvalidDimensions = errors.New("gridgraph: width and height must be positive")
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate outside [0,Width)×[0,Height).
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
	// ErrBadGlyph indicates an ASCII layout contains an unknown rune.
	ErrBadGlyph = errors.New("gridgraph: unknown glyph in layout")
	// ErrInvalidProbability indicates an obstacle probability outside [0,1].
	ErrInvalidProbability = errors.New("gridgraph: probability out of range")
	// ErrNeedRandSource indicates a stochastic fill was requested without an RNG.
	ErrNeedRandSource = errors.New("gridgraph: rng is required")
)
