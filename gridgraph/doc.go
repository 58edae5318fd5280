// Package gridgraph models a fixed-size 2D grid of cells with impassable
// obstacle cells, the geometry every grid search in this module runs on.
//
// What:
//
//   - Grid holds Width×Height cells addressed by (x,y) in [0,W)×[0,H).
//   - Each cell carries a single obstacle flag; coordinates never change.
//   - Neighbors enumerates the up-to-8 in-bounds Chebyshev-adjacent cells.
//   - ConnectedComponents groups free cells into 8-connected regions.
//   - FillRandom populates the obstacle layout with independent Bernoulli draws.
//   - Parse / String convert a grid to and from an ASCII layout.
//
// The grid carries no search state. Searchers keep their own scratch tables
// indexed by Index(p), so any number of searches may read one grid as long
// as nobody mutates its obstacle layout meanwhile. Clone produces an
// independent copy when the layout must change under a running search.
//
// Complexity:
//
//   - New, From2D, Clone:  O(W×H) time and memory.
//   - Neighbors:           O(1).
//   - ConnectedComponents: O(W×H×8) time, O(W×H) memory.
//   - FillRandom:          O(W×H) Bernoulli trials.
//
// Errors:
//
//   - ErrInvalidDimensions: width or height ≤ 0.
//   - ErrEmptyGrid: input 2D slice has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: coordinate outside the grid.
//   - ErrBadGlyph: unknown rune in an ASCII layout.
//   - ErrInvalidProbability, ErrNeedRandSource: FillRandom parameter errors.
package gridgraph
