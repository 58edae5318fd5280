package gridgraph

import "fmt"

// Unreachable marks cells HopDistances could not reach.
const Unreachable = -1

// HopDistances returns, for every cell (row-major), the minimum number of
// 8-directional moves from `from`, or Unreachable. Obstacles are never
// entered. An obstacle at `from` reaches nothing, itself included.
// Returns ErrOutOfBounds if from is outside the grid.
//
// It is the breadth-first ground truth for unit-cost movement, useful for
// judging how far a heuristic search strays from optimal.
//
// Time:   O(W·H·8).
// Memory: O(W·H).
func (g *Grid) HopDistances(from Point) ([]int, error) {
	if !g.Contains(from) {
		return nil, g.boundsErr(from.X, from.Y)
	}
	dist := make([]int, g.Len())
	for i := range dist {
		dist[i] = Unreachable
	}
	if g.Blocked(from) {
		return dist, nil
	}

	i0 := g.Index(from)
	dist[i0] = 0
	queue := []int{i0}
	var nbuf []Point
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		nbuf = g.AppendNeighbors(nbuf[:0], g.Coordinate(u))
		for _, v := range nbuf {
			vi := g.Index(v)
			if g.blocked[vi] || dist[vi] != Unreachable {
				continue
			}
			dist[vi] = dist[u] + 1
			queue = append(queue, vi)
		}
	}

	return dist, nil
}

// HopDistance returns the minimum number of moves from a to b, or
// Unreachable. Returns ErrOutOfBounds if either point is outside the grid.
func (g *Grid) HopDistance(a, b Point) (int, error) {
	if !g.Contains(b) {
		return Unreachable, fmt.Errorf("%w: target %v", ErrOutOfBounds, b)
	}
	dist, err := g.HopDistances(a)
	if err != nil {
		return Unreachable, err
	}

	return dist[g.Index(b)], nil
}
