// Package astar implements A* search over gridgraph.Grid.
//
// Notes on implementation choices:
//
//   - Search state lives in a dense scratch table owned by the Searcher and
//     indexed by Grid.Index, never in the grid itself.
//   - Parent links are row-major indices (-1 for none), not pointers.
//   - The frontier uses lazy deletion: improved cells are pushed again and
//     stale entries are dropped when popped for an already settled cell.
//   - Ties on f are broken by push order, so results are reproducible.
package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// edgeCost is the cost of any single move, orthogonal or diagonal.
const edgeCost = 1.0

// noParent marks a cell with no predecessor.
const noParent = -1

// cellState is the per-cell scratch record of one search.
type cellState struct {
	g, h, f float64
	parent  int
	visited bool
}

// Searcher runs A* searches over one grid and keeps the state of the most
// recent search for inspection. The zero value is not usable; call NewSearcher.
type Searcher struct {
	grid     *gridgraph.Grid
	opts     Options
	state    []cellState
	open     frontier
	seq      uint64
	expanded int
	nbuf     []gridgraph.Point
}

// NewSearcher returns a Searcher bound to g.
// Returns ErrNilGrid for a nil grid and ErrOptionViolation for bad options.
// Complexity: O(W×H) to allocate the scratch table.
func NewSearcher(g *gridgraph.Grid, opts ...Option) (*Searcher, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	s := &Searcher{
		grid:  g,
		opts:  cfg,
		state: make([]cellState, g.Len()),
		nbuf:  make([]gridgraph.Point, 0, 8),
	}
	s.Reset()

	return s, nil
}

// FindPath is a one-shot helper: it builds a Searcher over g and runs a
// single search from start to goal.
func FindPath(g *gridgraph.Grid, start, goal gridgraph.Point, opts ...Option) ([]gridgraph.Point, error) {
	s, err := NewSearcher(g, opts...)
	if err != nil {
		return nil, err
	}

	return s.FindPath(start, goal)
}

// Grid returns the grid the Searcher operates on.
func (s *Searcher) Grid() *gridgraph.Grid { return s.grid }

// Reset returns every cell to the baseline state (unvisited, g=h=f=0, no
// parent) and empties the frontier. FindPath calls it before each search.
// Complexity: O(W×H).
func (s *Searcher) Reset() {
	for i := range s.state {
		s.state[i] = cellState{parent: noParent}
	}
	s.open = s.open[:0]
	s.seq = 0
	s.expanded = 0
}

// FindPath computes a path from start to goal, both inclusive.
//
// Returns:
//
//   - the ordered coordinates start→goal when goal is reachable;
//   - [start] when start == goal and the cell is free;
//   - an empty (nil) path when goal is unreachable or either endpoint is an
//     obstacle. This is a normal outcome, not an error.
//
// An out-of-bounds start or goal yields an error wrapping
// gridgraph.ErrOutOfBounds. The search itself never fails.
//
// The grid's obstacle layout must not change during the call. Repeated calls
// with the same layout and endpoints return identical paths.
func (s *Searcher) FindPath(start, goal gridgraph.Point) ([]gridgraph.Point, error) {
	if !s.grid.Contains(start) {
		return nil, fmt.Errorf("astar: start %v: %w", start, gridgraph.ErrOutOfBounds)
	}
	if !s.grid.Contains(goal) {
		return nil, fmt.Errorf("astar: goal %v: %w", goal, gridgraph.ErrOutOfBounds)
	}

	s.Reset()
	if s.grid.Blocked(start) || s.grid.Blocked(goal) {
		return nil, nil
	}

	si, gi := s.grid.Index(start), s.grid.Index(goal)
	h := s.opts.Heuristic(start, goal)
	s.state[si].h = h
	s.state[si].f = h
	s.push(si, h)

	for s.open.Len() > 0 {
		cur := heap.Pop(&s.open).(entry)
		if s.state[cur.idx].visited {
			continue // stale entry
		}
		if cur.idx == gi {
			return s.reconstruct(gi), nil
		}
		s.settle(cur.idx)
		s.relax(cur.idx, goal)
	}

	return nil, nil
}

// push adds cell idx to the frontier with priority f.
func (s *Searcher) push(idx int, f float64) {
	heap.Push(&s.open, entry{idx: idx, f: f, seq: s.seq})
	s.seq++
	s.opts.OnPush(s.grid.Coordinate(idx), f)
}

// settle marks idx visited; it is never relaxed again in this search.
func (s *Searcher) settle(idx int) {
	s.state[idx].visited = true
	s.expanded++
	s.opts.OnVisit(s.grid.Coordinate(idx))
}

// relax examines every neighbor of u that is free and unsettled. A neighbor
// is updated and pushed when the path through u is cheaper, or when it has no
// parent yet (first discovery). h is computed once, on first discovery.
func (s *Searcher) relax(u int, goal gridgraph.Point) {
	gu := s.state[u].g
	s.nbuf = s.grid.AppendNeighbors(s.nbuf[:0], s.grid.Coordinate(u))
	for _, p := range s.nbuf {
		if s.grid.Blocked(p) {
			continue
		}
		v := s.grid.Index(p)
		st := &s.state[v]
		if st.visited {
			continue
		}
		tentative := gu + edgeCost
		first := st.parent == noParent
		if !first && tentative >= st.g {
			continue
		}
		if first {
			st.h = s.opts.Heuristic(p, goal)
		}
		st.g = tentative
		st.f = tentative + st.h
		st.parent = u
		s.push(v, st.f)
	}
}

// reconstruct follows parent links from goal back to start and reverses them.
func (s *Searcher) reconstruct(goal int) []gridgraph.Point {
	var path []gridgraph.Point
	for at := goal; at != noParent; at = s.state[at].parent {
		path = append(path, s.grid.Coordinate(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Visited reports whether p was settled by the most recent search.
// Returns an error wrapping gridgraph.ErrOutOfBounds for points outside the grid.
func (s *Searcher) Visited(p gridgraph.Point) (bool, error) {
	if !s.grid.Contains(p) {
		return false, fmt.Errorf("astar: visited %v: %w", p, gridgraph.ErrOutOfBounds)
	}

	return s.state[s.grid.Index(p)].visited, nil
}

// State returns a snapshot of p's state after the most recent search.
// Returns an error wrapping gridgraph.ErrOutOfBounds for points outside the grid.
func (s *Searcher) State(p gridgraph.Point) (CellState, error) {
	if !s.grid.Contains(p) {
		return CellState{}, fmt.Errorf("astar: state %v: %w", p, gridgraph.ErrOutOfBounds)
	}
	st := s.state[s.grid.Index(p)]
	cs := CellState{G: st.g, H: st.h, F: st.f, Visited: st.visited}
	if st.parent != noParent {
		cs.Parent = s.grid.Coordinate(st.parent)
		cs.HasParent = true
	}

	return cs, nil
}

// Explored returns every settled cell of the most recent search in
// row-major order.
func (s *Searcher) Explored() []gridgraph.Point {
	out := make([]gridgraph.Point, 0, s.expanded)
	for i, st := range s.state {
		if st.visited {
			out = append(out, s.grid.Coordinate(i))
		}
	}

	return out
}

// Expanded returns how many cells the most recent search settled.
func (s *Searcher) Expanded() int { return s.expanded }
