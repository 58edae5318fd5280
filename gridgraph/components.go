package gridgraph

// ConnectedComponents finds all 8-connected regions of free cells.
// Returns a slice of components; each component is a slice of cell indices
// (row-major) in BFS discovery order. Components are ordered by the
// row-major position of their first cell.
//
// To convert an index back to a Point, use Coordinate(idx).
//
// Time:   O(W·H·8).
// Memory: O(W·H) for labels and output.
func (g *Grid) ConnectedComponents() [][]int {
	_, comps := g.flood()

	return comps
}

// Connected reports whether a path of 8-adjacent free cells joins a and b.
// Obstacle or out-of-bounds endpoints are never connected; a free cell is
// connected to itself.
// Complexity: O(W·H·8).
func (g *Grid) Connected(a, b Point) bool {
	if g.Blocked(a) || g.Blocked(b) {
		return false
	}
	labels, _ := g.flood()

	return labels[g.Index(a)] == labels[g.Index(b)]
}

// flood labels every free cell with the id of its component and every
// obstacle with -1, collecting the members of each component as it goes.
func (g *Grid) flood() (labels []int, comps [][]int) {
	total := g.Len()
	labels = make([]int, total)
	for i := range labels {
		labels[i] = -1
	}
	var nbuf []Point

	for i0 := 0; i0 < total; i0++ {
		if g.blocked[i0] || labels[i0] >= 0 {
			continue
		}
		id := len(comps)
		// BFS to collect component; the slice doubles as the queue
		comp := []int{i0}
		labels[i0] = id
		for qi := 0; qi < len(comp); qi++ {
			nbuf = g.AppendNeighbors(nbuf[:0], g.Coordinate(comp[qi]))
			for _, v := range nbuf {
				vi := g.Index(v)
				if g.blocked[vi] || labels[vi] >= 0 {
					continue
				}
				labels[vi] = id
				comp = append(comp, vi)
			}
		}
		comps = append(comps, comp)
	}

	return labels, comps
}
