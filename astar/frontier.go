package astar

// entry is one frontier record. A cell may have several live entries; all
// but its latest are stale and get skipped on pop once the cell is settled.
type entry struct {
	idx int     // row-major cell index
	f   float64 // priority at push time
	seq uint64  // push sequence number, breaks f ties FIFO
}

// frontier is a min-heap of entries ordered by f ascending, then seq
// ascending. It implements container/heap.Interface.
type frontier []entry

// Len returns the number of entries in the heap.
func (pq frontier) Len() int { return len(pq) }

// Less orders by smaller f, then earlier push.
func (pq frontier) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type entry.
func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(entry)) }

// Pop removes and returns the last element.
// Called by heap.Pop; returns interface{} that must be cast to entry.
func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
