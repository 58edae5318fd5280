// Package astar finds a minimum-cost path between two cells of a
// gridgraph.Grid using informed best-first search (A*).
//
// Movement is 8-directional and every move costs 1, orthogonal or diagonal.
// The default heuristic is Euclidean distance. Combined with unit diagonal
// cost it can overestimate the remaining cost, so on grids with obstacles the
// returned path is short but not guaranteed minimal. On obstacle-free grids
// the path length always equals the Chebyshev distance.
//
// Algorithm:
//
//  1. Reset the scratch table; seed the frontier with start (g=0, f=h).
//  2. Pop the entry with the smallest f; ties go to the earliest push.
//  3. Skip entries whose cell is already settled (lazy deletion).
//  4. If the cell is the goal, follow parent links back to start.
//  5. Settle the cell and relax every free, unsettled neighbor:
//     tentative g = g+1; accept if lower than its g or if it has no parent yet.
//  6. An exhausted frontier means the goal is unreachable.
//
// Complexity:
//
//   - Time:  O(E log V) with V = W×H cells and E ≤ 8V relaxations.
//   - Space: O(V) scratch table plus O(E) frontier entries in the worst case.
//
// Options:
//
//   - WithHeuristic(h): replace the Euclidean heuristic.
//   - WithOnVisit(fn):  called each time a cell is settled.
//   - WithOnPush(fn):   called on every frontier push.
//
// Errors:
//
//   - ErrNilGrid:          nil grid.
//   - ErrOptionViolation:  invalid option (e.g. nil heuristic).
//   - gridgraph.ErrOutOfBounds: start, goal or queried cell outside the grid.
//
// An unreachable goal, or an obstacle at start or goal, is not an error: the
// path is simply empty.
//
// Concurrency:
//
// A Searcher owns its scratch table and must not be used from two goroutines
// at once. Separate Searchers may search the same grid concurrently as long
// as its obstacle layout is not mutated meanwhile; use Grid.Clone otherwise.
//
// Example usage:
//
//	g, _ := gridgraph.New(20, 20)
//	path, err := astar.FindPath(g, gridgraph.Pt(0, 0), gridgraph.Pt(19, 19))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(len(path)) // 20
package astar
