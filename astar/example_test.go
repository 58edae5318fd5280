package astar_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// ExampleFindPath finds a path around a wall and prints it.
func ExampleFindPath() {
	g, _ := gridgraph.Parse(`
		.....
		.###.
		.#...
		.#.#.
		...#.
	`)
	path, err := astar.FindPath(g, gridgraph.Pt(0, 0), gridgraph.Pt(4, 4))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("steps:", len(path)-1)
	fmt.Println(path)

	// Output:
	// steps: 7
	// [(0,0) (1,0) (2,0) (3,0) (4,1) (4,2) (4,3) (4,4)]
}

// ExampleSearcher_Explored inspects which cells a failed search settled.
func ExampleSearcher_Explored() {
	g, _ := gridgraph.Parse(`
		.#.
		.#.
		.#.
	`)
	s, _ := astar.NewSearcher(g)
	path, _ := s.FindPath(gridgraph.Pt(0, 0), gridgraph.Pt(2, 2))
	fmt.Println("path:", path)
	fmt.Println("explored:", s.Explored())

	// Output:
	// path: []
	// explored: [(0,0) (0,1) (0,2)]
}
