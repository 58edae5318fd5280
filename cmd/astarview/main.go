// Command astarview generates (or loads) an obstacle grid, runs A* from the
// top-left to the bottom-right cell, and shows the result in the terminal.
//
// Usage:
//
//	astarview [-w 20] [-h 20] [-p 0.3] [-seed N] [-map FILE] [-text]
//
// Keys in the viewer: r regenerates with the next seed, q / Esc / Ctrl-C quit.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/render"
)

const defaultGridSize = 20

var errNoGenerate = errors.New("astarview: a loaded map cannot be regenerated")

// config holds the parsed command-line settings.
type config struct {
	width, height int
	prob          float64
	seed          int64
	mapFile       string
	text          bool
}

func main() {
	var cfg config
	flag.IntVar(&cfg.width, "w", defaultGridSize, "grid width in cells")
	flag.IntVar(&cfg.height, "h", defaultGridSize, "grid height in cells")
	flag.Float64Var(&cfg.prob, "p", gridgraph.DefaultObstacleProbability, "obstacle probability per cell")
	flag.Int64Var(&cfg.seed, "seed", 0, "random seed (0 = time based)")
	flag.StringVar(&cfg.mapFile, "map", "", "load an ASCII layout ('#' obstacle, '.' free) instead of generating one")
	flag.BoolVar(&cfg.text, "text", false, "print the result instead of opening the viewer")
	flag.Parse()

	if cfg.seed == 0 {
		cfg.seed = time.Now().UnixNano()
	}

	if cfg.text {
		if err := runText(cfg, os.Stdout); err != nil {
			log.Fatalf("astarview: %v", err)
		}
		return
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("astarview: create screen: %v", err)
	}
	if err = screen.Init(); err != nil {
		log.Fatalf("astarview: init screen: %v", err)
	}

	v, err := newViewer(cfg, screen)
	if err != nil {
		screen.Fini()
		log.Fatalf("astarview: %v", err)
	}
	v.run()
	screen.Fini()
}

// runText solves one grid and writes it as text to out.
func runText(cfg config, out io.Writer) error {
	res, err := solve(cfg)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%s%s\n", render.Text(res.grid, res.scene), res.scene.Status)

	return err
}

// result is one solved grid ready for drawing.
type result struct {
	grid  *gridgraph.Grid
	scene render.Scene
}

// solve builds the grid described by cfg and runs the search on it.
func solve(cfg config) (result, error) {
	g, err := buildGrid(cfg)
	if err != nil {
		return result{}, err
	}
	start := gridgraph.Pt(0, 0)
	goal := gridgraph.Pt(g.Width()-1, g.Height()-1)
	// start and goal are kept free, as the generator does for random layouts
	if err = g.SetObstacle(start.X, start.Y, false); err != nil {
		return result{}, err
	}
	if err = g.SetObstacle(goal.X, goal.Y, false); err != nil {
		return result{}, err
	}

	s, err := astar.NewSearcher(g)
	if err != nil {
		return result{}, err
	}
	began := time.Now()
	path, err := s.FindPath(start, goal)
	if err != nil {
		return result{}, err
	}
	took := time.Since(began)

	status := fmt.Sprintf("no path; explored %d cells", s.Expanded())
	if len(path) > 0 {
		status = fmt.Sprintf("path %d steps; explored %d cells", len(path)-1, s.Expanded())
	}
	if cfg.mapFile == "" {
		status += fmt.Sprintf("; seed %d", cfg.seed)
	}
	log.Printf("astarview: %dx%d grid, %d obstacles: %s in %v", g.Width(), g.Height(), g.Obstacles(), status, took)

	return result{
		grid: g,
		scene: render.Scene{
			Start:    start,
			Goal:     goal,
			Path:     path,
			Explored: s.Explored(),
			Status:   status,
		},
	}, nil
}

// buildGrid loads cfg.mapFile or generates a random layout.
func buildGrid(cfg config) (*gridgraph.Grid, error) {
	if cfg.mapFile != "" {
		data, err := os.ReadFile(cfg.mapFile)
		if err != nil {
			return nil, fmt.Errorf("read map: %w", err)
		}
		return gridgraph.Parse(string(data))
	}

	g, err := gridgraph.New(cfg.width, cfg.height)
	if err != nil {
		return nil, err
	}
	if err = g.FillRandom(cfg.prob, rand.New(rand.NewSource(cfg.seed))); err != nil {
		return nil, err
	}

	return g, nil
}
