package main

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridpath/render"
)

// viewer owns the terminal while a result is on screen.
type viewer struct {
	cfg    config
	screen tcell.Screen
	res    result
}

func newViewer(cfg config, screen tcell.Screen) (*viewer, error) {
	res, err := solve(cfg)
	if err != nil {
		return nil, err
	}

	return &viewer{cfg: cfg, screen: screen, res: res}, nil
}

// run draws the current result and processes events until the user quits.
func (v *viewer) run() {
	v.draw()
	for {
		if !v.handle(v.screen.PollEvent()) {
			return
		}
	}
}

func (v *viewer) draw() {
	render.Draw(v.screen, v.res.grid, v.res.scene)
}

// handle reacts to one event and reports whether the viewer keeps running.
func (v *viewer) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case nil:
		// screen finalized
		return false
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'r':
			if err := v.regenerate(); err != nil {
				log.Printf("astarview: %v", err)
				return true
			}
			v.draw()
		}
	case *tcell.EventResize:
		v.screen.Sync()
		v.draw()
	}

	return true
}

// regenerate advances the seed and solves a fresh random layout.
func (v *viewer) regenerate() error {
	if v.cfg.mapFile != "" {
		return errNoGenerate
	}
	next := v.cfg
	next.seed++
	res, err := solve(next)
	if err != nil {
		return err
	}
	v.cfg, v.res = next, res

	return nil
}
