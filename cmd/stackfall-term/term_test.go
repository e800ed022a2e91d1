package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/stackfall/tetris"
)

func newSimTerm(t *testing.T) (*term, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	screen.SetSize(80, 30)
	t.Cleanup(screen.Fini)

	return &term{screen: screen, game: tetris.NewGame(tetris.Options{Seed: 3})}, screen
}

func TestDrawActivePiece(t *testing.T) {
	tm, screen := newSimTerm(t)

	snap := tm.game.Step(1.0/60, tetris.InputNone)
	tm.draw(snap)

	active := snap.Active()
	if len(active) == 0 {
		t.Fatalf("Expected a visible active piece after the first step")
	}
	for _, d := range active {
		cell := d.Cell()
		x := originX + 1 + cell.X*cellWidth
		y := originY + tetris.VisibleHeight - 1 - cell.Y
		r, _, _, _ := screen.GetContent(x, y)
		if r != '▓' {
			t.Errorf("Expected active glyph at %v, got %q", cell, r)
		}
	}
}

func TestDrawGameOver(t *testing.T) {
	tm, screen := newSimTerm(t)

	for i := 0; i < 5000 && !tm.game.Over(); i++ {
		tm.game.Step(1.0/60, tetris.InputHardDrop)
	}
	if !tm.game.Over() {
		t.Fatalf("Expected hard drops to end the game")
	}
	tm.draw(tm.game.Snapshot())

	x := originX + tetris.BoardWidth*cellWidth + 5
	found := false
	for y := 0; y < 30; y++ {
		r, _, _, _ := screen.GetContent(x, y)
		if r == 'G' {
			next, _, _, _ := screen.GetContent(x+5, y)
			found = found || next == 'O'
		}
	}
	if !found {
		t.Errorf("Expected GAME OVER in the HUD column")
	}
}
