package main

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/stackfall/tetris"
)

func TestFrameClockCapsStalls(t *testing.T) {
	c := newFrameClock()
	c.last = time.Now().Add(-2 * time.Second)

	if dt := c.tick(); dt != 0.1 {
		t.Errorf("Expected a stalled frame to be capped at 0.1s, got %v", dt)
	}
	if dt := c.tick(); dt >= 0.1 {
		t.Errorf("Expected a short frame after the stall, got %v", dt)
	}
}

func TestBindingsCoverEveryInput(t *testing.T) {
	seen := make(map[string]bool)
	for _, b := range bindings {
		if len(b.keys) == 0 {
			t.Errorf("Binding %s has no keys", b.input)
		}
		seen[b.input.String()] = true
	}
	for _, name := range []string{"left", "right", "soft_drop", "rotate", "hard_drop", "reset"} {
		if !seen[name] {
			t.Errorf("Expected a key binding for %s", name)
		}
	}
}

func TestInputForEdgesOnly(t *testing.T) {
	pressed := map[ebiten.Key]bool{ebiten.KeyArrowLeft: true, ebiten.KeyA: true, ebiten.KeySpace: true}
	justPressed := func(k ebiten.Key) bool { return pressed[k] }

	if got, want := inputFor(justPressed), tetris.InputLeft|tetris.InputHardDrop; got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}

	// A held key is no longer just pressed on later ticks.
	clear(pressed)
	for tick := range 30 {
		if got := inputFor(justPressed); got != tetris.InputNone {
			t.Errorf("Expected no input on held tick %d, got %s", tick, got)
		}
	}
}
