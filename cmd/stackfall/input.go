package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/stackfall/tetris"
)

type binding struct {
	input tetris.Input
	keys  []ebiten.Key
}

var bindings = []binding{
	{tetris.InputLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{tetris.InputRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
	{tetris.InputSoftDrop, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
	{tetris.InputRotate, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyX, ebiten.KeyW}},
	{tetris.InputHardDrop, []ebiten.Key{ebiten.KeySpace}},
	{tetris.InputReset, []ebiten.Key{ebiten.KeyR}},
}

// keyState turns key presses into one input mask per tick. Only keys pressed
// on this tick count; holding a key does not repeat it.
type keyState struct{}

func (keyState) poll() tetris.Input {
	return inputFor(inpututil.IsKeyJustPressed)
}

func (keyState) quit() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// inputFor maps the keys justPressed reports onto engine input
func inputFor(justPressed func(ebiten.Key) bool) tetris.Input {
	var in tetris.Input
	for _, b := range bindings {
		for _, k := range b.keys {
			if justPressed(k) {
				in |= b.input
				break
			}
		}
	}
	return in
}

// frameClock measures wall time between updates, capped so a stalled window
// does not drop a piece several rows at once.
type frameClock struct {
	last time.Time
	max  time.Duration
}

func newFrameClock() *frameClock {
	return &frameClock{last: time.Now(), max: 100 * time.Millisecond}
}

func (c *frameClock) tick() float64 {
	now := time.Now()
	dt := min(now.Sub(c.last), c.max)
	c.last = now
	return dt.Seconds()
}
