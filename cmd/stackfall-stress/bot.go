package main

import (
	"math/rand/v2"

	"github.com/plus3/stackfall/tetris"
)

// bot presses random keys, weighted towards sideways moves so the stack spreads
// out and rows actually clear.
type bot struct {
	rng *rand.Rand
}

var botInputs = []tetris.Input{
	tetris.InputNone,
	tetris.InputNone,
	tetris.InputNone,
	tetris.InputLeft,
	tetris.InputLeft,
	tetris.InputRight,
	tetris.InputRight,
	tetris.InputRotate,
	tetris.InputSoftDrop,
	tetris.InputHardDrop,
}

func newBot(seed uint64) *bot {
	return &bot{rng: tetris.NewRNG(seed ^ 0x9e3779b97f4a7c15)}
}

func (b *bot) NextInput() tetris.Input {
	return botInputs[b.rng.IntN(len(botInputs))]
}
