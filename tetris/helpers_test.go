package tetris_test

import (
	"github.com/plus3/stackfall/tetris"
)

// firstRNG always picks the first remaining type, so every bag comes out in
// catalog order.
type firstRNG struct{}

func (firstRNG) UintN(uint) uint { return 0 }

// scriptRNG replays picks in order and then repeats the last one
type scriptRNG struct {
	picks []uint
	calls int
}

func (r *scriptRNG) UintN(n uint) uint {
	pick := r.picks[min(r.calls, len(r.picks)-1)]
	r.calls++
	return pick % n
}

func newTestGame(opts tetris.Options) *tetris.Game {
	if opts.RNG == nil {
		opts.RNG = firstRNG{}
	}
	return tetris.NewGame(opts)
}

func row(y int, columns ...int) []tetris.Position {
	cells := make([]tetris.Position, 0, len(columns))
	for _, x := range columns {
		cells = append(cells, tetris.Position{X: x, Y: y})
	}
	return cells
}

func span(from, to int) []int {
	var out []int
	for x := from; x <= to; x++ {
		out = append(out, x)
	}
	return out
}
