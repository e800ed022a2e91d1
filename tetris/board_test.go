package tetris_test

import (
	"testing"

	"github.com/plus3/stackfall/tetris"
	"github.com/stretchr/testify/assert"
)

func TestBoardMerge(t *testing.T) {
	var b tetris.Board

	b.Merge(tetris.Position{X: 0, Y: 0}, tetris.Position{X: 9, Y: 39})
	b.Merge(tetris.Position{X: -1, Y: 0}, tetris.Position{X: 0, Y: 40})

	assert.True(t, b.Occupied(tetris.Position{X: 0, Y: 0}))
	assert.True(t, b.Occupied(tetris.Position{X: 9, Y: 39}))
	assert.False(t, b.Occupied(tetris.Position{X: 1, Y: 0}))
	assert.False(t, b.Occupied(tetris.Position{X: -1, Y: 0}))
	assert.Equal(t, 2, b.Count())

	b.Reset()
	assert.Zero(t, b.Count())
}

func TestBoardFullRows(t *testing.T) {
	var b tetris.Board
	b.Merge(row(0, span(0, 9)...)...)
	b.Merge(row(1, span(0, 8)...)...)
	b.Merge(row(5, span(0, 9)...)...)

	assert.Equal(t, []int{0, 5}, b.FullRows())
	assert.True(t, b.RowFull(5))
	assert.False(t, b.RowFull(1))
	assert.False(t, b.RowFull(-1))

	b.ClearRow(5)
	assert.Equal(t, []int{0}, b.FullRows())
}

func TestGrounded(t *testing.T) {
	var b tetris.Board

	floor := tetris.Cells{{3, 0}, {4, 0}, {5, 0}, {6, 0}}
	assert.True(t, b.Grounded(floor))

	air := floor.Shift(0, 5)
	assert.False(t, b.Grounded(air))

	b.Set(tetris.Position{X: 6, Y: 4}, true)
	assert.True(t, b.Grounded(air))
	assert.False(t, b.Collides(air))

	b.Set(tetris.Position{X: 4, Y: 5}, true)
	assert.True(t, b.Collides(air))
}
