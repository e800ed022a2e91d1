package tetris_test

import (
	"testing"

	"github.com/plus3/stackfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupClear(t *testing.T, rows map[int][]int) (*tetris.Board, *tetris.PieceStore) {
	t.Helper()
	var b tetris.Board
	store := tetris.NewPieceStore()
	for y := 0; y < tetris.BoardHeight; y++ {
		if cols, ok := rows[y]; ok {
			store.Insert(tetris.PieceT, row(y, cols...))
		}
	}
	tetris.MergeStore(&b, store)
	return &b, store
}

func lockedCells(store *tetris.PieceStore) []tetris.Position {
	var out []tetris.Position
	for p := range store.Cells() {
		out = append(out, p)
	}
	return out
}

func TestClearFullRowsClassic(t *testing.T) {
	b, store := setupClear(t, map[int][]int{
		0: span(0, 9),
		1: {0},
		2: span(0, 9),
		3: {5},
	})

	n := tetris.ClearFullRows(b, store, tetris.ClearClassic)
	require.Equal(t, 2, n)

	assert.ElementsMatch(t, []tetris.Position{{X: 0, Y: 0}, {X: 5, Y: 1}}, lockedCells(store))
	assert.Equal(t, 2, b.Count())
	assert.True(t, b.Occupied(tetris.Position{X: 0, Y: 0}))
	assert.True(t, b.Occupied(tetris.Position{X: 5, Y: 1}))
	assert.Equal(t, 2, store.Len(), "pieces without cells are dropped")
}

func TestClearFullRowsWipe(t *testing.T) {
	b, store := setupClear(t, map[int][]int{
		0: span(0, 9),
		1: {3, 4},
	})

	n := tetris.ClearFullRows(b, store, tetris.ClearWipe)
	require.Equal(t, 1, n)

	assert.Zero(t, b.Count(), "grid stays empty until the next merge")
	assert.ElementsMatch(t, row(0, 3, 4), lockedCells(store))

	tetris.MergeStore(b, store)
	assert.Equal(t, 2, b.Count())
}

func TestClearModesAgree(t *testing.T) {
	layout := map[int][]int{
		0: span(0, 9),
		1: span(0, 9),
		2: {1, 2, 3},
		3: span(0, 9),
		4: {9},
	}

	classicBoard, classicStore := setupClear(t, layout)
	wipeBoard, wipeStore := setupClear(t, layout)

	a := tetris.ClearFullRows(classicBoard, classicStore, tetris.ClearClassic)
	b := tetris.ClearFullRows(wipeBoard, wipeStore, tetris.ClearWipe)
	assert.Equal(t, 3, a)
	assert.Equal(t, a, b)

	tetris.MergeStore(wipeBoard, wipeStore)
	assert.Equal(t, classicBoard.Rows(), wipeBoard.Rows())
	assert.ElementsMatch(t, append(row(0, 1, 2, 3), tetris.Position{X: 9, Y: 1}), lockedCells(classicStore))
}

func TestClearNothing(t *testing.T) {
	b, store := setupClear(t, map[int][]int{0: span(0, 8)})

	assert.Zero(t, tetris.ClearFullRows(b, store, tetris.ClearWipe))
	assert.Equal(t, 9, b.Count())
}

func TestParseClearMode(t *testing.T) {
	mode, err := tetris.ParseClearMode("wipe")
	require.NoError(t, err)
	assert.Equal(t, tetris.ClearWipe, mode)

	mode, err = tetris.ParseClearMode("")
	require.NoError(t, err)
	assert.Equal(t, tetris.ClearClassic, mode)

	_, err = tetris.ParseClearMode("gravity")
	assert.Error(t, err)
}
