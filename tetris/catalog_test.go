package tetris_test

import (
	"testing"

	"github.com/plus3/stackfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartPositions(t *testing.T) {
	for _, pt := range tetris.AllPieceTypes() {
		t.Run(pt.String(), func(t *testing.T) {
			cells := pt.StartPositions()

			assert.True(t, cells.Distinct(), "cells overlap")
			assert.True(t, cells.InColumns())
			assert.GreaterOrEqual(t, cells.MinX(), 3)
			assert.LessOrEqual(t, cells.MaxX(), 6)
			assert.GreaterOrEqual(t, cells.MinY(), 21)
			assert.LessOrEqual(t, cells.MaxY(), 22)
		})
	}
}

func TestSpawnTable(t *testing.T) {
	tests := []struct {
		piece tetris.PieceType
		cells tetris.Cells
	}{
		{tetris.PieceI, tetris.Cells{{3, 21}, {4, 21}, {5, 21}, {6, 21}}},
		{tetris.PieceO, tetris.Cells{{4, 22}, {5, 22}, {4, 21}, {5, 21}}},
		{tetris.PieceT, tetris.Cells{{3, 21}, {4, 21}, {5, 21}, {4, 22}}},
		{tetris.PieceS, tetris.Cells{{3, 21}, {4, 21}, {4, 22}, {5, 22}}},
		{tetris.PieceZ, tetris.Cells{{3, 22}, {4, 22}, {4, 21}, {5, 21}}},
		{tetris.PieceJ, tetris.Cells{{3, 22}, {3, 21}, {4, 21}, {5, 21}}},
		{tetris.PieceL, tetris.Cells{{5, 22}, {3, 21}, {4, 21}, {5, 21}}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.cells, tt.piece.StartPositions(), tt.piece.String())
	}
}

func TestShapeID(t *testing.T) {
	seen := map[uint32]bool{}
	for _, pt := range tetris.AllPieceTypes() {
		id := pt.ShapeID()
		assert.NotZero(t, id)
		assert.False(t, seen[id], "duplicate shape id %d", id)
		seen[id] = true

		back, ok := tetris.PieceTypeFromShapeID(id)
		require.True(t, ok)
		assert.Equal(t, pt, back)
	}

	_, ok := tetris.PieceTypeFromShapeID(0)
	assert.False(t, ok)
	_, ok = tetris.PieceTypeFromShapeID(tetris.PieceTypeCount + 1)
	assert.False(t, ok)
}

func TestColors(t *testing.T) {
	assert.Equal(t, tetris.Color{R: 0, G: 255, B: 255}, tetris.PieceI.Color())
	assert.Equal(t, tetris.Color{R: 255, G: 255, B: 0}, tetris.PieceO.Color())
	assert.Equal(t, tetris.Color{R: 255, G: 160, B: 0}, tetris.PieceL.Color())
	assert.Equal(t, "PieceType(9)", tetris.PieceType(9).String())
}
