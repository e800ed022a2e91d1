package tetris_test

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/plus3/stackfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawableLayout(t *testing.T) {
	d := tetris.NewDrawable(tetris.PieceT, tetris.Position{X: 7, Y: 3}, true)

	buf := tetris.AppendDrawables(nil, []tetris.Drawable{d})
	require.Len(t, buf, tetris.DrawableSize)

	assert.Equal(t, float32(7), math.Float32frombits(binary.LittleEndian.Uint32(buf[0:])))
	assert.Equal(t, float32(3), math.Float32frombits(binary.LittleEndian.Uint32(buf[4:])))
	assert.Equal(t, float32(1), math.Float32frombits(binary.LittleEndian.Uint32(buf[8:])))
	assert.Equal(t, float32(1), math.Float32frombits(binary.LittleEndian.Uint32(buf[24:])), "alpha")
	assert.Equal(t, tetris.PieceT.ShapeID(), binary.LittleEndian.Uint32(buf[44:]))

	assert.Equal(t, d, tetris.ReadDrawable(buf))
}

func TestDrawableFields(t *testing.T) {
	locked := tetris.NewDrawable(tetris.PieceZ, tetris.Position{X: 1, Y: 2}, false)

	assert.False(t, locked.Active())
	assert.False(t, locked.Empty())
	assert.Equal(t, tetris.Position{X: 1, Y: 2}, locked.Cell())
	assert.Equal(t, [8]float32{1, 0, 0, 1}, locked.ShapeData)

	assert.True(t, tetris.Drawable{}.Empty())
}
