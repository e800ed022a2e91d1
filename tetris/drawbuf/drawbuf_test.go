package drawbuf_test

import (
	"errors"
	"testing"

	"github.com/plus3/stackfall/tetris"
	"github.com/plus3/stackfall/tetris/drawbuf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drawables(n int, active bool) []tetris.Drawable {
	out := make([]tetris.Drawable, n)
	for i := range out {
		out[i] = tetris.NewDrawable(tetris.PieceType(i%tetris.PieceTypeCount), tetris.Position{X: i % 10, Y: i / 10}, active)
	}
	return out
}

func TestWriteFullPads(t *testing.T) {
	buf := drawbuf.New(16)

	require.NoError(t, buf.WriteFull(drawables(10, false)))
	require.NoError(t, buf.WriteFull(drawables(3, false)))

	assert.Len(t, buf.Decode(), 3)
	assert.True(t, buf.Drawable(3).Empty())
	assert.Equal(t, 2, buf.Stats().FullWrites)
}

func TestWriteAt(t *testing.T) {
	buf := drawbuf.New(16)
	require.NoError(t, buf.WriteFull(drawables(6, false)))

	active := drawables(2, true)
	require.NoError(t, buf.WriteAt(4, active, 4))

	decoded := buf.Decode()
	require.Len(t, decoded, 6)
	assert.Equal(t, active, decoded[4:])
	assert.True(t, buf.Drawable(7).Empty())

	var offsets []int
	buf.OnUpload(func(offset int, data []byte) {
		offsets = append(offsets, offset)
		assert.Len(t, data, 4*tetris.DrawableSize)
	})
	require.NoError(t, buf.WriteAt(2, nil, 4))
	assert.Equal(t, []int{2 * tetris.DrawableSize}, offsets)
	assert.Len(t, buf.Decode(), 2)
}

func TestOverflow(t *testing.T) {
	buf := drawbuf.New(4)

	err := buf.WriteFull(drawables(5, false))
	assert.True(t, errors.Is(err, drawbuf.ErrOverflow))

	err = buf.WriteAt(2, drawables(1, true), 4)
	assert.ErrorIs(t, err, drawbuf.ErrOverflow)

	err = buf.WriteAt(-1, nil, 1)
	assert.ErrorIs(t, err, drawbuf.ErrOverflow)
}

// A frontend that only ever applies Sync must end up with the same visible set as
// one that rewrites the whole buffer every frame.
func TestSyncMatchesFullRewrite(t *testing.T) {
	for _, mode := range []tetris.ClearMode{tetris.ClearClassic, tetris.ClearWipe} {
		t.Run(mode.String(), func(t *testing.T) {
			game := tetris.NewGame(tetris.Options{Seed: 11, ClearMode: mode})
			rng := tetris.NewRNG(99)

			synced := drawbuf.New(drawbuf.Capacity)
			full := drawbuf.New(drawbuf.Capacity)

			inputs := []tetris.Input{
				tetris.InputNone, tetris.InputLeft, tetris.InputRight,
				tetris.InputSoftDrop, tetris.InputRotate, tetris.InputHardDrop,
			}

			for frame := range 3000 {
				in := inputs[rng.UintN(uint(len(inputs)))]
				if frame%500 == 499 {
					in |= tetris.InputReset
				}
				snap := game.Step(1.0/30, in)

				require.NoError(t, synced.Sync(snap))
				require.NoError(t, full.WriteFull(snap.Drawables))

				require.Equal(t, full.Decode(), synced.Decode(), "frame %d", frame)
				require.Equal(t, snap.Drawables, synced.Decode(), "frame %d", frame)
			}

			assert.Positive(t, synced.Stats().PartialWrites)
			assert.Positive(t, synced.Stats().FullWrites)
		})
	}
}
