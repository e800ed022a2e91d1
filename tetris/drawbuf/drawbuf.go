// Package drawbuf keeps a fixed-size drawable buffer in step with the engine's
// snapshots. It mirrors how a GPU storage buffer is updated: either rewritten in
// full with zero padding, or patched at the slot of the active piece.
package drawbuf

import (
	"errors"
	"fmt"

	"github.com/plus3/stackfall/tetris"
)

// Capacity is the default number of drawable slots
const Capacity = 256

// ActiveSlots is the number of slots reserved for the active piece in a partial write
const ActiveSlots = 4

// ErrOverflow is returned when a write does not fit the buffer
var ErrOverflow = errors.New("drawable buffer overflow")

// UploadFunc receives every written byte range, typically to forward it to a GPU
// buffer at the same offset.
type UploadFunc func(offset int, data []byte)

// Stats counts buffer writes
type Stats struct {
	FullWrites    int
	PartialWrites int
	BytesWritten  int
}

// Buffer holds Capacity encoded drawables
type Buffer struct {
	data     []byte
	capacity int
	upload   UploadFunc
	stats    Stats
}

// New creates a zeroed buffer with room for capacity drawables
func New(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = Capacity
	}
	return &Buffer{
		data:     make([]byte, capacity*tetris.DrawableSize),
		capacity: capacity,
	}
}

// OnUpload registers fn to be called with every written range
func (b *Buffer) OnUpload(fn UploadFunc) {
	b.upload = fn
}

// Capacity returns the number of slots
func (b *Buffer) Capacity() int {
	return b.capacity
}

// WriteFull rewrites every slot: ds from slot 0, zeroes after.
func (b *Buffer) WriteFull(ds []tetris.Drawable) error {
	if len(ds) > b.capacity {
		return fmt.Errorf("write %d drawables into %d slots: %w", len(ds), b.capacity, ErrOverflow)
	}

	for i, d := range ds {
		tetris.PutDrawable(b.data[i*tetris.DrawableSize:], d)
	}
	clear(b.data[len(ds)*tetris.DrawableSize:])

	b.stats.FullWrites++
	b.stats.BytesWritten += len(b.data)
	b.emit(0, b.data)
	return nil
}

// WriteAt rewrites pad slots starting at slot: ds first, zeroes for the rest.
// A pad smaller than len(ds) is raised to len(ds).
func (b *Buffer) WriteAt(slot int, ds []tetris.Drawable, pad int) error {
	pad = max(pad, len(ds))
	if slot < 0 || slot+pad > b.capacity {
		return fmt.Errorf("write %d slots at %d into %d slots: %w", pad, slot, b.capacity, ErrOverflow)
	}

	start := slot * tetris.DrawableSize
	end := start + pad*tetris.DrawableSize
	region := b.data[start:end]

	for i, d := range ds {
		tetris.PutDrawable(region[i*tetris.DrawableSize:], d)
	}
	clear(region[len(ds)*tetris.DrawableSize:])

	b.stats.PartialWrites++
	b.stats.BytesWritten += len(region)
	b.emit(start, region)
	return nil
}

// Sync brings the buffer in line with a snapshot. Full rewrite snapshots replace
// everything; otherwise only the active piece is written at its slot.
func (b *Buffer) Sync(s *tetris.Snapshot) error {
	if s.FullRewrite {
		if err := b.WriteFull(s.Drawables); err != nil {
			return fmt.Errorf("sync frame %d: %w", s.HUD.Frame, err)
		}
		return nil
	}

	if err := b.WriteAt(s.LockedCount, s.Active(), ActiveSlots); err != nil {
		return fmt.Errorf("sync frame %d: %w", s.HUD.Frame, err)
	}
	return nil
}

// Drawable decodes one slot
func (b *Buffer) Drawable(slot int) tetris.Drawable {
	return tetris.ReadDrawable(b.data[slot*tetris.DrawableSize:])
}

// Decode returns every non-empty slot in slot order
func (b *Buffer) Decode() []tetris.Drawable {
	out := make([]tetris.Drawable, 0, b.capacity)
	for slot := range b.capacity {
		d := b.Drawable(slot)
		if !d.Empty() {
			out = append(out, d)
		}
	}
	return out
}

// Bytes returns the raw buffer. The slice is reused by later writes.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Stats returns the write counters
func (b *Buffer) Stats() Stats {
	return b.stats
}

func (b *Buffer) emit(offset int, data []byte) {
	if b.upload != nil {
		b.upload(offset, data)
	}
}
