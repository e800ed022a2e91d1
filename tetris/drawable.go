package tetris

import (
	"encoding/binary"
	"math"
)

// DrawableSize is the encoded size of one Drawable in bytes
const DrawableSize = 48

const (
	layerLocked = 0
	layerActive = 1
)

// Drawable is one renderable cell. The encoded layout matches a GPU storage
// buffer element: Position, ShapeData and Shape, little endian, no padding.
type Drawable struct {
	Position  [3]float32
	ShapeData [8]float32
	Shape     uint32
}

// NewDrawable returns the drawable of one cell of a piece of type t
func NewDrawable(t PieceType, p Position, active bool) Drawable {
	z := float32(layerLocked)
	if active {
		z = layerActive
	}
	c := t.Color()
	return Drawable{
		Position: [3]float32{float32(p.X), float32(p.Y), z},
		ShapeData: [8]float32{
			float32(c.R) / 255,
			float32(c.G) / 255,
			float32(c.B) / 255,
			1,
		},
		Shape: t.ShapeID(),
	}
}

// Empty reports whether the drawable is a zeroed slot
func (d Drawable) Empty() bool {
	return d.Shape == 0
}

// Cell returns the board cell the drawable covers
func (d Drawable) Cell() Position {
	return Position{X: int(d.Position[0]), Y: int(d.Position[1])}
}

// Active reports whether the drawable belongs to the falling piece
func (d Drawable) Active() bool {
	return d.Position[2] == layerActive
}

// PutDrawable encodes d into the first DrawableSize bytes of buf
func PutDrawable(buf []byte, d Drawable) {
	_ = buf[DrawableSize-1]
	off := 0
	for _, v := range d.Position {
		binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(v))
		off += 4
	}
	for _, v := range d.ShapeData {
		binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(v))
		off += 4
	}
	binary.LittleEndian.PutUint32(buf[off:], d.Shape)
}

// ReadDrawable decodes a drawable from the first DrawableSize bytes of buf
func ReadDrawable(buf []byte) Drawable {
	_ = buf[DrawableSize-1]
	var d Drawable
	off := 0
	for i := range d.Position {
		d.Position[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
		off += 4
	}
	for i := range d.ShapeData {
		d.ShapeData[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
		off += 4
	}
	d.Shape = binary.LittleEndian.Uint32(buf[off:])
	return d
}

// AppendDrawables appends the encoding of ds to buf
func AppendDrawables(buf []byte, ds []Drawable) []byte {
	for _, d := range ds {
		start := len(buf)
		buf = append(buf, make([]byte, DrawableSize)...)
		PutDrawable(buf[start:], d)
	}
	return buf
}
