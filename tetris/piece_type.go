package tetris

import "fmt"

// PieceType identifies one of the seven tetrominoes
type PieceType uint8

const (
	PieceI PieceType = iota
	PieceO
	PieceT
	PieceS
	PieceZ
	PieceJ
	PieceL

	// PieceTypeCount is the number of distinct piece types
	PieceTypeCount = 7
)

// FallbackPiece is returned by an empty queue
const FallbackPiece = PieceI

// Color is an 8-bit RGB triple
type Color struct {
	R, G, B uint8
}

// shapeDef is the static data of one piece type: color, spawn layout and the
// clockwise rotation deltas for each source rotation state.
type shapeDef struct {
	name   string
	color  Color
	spawn  Cells
	deltas [4]Cells
}

// catalog is indexed by PieceType. Spawn layouts follow the guideline placement
// (rows 21-22, columns 3-6). Deltas move cell i from rotation state s to s+1; the
// O piece has none because its rotation is a no-op.
var catalog = [PieceTypeCount]shapeDef{
	PieceI: {
		name:  "I",
		color: Color{0, 255, 255},
		spawn: Cells{{3, 21}, {4, 21}, {5, 21}, {6, 21}},
		deltas: [4]Cells{
			{{2, 1}, {1, 0}, {0, -1}, {-1, -2}},
			{{1, -2}, {0, -1}, {-1, 0}, {-2, 1}},
			{{-2, -1}, {-1, 0}, {0, 1}, {1, 2}},
			{{-1, 2}, {0, 1}, {1, 0}, {2, -1}},
		},
	},
	PieceO: {
		name:  "O",
		color: Color{255, 255, 0},
		spawn: Cells{{4, 22}, {5, 22}, {4, 21}, {5, 21}},
	},
	PieceT: {
		name:  "T",
		color: Color{160, 0, 240},
		spawn: Cells{{3, 21}, {4, 21}, {5, 21}, {4, 22}},
		deltas: [4]Cells{
			{{1, 1}, {0, 0}, {-1, -1}, {1, -1}},
			{{1, -1}, {0, 0}, {-1, 1}, {-1, -1}},
			{{-1, -1}, {0, 0}, {1, 1}, {-1, 1}},
			{{-1, 1}, {0, 0}, {1, -1}, {1, 1}},
		},
	},
	PieceS: {
		name:  "S",
		color: Color{0, 255, 0},
		spawn: Cells{{3, 21}, {4, 21}, {4, 22}, {5, 22}},
		deltas: [4]Cells{
			{{1, 1}, {0, 0}, {1, -1}, {0, -2}},
			{{1, -1}, {0, 0}, {-1, -1}, {-2, 0}},
			{{-1, -1}, {0, 0}, {-1, 1}, {0, 2}},
			{{-1, 1}, {0, 0}, {1, 1}, {2, 0}},
		},
	},
	PieceZ: {
		name:  "Z",
		color: Color{255, 0, 0},
		spawn: Cells{{3, 22}, {4, 22}, {4, 21}, {5, 21}},
		deltas: [4]Cells{
			{{2, 0}, {1, -1}, {0, 0}, {-1, -1}},
			{{0, -2}, {-1, -1}, {0, 0}, {-1, 1}},
			{{-2, 0}, {-1, 1}, {0, 0}, {1, 1}},
			{{0, 2}, {1, 1}, {0, 0}, {1, -1}},
		},
	},
	PieceJ: {
		name:  "J",
		color: Color{0, 0, 255},
		spawn: Cells{{3, 22}, {3, 21}, {4, 21}, {5, 21}},
		deltas: [4]Cells{
			{{2, 0}, {1, 1}, {0, 0}, {-1, -1}},
			{{0, -2}, {1, -1}, {0, 0}, {-1, 1}},
			{{-2, 0}, {-1, -1}, {0, 0}, {1, 1}},
			{{0, 2}, {-1, 1}, {0, 0}, {1, -1}},
		},
	},
	PieceL: {
		name:  "L",
		color: Color{255, 160, 0},
		spawn: Cells{{5, 22}, {3, 21}, {4, 21}, {5, 21}},
		deltas: [4]Cells{
			{{0, -2}, {1, 1}, {0, 0}, {-1, -1}},
			{{-2, 0}, {1, -1}, {0, 0}, {-1, 1}},
			{{0, 2}, {-1, -1}, {0, 0}, {1, 1}},
			{{2, 0}, {-1, 1}, {0, 0}, {1, -1}},
		},
	},
}

// AllPieceTypes lists every piece type in catalog order
func AllPieceTypes() [PieceTypeCount]PieceType {
	return [PieceTypeCount]PieceType{PieceI, PieceO, PieceT, PieceS, PieceZ, PieceJ, PieceL}
}

// Valid reports whether t names a catalog entry
func (t PieceType) Valid() bool {
	return t < PieceTypeCount
}

func (t PieceType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("PieceType(%d)", uint8(t))
	}
	return catalog[t].name
}

// Color returns the piece's display color
func (t PieceType) Color() Color {
	return catalog[t].color
}

// StartPositions returns the spawn layout of the piece
func (t PieceType) StartPositions() Cells {
	return catalog[t].spawn
}

// ShapeID returns the non-zero renderer identifier of the piece type.
// Zero is reserved for empty drawable slots.
func (t PieceType) ShapeID() uint32 {
	return uint32(t) + 1
}

// PieceTypeFromShapeID is the inverse of ShapeID
func PieceTypeFromShapeID(id uint32) (PieceType, bool) {
	if id == 0 || id > PieceTypeCount {
		return 0, false
	}
	return PieceType(id - 1), true
}
