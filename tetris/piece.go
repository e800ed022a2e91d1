package tetris

// PieceState is the lifecycle state of the active piece
type PieceState uint8

const (
	PieceFalling PieceState = iota
	PieceLocked
)

func (s PieceState) String() string {
	if s == PieceLocked {
		return "locked"
	}
	return "falling"
}

// ActivePiece is the single falling piece
type ActivePiece struct {
	Type     PieceType
	Cells    Cells
	Rotation RotationState
	State    PieceState
}

// NewActivePiece returns a falling piece of type t at its spawn layout
func NewActivePiece(t PieceType) ActivePiece {
	return ActivePiece{
		Type:  t,
		Cells: t.StartPositions(),
	}
}

// Locked reports whether the piece has locked
func (p *ActivePiece) Locked() bool {
	return p.State == PieceLocked
}

// MoveLeft shifts the piece one column left. The move is undone if any cell
// would leave the board; occupied cells are not checked.
func (p *ActivePiece) MoveLeft() bool {
	return p.shiftColumns(-1)
}

// MoveRight shifts the piece one column right, see MoveLeft
func (p *ActivePiece) MoveRight() bool {
	return p.shiftColumns(1)
}

func (p *ActivePiece) shiftColumns(dx int) bool {
	if p.Locked() {
		return false
	}
	moved := p.Cells.Shift(dx, 0)
	if !moved.InColumns() {
		return false
	}
	p.Cells = moved
	return true
}

// Fall shifts the piece down one row regardless of board contents.
// It refuses to move below the floor.
func (p *ActivePiece) Fall() bool {
	if p.Locked() {
		return false
	}
	moved := p.Cells.Shift(0, -1)
	if moved.MinY() < 0 {
		return false
	}
	p.Cells = moved
	return true
}

// SoftDrop is the player-triggered one-row descent
func (p *ActivePiece) SoftDrop() bool {
	return p.Fall()
}

// Rotate turns the piece clockwise through the rotation engine. A result that
// leaves the board's rows is discarded.
func (p *ActivePiece) Rotate() bool {
	if p.Locked() {
		return false
	}
	rotated := Rotate(p.Type, p.Cells, p.Rotation)
	if !rotated.InRows() {
		return false
	}
	p.Cells = rotated
	p.Rotation = p.Rotation.Next()
	return true
}

// HardDrop moves the piece down until it is grounded on b and returns the
// number of rows travelled.
func (p *ActivePiece) HardDrop(b *Board) int {
	rows := 0
	for !p.Locked() && !b.Grounded(p.Cells) {
		if !p.Fall() {
			break
		}
		rows++
	}
	return rows
}

// CanLock reports whether the piece satisfies the lock predicate on b
func (p *ActivePiece) CanLock(b *Board) bool {
	return !p.Locked() && b.Grounded(p.Cells)
}

// Lock transitions the piece to its terminal state
func (p *ActivePiece) Lock() {
	p.State = PieceLocked
}
