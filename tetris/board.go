package tetris

const (
	BoardWidth    = 10
	BoardHeight   = 40
	VisibleHeight = 20
)

// Board is the occupancy grid. Rows at and above VisibleHeight are the hidden
// buffer pieces spawn into.
type Board struct {
	field [BoardHeight][BoardWidth]bool
}

func inBounds(p Position) bool {
	return p.X >= 0 && p.X < BoardWidth && p.Y >= 0 && p.Y < BoardHeight
}

// Occupied reports whether the cell at p is filled. Out-of-range cells are empty.
func (b *Board) Occupied(p Position) bool {
	if !inBounds(p) {
		return false
	}
	return b.field[p.Y][p.X]
}

// Set marks a single cell. Out-of-range cells are ignored.
func (b *Board) Set(p Position, occupied bool) {
	if !inBounds(p) {
		return
	}
	b.field[p.Y][p.X] = occupied
}

// Merge marks every given cell as occupied
func (b *Board) Merge(cells ...Position) {
	for _, p := range cells {
		b.Set(p, true)
	}
}

// RowFull reports whether all cells of row y are occupied
func (b *Board) RowFull(y int) bool {
	if y < 0 || y >= BoardHeight {
		return false
	}
	for _, filled := range b.field[y] {
		if !filled {
			return false
		}
	}
	return true
}

// FullRows returns the indices of all full rows in ascending order
func (b *Board) FullRows() []int {
	var rows []int
	for y := 0; y < BoardHeight; y++ {
		if b.RowFull(y) {
			rows = append(rows, y)
		}
	}
	return rows
}

// ClearRow empties row y
func (b *Board) ClearRow(y int) {
	if y < 0 || y >= BoardHeight {
		return
	}
	b.field[y] = [BoardWidth]bool{}
}

// Reset empties the whole grid
func (b *Board) Reset() {
	b.field = [BoardHeight][BoardWidth]bool{}
}

// Collides reports whether any of the cells is already occupied
func (b *Board) Collides(cells Cells) bool {
	for _, p := range cells {
		if b.Occupied(p) {
			return true
		}
	}
	return false
}

// Grounded is the lock predicate: some cell rests on the floor or directly on
// an occupied cell.
func (b *Board) Grounded(cells Cells) bool {
	for _, p := range cells {
		if p.Y <= 0 || b.Occupied(p.Add(0, -1)) {
			return true
		}
	}
	return false
}

// Count returns the number of occupied cells
func (b *Board) Count() int {
	n := 0
	for y := range b.field {
		for _, filled := range b.field[y] {
			if filled {
				n++
			}
		}
	}
	return n
}

// Rows returns a copy of the grid, row 0 first
func (b *Board) Rows() [BoardHeight][BoardWidth]bool {
	return b.field
}
