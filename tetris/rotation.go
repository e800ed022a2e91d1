package tetris

// RotationState is the orientation of a piece relative to its spawn layout
type RotationState uint8

const (
	Rotation0 RotationState = iota
	Rotation90
	Rotation180
	Rotation270
)

// Next returns the next clockwise state. There is no counter-clockwise transform.
func (r RotationState) Next() RotationState {
	return (r + 1) % 4
}

// Degrees returns the clockwise angle of the state
func (r RotationState) Degrees() int {
	return int(r%4) * 90
}

// Rotate applies the clockwise transition out of state from to the cells of a
// piece of type t. The result is shifted back inside the board columns one step
// at a time; rows and board contents are not checked.
func Rotate(t PieceType, cells Cells, from RotationState) Cells {
	if t == PieceO || !t.Valid() {
		return cells
	}

	delta := catalog[t].deltas[from%4]
	for i := range cells {
		cells[i] = cells[i].Add(delta[i].X, delta[i].Y)
	}

	return clampColumns(cells)
}

// clampColumns shifts the cells right while any is left of column 0, then left
// while any is right of the last column.
func clampColumns(cells Cells) Cells {
	for cells.MinX() < 0 {
		cells = cells.Shift(1, 0)
	}
	for cells.MaxX() > BoardWidth-1 {
		cells = cells.Shift(-1, 0)
	}
	return cells
}
