package tetris

import "fmt"

// ClearMode selects what happens to the grid after rows are cleared
type ClearMode uint8

const (
	// ClearClassic re-merges the shifted locked cells right after the wipe
	ClearClassic ClearMode = iota
	// ClearWipe leaves the grid empty until the next board step re-merges it
	ClearWipe
)

func (m ClearMode) String() string {
	switch m {
	case ClearClassic:
		return "classic"
	case ClearWipe:
		return "wipe"
	default:
		return fmt.Sprintf("ClearMode(%d)", uint8(m))
	}
}

// ParseClearMode converts a config value into a ClearMode
func ParseClearMode(s string) (ClearMode, error) {
	switch s {
	case "", "classic":
		return ClearClassic, nil
	case "wipe":
		return ClearWipe, nil
	default:
		return 0, fmt.Errorf("unknown clear mode %q", s)
	}
}

// ClearFullRows removes every full row from the board and the locked pieces.
// Rows are scanned bottom up. Locked cells above each cleared row move down by
// one per cleared row beneath them. When anything was cleared the grid is reset,
// and in ClearClassic mode the remaining locked cells are merged back in.
// Pieces left without cells are deleted and the store is compacted.
// Returns the number of rows cleared.
func ClearFullRows(b *Board, store *PieceStore, mode ClearMode) int {
	var cleared []int

	for y := 0; y < BoardHeight; y++ {
		if !b.RowFull(y) {
			continue
		}
		b.ClearRow(y)
		for piece := range store.Iter() {
			piece.Cells = removeRow(piece.Cells, y)
		}
		cleared = append(cleared, y)
	}

	if len(cleared) == 0 {
		return 0
	}

	for i, row := range cleared {
		threshold := row - i
		for piece := range store.Iter() {
			for j := range piece.Cells {
				if piece.Cells[j].Y > threshold {
					piece.Cells[j].Y--
				}
			}
		}
	}

	b.Reset()
	if mode == ClearClassic {
		MergeStore(b, store)
	}

	if store.Prune() > 0 {
		store.Compact()
	}

	return len(cleared)
}

// MergeStore marks every locked cell in the store as occupied
func MergeStore(b *Board, store *PieceStore) {
	for p := range store.Cells() {
		b.Set(p, true)
	}
}

func removeRow(cells []Position, y int) []Position {
	out := cells[:0]
	for _, p := range cells {
		if p.Y != y {
			out = append(out, p)
		}
	}
	return out
}
