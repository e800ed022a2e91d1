package tetris

import (
	"iter"

	"github.com/kamstrup/intmap"
)

// PieceID identifies a locked piece for as long as it stays in the store
type PieceID uint32

// LockedPiece is a piece that has been merged into the board. It keeps its own
// cells so line clears can remove and shift them.
type LockedPiece struct {
	ID    PieceID
	Type  PieceType
	Cells []Position
}

const (
	storeBlockSize = 64
)

// PieceStore holds locked pieces in fixed-size blocks. Slots are stable until
// Compact is called; deleted slots are reused by later inserts.
type PieceStore struct {
	blocks    [][storeBlockSize]LockedPiece
	filled    [][storeBlockSize]bool
	freeSlots []int
	nextIndex int
	nextID    PieceID
	slots     *intmap.Map[PieceID, int]
}

// NewPieceStore creates an empty store
func NewPieceStore() *PieceStore {
	return &PieceStore{
		slots: intmap.New[PieceID, int](64),
	}
}

// Insert stores a locked piece with a copy of the given cells and returns its ID
func (s *PieceStore) Insert(t PieceType, cells []Position) PieceID {
	s.nextID++
	id := s.nextID

	piece := LockedPiece{
		ID:    id,
		Type:  t,
		Cells: append([]Position(nil), cells...),
	}

	var index int
	if len(s.freeSlots) > 0 {
		index = s.freeSlots[len(s.freeSlots)-1]
		s.freeSlots = s.freeSlots[:len(s.freeSlots)-1]
	} else {
		index = s.nextIndex
		s.nextIndex++
		if index/storeBlockSize >= len(s.blocks) {
			s.blocks = append(s.blocks, [storeBlockSize]LockedPiece{})
			s.filled = append(s.filled, [storeBlockSize]bool{})
		}
	}

	blockIdx := index / storeBlockSize
	slotIdx := index % storeBlockSize
	s.blocks[blockIdx][slotIdx] = piece
	s.filled[blockIdx][slotIdx] = true
	s.slots.Put(id, index)

	return id
}

// Get returns the piece with the given ID, or nil
func (s *PieceStore) Get(id PieceID) *LockedPiece {
	index, ok := s.slots.Get(id)
	if !ok {
		return nil
	}
	return &s.blocks[index/storeBlockSize][index%storeBlockSize]
}

// Delete removes a piece. Unknown IDs are ignored.
func (s *PieceStore) Delete(id PieceID) {
	index, ok := s.slots.Get(id)
	if !ok {
		return
	}

	blockIdx := index / storeBlockSize
	slotIdx := index % storeBlockSize
	s.filled[blockIdx][slotIdx] = false
	s.blocks[blockIdx][slotIdx] = LockedPiece{}
	s.freeSlots = append(s.freeSlots, index)
	s.slots.Del(id)
}

// Len returns the number of stored pieces
func (s *PieceStore) Len() int {
	return s.slots.Len()
}

// Iter yields every stored piece in slot order. Callers may modify the cells of
// the yielded pieces but must not insert or delete while iterating.
func (s *PieceStore) Iter() iter.Seq[*LockedPiece] {
	return func(yield func(*LockedPiece) bool) {
		for i := 0; i < s.nextIndex; i++ {
			blockIdx := i / storeBlockSize
			slotIdx := i % storeBlockSize

			if !s.filled[blockIdx][slotIdx] {
				continue
			}
			if !yield(&s.blocks[blockIdx][slotIdx]) {
				return
			}
		}
	}
}

// Cells yields every cell of every stored piece
func (s *PieceStore) Cells() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for piece := range s.Iter() {
			for _, p := range piece.Cells {
				if !yield(p) {
					return
				}
			}
		}
	}
}

// Prune deletes every piece with no cells left and returns how many were removed
func (s *PieceStore) Prune() int {
	var empty []PieceID
	for piece := range s.Iter() {
		if len(piece.Cells) == 0 {
			empty = append(empty, piece.ID)
		}
	}
	for _, id := range empty {
		s.Delete(id)
	}
	return len(empty)
}

// Compact moves pieces into contiguous slots, preserving their order.
// Returns the old-to-new slot mapping.
func (s *PieceStore) Compact() map[int]int {
	indexMap := make(map[int]int)

	total := s.Len()
	if total == 0 {
		s.blocks = nil
		s.filled = nil
		s.freeSlots = nil
		s.nextIndex = 0
		s.slots.Clear()
		return indexMap
	}

	numBlocks := (total + storeBlockSize - 1) / storeBlockSize
	newBlocks := make([][storeBlockSize]LockedPiece, numBlocks)
	newFilled := make([][storeBlockSize]bool, numBlocks)

	writePos := 0
	for readIdx := 0; readIdx < s.nextIndex; readIdx++ {
		readBlockIdx := readIdx / storeBlockSize
		readSlotIdx := readIdx % storeBlockSize

		if !s.filled[readBlockIdx][readSlotIdx] {
			continue
		}

		piece := s.blocks[readBlockIdx][readSlotIdx]
		newBlocks[writePos/storeBlockSize][writePos%storeBlockSize] = piece
		newFilled[writePos/storeBlockSize][writePos%storeBlockSize] = true
		s.slots.Put(piece.ID, writePos)
		indexMap[readIdx] = writePos
		writePos++
	}

	s.blocks = newBlocks
	s.filled = newFilled
	s.freeSlots = nil
	s.nextIndex = writePos

	return indexMap
}

// Reset drops every piece. IDs keep increasing across resets.
func (s *PieceStore) Reset() {
	s.blocks = nil
	s.filled = nil
	s.freeSlots = nil
	s.nextIndex = 0
	s.slots.Clear()
}

// StoreStats summarizes the store for diagnostics
type StoreStats struct {
	PieceCount  int
	CellCount   int
	SlotCount   int
	FreeSlots   int
	BlockCount  int
	PerType     [PieceTypeCount]int
	LastPieceID PieceID
}

// Stats collects a snapshot of the store's layout
func (s *PieceStore) Stats() StoreStats {
	stats := StoreStats{
		PieceCount:  s.Len(),
		SlotCount:   s.nextIndex,
		FreeSlots:   len(s.freeSlots),
		BlockCount:  len(s.blocks),
		LastPieceID: s.nextID,
	}
	for piece := range s.Iter() {
		stats.CellCount += len(piece.Cells)
		if piece.Type.Valid() {
			stats.PerType[piece.Type]++
		}
	}
	return stats
}
