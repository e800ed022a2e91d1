package tetris

import (
	"math/rand/v2"
	"time"
)

// RNG is the randomness the bag randomizer draws from.
// UintN returns a uniform value in [0, n). *rand.Rand satisfies it.
type RNG interface {
	UintN(n uint) uint
}

// NewRNG returns a PCG-backed RNG. A zero seed is replaced by the current time.
func NewRNG(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// QueueLowWater is the length under which the queue is refilled
const QueueLowWater = 2

// PieceQueue is the ordered sequence of upcoming pieces
type PieceQueue struct {
	items []PieceType
}

// Fill appends one bag: a random permutation of all seven piece types
func (q *PieceQueue) Fill(rng RNG) {
	bag := AllPieceTypes()
	remaining := bag[:]

	for range PieceTypeCount {
		idx := rng.UintN(uint(len(remaining)))
		q.items = append(q.items, remaining[idx])
		remaining = append(remaining[:idx], remaining[idx+1:]...)
	}
}

// TopUp refills the queue if it holds fewer than QueueLowWater pieces.
// Returns true if a bag was added.
func (q *PieceQueue) TopUp(rng RNG) bool {
	if len(q.items) >= QueueLowWater {
		return false
	}
	q.Fill(rng)
	return true
}

// Pop removes and returns the head of the queue, or FallbackPiece if it is empty
func (q *PieceQueue) Pop() PieceType {
	if len(q.items) == 0 {
		return FallbackPiece
	}
	head := q.items[0]
	q.items = q.items[1:]
	return head
}

// Peek returns the head of the queue without removing it
func (q *PieceQueue) Peek() (PieceType, bool) {
	if len(q.items) == 0 {
		return 0, false
	}
	return q.items[0], true
}

// Upcoming returns a copy of at most n queued pieces
func (q *PieceQueue) Upcoming(n int) []PieceType {
	n = min(n, len(q.items))
	out := make([]PieceType, n)
	copy(out, q.items[:n])
	return out
}

// Len returns the number of queued pieces
func (q *PieceQueue) Len() int {
	return len(q.items)
}

// Clear drops every queued piece
func (q *PieceQueue) Clear() {
	q.items = q.items[:0]
}
