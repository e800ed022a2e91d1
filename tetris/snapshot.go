package tetris

// NextPreview is how many upcoming pieces the HUD shows
const NextPreview = 3

// HUD is the text-level state of a frame
type HUD struct {
	Frame  uint64
	Score  uint
	Goal   uint
	Level  uint
	Lines  uint
	Next   []PieceType
	Status GameStatus
	Pulse  float32
}

// Snapshot is the settled, renderable state published once per frame. It owns
// its slices and stays valid after later steps.
type Snapshot struct {
	// Drawables lists the visible locked cells in store order, then the visible
	// cells of the active piece.
	Drawables []Drawable
	// LockedCount is the number of locked drawables, which is also the slot the
	// active piece starts at.
	LockedCount int
	// FullRewrite is set when the locked drawables changed this frame.
	FullRewrite bool
	HUD         HUD
}

// Locked returns the locked part of Drawables
func (s *Snapshot) Locked() []Drawable {
	return s.Drawables[:s.LockedCount]
}

// Active returns the active piece's part of Drawables
func (s *Snapshot) Active() []Drawable {
	return s.Drawables[s.LockedCount:]
}

// NextPiece returns the first upcoming piece, if any
func (h HUD) NextPiece() (PieceType, bool) {
	if len(h.Next) == 0 {
		return 0, false
	}
	return h.Next[0], true
}

func buildSnapshot(g *GameState, frame uint64, full bool) *Snapshot {
	snap := &Snapshot{
		Drawables:   make([]Drawable, 0, g.Store.Len()*4+4),
		FullRewrite: full,
		HUD: HUD{
			Frame:  frame,
			Score:  g.Score.Score,
			Goal:   g.Score.Goal(),
			Level:  g.Score.Level,
			Lines:  g.Score.Lines,
			Next:   g.Queue.Upcoming(NextPreview),
			Status: g.Status,
			Pulse:  g.Pulse.Value(),
		},
	}

	for piece := range g.Store.Iter() {
		for _, p := range piece.Cells {
			if p.Y < VisibleHeight {
				snap.Drawables = append(snap.Drawables, NewDrawable(piece.Type, p, false))
			}
		}
	}
	snap.LockedCount = len(snap.Drawables)

	if g.Active != nil {
		for _, p := range g.Active.Cells {
			if p.Y < VisibleHeight {
				snap.Drawables = append(snap.Drawables, NewDrawable(g.Active.Type, p, true))
			}
		}
	}

	return snap
}
