package tetris

// UpdateFrame carries one frame's inputs and the shared game state through every
// system.
type UpdateFrame struct {
	Number    uint64
	DeltaTime float64
	Input     Input
	Game      *GameState
	Commands  *Commands

	descended bool
	locked    *ActivePiece
	cleared   int
}

func newUpdateFrame(number uint64, dt float64, in Input, game *GameState) *UpdateFrame {
	return &UpdateFrame{
		Number:    number,
		DeltaTime: dt,
		Input:     in,
		Game:      game,
		Commands:  newCommands(),
	}
}

// Descended reports whether the active piece already moved down this frame
func (f *UpdateFrame) Descended() bool {
	return f.descended
}

// MarkDescended records a downward move so gravity skips this frame
func (f *UpdateFrame) MarkDescended() {
	f.descended = true
}

// Cleared returns the number of rows the board step cleared this frame
func (f *UpdateFrame) Cleared() int {
	return f.cleared
}
