package tetris

// EventKind identifies what happened in a frame
type EventKind uint8

const (
	EventPieceSpawned EventKind = iota
	EventPieceLocked
	EventLinesCleared
	EventLevelUp
	EventGameOver
	EventReset
)

var eventNames = [...]string{
	EventPieceSpawned: "piece_spawned",
	EventPieceLocked:  "piece_locked",
	EventLinesCleared: "lines_cleared",
	EventLevelUp:      "level_up",
	EventGameOver:     "game_over",
	EventReset:        "reset",
}

func (k EventKind) String() string {
	if int(k) < len(eventNames) {
		return eventNames[k]
	}
	return "unknown"
}

// Event is delivered to subscribers once the frame that produced it has settled.
// Only the fields relevant to Kind are set.
type Event struct {
	Kind  EventKind
	Frame uint64
	Piece PieceType
	Lines int
	Score uint
	Level uint
}

// Listener receives events after each frame
type Listener func(Event)
