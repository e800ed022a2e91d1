package tetris

import (
	"time"

	"go.uber.org/zap"
)

// GameStatus is whether the game still accepts frames
type GameStatus uint8

const (
	StatusPlaying GameStatus = iota
	StatusGameOver
)

func (s GameStatus) String() string {
	if s == StatusGameOver {
		return "game over"
	}
	return "playing"
}

// Options configures a new game. The zero value is a classic game at level 0
// with a time seeded RNG and no logging.
type Options struct {
	RNG           RNG
	Seed          uint64
	Logger        *zap.Logger
	ClearMode     ClearMode
	StartLevel    uint
	PulseDuration time.Duration
}

// GameState is everything a frame reads and writes. It is handed to every
// system through the UpdateFrame.
type GameState struct {
	Board     Board
	Store     *PieceStore
	Queue     PieceQueue
	Score     ScoreState
	Timer     GravityTimer
	Active    *ActivePiece
	Status    GameStatus
	ClearMode ClearMode
	Pulse     *ClearPulse
	Snapshot  *Snapshot

	rng        RNG
	log        *zap.Logger
	startLevel uint
	forceFull  bool
}

func (g *GameState) reset() {
	g.Board.Reset()
	g.Store.Reset()
	g.Queue.Clear()
	g.Score = ScoreState{Level: g.startLevel}
	g.Timer = NewGravityTimer(g.startLevel)
	g.Active = nil
	g.Status = StatusPlaying
	g.Pulse.Reset()
	g.forceFull = true
	g.Queue.Fill(g.rng)
}

// Game drives a GameState through the frame systems. It is not safe for
// concurrent use.
type Game struct {
	state     *GameState
	scheduler *Scheduler
}

// NewGame creates a game ready for its first Step, which spawns the first piece
func NewGame(opts Options) *Game {
	rng := opts.RNG
	if rng == nil {
		rng = NewRNG(opts.Seed)
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	state := &GameState{
		Store:      NewPieceStore(),
		ClearMode:  opts.ClearMode,
		Pulse:      NewClearPulse(opts.PulseDuration),
		rng:        rng,
		log:        log,
		startLevel: opts.StartLevel,
	}
	state.reset()
	state.Snapshot = buildSnapshot(state, 0, true)

	scheduler := NewScheduler(state)
	for _, system := range DefaultSystems() {
		scheduler.Register(system)
	}

	log.Debug("game created",
		zap.Stringer("clear_mode", opts.ClearMode),
		zap.Uint("start_level", opts.StartLevel),
	)

	return &Game{state: state, scheduler: scheduler}
}

// Step runs one frame of dt seconds with the given input and returns its
// snapshot. InputReset restarts the game before the frame runs. Once the game
// is over Step returns the last snapshot until the game is reset.
func (g *Game) Step(dt float64, in Input) *Snapshot {
	if in.Has(InputReset) {
		g.Reset()
		in &^= InputReset
	}
	if g.state.Status == StatusGameOver {
		return g.state.Snapshot
	}

	g.scheduler.Once(dt, in)
	return g.state.Snapshot
}

// Reset starts a new game with the same options. Subscribers and systems are kept.
func (g *Game) Reset() {
	g.state.reset()
	g.state.Snapshot = buildSnapshot(g.state, g.scheduler.Frames(), true)

	commands := newCommands()
	commands.Emit(Event{
		Kind:  EventReset,
		Frame: g.scheduler.Frames(),
		Level: g.state.startLevel,
	})
	commands.Flush(g.scheduler.listeners)

	g.state.log.Info("game reset")
}

// Subscribe registers a listener for frame events
func (g *Game) Subscribe(l Listener) {
	g.scheduler.Subscribe(l)
}

// AddSystem registers an extra system that runs after the snapshot is built
func (g *Game) AddSystem(s System) {
	g.scheduler.Register(s)
}

// Snapshot returns the latest published snapshot
func (g *Game) Snapshot() *Snapshot {
	return g.state.Snapshot
}

// State exposes the game state for inspection
func (g *Game) State() *GameState {
	return g.state
}

// Scheduler returns the scheduler driving the game
func (g *Game) Scheduler() *Scheduler {
	return g.scheduler
}

// Over reports whether the game has ended
func (g *Game) Over() bool {
	return g.state.Status == StatusGameOver
}
