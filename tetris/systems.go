package tetris

import "go.uber.org/zap"

// DefaultSystems returns the frame phases in execution order
func DefaultSystems() []System {
	return []System{
		&InputSystem{},
		&GravitySystem{},
		&LockSystem{},
		&BoardSystem{},
		&ScoreSystem{},
		&SpawnSystem{},
		&SnapshotSystem{},
	}
}

func playing(frame *UpdateFrame) bool {
	return frame.Game.Status == StatusPlaying
}

// InputSystem applies the frame's discrete actions to the active piece in a
// fixed order: horizontal moves, soft drop, rotation, hard drop.
type InputSystem struct {
	Moves     int64
	Rotations int64
	Drops     int64
}

func (s *InputSystem) Execute(frame *UpdateFrame) {
	g := frame.Game
	if !playing(frame) || g.Active == nil || frame.Input == InputNone {
		return
	}
	piece := g.Active

	if frame.Input.Has(InputLeft) && piece.MoveLeft() {
		s.Moves++
	}
	if frame.Input.Has(InputRight) && piece.MoveRight() {
		s.Moves++
	}
	if frame.Input.Has(InputSoftDrop) {
		if piece.SoftDrop() {
			frame.MarkDescended()
		}
	}
	if frame.Input.Has(InputRotate) && piece.Rotate() {
		s.Rotations++
	}
	if frame.Input.Has(InputHardDrop) {
		rows := piece.HardDrop(&g.Board)
		frame.MarkDescended()
		s.Drops++
		g.log.Debug("hard drop", zap.Stringer("piece", piece.Type), zap.Int("rows", rows))
	}
}

// GravitySystem advances the gravity timer and drops the piece one row when it
// fires, unless the piece already moved down this frame.
type GravitySystem struct {
	Steps int64
}

func (s *GravitySystem) Execute(frame *UpdateFrame) {
	g := frame.Game
	if !playing(frame) || g.Active == nil {
		return
	}

	if !g.Timer.Tick(frame.DeltaTime) || frame.Descended() {
		return
	}
	if g.Active.Fall() {
		frame.MarkDescended()
		s.Steps++
	}
}

// LockSystem locks the active piece once it rests on the floor or on a locked cell
type LockSystem struct{}

func (s *LockSystem) Execute(frame *UpdateFrame) {
	g := frame.Game
	if !playing(frame) || g.Active == nil || !g.Active.CanLock(&g.Board) {
		return
	}

	g.Active.Lock()
	frame.locked = g.Active
	frame.Commands.Emit(Event{
		Kind:  EventPieceLocked,
		Frame: frame.Number,
		Piece: g.Active.Type,
	})
	g.log.Debug("piece locked",
		zap.Stringer("piece", g.Active.Type),
		zap.Int("top", g.Active.Cells.MaxY()),
	)
}

// BoardSystem moves a freshly locked piece into the store, merges every locked
// cell into the grid and clears full rows.
type BoardSystem struct {
	Cleared int64
}

func (s *BoardSystem) Execute(frame *UpdateFrame) {
	g := frame.Game

	if frame.locked != nil {
		g.Store.Insert(frame.locked.Type, frame.locked.Cells[:])
		g.Active = nil
	}

	MergeStore(&g.Board, g.Store)

	n := ClearFullRows(&g.Board, g.Store, g.ClearMode)
	if n == 0 {
		return
	}

	frame.cleared = n
	s.Cleared += int64(n)
	frame.Commands.Emit(Event{
		Kind:  EventLinesCleared,
		Frame: frame.Number,
		Lines: n,
	})
	g.log.Info("lines cleared",
		zap.Int("rows", n),
		zap.Stringer("mode", g.ClearMode),
		zap.Int("pieces", g.Store.Len()),
	)
}

// ScoreSystem awards the frame's clear, retunes gravity on level up and starts
// the clear pulse.
type ScoreSystem struct{}

func (s *ScoreSystem) Execute(frame *UpdateFrame) {
	g := frame.Game
	n := frame.Cleared()
	if n == 0 {
		return
	}

	g.Pulse.Trigger(n)
	if !g.Score.Increase(n) {
		return
	}

	g.Timer.Retune(g.Score.Level)
	frame.Commands.Emit(Event{
		Kind:  EventLevelUp,
		Frame: frame.Number,
		Level: g.Score.Level,
		Score: g.Score.Score,
	})
	g.log.Info("level up",
		zap.Uint("level", g.Score.Level),
		zap.Float64("gravity", g.Timer.Period()),
	)
}

// SpawnSystem brings in the next piece when none is active. A spawn layout that
// overlaps the stack ends the game.
type SpawnSystem struct {
	Spawned int64
}

func (s *SpawnSystem) Execute(frame *UpdateFrame) {
	g := frame.Game
	if !playing(frame) || g.Active != nil {
		return
	}

	g.Queue.TopUp(g.rng)
	t := g.Queue.Pop()
	g.Queue.TopUp(g.rng)

	piece := NewActivePiece(t)
	if g.Board.Collides(piece.Cells) {
		g.Status = StatusGameOver
		frame.Commands.Emit(Event{
			Kind:  EventGameOver,
			Frame: frame.Number,
			Piece: t,
			Score: g.Score.Score,
			Level: g.Score.Level,
		})
		g.log.Info("game over",
			zap.Uint("score", g.Score.Score),
			zap.Uint("level", g.Score.Level),
			zap.Uint("lines", g.Score.Lines),
			zap.Uint64("frame", frame.Number),
		)
		return
	}

	g.Active = &piece
	s.Spawned++
	frame.Commands.Emit(Event{
		Kind:  EventPieceSpawned,
		Frame: frame.Number,
		Piece: t,
	})
	g.log.Debug("piece spawned", zap.Stringer("piece", t), zap.Int("queued", g.Queue.Len()))
}

// SnapshotSystem advances the clear pulse and publishes the frame's snapshot
type SnapshotSystem struct{}

func (s *SnapshotSystem) Execute(frame *UpdateFrame) {
	g := frame.Game

	if frame.Cleared() == 0 {
		g.Pulse.Update(frame.DeltaTime)
	}

	full := g.forceFull || frame.locked != nil || frame.Cleared() > 0
	g.forceFull = false
	g.Snapshot = buildSnapshot(g, frame.Number, full)
}
