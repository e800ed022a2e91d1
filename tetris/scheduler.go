package tetris

import (
	"context"
	"reflect"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount int
	Frames      uint64
	Systems     []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler runs the frame's systems in order against one game state and
// delivers the frame's commands once all of them have finished.
type Scheduler struct {
	game        *GameState
	systems     []System
	systemStats []*systemStatsInternal
	listeners   []Listener
	frames      uint64
}

// NewScheduler creates a new scheduler for the given game state.
func NewScheduler(game *GameState) *Scheduler {
	return &Scheduler{
		game:    game,
		systems: make([]System, 0),
	}
}

// Register appends a system. Systems execute in registration order.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        systemType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Subscribe adds a listener that receives every event after its frame settles
func (s *Scheduler) Subscribe(l Listener) {
	s.listeners = append(s.listeners, l)
}

// Once executes all registered systems once with the given delta time and input.
func (s *Scheduler) Once(dt float64, in Input) {
	s.frames++
	frame := newUpdateFrame(s.frames, dt, in, s.game)

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	frame.Commands.Flush(s.listeners)
}

// Run executes all systems repeatedly at the given interval until the context is
// cancelled. Each frame's input is taken from source; a nil source sends no input.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration, source InputSource) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now

			in := InputNone
			if source != nil {
				in = source.NextInput()
			}
			s.Once(dt, in)
		}
	}
}

// Frames returns the number of frames executed so far
func (s *Scheduler) Frames() uint64 {
	return s.frames
}

// Stats returns statistics about system execution.
func (s *Scheduler) Stats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Frames:      s.frames,
		Systems:     make([]SystemStats, len(s.systemStats)),
	}

	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		minDuration := internal.minDuration
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		} else {
			minDuration = 0
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
	}

	return stats
}
