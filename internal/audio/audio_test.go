package audio

import (
	"math"
	"testing"

	"github.com/gopxl/beep"
	"go.uber.org/zap"

	"github.com/plus3/stackfall/internal/config"
	"github.com/plus3/stackfall/tetris"
)

func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			break
		}
		if len(out) > 10*44100 {
			t.Fatal("cue did not terminate")
		}
	}
	if s.Err() != nil {
		t.Errorf("Expected no error, got: %v", s.Err())
	}
	return out
}

func TestSynthLength(t *testing.T) {
	rate := beep.SampleRate(44100)

	for _, cue := range []Cue{CueLock, CueClear, CueTetris, CueLevelUp, CueGameOver} {
		t.Run(cue.String(), func(t *testing.T) {
			s, err := Synth(cue, rate, 1)
			if err != nil {
				t.Fatalf("synth: %v", err)
			}

			samples := drain(t, s)
			if len(samples) != cue.Length(rate) {
				t.Errorf("Expected %d samples, got %d", cue.Length(rate), len(samples))
			}

			peak := 0.0
			for i, sm := range samples {
				if sm[0] < -1.0 || sm[0] > 1.0 {
					t.Fatalf("Sample %d out of range: %f", i, sm[0])
				}
				peak = math.Max(peak, math.Abs(sm[0]))
			}
			if peak == 0 {
				t.Error("Expected audible samples")
			}
		})
	}
}

func TestSynthSilentAtZeroVolume(t *testing.T) {
	s, err := Synth(CueClear, beep.SampleRate(22050), 0)
	if err != nil {
		t.Fatalf("synth: %v", err)
	}
	for i, sm := range drain(t, s) {
		if sm[0] != 0 || sm[1] != 0 {
			t.Fatalf("Sample %d should be silent, got %v", i, sm)
		}
	}
}

func TestSynthUnknownCue(t *testing.T) {
	if _, err := Synth(CueNone, beep.SampleRate(44100), 1); err == nil {
		t.Error("Expected an error for a cue without notes")
	}
}

func TestCueFor(t *testing.T) {
	tests := []struct {
		event tetris.Event
		cue   Cue
	}{
		{tetris.Event{Kind: tetris.EventPieceSpawned}, CueNone},
		{tetris.Event{Kind: tetris.EventPieceLocked}, CueLock},
		{tetris.Event{Kind: tetris.EventLinesCleared, Lines: 2}, CueClear},
		{tetris.Event{Kind: tetris.EventLinesCleared, Lines: 4}, CueTetris},
		{tetris.Event{Kind: tetris.EventLevelUp}, CueLevelUp},
		{tetris.Event{Kind: tetris.EventGameOver}, CueGameOver},
		{tetris.Event{Kind: tetris.EventReset}, CueNone},
	}

	for _, tt := range tests {
		if got := CueFor(tt.event); got != tt.cue {
			t.Errorf("%s: expected %s, got %s", tt.event.Kind, tt.cue, got)
		}
	}
}

func TestDisabledPlayerCountsCues(t *testing.T) {
	p, err := New(config.AudioConfig{Enabled: false, Volume: 0.5, SampleRate: 44100}, zap.NewNop())
	if err != nil {
		t.Fatalf("new player: %v", err)
	}
	defer p.Close()

	game := tetris.NewGame(tetris.Options{Seed: 5})
	game.Subscribe(p.Listener())

	game.Step(0, tetris.InputNone)
	game.Step(0, tetris.InputHardDrop)

	if p.Played(CueLock) != 1 {
		t.Errorf("Expected one lock cue, got %d", p.Played(CueLock))
	}
	if p.Played(CueNone) != 0 {
		t.Errorf("Silent events must not be counted")
	}
}
