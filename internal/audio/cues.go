package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/plus3/stackfall/tetris"
)

// Cue is a short synthesized sound bound to a game event
type Cue int

const (
	CueNone Cue = iota
	CueLock
	CueClear
	CueTetris
	CueLevelUp
	CueGameOver
)

var cueNames = [...]string{"none", "lock", "clear", "tetris", "level_up", "game_over"}

func (c Cue) String() string {
	if c >= 0 && int(c) < len(cueNames) {
		return cueNames[c]
	}
	return fmt.Sprintf("Cue(%d)", int(c))
}

// note is one tone of a cue; a zero frequency is a rest
type note struct {
	freq     float64
	duration time.Duration
}

var cueNotes = map[Cue][]note{
	CueLock: {
		{freq: 196.00, duration: 40 * time.Millisecond},
	},
	CueClear: {
		{freq: 523.25, duration: 70 * time.Millisecond},
		{freq: 659.25, duration: 90 * time.Millisecond},
	},
	CueTetris: {
		{freq: 523.25, duration: 60 * time.Millisecond},
		{freq: 659.25, duration: 60 * time.Millisecond},
		{freq: 783.99, duration: 60 * time.Millisecond},
		{freq: 1046.50, duration: 160 * time.Millisecond},
	},
	CueLevelUp: {
		{freq: 783.99, duration: 80 * time.Millisecond},
		{duration: 30 * time.Millisecond},
		{freq: 1046.50, duration: 80 * time.Millisecond},
		{duration: 30 * time.Millisecond},
		{freq: 1318.51, duration: 140 * time.Millisecond},
	},
	CueGameOver: {
		{freq: 392.00, duration: 160 * time.Millisecond},
		{freq: 311.13, duration: 160 * time.Millisecond},
		{freq: 261.63, duration: 320 * time.Millisecond},
	},
}

// CueFor maps an event to its cue. Spawns and resets are silent.
func CueFor(ev tetris.Event) Cue {
	switch ev.Kind {
	case tetris.EventPieceLocked:
		return CueLock
	case tetris.EventLinesCleared:
		if ev.Lines >= 4 {
			return CueTetris
		}
		return CueClear
	case tetris.EventLevelUp:
		return CueLevelUp
	case tetris.EventGameOver:
		return CueGameOver
	default:
		return CueNone
	}
}

// Length returns the number of samples the cue streams at rate
func (c Cue) Length(rate beep.SampleRate) int {
	n := 0
	for _, nt := range cueNotes[c] {
		n += rate.N(nt.duration)
	}
	return n
}

// Synth builds the finite streamer of a cue at the given volume in [0,1]
func Synth(c Cue, rate beep.SampleRate, volume float64) (beep.Streamer, error) {
	notes, ok := cueNotes[c]
	if !ok {
		return nil, fmt.Errorf("no sound for cue %s", c)
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, nt := range notes {
		n := rate.N(nt.duration)
		if nt.freq == 0 {
			parts = append(parts, beep.Silence(n))
			continue
		}

		tone, err := generators.SineTone(rate, nt.freq)
		if err != nil {
			return nil, fmt.Errorf("synth %s at %.2f Hz: %w", c, nt.freq, err)
		}
		parts = append(parts, newDecay(beep.Take(n, tone), n, rate))
	}

	return newVolume(beep.Seq(parts...), volume*0.4), nil
}

// decay fades a note out after a short attack so consecutive notes don't click
type decay struct {
	streamer beep.Streamer
	position int
	total    int
	attack   int
}

func newDecay(s beep.Streamer, total int, rate beep.SampleRate) beep.Streamer {
	return &decay{
		streamer: s,
		total:    total,
		attack:   min(rate.N(5*time.Millisecond), total),
	}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1.0
		if d.position < d.attack {
			gain = float64(d.position) / float64(d.attack)
		} else if d.total > 0 {
			gain = 1 - float64(d.position)/float64(d.total)
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// math.Log2(0) is -Inf, so zero volume is expressed as silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
