package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/plus3/stackfall/internal/config"
	"github.com/plus3/stackfall/tetris"
)

// Player turns game events into sound. A disabled player drops every event.
type Player struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	volume      float64
	mixer       *beep.Mixer
	log         *zap.Logger
	initialized bool
	played      map[Cue]int
}

// New creates a player. When audio is enabled the speaker is initialized and
// starts draining the mixer.
func New(cfg config.AudioConfig, log *zap.Logger) (*Player, error) {
	p := &Player{
		rate:   beep.SampleRate(cfg.SampleRate),
		volume: cfg.Volume,
		mixer:  &beep.Mixer{},
		log:    log,
		played: make(map[Cue]int),
	}
	if !cfg.Enabled {
		log.Info("audio disabled")
		return p, nil
	}

	if err := speaker.Init(p.rate, p.rate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true

	log.Info("audio ready", zap.Int("sample_rate", cfg.SampleRate), zap.Float64("volume", cfg.Volume))
	return p, nil
}

// Listener returns the event handler to subscribe to a game
func (p *Player) Listener() tetris.Listener {
	return p.Handle
}

// Handle plays the cue of an event, if it has one
func (p *Player) Handle(ev tetris.Event) {
	cue := CueFor(ev)
	if cue == CueNone {
		return
	}
	p.Play(cue)
}

// Play queues a cue on the mixer
func (p *Player) Play(cue Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.played[cue]++
	if !p.initialized {
		return
	}

	streamer, err := Synth(cue, p.rate, p.volume)
	if err != nil {
		p.log.Warn("synth cue", zap.Stringer("cue", cue), zap.Error(err))
		return
	}

	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
}

// Played returns how often a cue was requested
func (p *Player) Played(cue Cue) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played[cue]
}

// Close stops all sounds and releases the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}
