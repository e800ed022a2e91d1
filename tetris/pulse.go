package tetris

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultPulseDuration is how long the clear pulse takes to fade out
const DefaultPulseDuration = 350 * time.Millisecond

// ClearPulse is a decaying intensity started by a line clear. Frontends use it
// to flash or shake the playfield. A four row clear starts at 1.
type ClearPulse struct {
	duration float32
	tween    *gween.Tween
	scale    float32
	value    float32
}

// NewClearPulse returns an idle pulse that fades over d
func NewClearPulse(d time.Duration) *ClearPulse {
	if d <= 0 {
		d = DefaultPulseDuration
	}
	return &ClearPulse{duration: float32(d.Seconds())}
}

// Trigger restarts the pulse at an intensity proportional to the cleared rows
func (p *ClearPulse) Trigger(rows int) {
	if rows <= 0 {
		return
	}
	p.scale = min(float32(rows)/4, 1)
	p.tween = gween.New(1, 0, p.duration, ease.OutQuad)
	p.value = p.scale
}

// Update advances the pulse by dt seconds and returns the new intensity
func (p *ClearPulse) Update(dt float64) float32 {
	if p.tween == nil {
		return 0
	}
	current, finished := p.tween.Update(float32(dt))
	if finished {
		p.tween = nil
		p.value = 0
		return 0
	}
	p.value = current * p.scale
	return p.value
}

// Value returns the current intensity in [0,1]
func (p *ClearPulse) Value() float32 {
	return p.value
}

// Active reports whether the pulse is still fading
func (p *ClearPulse) Active() bool {
	return p.tween != nil
}

// Reset stops the pulse
func (p *ClearPulse) Reset() {
	p.tween = nil
	p.value = 0
	p.scale = 0
}
