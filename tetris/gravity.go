package tetris

import "math"

// gravityTable holds the seconds per row for each level. The values follow the
// guideline curve and are tabulated so timing does not depend on float pow.
var gravityTable = [...]float64{
	1.0,
	0.793,
	0.6178,
	0.47273,
	0.3552,
	0.262,
	0.18968,
	0.13473,
	0.09388,
	0.06415,
	0.04298,
	0.02822,
	0.01815,
	0.01144,
	0.00706,
	0.00426,
	0.00252,
	0.00146,
	0.00082,
	0.00046,
}

// MaxGravityLevel is the first level using the fastest interval
const MaxGravityLevel = len(gravityTable) - 1

// GravityInterval returns the seconds between gravity steps at the given level
func GravityInterval(level uint) float64 {
	if level >= uint(len(gravityTable)) {
		return gravityTable[MaxGravityLevel]
	}
	return gravityTable[level]
}

// GravityTimer is a repeating countdown advanced by frame deltas.
// It reports at most one expiry per tick; surplus elapsed time wraps.
type GravityTimer struct {
	period  float64
	elapsed float64
}

// NewGravityTimer returns a timer tuned to the given level
func NewGravityTimer(level uint) GravityTimer {
	return GravityTimer{period: GravityInterval(level)}
}

// Tick advances the timer by dt seconds and reports whether it expired
func (t *GravityTimer) Tick(dt float64) bool {
	if t.period <= 0 || dt <= 0 {
		return false
	}

	t.elapsed += dt
	if t.elapsed < t.period {
		return false
	}

	t.elapsed = math.Mod(t.elapsed, t.period)
	return true
}

// Retune switches the timer to the interval of a new level and restarts it
func (t *GravityTimer) Retune(level uint) {
	t.period = GravityInterval(level)
	t.elapsed = 0
}

// Period returns the current interval in seconds
func (t *GravityTimer) Period() float64 {
	return t.period
}

// Elapsed returns the time accumulated toward the next expiry
func (t *GravityTimer) Elapsed() float64 {
	return t.elapsed
}
