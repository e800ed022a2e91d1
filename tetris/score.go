package tetris

// ScoreState tracks score, level and total cleared lines
type ScoreState struct {
	Score uint
	Level uint
	Lines uint
}

// Goal returns the score needed to leave the given level
func Goal(level uint) uint {
	return 5 * (level + 1)
}

// LineScore returns the score awarded for clearing n rows at once
func LineScore(n int) uint {
	switch n {
	case 1:
		return 1
	case 2:
		return 3
	case 3:
		return 5
	case 4:
		return 8
	default:
		return 0
	}
}

// Increase adds the score for a clear of n rows. When the score reaches the
// level's goal it resets to zero, the level advances, and true is returned; the
// caller must then retune gravity.
func (s *ScoreState) Increase(n int) bool {
	delta := LineScore(n)
	if delta == 0 {
		return false
	}

	s.Score += delta
	s.Lines += uint(n)

	if s.Score >= Goal(s.Level) {
		s.Score = 0
		s.Level++
		return true
	}
	return false
}

// Goal returns the goal of the current level
func (s *ScoreState) Goal() uint {
	return Goal(s.Level)
}
