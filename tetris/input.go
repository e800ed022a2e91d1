package tetris

import "strings"

// Input is the set of discrete actions pressed this frame. Frontends report key
// edges, not held keys.
type Input uint8

const (
	InputLeft Input = 1 << iota
	InputRight
	InputSoftDrop
	InputRotate
	InputHardDrop
	InputReset
)

// InputNone is an empty frame
const InputNone Input = 0

// Has reports whether every action in other is pressed
func (in Input) Has(other Input) bool {
	return in&other == other && other != 0
}

func (in Input) String() string {
	if in == InputNone {
		return "none"
	}
	names := []struct {
		bit  Input
		name string
	}{
		{InputLeft, "left"},
		{InputRight, "right"},
		{InputSoftDrop, "soft_drop"},
		{InputRotate, "rotate"},
		{InputHardDrop, "hard_drop"},
		{InputReset, "reset"},
	}
	var parts []string
	for _, n := range names {
		if in.Has(n.bit) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// InputSource supplies the input for the next frame of a headless run
type InputSource interface {
	NextInput() Input
}

// InputFunc adapts a function to InputSource
type InputFunc func() Input

func (f InputFunc) NextInput() Input {
	return f()
}
