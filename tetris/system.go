package tetris

// System is one phase of a frame. Systems run in registration order and may keep
// their own state between frames.
type System interface {
	Execute(frame *UpdateFrame)
}
