package tetris

// Commands buffers work that must not run while systems are still mutating the
// frame. Everything queued is executed by Flush after the last system.
type Commands struct {
	events []Event
	defers []deferCommand
}

func newCommands() *Commands {
	return &Commands{}
}

type deferCommand struct {
	fn func()
}

// Emit queues an event for delivery to subscribers
func (c *Commands) Emit(ev Event) {
	c.events = append(c.events, ev)
}

// Defer queues a function execution operation.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, deferCommand{fn: fn})
}

// Pending returns the number of queued events and deferred functions
func (c *Commands) Pending() int {
	return len(c.events) + len(c.defers)
}

// Flush runs deferred functions, then delivers events to every listener in
// order, and resets the buffer.
func (c *Commands) Flush(listeners []Listener) {
	for _, df := range c.defers {
		df.fn()
	}

	for _, ev := range c.events {
		for _, l := range listeners {
			l(ev)
		}
	}

	c.events = c.events[:0]
	c.defers = c.defers[:0]
}
