// Package debugui renders Dear ImGui inspection windows for a running game.
// The windows are driven by ImguiSystem, which runs as the last frame system and
// defers drawing until the frame has settled.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/stackfall/tetris"
)

// ImguiInputState tracks Dear ImGui's input capture state and the requests made
// from the control window. Frontends read it after each frame.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool

	Paused         bool
	StepRequested  bool
	ResetRequested bool
}

// Context is what a window may read while rendering
type Context struct {
	Game      *tetris.GameState
	Scheduler *tetris.Scheduler
	DeltaTime float32
	Input     *ImguiInputState
}

// Window is one debug window
type Window interface {
	Render(ctx *Context)
}

// ImguiSystem updates the input state and queues every window for drawing
type ImguiSystem struct {
	Scheduler  *tetris.Scheduler
	Windows    []Window
	InputState ImguiInputState
}

// NewImguiSystem creates the system with the default window set
func NewImguiSystem(scheduler *tetris.Scheduler) *ImguiSystem {
	return &ImguiSystem{
		Scheduler: scheduler,
		Windows: []Window{
			NewControlWindow(),
			NewBoardInspector(),
			NewPieceBrowser(100),
			NewPerformanceStats(120),
		},
	}
}

// Execute updates input state and queues all ImGui render functions for execution.
func (i *ImguiSystem) Execute(frame *tetris.UpdateFrame) {
	i.captureInput()

	ctx := &Context{
		Game:      frame.Game,
		Scheduler: i.Scheduler,
		DeltaTime: float32(frame.DeltaTime),
		Input:     &i.InputState,
	}
	for _, w := range i.Windows {
		frame.Commands.Defer(func() {
			w.Render(ctx)
		})
	}
}

// RenderNow draws every window immediately. Frontends call it on frames where
// the game is over and no systems run.
func (i *ImguiSystem) RenderNow(game *tetris.GameState, dt float64) {
	i.captureInput()

	ctx := &Context{
		Game:      game,
		Scheduler: i.Scheduler,
		DeltaTime: float32(dt),
		Input:     &i.InputState,
	}
	for _, w := range i.Windows {
		w.Render(ctx)
	}
}

// TakeRequests returns and clears the one-shot requests from the control window
func (i *ImguiSystem) TakeRequests() (step, reset bool) {
	step, reset = i.InputState.StepRequested, i.InputState.ResetRequested
	i.InputState.StepRequested = false
	i.InputState.ResetRequested = false
	return step, reset
}

func (i *ImguiSystem) captureInput() {
	io := imgui.CurrentIO()
	i.InputState.WantCaptureMouse = io.WantCaptureMouse()
	i.InputState.WantCaptureKeyboard = io.WantCaptureKeyboard()
}
