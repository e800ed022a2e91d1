// Package ebiten hosts the debug windows inside an Ebiten game loop.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/stackfall/tetris"
	"github.com/plus3/stackfall/tetris/debugui"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// Overlay pairs the backend with the game's ImguiSystem
type Overlay struct {
	Backend ImguiBackend
	System  *debugui.ImguiSystem
	game    *tetris.Game
}

// NewOverlay creates the Ebiten window through the ImGui backend and installs
// the debug windows into game.
func NewOverlay(title string, width, height int, game *tetris.Game) *Overlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	return &Overlay{
		Backend: ImguiBackend{EbitenBackend: backend},
		System:  debugui.Install(game),
		game:    game,
	}
}

// Step runs one game frame inside an ImGui frame. While paused the game only
// advances on a Step request. Keyboard input is dropped when ImGui wants it.
func (o *Overlay) Step(dt float64, in tetris.Input) *tetris.Snapshot {
	o.Backend.BeginFrame()
	defer o.Backend.EndFrame()

	if o.System.InputState.WantCaptureKeyboard {
		in = tetris.InputNone
	}
	step, reset := o.System.TakeRequests()
	if reset || in.Has(tetris.InputReset) {
		o.game.Reset()
		in &^= tetris.InputReset
	}

	if o.game.Over() || (o.System.InputState.Paused && !step) {
		o.System.RenderNow(o.game.State(), dt)
		return o.game.Snapshot()
	}
	return o.game.Step(dt, in)
}

// Draw renders the overlay on top of screen
func (o *Overlay) Draw(screen *ebiten.Image) {
	o.Backend.Draw(screen)
}

// Layout forwards the window size to the backend
func (o *Overlay) Layout(outsideWidth, outsideHeight int) {
	o.Backend.Layout(outsideWidth, outsideHeight)
}
