package debugui

import "github.com/plus3/stackfall/tetris"

// Install registers an ImguiSystem with the default windows as the game's last
// system and returns it so the frontend can read its input state.
func Install(game *tetris.Game) *ImguiSystem {
	sys := NewImguiSystem(game.Scheduler())
	game.AddSystem(sys)
	return sys
}
