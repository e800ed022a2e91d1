package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
)

// ControlWindow pauses, single-steps and restarts the game
type ControlWindow struct{}

func NewControlWindow() *ControlWindow {
	return &ControlWindow{}
}

func (cw *ControlWindow) Render(ctx *Context) {
	if !imgui.BeginV("Controls", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	g := ctx.Game
	imgui.Text(fmt.Sprintf("Status: %s", g.Status))
	imgui.Text(fmt.Sprintf("Clear mode: %s", g.ClearMode))
	imgui.Separator()

	imgui.Checkbox("Paused", &ctx.Input.Paused)
	imgui.SameLine()
	if imgui.Button("Step") {
		ctx.Input.StepRequested = true
	}
	imgui.SameLine()
	if imgui.Button("Reset") {
		ctx.Input.ResetRequested = true
	}

	imgui.End()
}
