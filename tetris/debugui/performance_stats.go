package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/stackfall/tetris"
)

// PerformanceStats plots frame times and lists per-system timings
type PerformanceStats struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

func NewPerformanceStats(historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

func (ps *PerformanceStats) Render(ctx *Context) {
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ps.frameHistory[ps.frameIndex] = ctx.DeltaTime * 1000.0
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames

	var avgFrameTime float32
	for _, ft := range ps.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(ps.historyFrames)

	if avgFrameTime > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	} else {
		imgui.Text("Avg Frame Time: -")
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	if ctx.Scheduler != nil {
		ps.renderSystems(ctx)
	}
	ps.renderStore(ctx)

	imgui.End()
}

func (ps *PerformanceStats) renderSystems(ctx *Context) {
	stats := ctx.Scheduler.Stats()
	imgui.Text(fmt.Sprintf("Frames: %d  Systems: %d", stats.Frames, stats.SystemCount))

	if !imgui.TreeNodeStr("System Timings") {
		return
	}
	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("SystemStatsTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("System")
		imgui.TableSetupColumn("Runs")
		imgui.TableSetupColumn("Avg")
		imgui.TableSetupColumn("Min")
		imgui.TableSetupColumn("Max")
		imgui.TableHeadersRow()

		for _, sys := range stats.Systems {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(sys.Name)
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
			imgui.TableNextColumn()
			imgui.Text(sys.AvgDuration.String())
			imgui.TableNextColumn()
			imgui.Text(sys.MinDuration.String())
			imgui.TableNextColumn()
			imgui.Text(sys.MaxDuration.String())
		}

		imgui.EndTable()
	}
	imgui.TreePop()
}

func (ps *PerformanceStats) renderStore(ctx *Context) {
	if !imgui.TreeNodeStr("Piece Store") {
		return
	}
	stats := ctx.Game.Store.Stats()
	imgui.Text(fmt.Sprintf("Pieces: %d  Cells: %d", stats.PieceCount, stats.CellCount))
	imgui.Text(fmt.Sprintf("Slots: %d  Free: %d  Blocks: %d", stats.SlotCount, stats.FreeSlots, stats.BlockCount))
	imgui.Text(fmt.Sprintf("Last ID: %d", stats.LastPieceID))
	for t, n := range stats.PerType {
		if n > 0 {
			imgui.BulletText(fmt.Sprintf("%s: %d", tetris.PieceType(t), n))
		}
	}
	imgui.TreePop()
}
