package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/stackfall/tetris"
)

// BoardInspector draws the occupancy grid, the active piece and the queue
type BoardInspector struct {
	showHidden bool
	cellSize   float32
}

func NewBoardInspector() *BoardInspector {
	return &BoardInspector{cellSize: 10}
}

func (bi *BoardInspector) Render(ctx *Context) {
	if !imgui.BeginV("Board Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	g := ctx.Game
	imgui.Text(fmt.Sprintf("Score: %d / %d  Level: %d  Lines: %d", g.Score.Score, g.Score.Goal(), g.Score.Level, g.Score.Lines))
	imgui.Text(fmt.Sprintf("Gravity: %.5fs (%.3f elapsed)", g.Timer.Period(), g.Timer.Elapsed()))
	imgui.Text(fmt.Sprintf("Occupied cells: %d", g.Board.Count()))
	imgui.Checkbox("Show hidden rows", &bi.showHidden)
	imgui.Separator()

	bi.renderActive(g.Active)
	bi.renderQueue(g)
	imgui.Separator()
	bi.renderGrid(g)

	imgui.End()
}

func (bi *BoardInspector) renderActive(piece *tetris.ActivePiece) {
	if piece == nil {
		imgui.Text("Active: none")
		return
	}
	imgui.Text(fmt.Sprintf("Active: %s  %d deg  %s", piece.Type, piece.Rotation.Degrees(), piece.State))
	if imgui.TreeNodeStr("Cells") {
		for i, p := range piece.Cells {
			imgui.BulletText(fmt.Sprintf("%d: (%d, %d)", i, p.X, p.Y))
		}
		imgui.TreePop()
	}
}

func (bi *BoardInspector) renderQueue(g *tetris.GameState) {
	if !imgui.TreeNodeStr(fmt.Sprintf("Queue (%d)", g.Queue.Len())) {
		return
	}
	for i, t := range g.Queue.Upcoming(g.Queue.Len()) {
		imgui.BulletText(fmt.Sprintf("%d: %s", i, t))
	}
	imgui.TreePop()
}

func (bi *BoardInspector) renderGrid(g *tetris.GameState) {
	rows := tetris.VisibleHeight
	if bi.showHidden {
		rows = tetris.BoardHeight
	}

	drawList := imgui.WindowDrawList()
	origin := imgui.CursorScreenPos()
	empty := imgui.ColorU32Vec4(imgui.NewVec4(0.15, 0.15, 0.15, 1))
	filled := imgui.ColorU32Vec4(imgui.NewVec4(0.7, 0.7, 0.7, 1))

	grid := g.Board.Rows()
	for y := 0; y < rows; y++ {
		for x := 0; x < tetris.BoardWidth; x++ {
			color := empty
			if grid[y][x] {
				color = filled
			}
			if g.Active != nil && g.Active.Cells.Contains(tetris.Position{X: x, Y: y}) {
				c := g.Active.Type.Color()
				color = imgui.ColorU32Vec4(imgui.NewVec4(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, 1))
			}

			// Row 0 is drawn at the bottom.
			minX := origin.X + float32(x)*bi.cellSize
			minY := origin.Y + float32(rows-1-y)*bi.cellSize
			drawList.AddRectFilled(
				imgui.NewVec2(minX, minY),
				imgui.NewVec2(minX+bi.cellSize-1, minY+bi.cellSize-1),
				color,
			)
		}
	}

	imgui.Dummy(imgui.NewVec2(float32(tetris.BoardWidth)*bi.cellSize, float32(rows)*bi.cellSize))
}
