package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"github.com/plus3/stackfall/tetris"
	debugui_ebiten "github.com/plus3/stackfall/tetris/debugui/ebiten"
	"github.com/plus3/stackfall/tetris/drawbuf"
)

var (
	wellColor   = color.RGBA{20, 20, 28, 255}
	borderColor = color.RGBA{90, 90, 110, 255}
)

// App implements ebiten.Game on top of the engine. The board is drawn from a
// drawable buffer kept in sync with each snapshot, the same way a GPU renderer
// would consume it.
type App struct {
	game     *tetris.Game
	snapshot *tetris.Snapshot
	buf      *drawbuf.Buffer
	overlay  *debugui_ebiten.Overlay
	keys     keyState
	clock    *frameClock
	log      *zap.Logger

	cellSize      float32
	width, height int
	lastFPSLog    time.Time
}

func (a *App) Update() error {
	if a.keys.quit() {
		return ebiten.Termination
	}

	in := a.keys.poll()
	dt := a.clock.tick()

	if a.overlay != nil {
		a.snapshot = a.overlay.Step(dt, in)
	} else {
		a.snapshot = a.game.Step(dt, in)
	}

	if err := a.buf.Sync(a.snapshot); err != nil {
		return err
	}

	if now := time.Now(); now.Sub(a.lastFPSLog) >= time.Second {
		a.lastFPSLog = now
		a.log.Debug("fps", zap.Float64("fps", ebiten.ActualFPS()), zap.Float64("tps", ebiten.ActualTPS()))
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	wellW := float32(tetris.BoardWidth) * a.cellSize
	wellH := float32(tetris.VisibleHeight) * a.cellSize
	vector.DrawFilledRect(screen, 0, 0, wellW+2, wellH+2, a.borderColor(), false)
	vector.DrawFilledRect(screen, 1, 1, wellW, wellH, wellColor, false)

	for _, d := range a.buf.Decode() {
		a.drawCell(screen, d)
	}

	if a.snapshot != nil {
		a.drawHUD(screen, a.snapshot.HUD, int(wellW)+16)
	}

	if a.overlay != nil {
		a.overlay.Draw(screen)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if a.overlay != nil {
		a.overlay.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return a.width, a.height
}

func (a *App) drawCell(screen *ebiten.Image, d tetris.Drawable) {
	cell := d.Cell()
	x := 1 + float32(cell.X)*a.cellSize
	y := 1 + float32(tetris.VisibleHeight-1-cell.Y)*a.cellSize

	c := color.RGBA{
		R: uint8(d.ShapeData[0] * 255),
		G: uint8(d.ShapeData[1] * 255),
		B: uint8(d.ShapeData[2] * 255),
		A: 255,
	}
	if d.Active() {
		c.A = 220
	}
	vector.DrawFilledRect(screen, x+1, y+1, a.cellSize-2, a.cellSize-2, c, false)
}

// borderColor brightens while the clear pulse runs
func (a *App) borderColor() color.Color {
	if a.snapshot == nil || a.snapshot.HUD.Pulse == 0 {
		return borderColor
	}
	p := a.snapshot.HUD.Pulse
	lerp := func(from uint8) uint8 {
		return uint8(float32(from) + (255-float32(from))*p)
	}
	return color.RGBA{lerp(borderColor.R), lerp(borderColor.G), lerp(borderColor.B), 255}
}

func (a *App) drawHUD(screen *ebiten.Image, hud tetris.HUD, x int) {
	next := "-"
	if t, ok := hud.NextPiece(); ok {
		next = t.String()
	}
	msg := fmt.Sprintf("SCORE %d\nGOAL  %d\nLEVEL %d\nLINES %d\nNEXT  %s", hud.Score, hud.Goal, hud.Level, hud.Lines, next)
	if hud.Status == tetris.StatusGameOver {
		msg += "\n\nGAME OVER\nR to restart"
	}
	ebitenutil.DebugPrintAt(screen, msg, x, 8)
	ebitenutil.DebugPrintAt(screen, "arrows move/rotate\nspace drop  R reset", x, a.height-40)
}
