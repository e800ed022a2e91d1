package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/stackfall/tetris"
)

const (
	originX   = 2
	originY   = 1
	cellWidth = 2
)

// term owns the screen and turns key events into engine input. Keys pressed
// between two ticks are merged into one input mask.
type term struct {
	screen  tcell.Screen
	game    *tetris.Game
	pending tetris.Input
}

func (t *term) loop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	t.draw(t.game.Snapshot())

	for {
		select {
		case ev := <-eventChan:
			if !t.handle(ev) {
				return
			}

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now

			snap := t.game.Step(dt, t.pending)
			t.pending = tetris.InputNone
			t.draw(snap)
		}
	}
}

// handle returns false when the player quits
func (t *term) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			t.pending |= tetris.InputLeft
		case tcell.KeyRight:
			t.pending |= tetris.InputRight
		case tcell.KeyDown:
			t.pending |= tetris.InputSoftDrop
		case tcell.KeyUp:
			t.pending |= tetris.InputRotate
		case tcell.KeyRune:
			switch ev.Rune() {
			case ' ':
				t.pending |= tetris.InputHardDrop
			case 'x', 'w':
				t.pending |= tetris.InputRotate
			case 'a':
				t.pending |= tetris.InputLeft
			case 'd':
				t.pending |= tetris.InputRight
			case 's':
				t.pending |= tetris.InputSoftDrop
			case 'r':
				t.pending |= tetris.InputReset
			case 'q':
				return false
			}
		}

	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

func (t *term) draw(snap *tetris.Snapshot) {
	t.screen.Clear()

	t.drawFrame(snap.HUD.Pulse)
	for _, d := range snap.Drawables {
		t.drawCell(d)
	}
	t.drawHUD(snap.HUD)

	t.screen.Show()
}

// drawFrame draws the well border. It flashes white while the clear pulse runs.
func (t *term) drawFrame(pulse float32) {
	level := int32(96 + pulse*159)
	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(level, level, level))

	bottom := originY + tetris.VisibleHeight
	right := originX + 1 + tetris.BoardWidth*cellWidth
	for y := originY; y < bottom; y++ {
		t.screen.SetContent(originX, y, '│', nil, style)
		t.screen.SetContent(right, y, '│', nil, style)
	}
	for x := originX + 1; x < right; x++ {
		t.screen.SetContent(x, bottom, '─', nil, style)
	}
	t.screen.SetContent(originX, bottom, '└', nil, style)
	t.screen.SetContent(right, bottom, '┘', nil, style)
}

func (t *term) drawCell(d tetris.Drawable) {
	cell := d.Cell()
	color := tcell.NewRGBColor(
		int32(d.ShapeData[0]*255),
		int32(d.ShapeData[1]*255),
		int32(d.ShapeData[2]*255),
	)
	style := tcell.StyleDefault.Foreground(color)
	glyph := '█'
	if d.Active() {
		glyph = '▓'
	}

	// Row 0 is the bottom of the well.
	x := originX + 1 + cell.X*cellWidth
	y := originY + tetris.VisibleHeight - 1 - cell.Y
	for i := range cellWidth {
		t.screen.SetContent(x+i, y, glyph, nil, style)
	}
}

func (t *term) drawHUD(hud tetris.HUD) {
	x := originX + tetris.BoardWidth*cellWidth + 5
	lines := []string{
		fmt.Sprintf("Score  %d", hud.Score),
		fmt.Sprintf("Goal   %d", hud.Goal),
		fmt.Sprintf("Level  %d", hud.Level),
		fmt.Sprintf("Lines  %d", hud.Lines),
		"",
		"Next",
	}
	for _, p := range hud.Next {
		lines = append(lines, "  "+p.String())
	}
	if hud.Status == tetris.StatusGameOver {
		lines = append(lines, "", "GAME OVER", "r to restart")
	}
	lines = append(lines, "", "←→ move  ↑ rotate", "↓ drop  space slam", "r reset  q quit")

	for i, line := range lines {
		t.drawText(x, originY+i, line, tcell.StyleDefault)
	}
}

func (t *term) drawText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
