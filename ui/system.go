// Package ui draws the on-screen overlay: zoom buttons, the status HUD and
// the error panel. Everything here works in physical screen pixels.
package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"gridview/input"
)

const (
	ButtonSize   = 30
	ButtonMargin = 10
)

type UISystem struct {
	buttons []*Button
	face    text.Face
	click   input.Latch
	status  []string
	Debug   *DebugPanel
}

func NewUISystem(face text.Face, onZoomIn, onZoomOut func()) *UISystem {
	ui := &UISystem{
		face:  face,
		Debug: &DebugPanel{},
	}
	ui.buttons = []*Button{
		{Label: "+", W: ButtonSize, H: ButtonSize, OnClick: onZoomIn},
		{Label: "-", W: ButtonSize, H: ButtonSize, OnClick: onZoomOut},
	}
	return ui
}

// Layout pins the buttons to the top-right corner of a screen of the given
// width, right to left.
func (ui *UISystem) Layout(screenW int) {
	x := float32(screenW)
	for _, b := range ui.buttons {
		x -= b.W + ButtonMargin
		b.X = x
		b.Y = ButtonMargin
	}
}

func (ui *UISystem) IsMouseOver(mx, my int) bool {
	for _, b := range ui.buttons {
		if b.IsMouseOver(mx, my) {
			return true
		}
	}
	return false
}

// Update handles one frame of mouse state. A button fires once when the
// left button goes down over it. It reports whether a button fired.
func (ui *UISystem) Update(mx, my int, leftDown bool) bool {
	pressed := ui.click.Fire(leftDown)
	fired := false
	for _, b := range ui.buttons {
		b.hover = b.IsMouseOver(mx, my)
		if pressed && b.hover && !fired {
			if b.OnClick != nil {
				b.OnClick()
			}
			fired = true
		}
	}
	return fired
}

// SetStatus replaces the HUD lines.
func (ui *UISystem) SetStatus(lines ...string) {
	ui.status = append(ui.status[:0], lines...)
}

func (ui *UISystem) Status() []string { return ui.status }

func (ui *UISystem) Draw(screen *ebiten.Image) {
	for _, b := range ui.buttons {
		b.Draw(screen, ui.face)
	}
	ui.drawStatus(screen)
	ui.Debug.Draw(screen, ui.face)
}

func (ui *UISystem) drawStatus(screen *ebiten.Image) {
	if len(ui.status) == 0 || ui.face == nil {
		return
	}
	s := strings.Join(ui.status, "\n")
	w, h := MeasureText(ui.face, s)
	vector.FillRect(screen, ButtonMargin, ButtonMargin, float32(w)+12, float32(h)+12, color.RGBA{0, 0, 0, 140}, false)
	DrawText(screen, ui.face, s, ButtonMargin+6, ButtonMargin+6, color.White)
}
