package display

import "github.com/hajimehoshi/ebiten/v2"

// EbitenWindow drives the ebiten desktop window. Exclusive fullscreen uses
// ebiten's fullscreen; borderless is an undecorated window covering the
// monitor.
type EbitenWindow struct {
	fullscreen bool
	hardware   bool
}

func NewEbitenWindow() *EbitenWindow {
	return &EbitenWindow{hardware: true}
}

func (w *EbitenWindow) Size() (int, int)          { return ebiten.WindowSize() }
func (w *EbitenWindow) SetSize(width, height int) { ebiten.SetWindowSize(width, height) }

func (w *EbitenWindow) SetFullscreen(on bool) {
	w.fullscreen = on
	w.apply()
}

func (w *EbitenWindow) SetHardwareModeSwitch(on bool) {
	w.hardware = on
	if w.fullscreen {
		w.apply()
	}
}

func (w *EbitenWindow) apply() {
	switch {
	case !w.fullscreen:
		ebiten.SetFullscreen(false)
		ebiten.SetWindowDecorated(true)
	case w.hardware:
		ebiten.SetWindowDecorated(true)
		ebiten.SetFullscreen(true)
	default:
		ebiten.SetFullscreen(false)
		ebiten.SetWindowDecorated(false)
		ebiten.SetWindowPosition(0, 0)
		if m := ebiten.Monitor(); m != nil {
			ebiten.SetWindowSize(m.Size())
		}
	}
}
