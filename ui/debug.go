package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ErrorTTL is how long a runtime error stays on screen.
const ErrorTTL = 6 * time.Second

// DebugPanel shows the most recent runtime error in the bottom-right corner.
type DebugPanel struct {
	Error string
	since time.Time
	now   func() time.Time
}

func (d *DebugPanel) clock() time.Time {
	if d.now != nil {
		return d.now()
	}
	return time.Now()
}

func (d *DebugPanel) SetError(msg string) {
	d.Error = msg
	d.since = d.clock()
}

func (d *DebugPanel) Clear() {
	d.Error = ""
}

// Visible reports whether there is an error that has not expired yet.
func (d *DebugPanel) Visible() bool {
	if d == nil || d.Error == "" {
		return false
	}
	return d.clock().Sub(d.since) < ErrorTTL
}

func (d *DebugPanel) Draw(screen *ebiten.Image, face text.Face) {
	if !d.Visible() || face == nil {
		return
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	tw, th := MeasureText(face, d.Error)
	pw := math.Max(300, tw+16)
	ph := th + 16
	x := float64(w) - pw - 10
	y := float64(h) - ph - 10
	vector.FillRect(screen, float32(x), float32(y), float32(pw), float32(ph), color.RGBA{40, 40, 40, 220}, false)
	DrawText(screen, face, d.Error, x+8, y+8, color.RGBA{255, 200, 50, 255})
}
