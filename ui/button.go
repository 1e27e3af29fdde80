package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	ColorButton      = color.RGBA{60, 60, 70, 200}
	ColorButtonHover = color.RGBA{80, 80, 95, 220}
)

type Button struct {
	Label   string
	X, Y    float32
	W, H    float32
	OnClick func()

	hover bool
}

func (b *Button) IsMouseOver(mx, my int) bool {
	return float32(mx) >= b.X && float32(mx) <= b.X+b.W &&
		float32(my) >= b.Y && float32(my) <= b.Y+b.H
}

// Draw renders the button with its label centred.
func (b *Button) Draw(screen *ebiten.Image, face text.Face) {
	bg := ColorButton
	if b.hover {
		bg = ColorButtonHover
	}
	vector.FillRect(screen, b.X, b.Y, b.W, b.H, bg, false)
	if face == nil {
		return
	}
	tw, th := text.Measure(b.Label, face, 0)
	DrawText(screen, face, b.Label, float64(b.X)+(float64(b.W)-tw)/2, float64(b.Y)+(float64(b.H)-th)/2, color.White)
}
