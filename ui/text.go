package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// LineHeight is the distance between baselines of consecutive lines.
func LineHeight(face text.Face) float64 {
	m := face.Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}

// DrawText draws s with its top-left corner at (x, y). Newlines start new
// lines.
func DrawText(dst *ebiten.Image, face text.Face, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = LineHeight(face)
	text.Draw(dst, s, face, op)
}

// MeasureText returns the size of s as DrawText would lay it out.
func MeasureText(face text.Face, s string) (float64, float64) {
	return text.Measure(s, face, LineHeight(face))
}
