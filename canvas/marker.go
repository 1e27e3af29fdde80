package canvas

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// MarkerSize is the edge length in pixels of the origin marker sprite.
const MarkerSize = 32

// RasterizeMarker renders the origin marker (a ring around an upward
// triangle) on the CPU.
func RasterizeMarker(size int) (image.Image, error) {
	dc := gg.NewContext(size, size)
	defer dc.Close()

	c := float64(size) / 2
	dc.SetRGBA(1, 1, 1, 0.9)
	dc.SetLineWidth(2)
	dc.DrawCircle(c, c, c-2)
	if err := dc.Stroke(); err != nil {
		return nil, fmt.Errorf("marker ring: %w", err)
	}

	dc.SetRGB(1, 0.4, 0.4)
	dc.DrawRegularPolygon(3, c, c, c/2, -math.Pi/2)
	if err := dc.Fill(); err != nil {
		return nil, fmt.Errorf("marker arrow: %w", err)
	}

	if err := dc.FlushGPU(); err != nil {
		return nil, fmt.Errorf("marker flush: %w", err)
	}
	return dc.Image(), nil
}

// Marker is a sprite pinned to a world position.
type Marker struct {
	X, Y  float64
	img   *ebiten.Image
	cross color.Color
}

func NewMarker(img image.Image, cross color.Color) *Marker {
	return &Marker{img: ebiten.NewImageFromImage(img), cross: cross}
}

// Draw renders the sprite centred on its world position through the camera,
// then the screen-space origin cross on top.
func (m *Marker) Draw(dst *ebiten.Image, cam *Camera) {
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	view := cam.ViewMatrix(w, h)

	iw, ih := m.img.Bounds().Dx(), m.img.Bounds().Dy()
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterNearest}
	op.GeoM.Translate(m.X-float64(iw)/2, m.Y-float64(ih)/2)
	op.GeoM.Concat(view)
	dst.DrawImage(m.img, op)

	if m.cross == nil {
		return
	}
	ox, oy := view.Apply(m.X, m.Y)
	vector.StrokeLine(dst, float32(ox-15), float32(oy), float32(ox+15), float32(oy), 2, m.cross, false)
	vector.StrokeLine(dst, float32(ox), float32(oy-15), float32(ox), float32(oy+15), 2, m.cross, false)
}
