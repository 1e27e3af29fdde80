package canvas

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridLevel is one grid spacing and the zoom at and below which it is the
// finer half of a crossfade.
type GridLevel struct {
	Pitch         int
	ZoomThreshold float64
}

// GridLevels is ordered finest first: pitch strictly increasing, threshold
// strictly decreasing. Build it with NewGridLevels.
type GridLevels []GridLevel

// DefaultGridLevels doubles the pitch and halves the threshold at each step.
var DefaultGridLevels = GridLevels{
	{Pitch: 1, ZoomThreshold: 32},
	{Pitch: 2, ZoomThreshold: 16},
	{Pitch: 4, ZoomThreshold: 8},
	{Pitch: 8, ZoomThreshold: 4},
	{Pitch: 16, ZoomThreshold: 2},
	{Pitch: 32, ZoomThreshold: 1},
	{Pitch: 64, ZoomThreshold: 0.5},
	{Pitch: 128, ZoomThreshold: 0.25},
	{Pitch: 256, ZoomThreshold: 0.125},
}

// DefaultFallbackAlpha is used for the coarsest level when zoom is outside
// every blend range.
const DefaultFallbackAlpha = 0.4

var ErrNoGridLevels = errors.New("grid: at least one level is required")

// NewGridLevels validates the ordering of levels and returns a private copy.
func NewGridLevels(levels ...GridLevel) (GridLevels, error) {
	if len(levels) == 0 {
		return nil, ErrNoGridLevels
	}
	for i, l := range levels {
		if l.Pitch <= 0 {
			return nil, fmt.Errorf("grid: level %d: pitch %d is not positive", i, l.Pitch)
		}
		if !(l.ZoomThreshold > 0) || math.IsInf(l.ZoomThreshold, 0) {
			return nil, fmt.Errorf("grid: level %d: threshold %v is not a positive number", i, l.ZoomThreshold)
		}
		if i == 0 {
			continue
		}
		prev := levels[i-1]
		if l.Pitch <= prev.Pitch {
			return nil, fmt.Errorf("grid: level %d: pitch %d does not increase (previous %d)", i, l.Pitch, prev.Pitch)
		}
		if l.ZoomThreshold >= prev.ZoomThreshold {
			return nil, fmt.Errorf("grid: level %d: threshold %v does not decrease (previous %v)", i, l.ZoomThreshold, prev.ZoomThreshold)
		}
	}
	return append(GridLevels(nil), levels...), nil
}

// GridLayer is one pitch to draw this frame and its alpha multiplier.
type GridLayer struct {
	Pitch int
	Alpha float64
}

// Select picks the layers for zoom. The first adjacent pair with
// zoom <= cur.ZoomThreshold && zoom > next.ZoomThreshold is crossfaded:
// cur gets alpha t, next gets 1-t, where t runs from 0 at next's threshold
// to 1 at cur's. Outside every pair only the coarsest level is returned,
// at fallbackAlpha.
func (ls GridLevels) Select(zoom, fallbackAlpha float64) []GridLayer {
	for i := 0; i+1 < len(ls); i++ {
		cur, next := ls[i], ls[i+1]
		if zoom <= cur.ZoomThreshold && zoom > next.ZoomThreshold {
			t := (zoom - next.ZoomThreshold) / (cur.ZoomThreshold - next.ZoomThreshold)
			return []GridLayer{
				{Pitch: cur.Pitch, Alpha: t},
				{Pitch: next.Pitch, Alpha: 1 - t},
			}
		}
	}
	if len(ls) == 0 {
		return nil
	}
	return []GridLayer{{Pitch: ls[len(ls)-1].Pitch, Alpha: fallbackAlpha}}
}

// Bounds is an axis-aligned world-space rectangle.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// VisibleBounds maps all four corners of a width x height target back into
// world space through the inverse of view and returns their bounding box.
// Using every corner keeps the box covering the whole rotated view.
func VisibleBounds(view ebiten.GeoM, width, height int) Bounds {
	inv := view
	inv.Invert()

	w, h := float64(width), float64(height)
	b := Bounds{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
	for _, p := range [4][2]float64{{0, 0}, {w, 0}, {0, h}, {w, h}} {
		x, y := inv.Apply(p[0], p[1])
		b.MinX = math.Min(b.MinX, x)
		b.MinY = math.Min(b.MinY, y)
		b.MaxX = math.Max(b.MaxX, x)
		b.MaxY = math.Max(b.MaxY, y)
	}
	return b
}

// GridLines returns the 1-unit-thick world rectangles of a grid with the
// given pitch covering b, snapped outward to multiples of pitch. Vertical
// lines come first, then horizontal ones.
func GridLines(b Bounds, pitch int) []image.Rectangle {
	if pitch <= 0 {
		return nil
	}
	p := float64(pitch)
	startX := int(math.Floor(b.MinX/p)) * pitch
	endX := int(math.Ceil(b.MaxX/p)) * pitch
	startY := int(math.Floor(b.MinY/p)) * pitch
	endY := int(math.Ceil(b.MaxY/p)) * pitch

	lines := make([]image.Rectangle, 0, (endX-startX)/pitch+(endY-startY)/pitch+2)
	for x := startX; x <= endX; x += pitch {
		lines = append(lines, image.Rect(x, startY, x+1, endY))
	}
	for y := startY; y <= endY; y += pitch {
		lines = append(lines, image.Rect(startX, y, endX, y+1))
	}
	return lines
}

// ScaleColor multiplies every channel of c by f, clamped to [0, 1]. The
// result is premultiplied, which is what ebiten's colour scale expects.
func ScaleColor(c color.RGBA, f float64) color.RGBA {
	f = math.Max(0, math.Min(1, f))
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: uint8(float64(c.A) * f),
	}
}

// Grid renders the adaptive grid for a camera.
type Grid struct {
	Levels        GridLevels
	Color         color.RGBA
	FallbackAlpha float64

	pixel *ebiten.Image
}

func NewGrid(levels GridLevels, clr color.RGBA, fallbackAlpha float64) *Grid {
	return &Grid{Levels: levels, Color: clr, FallbackAlpha: fallbackAlpha}
}

// Layers reports what Draw would render at zoom.
func (g *Grid) Layers(zoom float64) []GridLayer {
	return g.Levels.Select(zoom, g.FallbackAlpha)
}

// Draw renders every selected layer onto dst through the camera's view
// matrix for dst's size.
func (g *Grid) Draw(dst *ebiten.Image, cam *Camera) {
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	view := cam.ViewMatrix(w, h)
	bounds := VisibleBounds(view, w, h)
	for _, layer := range g.Layers(cam.Zoom()) {
		g.drawLayer(dst, view, bounds, layer)
	}
}

func (g *Grid) drawLayer(dst *ebiten.Image, view ebiten.GeoM, b Bounds, layer GridLayer) {
	clr := ScaleColor(g.Color, layer.Alpha)
	if clr.A == 0 {
		return
	}
	if g.pixel == nil {
		g.pixel = ebiten.NewImage(1, 1)
		g.pixel.Fill(color.White)
	}

	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterNearest}
	for _, r := range GridLines(b, layer.Pitch) {
		op.GeoM.Reset()
		op.GeoM.Scale(float64(r.Dx()), float64(r.Dy()))
		op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
		op.GeoM.Concat(view)
		op.ColorScale.Reset()
		op.ColorScale.ScaleWithColor(clr)
		dst.DrawImage(g.pixel, op)
	}
}
