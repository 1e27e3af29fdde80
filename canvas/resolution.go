package canvas

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Resolution owns the fixed-size internal surface everything is rendered to
// and the rectangle of the physical screen it is presented into.
type Resolution struct {
	nativeW, nativeH   int
	displayW, displayH int
	dest               image.Rectangle
	surface            *ebiten.Image

	recomputing bool
	// OnChange, if set, runs synchronously after every accepted Recompute.
	OnChange func(dest image.Rectangle)
}

func NewResolution(nativeW, nativeH int) *Resolution {
	if nativeW <= 0 || nativeH <= 0 {
		panic("canvas: native resolution must be positive")
	}
	return &Resolution{nativeW: nativeW, nativeH: nativeH}
}

func (r *Resolution) NativeSize() (int, int)        { return r.nativeW, r.nativeH }
func (r *Resolution) DisplaySize() (int, int)       { return r.displayW, r.displayH }
func (r *Resolution) Destination() image.Rectangle { return r.dest }

// Destination fits a native-sized image into the display with a uniform
// scale, truncated to whole pixels and centred. An empty display gives an
// empty rectangle.
func Destination(nativeW, nativeH, displayW, displayH int) image.Rectangle {
	if nativeW <= 0 || nativeH <= 0 || displayW <= 0 || displayH <= 0 {
		return image.Rectangle{}
	}
	scale := math.Min(float64(displayW)/float64(nativeW), float64(displayH)/float64(nativeH))
	w := int(float64(nativeW) * scale)
	h := int(float64(nativeH) * scale)
	x := (displayW - w) / 2
	y := (displayH - h) / 2
	return image.Rect(x, y, x+w, y+h)
}

// Recompute updates the destination for a new display size. Calls made
// while a recompute is already running (from OnChange, typically) are
// ignored and return the destination being computed.
func (r *Resolution) Recompute(displayW, displayH int) image.Rectangle {
	if r.recomputing {
		return r.dest
	}
	r.recomputing = true
	defer func() { r.recomputing = false }()

	r.displayW, r.displayH = displayW, displayH
	r.dest = Destination(r.nativeW, r.nativeH, displayW, displayH)
	if r.OnChange != nil {
		r.OnChange(r.dest)
	}
	return r.dest
}

// Surface returns the internal render target, creating it on first use.
func (r *Resolution) Surface() *ebiten.Image {
	if r.surface == nil {
		r.surface = ebiten.NewImage(r.nativeW, r.nativeH)
	}
	return r.surface
}

// PresentOptions returns the draw options that stretch the internal surface
// into the destination with point sampling.
func (r *Resolution) PresentOptions() *ebiten.DrawImageOptions {
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterNearest, DisableMipmaps: true}
	op.GeoM.Scale(float64(r.dest.Dx())/float64(r.nativeW), float64(r.dest.Dy())/float64(r.nativeH))
	op.GeoM.Translate(float64(r.dest.Min.X), float64(r.dest.Min.Y))
	return op
}

// Present draws the internal surface onto screen. It does nothing while the
// destination is empty (minimised window).
func (r *Resolution) Present(screen *ebiten.Image) {
	if r.dest.Empty() {
		return
	}
	screen.DrawImage(r.Surface(), r.PresentOptions())
}

// ScreenToNative maps a physical screen position into internal surface
// coordinates. ok is false when the point falls in the letterbox.
func (r *Resolution) ScreenToNative(sx, sy float64) (x, y float64, ok bool) {
	if r.dest.Empty() {
		return 0, 0, false
	}
	x = (sx - float64(r.dest.Min.X)) * float64(r.nativeW) / float64(r.dest.Dx())
	y = (sy - float64(r.dest.Min.Y)) * float64(r.nativeH) / float64(r.dest.Dy())
	ok = x >= 0 && y >= 0 && x < float64(r.nativeW) && y < float64(r.nativeH)
	return x, y, ok
}
