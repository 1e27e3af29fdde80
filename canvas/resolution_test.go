package canvas

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDestination(t *testing.T) {
	tests := []struct {
		name             string
		displayW, displayH int
		want             image.Rectangle
	}{
		{"exact double", 1280, 720, image.Rect(0, 0, 1280, 720)},
		{"letterbox", 1280, 800, image.Rect(0, 40, 1280, 760)},
		{"pillarbox", 1600, 720, image.Rect(160, 0, 1440, 720)},
		{"same size", 640, 360, image.Rect(0, 0, 640, 360)},
		{"fractional scale truncates", 1000, 1000, image.Rect(0, 219, 1000, 781)},
		{"smaller than native", 320, 320, image.Rect(0, 70, 320, 250)},
		{"minimised", 0, 0, image.Rectangle{}},
		{"negative", -5, 100, image.Rectangle{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Destination(640, 360, tt.displayW, tt.displayH))
		})
	}
}

func TestDestinationStaysInsideDisplay(t *testing.T) {
	for w := 1; w <= 2000; w += 37 {
		for h := 1; h <= 1500; h += 41 {
			d := Destination(640, 360, w, h)
			bounds := image.Rect(0, 0, w, h)
			require.True(t, d.In(bounds) || d.Empty(), "%dx%d -> %v", w, h, d)
			// Centred: margins differ by at most one pixel.
			assert.LessOrEqual(t, abs((d.Min.X)-(w-d.Max.X)), 1)
			assert.LessOrEqual(t, abs((d.Min.Y)-(h-d.Max.Y)), 1)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestResolutionRecompute(t *testing.T) {
	r := NewResolution(640, 360)
	var seen []image.Rectangle
	r.OnChange = func(dest image.Rectangle) { seen = append(seen, dest) }

	got := r.Recompute(1280, 800)
	assert.Equal(t, image.Rect(0, 40, 1280, 760), got)
	assert.Equal(t, got, r.Destination())
	w, h := r.DisplaySize()
	assert.Equal(t, 1280, w)
	assert.Equal(t, 800, h)
	assert.Equal(t, []image.Rectangle{got}, seen)
}

func TestResolutionRecomputeIgnoresReentrantCalls(t *testing.T) {
	r := NewResolution(640, 360)
	calls := 0
	r.OnChange = func(image.Rectangle) {
		calls++
		// A resize triggered from inside the hook must not recurse.
		r.Recompute(100, 100)
	}

	got := r.Recompute(1280, 720)
	assert.Equal(t, 1, calls)
	assert.Equal(t, image.Rect(0, 0, 1280, 720), got)
	assert.Equal(t, image.Rect(0, 0, 1280, 720), r.Destination())

	// The guard is released afterwards.
	r.Recompute(640, 360)
	assert.Equal(t, 2, calls)
	assert.Equal(t, image.Rect(0, 0, 640, 360), r.Destination())
}

func TestResolutionPresentOptions(t *testing.T) {
	r := NewResolution(640, 360)
	r.Recompute(1280, 800)
	op := r.PresentOptions()

	x, y := op.GeoM.Apply(0, 0)
	assert.InDelta(t, 0, x, 1e-9)
	assert.InDelta(t, 40, y, 1e-9)
	x, y = op.GeoM.Apply(640, 360)
	assert.InDelta(t, 1280, x, 1e-9)
	assert.InDelta(t, 760, y, 1e-9)
}

func TestResolutionScreenToNative(t *testing.T) {
	r := NewResolution(640, 360)
	r.Recompute(1280, 800)

	x, y, ok := r.ScreenToNative(640, 400)
	require.True(t, ok)
	assert.InDelta(t, 320, x, 1e-9)
	assert.InDelta(t, 180, y, 1e-9)

	_, _, ok = r.ScreenToNative(10, 10)
	assert.False(t, ok, "letterbox band is outside the surface")

	r.Recompute(0, 0)
	_, _, ok = r.ScreenToNative(0, 0)
	assert.False(t, ok)
}

func TestNewResolutionRejectsEmptySize(t *testing.T) {
	assert.Panics(t, func() { NewResolution(0, 360) })
	assert.Panics(t, func() { NewResolution(640, -1) })
}
