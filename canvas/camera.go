package canvas

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// MinZoom is the smallest zoom the camera accepts. Lower values are clamped.
const MinZoom = 0.1

// Camera controls the viewport of the world. The view transform is derived
// lazily and cached until position, zoom, rotation or the viewport change.
type Camera struct {
	x, y     float64 // world position shown at the centre of the viewport
	zoom     float64
	rotation float64 // radians

	view         ebiten.GeoM
	viewW, viewH int
	dirty        bool
}

func NewCamera() *Camera {
	return &Camera{zoom: 1, dirty: true}
}

func (c *Camera) Position() (float64, float64) { return c.x, c.y }
func (c *Camera) Zoom() float64                { return c.zoom }
func (c *Camera) Rotation() float64            { return c.rotation }

func (c *Camera) SetPosition(x, y float64) {
	c.x, c.y = x, y
	c.dirty = true
}

// SetZoom sets the zoom factor, clamping anything below MinZoom (NaN included).
func (c *Camera) SetZoom(z float64) {
	if !(z >= MinZoom) {
		z = MinZoom
	}
	c.zoom = z
	c.dirty = true
}

func (c *Camera) SetRotation(r float64) {
	c.rotation = r
	c.dirty = true
}

func (c *Camera) Move(dx, dy float64) { c.SetPosition(c.x+dx, c.y+dy) }
func (c *Camera) Rotate(dr float64)   { c.SetRotation(c.rotation + dr) }

// LookAt centres the camera on the given world point.
func (c *Camera) LookAt(x, y float64) { c.SetPosition(x, y) }

// Reset returns the camera to the origin at zoom 1 with no rotation.
func (c *Camera) Reset() {
	c.x, c.y = 0, 0
	c.zoom = 1
	c.rotation = 0
	c.dirty = true
}

// ViewMatrix returns the world-to-screen transform for a viewport of the
// given size: translate(-position), rotate, scale(zoom), then translate to
// the viewport centre. The result is cached; it is rebuilt only when the
// camera changed or a different viewport size is requested.
func (c *Camera) ViewMatrix(viewportW, viewportH int) ebiten.GeoM {
	if c.dirty || viewportW != c.viewW || viewportH != c.viewH {
		var m ebiten.GeoM
		m.Translate(-c.x, -c.y)
		m.Rotate(c.rotation)
		m.Scale(c.zoom, c.zoom)
		m.Translate(float64(viewportW)/2, float64(viewportH)/2)

		c.view = m
		c.viewW, c.viewH = viewportW, viewportH
		c.dirty = false
	}
	return c.view
}

func (c *Camera) WorldToScreen(wx, wy float64, viewportW, viewportH int) (float64, float64) {
	m := c.ViewMatrix(viewportW, viewportH)
	return m.Apply(wx, wy)
}

func (c *Camera) ScreenToWorld(sx, sy float64, viewportW, viewportH int) (float64, float64) {
	inv := c.ViewMatrix(viewportW, viewportH)
	inv.Invert()
	return inv.Apply(sx, sy)
}
