package main

import (
	"errors"
	"image"
	"math"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"gridview/config"
	"gridview/display"
)

type fakeWindow struct {
	w, h       int
	fullscreen bool
	hardware   bool
}

func (f *fakeWindow) Size() (int, int)              { return f.w, f.h }
func (f *fakeWindow) SetSize(w, h int)              { f.w, f.h = w, h }
func (f *fakeWindow) SetFullscreen(on bool)         { f.fullscreen = on }
func (f *fakeWindow) SetHardwareModeSwitch(on bool) { f.hardware = on }

type fakeDevice struct {
	keys   map[ebiten.Key]bool
	left   bool
	mx, my int
}

func (d *fakeDevice) IsKeyPressed(k ebiten.Key) bool { return d.keys[k] }
func (d *fakeDevice) IsMouseButtonPressed(b ebiten.MouseButton) bool {
	return b == ebiten.MouseButtonLeft && d.left
}
func (d *fakeDevice) CursorPosition() (int, int) { return d.mx, d.my }
func (d *fakeDevice) Wheel() (float64, float64)  { return 0, 0 }

func newTestGame(t *testing.T) (*Game, *fakeWindow, *fakeDevice) {
	t.Helper()
	win := &fakeWindow{w: 1280, h: 720}
	dev := &fakeDevice{keys: map[ebiten.Key]bool{}}
	g, err := newGame(config.Default(), win, dev, nil)
	if err != nil {
		t.Fatalf("newGame: %v", err)
	}
	g.Layout(1280, 720)
	return g, win, dev
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestLayoutRecomputesDestination(t *testing.T) {
	g, _, _ := newTestGame(t)
	if got := g.res.Destination(); got != image.Rect(0, 0, 1280, 720) {
		t.Errorf("destination at 1280x720 = %v", got)
	}

	w, h := g.Layout(1280, 800)
	if w != 1280 || h != 800 {
		t.Errorf("Layout returned %dx%d, want the outside size", w, h)
	}
	if got := g.res.Destination(); got != image.Rect(0, 40, 1280, 760) {
		t.Errorf("destination at 1280x800 = %v", got)
	}
}

func TestApplyPanUndoesPresentationAndZoom(t *testing.T) {
	g, _, _ := newTestGame(t)
	g.camera.SetZoom(2)

	// 1280x720 shows the 640x360 surface at 2x, so 40 physical pixels are
	// 20 surface pixels and 10 world units at zoom 2.
	g.ApplyPan(40, 20)
	x, y := g.camera.Position()
	if !near(x, -10) || !near(y, -5) {
		t.Errorf("camera at (%v, %v), want (-10, -5)", x, y)
	}
}

func TestApplyPanFollowsRotation(t *testing.T) {
	g, _, _ := newTestGame(t)
	g.Layout(640, 360)
	g.camera.SetRotation(math.Pi / 2)

	g.ApplyPan(10, 0)
	x, y := g.camera.Position()
	if !near(x, 0) || !near(y, 10) {
		t.Errorf("camera at (%v, %v), want (0, 10)", x, y)
	}
}

func TestApplyPanKeepsPointUnderCursor(t *testing.T) {
	g, _, _ := newTestGame(t)
	g.Layout(640, 360)
	g.camera.SetZoom(1.7)
	g.camera.SetRotation(0.6)

	wx, wy := g.camera.ScreenToWorld(100, 80, 640, 360)
	g.ApplyPan(25, -40)
	sx, sy := g.camera.WorldToScreen(wx, wy, 640, 360)
	if math.Abs(sx-125) > 1e-6 || math.Abs(sy-40) > 1e-6 {
		t.Errorf("point moved to (%v, %v), want (125, 40)", sx, sy)
	}
}

func TestApplyPanIgnoredWhileMinimised(t *testing.T) {
	g, _, _ := newTestGame(t)
	g.Layout(0, 0)
	g.ApplyPan(100, 100)
	if x, y := g.camera.Position(); x != 0 || y != 0 {
		t.Errorf("camera moved to (%v, %v)", x, y)
	}
}

func TestStepClampsElapsedTime(t *testing.T) {
	g, _, dev := newTestGame(t)
	dev.keys[ebiten.KeyW] = true

	g.step(10)
	if _, y := g.camera.Position(); !near(y, -300*MaxFrameTime) {
		t.Errorf("y = %v after a long stall, want %v", y, -300*MaxFrameTime)
	}

	g.step(-1)
	if _, y := g.camera.Position(); !near(y, -300*MaxFrameTime) {
		t.Errorf("negative dt moved the camera to y = %v", y)
	}
}

func TestZoomButtonClick(t *testing.T) {
	g, _, dev := newTestGame(t)
	dev.mx, dev.my = 1250, 20
	dev.left = true

	g.step(0.016)
	g.step(0.016)
	if !near(g.camera.Zoom(), ZoomButtonFactor) {
		t.Errorf("zoom = %v, want %v", g.camera.Zoom(), ZoomButtonFactor)
	}
	if x, y := g.camera.Position(); x != 0 || y != 0 {
		t.Errorf("clicking a button panned the camera to (%v, %v)", x, y)
	}
}

func TestToggleKeysDriveDisplay(t *testing.T) {
	g, win, dev := newTestGame(t)
	dev.keys[ebiten.KeyF11] = true
	g.step(0.016)
	g.step(0.016)

	if g.display.Mode() != display.Fullscreen || !win.fullscreen {
		t.Fatalf("mode = %v, fullscreen = %v", g.display.Mode(), win.fullscreen)
	}

	dev.keys[ebiten.KeyF11] = false
	dev.keys[ebiten.KeyF10] = true
	g.step(0.016)
	if g.display.Mode() != display.Borderless || win.hardware {
		t.Errorf("mode = %v, hardware switch = %v", g.display.Mode(), win.hardware)
	}
}

func TestQuitTerminates(t *testing.T) {
	g, _, dev := newTestGame(t)
	dev.keys[ebiten.KeyEscape] = true
	if err := g.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update() = %v, want ebiten.Termination", err)
	}
}

func TestCopyCamera(t *testing.T) {
	g, _, _ := newTestGame(t)
	var copied string
	g.copyText = func(s string) error { copied = s; return nil }

	g.camera.SetPosition(12.5, -3)
	g.camera.SetZoom(2)
	g.CopyCamera()
	if copied != "12.5,-3 2 0" {
		t.Errorf("copied %q", copied)
	}

	g.copyText = func(string) error { return errors.New("no clipboard") }
	g.CopyCamera()
	if !g.ui.Debug.Visible() || !strings.Contains(g.ui.Debug.Error, "no clipboard") {
		t.Errorf("clipboard failure not shown, panel = %q", g.ui.Debug.Error)
	}
}

func TestStatusLines(t *testing.T) {
	g, _, dev := newTestGame(t)
	dev.mx, dev.my = 640, 360
	g.step(0)

	status := g.ui.Status()
	if len(status) != 4 {
		t.Fatalf("status = %q", status)
	}
	if status[1] != "grid 32@1.00 64@0.00" {
		t.Errorf("grid line = %q", status[1])
	}
	if status[3] != "cursor (0.0, 0.0)" {
		t.Errorf("cursor line = %q", status[3])
	}

	g.Layout(1280, 800)
	dev.my = 10
	g.step(0)
	if n := len(g.ui.Status()); n != 3 {
		t.Errorf("cursor in the letterbox still reported, %d lines", n)
	}
}

func TestNewIDUnique(t *testing.T) {
	a, b := NewID(), NewID()
	if len(a) != 16 || a == b {
		t.Errorf("NewID gave %q and %q", a, b)
	}
}
