package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"gridview/display"
)

func TestSaveLoadSessionFullscreen(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "session.yaml")

	g, win, _ := newTestGame(t)
	win.w, win.h = 1024, 768
	g.camera.SetPosition(120, -45.5)
	g.camera.SetZoom(3)
	g.camera.SetRotation(0.25)
	g.display.ToggleFullscreen()

	if err := SaveSession(g, filename); err != nil {
		t.Fatalf("Failed to save session: %v", err)
	}

	g2, win2, _ := newTestGame(t)
	if err := LoadSession(g2, filename); err != nil {
		t.Fatalf("Failed to load session: %v", err)
	}

	x, y := g2.camera.Position()
	if x != 120 || y != -45.5 || g2.camera.Zoom() != 3 || g2.camera.Rotation() != 0.25 {
		t.Errorf("camera = (%v, %v) zoom %v rot %v", x, y, g2.camera.Zoom(), g2.camera.Rotation())
	}
	if g2.display.Mode() != display.Fullscreen || !win2.fullscreen {
		t.Fatalf("mode = %v, fullscreen = %v", g2.display.Mode(), win2.fullscreen)
	}

	// Leaving fullscreen returns to the size saved in the first session.
	g2.display.ToggleFullscreen()
	if win2.w != 1024 || win2.h != 768 {
		t.Errorf("restored window is %dx%d, want 1024x768", win2.w, win2.h)
	}
}

func TestSaveLoadSessionWindowed(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "session.yaml")

	g, win, _ := newTestGame(t)
	win.w, win.h = 800, 500
	if err := SaveSession(g, filename); err != nil {
		t.Fatalf("Failed to save session: %v", err)
	}

	g2, win2, _ := newTestGame(t)
	if err := LoadSession(g2, filename); err != nil {
		t.Fatalf("Failed to load session: %v", err)
	}
	if g2.display.Mode() != display.Windowed {
		t.Errorf("mode = %v", g2.display.Mode())
	}
	if win2.w != 800 || win2.h != 500 {
		t.Errorf("window is %dx%d, want 800x500", win2.w, win2.h)
	}
}

func TestLoadSessionErrors(t *testing.T) {
	dir := t.TempDir()
	g, _, _ := newTestGame(t)

	if err := LoadSession(g, filepath.Join(dir, "missing.yaml")); !os.IsNotExist(err) {
		t.Errorf("missing file: got %v", err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("display: {mode: maximised}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := LoadSession(g, bad); err == nil {
		t.Error("unknown display mode accepted")
	}

	partial := filepath.Join(dir, "partial.yaml")
	if err := os.WriteFile(partial, []byte("camera: {x: 5}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := LoadSession(g, partial); err != nil {
		t.Fatalf("partial session: %v", err)
	}
	if g.camera.Zoom() != 1 {
		t.Errorf("missing zoom gave %v, want the current zoom kept", g.camera.Zoom())
	}
}

func TestSessionQuitSaves(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "session.yaml")
	g, _, dev := newTestGame(t)
	g.sessionPath = filename
	g.camera.SetPosition(7, 8)

	dev.keys[ebiten.KeyEscape] = true
	_ = g.Update()

	if _, err := os.Stat(filename); err != nil {
		t.Fatalf("session not written on quit: %v", err)
	}
}
