package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"gridview/display"
)

type CameraState struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Zoom     float64 `yaml:"zoom"`
	Rotation float64 `yaml:"rotation"`
}

type DisplayState struct {
	Mode string `yaml:"mode"`
	// Windowed size; while fullscreen this is the size to return to.
	Width  int `yaml:"width,omitempty"`
	Height int `yaml:"height,omitempty"`
}

type SessionState struct {
	Camera  CameraState  `yaml:"camera"`
	Display DisplayState `yaml:"display"`
}

func SaveSession(g *Game, filename string) error {
	x, y := g.camera.Position()
	state := SessionState{
		Camera: CameraState{
			X:        x,
			Y:        y,
			Zoom:     g.camera.Zoom(),
			Rotation: g.camera.Rotation(),
		},
		Display: DisplayState{Mode: g.display.Mode().String()},
	}
	if g.display.Mode() == display.Windowed {
		state.Display.Width, state.Display.Height = g.window.Size()
	} else {
		state.Display.Width, state.Display.Height = g.display.SavedSize()
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(&state); err != nil {
		return err
	}
	return enc.Close()
}

func LoadSession(g *Game, filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	var state SessionState
	if err := yaml.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("parse session: %w", err)
	}

	mode := display.Windowed
	if state.Display.Mode != "" {
		if mode, err = display.ParseMode(state.Display.Mode); err != nil {
			return err
		}
	}

	g.camera.SetPosition(state.Camera.X, state.Camera.Y)
	if state.Camera.Zoom != 0 {
		g.camera.SetZoom(state.Camera.Zoom)
	}
	g.camera.SetRotation(state.Camera.Rotation)

	w, h := state.Display.Width, state.Display.Height
	if mode == display.Windowed {
		if w > 0 && h > 0 {
			g.window.SetSize(w, h)
		}
		return nil
	}
	g.display.SetMode(mode)
	g.display.RestoreSavedSize(w, h)
	return nil
}
