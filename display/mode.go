// Package display switches the viewer window between windowed, borderless
// and exclusive fullscreen presentation.
package display

import (
	"fmt"
	"log"
)

// Mode is the presentation state of the window.
type Mode int

const (
	Windowed Mode = iota
	Borderless
	Fullscreen
)

func (m Mode) String() string {
	switch m {
	case Windowed:
		return "windowed"
	case Borderless:
		return "borderless"
	case Fullscreen:
		return "fullscreen"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode is the inverse of Mode.String.
func ParseMode(s string) (Mode, error) {
	for _, m := range []Mode{Windowed, Borderless, Fullscreen} {
		if m.String() == s {
			return m, nil
		}
	}
	return Windowed, fmt.Errorf("unknown display mode %q", s)
}

func (m Mode) fullscreen() bool { return m != Windowed }

// hardwareSwitch reports whether the mode changes the monitor's video mode
// rather than covering it with an undecorated window.
func (m Mode) hardwareSwitch() bool { return m == Fullscreen }

// Window is the host window the controller drives.
type Window interface {
	Size() (width, height int)
	SetSize(width, height int)
	SetFullscreen(on bool)
	SetHardwareModeSwitch(on bool)
}

// Controller is the window-mode state machine. It captures the windowed
// size on the way out of Windowed and restores it on the way back.
type Controller struct {
	win  Window
	mode Mode

	savedW, savedH int
}

func NewController(win Window) *Controller {
	return &Controller{win: win, mode: Windowed}
}

func (c *Controller) Mode() Mode { return c.mode }

// SavedSize is the windowed size that will be restored when returning to
// Windowed. It is zero until the first transition out of Windowed.
func (c *Controller) SavedSize() (int, int) { return c.savedW, c.savedH }

// RestoreSavedSize seeds the size used when the controller later returns to
// Windowed, for sessions that start outside Windowed.
func (c *Controller) RestoreSavedSize(w, h int) {
	if w > 0 && h > 0 {
		c.savedW, c.savedH = w, h
	}
}

// ToggleFullscreen leaves Borderless for Windowed; otherwise it flips
// between Windowed and Fullscreen.
func (c *Controller) ToggleFullscreen() {
	switch c.mode {
	case Borderless, Fullscreen:
		c.SetMode(Windowed)
	default:
		c.SetMode(Fullscreen)
	}
}

// ToggleBorderless flips the borderless flag, with the fullscreen flag
// following it: Windowed and Fullscreen go to Borderless, Borderless goes
// back to Windowed.
func (c *Controller) ToggleBorderless() {
	if c.mode == Borderless {
		c.SetMode(Windowed)
		return
	}
	c.SetMode(Borderless)
}

// SetMode moves directly to m.
func (c *Controller) SetMode(m Mode) {
	prev := c.mode
	if m == prev {
		return
	}

	switch {
	case !prev.fullscreen():
		c.savedW, c.savedH = c.win.Size()
		c.win.SetHardwareModeSwitch(m.hardwareSwitch())
		c.win.SetFullscreen(true)
	case !m.fullscreen():
		c.win.SetFullscreen(false)
		if c.savedW > 0 && c.savedH > 0 {
			c.win.SetSize(c.savedW, c.savedH)
		}
	default:
		c.win.SetHardwareModeSwitch(m.hardwareSwitch())
	}

	c.mode = m
	log.Printf("[display] %s -> %s", prev, m)
}
