package input

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Action is something a key binding can trigger.
type Action int

const (
	MoveUp Action = iota
	MoveDown
	MoveLeft
	MoveRight
	ZoomIn
	ZoomOut
	RotateLeft
	RotateRight
	ResetCamera
	ToggleFullscreen
	ToggleBorderless
	Screenshot
	SaveSession
	CopyCamera
	Quit

	actionCount
)

var actionNames = [actionCount]string{
	MoveUp:           "move_up",
	MoveDown:         "move_down",
	MoveLeft:         "move_left",
	MoveRight:        "move_right",
	ZoomIn:           "zoom_in",
	ZoomOut:          "zoom_out",
	RotateLeft:       "rotate_left",
	RotateRight:      "rotate_right",
	ResetCamera:      "reset_camera",
	ToggleFullscreen: "toggle_fullscreen",
	ToggleBorderless: "toggle_borderless",
	Screenshot:       "screenshot",
	SaveSession:      "save_session",
	CopyCamera:       "copy_camera",
	Quit:             "quit",
}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// ParseAction looks an action up by its config name.
func ParseAction(name string) (Action, error) {
	for a, n := range actionNames {
		if n == name {
			return Action(a), nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", name)
}

// Actions lists every bindable action in declaration order.
func Actions() []Action {
	out := make([]Action, actionCount)
	for i := range out {
		out[i] = Action(i)
	}
	return out
}

// Bindings maps each action to the keys that trigger it. Any one key held
// counts as the action being held.
type Bindings map[Action][]ebiten.Key

func DefaultBindings() Bindings {
	return Bindings{
		MoveUp:           {ebiten.KeyW, ebiten.KeyArrowUp},
		MoveDown:         {ebiten.KeyS, ebiten.KeyArrowDown},
		MoveLeft:         {ebiten.KeyA, ebiten.KeyArrowLeft},
		MoveRight:        {ebiten.KeyD, ebiten.KeyArrowRight},
		ZoomIn:           {ebiten.KeyE, ebiten.KeyEqual, ebiten.KeyKPAdd},
		ZoomOut:          {ebiten.KeyQ, ebiten.KeyMinus, ebiten.KeyKPSubtract},
		RotateLeft:       {ebiten.KeyZ},
		RotateRight:      {ebiten.KeyX},
		ResetCamera:      {ebiten.KeyR},
		ToggleFullscreen: {ebiten.KeyF11},
		ToggleBorderless: {ebiten.KeyF10},
		Screenshot:       {ebiten.KeyF12},
		SaveSession:      {ebiten.KeyF5},
		CopyCamera:       {ebiten.KeyC},
		Quit:             {ebiten.KeyEscape},
	}
}

// Device is the polled keyboard and mouse state for the current frame.
type Device interface {
	IsKeyPressed(key ebiten.Key) bool
	IsMouseButtonPressed(button ebiten.MouseButton) bool
	CursorPosition() (int, int)
	Wheel() (float64, float64)
}

// Ebiten reads the live device state from ebiten.
type Ebiten struct{}

func (Ebiten) IsKeyPressed(key ebiten.Key) bool { return ebiten.IsKeyPressed(key) }
func (Ebiten) IsMouseButtonPressed(b ebiten.MouseButton) bool {
	return ebiten.IsMouseButtonPressed(b)
}
func (Ebiten) CursorPosition() (int, int) { return ebiten.CursorPosition() }
func (Ebiten) Wheel() (float64, float64)  { return ebiten.Wheel() }

// Host defines the callbacks the input system needs from the viewer.
type Host interface {
	MoveCamera(dx, dy float64)
	ZoomCamera(delta float64)
	ScaleZoom(factor float64)
	RotateCamera(delta float64)
	// ApplyPan drags the view by a cursor delta in physical screen pixels.
	ApplyPan(dx, dy float64)
	IsMouseOver(mx, my int) bool

	ResetCamera()
	ToggleFullscreen()
	ToggleBorderless()
	RequestScreenshot()
	SaveSession()
	CopyCamera()
	Quit()
}

// Speeds are per second, except WheelZoom which is the zoom factor applied
// per wheel notch.
type Speeds struct {
	Move      float64
	Zoom      float64
	Rotate    float64
	WheelZoom float64
}

type InputSystem struct {
	host     Host
	device   Device
	bindings Bindings
	speeds   Speeds

	latches [actionCount]Latch

	isPanning  bool
	lastMouseX int
	lastMouseY int
}

func NewInputSystem(h Host, d Device, b Bindings, s Speeds) *InputSystem {
	return &InputSystem{host: h, device: d, bindings: b, speeds: s}
}

// Update polls the device once and forwards everything to the host. dt is
// the elapsed frame time in seconds.
func (is *InputSystem) Update(dt float64) {
	mx, my := is.device.CursorPosition()
	overUI := is.host.IsMouseOver(mx, my)

	if is.handleControlKeys() {
		return
	}
	is.handleMovement(dt)
	is.handleZoom(dt)
	is.handlePanning(mx, my, overUI)
}

// Held reports whether any key bound to a is down.
func (is *InputSystem) Held(a Action) bool {
	for _, k := range is.bindings[a] {
		if is.device.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func (is *InputSystem) pressed(a Action) bool {
	return is.latches[a].Fire(is.Held(a))
}

// handleControlKeys runs the one-shot actions. It reports true when the
// viewer is quitting and nothing else should be processed this frame.
func (is *InputSystem) handleControlKeys() bool {
	if is.Held(Quit) {
		is.host.Quit()
		return true
	}
	if is.pressed(ToggleFullscreen) {
		is.host.ToggleFullscreen()
	}
	if is.pressed(ToggleBorderless) {
		is.host.ToggleBorderless()
	}
	if is.pressed(ResetCamera) {
		is.host.ResetCamera()
	}
	if is.pressed(Screenshot) {
		is.host.RequestScreenshot()
	}
	if is.pressed(SaveSession) {
		is.host.SaveSession()
	}
	if is.pressed(CopyCamera) {
		is.host.CopyCamera()
	}
	return false
}

func (is *InputSystem) handleMovement(dt float64) {
	step := is.speeds.Move * dt
	var dx, dy float64
	if is.Held(MoveUp) {
		dy -= step
	}
	if is.Held(MoveDown) {
		dy += step
	}
	if is.Held(MoveLeft) {
		dx -= step
	}
	if is.Held(MoveRight) {
		dx += step
	}
	if dx != 0 || dy != 0 {
		is.host.MoveCamera(dx, dy)
	}

	var dr float64
	if is.Held(RotateLeft) {
		dr -= is.speeds.Rotate * dt
	}
	if is.Held(RotateRight) {
		dr += is.speeds.Rotate * dt
	}
	if dr != 0 {
		is.host.RotateCamera(dr)
	}
}

func (is *InputSystem) handleZoom(dt float64) {
	var dz float64
	if is.Held(ZoomIn) {
		dz += is.speeds.Zoom * dt
	}
	if is.Held(ZoomOut) {
		dz -= is.speeds.Zoom * dt
	}
	if dz != 0 {
		is.host.ZoomCamera(dz)
	}

	if _, wy := is.device.Wheel(); wy != 0 && is.speeds.WheelZoom > 0 {
		is.host.ScaleZoom(math.Pow(is.speeds.WheelZoom, wy))
	}
}

func (is *InputSystem) handlePanning(mx, my int, overUI bool) {
	isPanButtonHeld := is.device.IsMouseButtonPressed(ebiten.MouseButtonMiddle) ||
		(is.device.IsMouseButtonPressed(ebiten.MouseButtonLeft) && (is.isPanning || !overUI))

	if !is.isPanning {
		if isPanButtonHeld {
			is.isPanning = true
			is.lastMouseX, is.lastMouseY = mx, my
		}
		return
	}
	if !isPanButtonHeld {
		is.isPanning = false
		return
	}
	dx := float64(mx - is.lastMouseX)
	dy := float64(my - is.lastMouseY)
	if dx != 0 || dy != 0 {
		is.host.ApplyPan(dx, dy)
	}
	is.lastMouseX, is.lastMouseY = mx, my
}
