package main

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"gridview/canvas"
	"gridview/config"
	"gridview/display"
	"gridview/input"
	"gridview/ui"
)

type Game struct {
	cfg *config.Config

	camera  *canvas.Camera
	grid    *canvas.Grid
	res     *canvas.Resolution
	marker  *canvas.Marker
	window  display.Window
	display *display.Controller
	device  input.Device

	// Sub-systems
	input *input.InputSystem
	ui    *ui.UISystem

	sessionPath string
	copyText    func(string) error

	outsideW, outsideH int
	lastUpdate         time.Time

	screenshotRequested bool
	quitting            bool
}

// NewGame builds the viewer from cfg and restores the session stored at
// sessionPath, if there is one.
func NewGame(cfg *config.Config, sessionPath string) (*Game, error) {
	g, err := newGame(cfg, display.NewEbitenWindow(), input.Ebiten{}, LoadUIFont())
	if err != nil {
		return nil, err
	}
	g.sessionPath = sessionPath

	img, err := canvas.RasterizeMarker(canvas.MarkerSize)
	if err != nil {
		return nil, fmt.Errorf("origin marker: %w", err)
	}
	g.marker = canvas.NewMarker(img, ColorOriginCross)

	if sessionPath != "" {
		if err := LoadSession(g, sessionPath); err != nil {
			if !os.IsNotExist(err) {
				log.Printf("[session] load %s: %v", sessionPath, err)
				g.ui.Debug.SetError("session: " + err.Error())
			}
		} else {
			log.Printf("[session] restored %s", sessionPath)
		}
	}
	return g, nil
}

// newGame wires everything that does not need a graphics context.
func newGame(cfg *config.Config, win display.Window, dev input.Device, face text.Face) (*Game, error) {
	levels, err := cfg.GridLevels()
	if err != nil {
		return nil, err
	}
	bindings, err := cfg.Bindings()
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:      cfg,
		camera:   canvas.NewCamera(),
		grid:     canvas.NewGrid(levels, cfg.Grid.Color.Color(), cfg.Grid.FallbackAlpha),
		res:      canvas.NewResolution(cfg.Native.Width, cfg.Native.Height),
		window:   win,
		display:  display.NewController(win),
		device:   dev,
		copyText: clipboard.WriteAll,
	}
	g.camera.SetPosition(cfg.Camera.X, cfg.Camera.Y)
	g.camera.SetZoom(cfg.Camera.Zoom)
	g.res.OnChange = func(dest image.Rectangle) {
		log.Printf("[display] %dx%d -> %v", g.outsideW, g.outsideH, dest)
	}

	g.input = input.NewInputSystem(g, dev, bindings, cfg.Speeds())
	g.ui = ui.NewUISystem(face,
		func() { g.ScaleZoom(ZoomButtonFactor) },
		func() { g.ScaleZoom(1 / ZoomButtonFactor) },
	)
	return g, nil
}

func (g *Game) Update() error {
	now := time.Now()
	var dt float64
	if !g.lastUpdate.IsZero() {
		dt = now.Sub(g.lastUpdate).Seconds()
	}
	g.lastUpdate = now

	g.step(dt)
	if g.quitting {
		g.SaveSession()
		return ebiten.Termination
	}
	return nil
}

// step advances one frame by dt seconds.
func (g *Game) step(dt float64) {
	dt = math.Min(math.Max(dt, 0), MaxFrameTime)

	mx, my := g.device.CursorPosition()
	g.ui.Update(mx, my, g.device.IsMouseButtonPressed(ebiten.MouseButtonLeft))
	g.input.Update(dt)
	g.ui.SetStatus(g.statusLines(mx, my)...)
}

func (g *Game) statusLines(mx, my int) []string {
	x, y := g.camera.Position()
	nw, nh := g.res.NativeSize()

	layers := make([]string, 0, 2)
	for _, l := range g.grid.Layers(g.camera.Zoom()) {
		layers = append(layers, fmt.Sprintf("%d@%.2f", l.Pitch, l.Alpha))
	}

	lines := []string{
		fmt.Sprintf("camera (%.1f, %.1f) zoom %.2f rot %.0f°", x, y, g.camera.Zoom(), g.camera.Rotation()*180/math.Pi),
		"grid " + strings.Join(layers, " "),
		fmt.Sprintf("%s %dx%d -> %v", g.display.Mode(), nw, nh, g.res.Destination()),
	}
	if sx, sy, ok := g.res.ScreenToNative(float64(mx), float64(my)); ok {
		wx, wy := g.camera.ScreenToWorld(sx, sy, nw, nh)
		lines = append(lines, fmt.Sprintf("cursor (%.1f, %.1f)", wx, wy))
	}
	return lines
}

func (g *Game) Draw(screen *ebiten.Image) {
	surface := g.res.Surface()
	surface.Fill(g.cfg.Colors.Background.Color())
	g.grid.Draw(surface, g.camera)
	if g.marker != nil {
		g.marker.Draw(surface, g.camera)
	}

	screen.Fill(g.cfg.Colors.Letterbox.Color())
	g.res.Present(screen)
	g.ui.Draw(screen)

	// --- Save Screenshot ---
	if g.screenshotRequested {
		g.screenshotRequested = false
		if err := g.saveScreenshot(screen); err != nil {
			g.reportError("screenshot", err)
		}
	}
}

func (g *Game) saveScreenshot(img image.Image) error {
	dir := g.cfg.ScreenshotDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	name := filepath.Join(dir, fmt.Sprintf("screenshot-%s-%s.png", time.Now().Format("20060102-150405"), NewID()[:8]))
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return err
	}
	log.Println("Screenshot saved as", name)
	return nil
}

// Layout reports the physical screen size unchanged; the internal surface
// is scaled into it by Present.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.outsideW || outsideHeight != g.outsideH {
		g.outsideW, g.outsideH = outsideWidth, outsideHeight
		g.res.Recompute(outsideWidth, outsideHeight)
		g.ui.Layout(outsideWidth)
	}
	return outsideWidth, outsideHeight
}

func (g *Game) reportError(what string, err error) {
	log.Printf("%s error: %v", what, err)
	g.ui.Debug.SetError(fmt.Sprintf("%s: %v", what, err))
}

// --- input.Host ---

func (g *Game) MoveCamera(dx, dy float64) { g.camera.Move(dx, dy) }
func (g *Game) ZoomCamera(delta float64)  { g.camera.SetZoom(g.camera.Zoom() + delta) }
func (g *Game) ScaleZoom(factor float64)  { g.camera.SetZoom(g.camera.Zoom() * factor) }
func (g *Game) RotateCamera(dr float64)   { g.camera.Rotate(dr) }
func (g *Game) ResetCamera()              { g.camera.Reset() }
func (g *Game) ToggleFullscreen()         { g.display.ToggleFullscreen() }
func (g *Game) ToggleBorderless()         { g.display.ToggleBorderless() }
func (g *Game) RequestScreenshot()        { g.screenshotRequested = true }
func (g *Game) Quit()                     { g.quitting = true }

func (g *Game) IsMouseOver(mx, my int) bool { return g.ui.IsMouseOver(mx, my) }

// ApplyPan drags the world with the cursor. The delta arrives in physical
// pixels and is taken back through the presentation scale, the zoom and the
// rotation so the point under the cursor stays put.
func (g *Game) ApplyPan(dx, dy float64) {
	dest := g.res.Destination()
	if dest.Empty() {
		return
	}
	nw, _ := g.res.NativeSize()
	s := float64(dest.Dx()) / float64(nw)
	nx, ny := dx/s, dy/s

	sin, cos := math.Sincos(-g.camera.Rotation())
	z := g.camera.Zoom()
	wx := (nx*cos - ny*sin) / z
	wy := (nx*sin + ny*cos) / z
	g.camera.Move(-wx, -wy)
}

func (g *Game) SaveSession() {
	if g.sessionPath == "" {
		return
	}
	if err := SaveSession(g, g.sessionPath); err != nil {
		g.reportError("session", err)
		return
	}
	log.Printf("[session] saved %s", g.sessionPath)
}

// CameraText is the clipboard form of the camera: "x,y zoom rotation".
func (g *Game) CameraText() string {
	x, y := g.camera.Position()
	return fmt.Sprintf("%g,%g %g %g", x, y, g.camera.Zoom(), g.camera.Rotation())
}

func (g *Game) CopyCamera() {
	if err := g.copyText(g.CameraText()); err != nil {
		g.reportError("clipboard", err)
	}
}
