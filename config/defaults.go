package config

const (
	// --- Window ---
	DefaultTitle        = "gridview"
	DefaultWindowWidth  = 1280
	DefaultWindowHeight = 720

	// --- Internal surface ---
	DefaultNativeWidth  = 640
	DefaultNativeHeight = 360

	// --- Camera ---
	DefaultMoveSpeed   = 300.0 // world units per second
	DefaultZoomSpeed   = 0.6   // zoom per second while a key is held
	DefaultWheelZoom   = 1.1   // factor per wheel notch
	DefaultRotateSpeed = 1.5   // radians per second
	DefaultCameraZoom  = 1.0

	// --- Grid ---
	DefaultFallbackAlpha = 0.4

	// --- Files ---
	DefaultSessionFile   = "session.yaml"
	DefaultScreenshotDir = "screenshots"
)

var (
	// --- Colors ---
	DefaultGridColor  = RGBA{200, 200, 200, 255}
	DefaultBackground = RGBA{100, 149, 237, 255} // cornflower blue
	DefaultLetterbox  = RGBA{0, 0, 0, 255}
)
