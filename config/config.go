// Package config loads viewer settings from YAML or Starlark files.
//
// Both formats produce the same generic document, which is checked against
// an embedded JSON schema, decoded over Default() and then validated
// against the canvas and input packages.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"gridview/canvas"
	"gridview/input"
)

type RGBA struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
	A uint8 `yaml:"a"`
}

func (c RGBA) Color() color.RGBA { return color.RGBA{c.R, c.G, c.B, c.A} }

type WindowConfig struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Resizable bool   `yaml:"resizable"`
}

type SizeConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type CameraConfig struct {
	MoveSpeed   float64 `yaml:"move_speed"`
	ZoomSpeed   float64 `yaml:"zoom_speed"`
	WheelZoom   float64 `yaml:"wheel_zoom"`
	RotateSpeed float64 `yaml:"rotate_speed"`
	X           float64 `yaml:"x"`
	Y           float64 `yaml:"y"`
	Zoom        float64 `yaml:"zoom"`
}

type LevelConfig struct {
	Pitch     int     `yaml:"pitch"`
	Threshold float64 `yaml:"threshold"`
}

type GridConfig struct {
	Levels        []LevelConfig `yaml:"levels"`
	Color         RGBA          `yaml:"color"`
	FallbackAlpha float64       `yaml:"fallback_alpha"`
}

type ColorsConfig struct {
	Background RGBA `yaml:"background"`
	Letterbox  RGBA `yaml:"letterbox"`
}

type Config struct {
	Window WindowConfig `yaml:"window"`
	Native SizeConfig   `yaml:"native"`
	Camera CameraConfig `yaml:"camera"`
	Grid   GridConfig   `yaml:"grid"`
	Colors ColorsConfig `yaml:"colors"`
	// Keys maps action names to ebiten key names. Actions not listed keep
	// their default keys.
	Keys map[string][]string `yaml:"keys,omitempty"`

	SessionFile   string `yaml:"session_file"`
	ScreenshotDir string `yaml:"screenshot_dir"`
}

func Default() *Config {
	levels := make([]LevelConfig, len(canvas.DefaultGridLevels))
	for i, l := range canvas.DefaultGridLevels {
		levels[i] = LevelConfig{Pitch: l.Pitch, Threshold: l.ZoomThreshold}
	}
	return &Config{
		Window: WindowConfig{
			Title:     DefaultTitle,
			Width:     DefaultWindowWidth,
			Height:    DefaultWindowHeight,
			Resizable: true,
		},
		Native: SizeConfig{Width: DefaultNativeWidth, Height: DefaultNativeHeight},
		Camera: CameraConfig{
			MoveSpeed:   DefaultMoveSpeed,
			ZoomSpeed:   DefaultZoomSpeed,
			WheelZoom:   DefaultWheelZoom,
			RotateSpeed: DefaultRotateSpeed,
			Zoom:        DefaultCameraZoom,
		},
		Grid: GridConfig{
			Levels:        levels,
			Color:         DefaultGridColor,
			FallbackAlpha: DefaultFallbackAlpha,
		},
		Colors: ColorsConfig{
			Background: DefaultBackground,
			Letterbox:  DefaultLetterbox,
		},
		SessionFile:   DefaultSessionFile,
		ScreenshotDir: DefaultScreenshotDir,
	}
}

// Load reads a .yaml, .yml or .star file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg *Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		cfg, err = ParseYAML(data)
	case ".star":
		cfg, err = ParseStarlark(path, data)
	default:
		return nil, fmt.Errorf("config %s: unsupported extension %q", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	log.Printf("[config] loaded %s", path)
	return cfg, nil
}

func ParseYAML(data []byte) (*Config, error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if doc == nil {
		doc = map[string]interface{}{}
	}
	return fromDocument(doc)
}

// ParseStarlark executes src and reads its top-level globals as the
// configuration document. The script sees the default configuration as the
// dict "defaults".
func ParseStarlark(name string, src []byte) (*Config, error) {
	defaults, err := Default().document()
	if err != nil {
		return nil, err
	}
	doc, err := ExecScript(name, src, map[string]interface{}{"defaults": defaults})
	if err != nil {
		return nil, fmt.Errorf("run script: %w", err)
	}
	return fromDocument(doc)
}

func fromDocument(doc interface{}) (*Config, error) {
	if err := ValidateDocument(doc); err != nil {
		return nil, err
	}

	// Round-trip through YAML so the document lands on top of the defaults.
	raw, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// document is the generic form of c, as a script or the schema sees it.
func (c *Config) document() (map[string]interface{}, error) {
	raw, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	var doc map[string]interface{}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return doc, nil
}

// Validate checks what the schema cannot express.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Native.Width <= 0 || c.Native.Height <= 0 {
		errs = append(errs, fmt.Errorf("native size %dx%d must be positive", c.Native.Width, c.Native.Height))
	}
	if a := c.Grid.FallbackAlpha; a < 0 || a > 1 {
		errs = append(errs, fmt.Errorf("grid fallback_alpha %v outside [0, 1]", a))
	}
	if _, err := c.GridLevels(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Bindings(); err != nil {
		errs = append(errs, fmt.Errorf("keys: %w", err))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (c *Config) GridLevels() (canvas.GridLevels, error) {
	levels := make([]canvas.GridLevel, len(c.Grid.Levels))
	for i, l := range c.Grid.Levels {
		levels[i] = canvas.GridLevel{Pitch: l.Pitch, ZoomThreshold: l.Threshold}
	}
	return canvas.NewGridLevels(levels...)
}

func (c *Config) Bindings() (input.Bindings, error) {
	return input.ParseBindings(c.Keys)
}

func (c *Config) Speeds() input.Speeds {
	return input.Speeds{
		Move:      c.Camera.MoveSpeed,
		Zoom:      c.Camera.ZoomSpeed,
		Rotate:    c.Camera.RotateSpeed,
		WheelZoom: c.Camera.WheelZoom,
	}
}
