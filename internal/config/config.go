// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Faultbox/hierarchy/internal/engine/screenshot"
)

// Validation errors.
var (
	ErrInvalidWindow = errors.New("window size must be positive")
	ErrInvalidSpeed  = errors.New("animation speed must be positive")
	ErrInvalidFactor = errors.New("animation speed factor must be greater than 1")
	ErrMissingMesh   = errors.New("mesh path not configured")
	ErrTooManyLights = errors.New("too many lights")
	ErrInvalidLight  = errors.New("light direction must be non-zero")
)

// MaxLights is the number of directional lights the renderer evaluates.
const MaxLights = 3

// Config holds all viewer settings.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Scene      SceneConfig      `yaml:"scene"`
	Animation  AnimationConfig  `yaml:"animation"`
	Render     RenderConfig     `yaml:"render"`
	Screenshot ScreenshotConfig `yaml:"screenshot"`
	Logging    LoggingConfig    `yaml:"logging"`

	// Watch reloads animation and render settings when the file changes.
	Watch bool `yaml:"watch"`

	path string // file the settings were read from, if any
}

// Path returns the config file Load read, or "" when only defaults and
// flags were used.
func (c *Config) Path() string {
	return c.path
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"`
}

// SceneConfig says where the mesh descriptions live.
type SceneConfig struct {
	AssetDir string            `yaml:"asset_dir"` // Relative mesh paths resolve against this
	Meshes   map[string]string `yaml:"meshes"`    // Mesh key -> file
}

// AnimationConfig holds the initial animation state.
type AnimationConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Speed       float32 `yaml:"speed"`        // Multiplier applied to every per-tick step
	SpeedFactor float32 `yaml:"speed_factor"` // Change per speed up/down key press
}

// RenderConfig holds the initial render toggles and the scene lights.
type RenderConfig struct {
	Wireframe bool `yaml:"wireframe"`
	CullFace  bool `yaml:"cull_face"`
	FlatShade bool `yaml:"flat_shade"`

	// Lights replaces the built-in eye, red and blue lights when set.
	Lights []LightConfig `yaml:"lights,omitempty"`
}

// LightConfig is a directional light fixed relative to the eye.
type LightConfig struct {
	Direction [3]float32 `yaml:"direction"` // toward the light, eye space
	Diffuse   [3]float32 `yaml:"diffuse"`
	Specular  [3]float32 `yaml:"specular"`
}

// ScreenshotConfig says where captured frames go.
type ScreenshotConfig struct {
	Dir    string `yaml:"dir"`
	Format string `yaml:"format"` // png or bmp
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:      1200,
			Height:     800,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   60,
		},
		Scene: SceneConfig{
			AssetDir: ".",
			Meshes: map[string]string{
				"statue": "statue.obj",
				"axe":    "axe.obj",
				"male":   "male.obj",
				"female": "female.obj",
				"dragon": "dragon.obj",
				"bird":   "bird.obj",
				"bunny":  "bunny.obj",
				"tree":   "tree_conical.obj",
			},
		},
		Animation: AnimationConfig{
			Enabled:     true,
			Speed:       0.3,
			SpeedFactor: 1.2,
		},
		Render: RenderConfig{
			Wireframe: false,
			CullFace:  true,
			FlatShade: false,
		},
		Screenshot: ScreenshotConfig{
			Dir:    "screenshots",
			Format: "png",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks the settings the viewer cannot start without. Every key
// in required must have a mesh path.
func (c *Config) Validate(required ...string) error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidWindow, c.Window.Width, c.Window.Height)
	}
	if !(c.Animation.Speed > 0) {
		return fmt.Errorf("%w: %v", ErrInvalidSpeed, c.Animation.Speed)
	}
	if !(c.Animation.SpeedFactor > 1) {
		return fmt.Errorf("%w: %v", ErrInvalidFactor, c.Animation.SpeedFactor)
	}

	if _, err := screenshot.ParseFormat(c.Screenshot.Format); err != nil {
		return err
	}

	if len(c.Render.Lights) > MaxLights {
		return fmt.Errorf("%w: %d, at most %d", ErrTooManyLights, len(c.Render.Lights), MaxLights)
	}
	for i, l := range c.Render.Lights {
		if l.Direction == [3]float32{} {
			return fmt.Errorf("%w: light %d", ErrInvalidLight, i)
		}
	}

	var missing []string
	for _, key := range required {
		if c.Scene.Meshes[key] == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("%w: %v", ErrMissingMesh, missing)
	}
	return nil
}
