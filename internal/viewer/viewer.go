package viewer

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/hierarchy/internal/config"
	"github.com/Faultbox/hierarchy/internal/engine/camera"
	"github.com/Faultbox/hierarchy/internal/engine/input"
	"github.com/Faultbox/hierarchy/internal/engine/renderer"
	"github.com/Faultbox/hierarchy/internal/engine/scene"
	"github.com/Faultbox/hierarchy/internal/engine/screenshot"
	"github.com/Faultbox/hierarchy/internal/engine/window"
	"github.com/Faultbox/hierarchy/internal/logger"
	"github.com/Faultbox/hierarchy/pkg/math"
)

// Title is the window title.
const Title = "Hierarchical Modeling"

// Viewer owns the window and draws an animated scene until asked to quit.
type Viewer struct {
	cfg     *config.Config
	graph   *scene.Graph
	updater *scene.Updater

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	view     *camera.View
	state    State

	capture       *screenshot.Capture
	captureQueued bool

	watcher *config.Watcher // nil unless cfg.Watch and a file was loaded

	// Box the view resets to
	lo, hi math.Vec3
}

// New creates the window and GL resources for g.
func New(cfg *config.Config, g *scene.Graph, u *scene.Updater) (*Viewer, error) {
	logger.Info("initializing viewer",
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.Int("nodes", g.Len()),
	)

	format, err := screenshot.ParseFormat(cfg.Screenshot.Format)
	if err != nil {
		return nil, err
	}

	v := &Viewer{
		cfg:     cfg,
		graph:   g,
		updater: u,
		input:   input.New(),
		view:    camera.NewView(),
		state:   NewState(cfg),
		capture: screenshot.New(cfg.Screenshot.Dir, "hierarchy", format),
	}

	v.window, err = window.New(window.Options{
		Title:      Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer needs the GL context the window created
	w, h := v.window.DrawableSize()
	v.renderer, err = renderer.New(w, h)
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	uploaded := v.renderer.Upload(g)
	v.renderer.SetLights(sceneLights(cfg))

	v.lo, v.hi = sceneBounds(g)
	v.view.Reset(v.lo, v.hi)

	if cfg.Watch && cfg.Path() != "" {
		// Without a watcher the startup settings stay in effect.
		if v.watcher, err = config.Watch(cfg.Path()); err != nil {
			logger.Warn("config watch disabled", zap.Error(err))
		}
	}

	logger.Info("viewer initialized",
		zap.Int("meshes", uploaded),
		zap.Float32("speed", v.state.Speed),
		zap.Bool("animating", v.state.Animating),
	)
	return v, nil
}

// sceneBounds returns the world box of g's meshes, or the unit box when
// there are none.
func sceneBounds(g *scene.Graph) (lo, hi math.Vec3) {
	lo, hi, ok := g.Bounds(math.Identity())
	if !ok || lo == hi {
		return math.Vec3{X: -1, Y: -1, Z: -1}, math.Vec3{X: 1, Y: 1, Z: 1}
	}
	return lo, hi
}

// Run runs the frame loop until a quit command or window close.
func (v *Viewer) Run() error {
	var frameBudget time.Duration
	if v.cfg.Window.FPSLimit > 0 {
		frameBudget = time.Second / time.Duration(v.cfg.Window.FPSLimit)
	}

	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting frame loop")

	for {
		frameStart := time.Now()

		if v.handleInput() {
			logger.Info("quit requested")
			return nil
		}

		v.applyReload()

		// Paused frames leave every driver where it is.
		v.updater.Update(v.state.Animating, v.state.Speed)

		v.renderer.Begin()
		v.renderer.DrawScene(v.graph, v.view.ViewMatrix(), v.view.Projection(v.renderer.Aspect()), v.state.RenderOptions())
		if v.captureQueued {
			v.saveScreenshot()
		}
		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount), zap.Float32("speed", v.state.Speed))
			frameCount = 0
			fpsTimer = time.Now()
		}

		if frameBudget > 0 {
			if rest := frameBudget - time.Since(frameStart); rest > 0 {
				time.Sleep(rest)
			}
		}
	}
}

// handleInput applies this frame's events and reports whether to quit.
func (v *Viewer) handleInput() bool {
	if v.input.Update() {
		return true
	}

	if _, _, ok := v.input.Resized(); ok {
		v.renderer.Resize(v.window.DrawableSize())
	}

	for _, cmd := range v.input.Commands() {
		switch cmd {
		case input.CommandQuit:
			return true
		case input.CommandResetView:
			v.view.Reset(v.lo, v.hi)
		case input.CommandScreenshot:
			v.captureQueued = true
		default:
			v.state.Apply(cmd)
		}
		logger.Debug("command",
			zap.Stringer("command", cmd),
			zap.Bool("animating", v.state.Animating),
			zap.Float32("speed", v.state.Speed),
		)
	}

	for _, d := range v.input.Drags() {
		switch d.Button {
		case input.ButtonLeft:
			v.view.Orbit(d.DX, d.DY)
		case input.ButtonMiddle:
			v.view.Pan(d.DX, d.DY)
		case input.ButtonRight:
			v.view.Dolly(d.DY)
		}
	}
	return false
}

// applyReload takes the latest config the watcher read, if any.
func (v *Viewer) applyReload() {
	if v.watcher == nil {
		return
	}
	select {
	case cfg := <-v.watcher.Updates():
		v.state.Reload(cfg)
		v.renderer.SetLights(sceneLights(cfg))
		logger.Info("config reloaded",
			zap.Bool("animating", v.state.Animating),
			zap.Float32("speed", v.state.Speed),
			zap.Bool("wireframe", v.state.Wireframe),
		)
	default:
	}
}

// saveScreenshot writes the frame just drawn. Failures are logged and the
// viewer keeps running.
func (v *Viewer) saveScreenshot() {
	v.captureQueued = false

	pixels, w, h := v.renderer.ReadPixels()
	path, err := v.capture.FromPixels(pixels, w, h)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// Close releases GL resources and the window.
func (v *Viewer) Close() {
	logger.Info("closing viewer")

	if v.watcher != nil {
		v.watcher.Close()
	}

	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}
