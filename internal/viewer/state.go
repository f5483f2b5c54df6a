// Package viewer runs the interactive frame loop around a scene graph.
package viewer

import (
	"github.com/Faultbox/hierarchy/internal/config"
	"github.com/Faultbox/hierarchy/internal/engine/input"
	"github.com/Faultbox/hierarchy/internal/engine/renderer"
)

// Speed bounds keep repeated key presses from driving the multiplier to
// zero or to steps larger than any oscillator range.
const (
	MinSpeed = 0.01
	MaxSpeed = 10
)

// State is the viewer state the keyboard toggles.
type State struct {
	Wireframe bool
	CullFace  bool
	FlatShade bool
	Animating bool

	Speed       float32 // multiplier on every animation step
	SpeedFactor float32 // change per speed up/down command
}

// NewState returns the initial state described by cfg.
func NewState(cfg *config.Config) State {
	return State{
		Wireframe:   cfg.Render.Wireframe,
		CullFace:    cfg.Render.CullFace,
		FlatShade:   cfg.Render.FlatShade,
		Animating:   cfg.Animation.Enabled,
		Speed:       clampSpeed(cfg.Animation.Speed),
		SpeedFactor: cfg.Animation.SpeedFactor,
	}
}

// Reload replaces every setting with the values in cfg.
func (s *State) Reload(cfg *config.Config) {
	*s = NewState(cfg)
}

// Apply updates the state for cmd and reports whether cmd was one of the
// state's commands. Quit and view reset belong to the caller.
func (s *State) Apply(cmd input.Command) bool {
	switch cmd {
	case input.CommandToggleWireframe:
		s.Wireframe = !s.Wireframe
	case input.CommandToggleCullFace:
		s.CullFace = !s.CullFace
	case input.CommandToggleFlatShade:
		s.FlatShade = !s.FlatShade
	case input.CommandToggleAnimation:
		s.Animating = !s.Animating
	case input.CommandSpeedUp:
		s.Speed = clampSpeed(s.Speed * s.SpeedFactor)
	case input.CommandSlowDown:
		s.Speed = clampSpeed(s.Speed / s.SpeedFactor)
	default:
		return false
	}
	return true
}

// RenderOptions returns the render toggles of s.
func (s State) RenderOptions() renderer.Options {
	return renderer.Options{
		Wireframe: s.Wireframe,
		CullFace:  s.CullFace,
		FlatShade: s.FlatShade,
	}
}

func clampSpeed(v float32) float32 {
	if v < MinSpeed {
		return MinSpeed
	}
	if v > MaxSpeed {
		return MaxSpeed
	}
	return v
}
