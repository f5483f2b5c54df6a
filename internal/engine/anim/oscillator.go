// Package anim provides the bounded and unbounded per-frame motion drivers
// used to animate scene nodes.
package anim

import (
	"errors"
	gomath "math"
)

// Oscillator errors.
var (
	ErrInvalidLimits = errors.New("oscillator lower limit must be below upper limit")
	ErrInvalidStep   = errors.New("oscillator step must be positive")
)

// Oscillator bounces a value between two limits by a fixed step per tick.
//
// The value is never clamped: the tick that carries it past a limit leaves
// it there, at most one step beyond, and reverses the direction so the
// next tick steps back inside.
type Oscillator struct {
	Value       float32
	Lower       float32
	Upper       float32
	Step        float32
	TowardLower bool
}

// NewOscillator creates an oscillator starting at start.
func NewOscillator(lower, upper, step, start float32, towardLower bool) (Oscillator, error) {
	if !(lower < upper) {
		return Oscillator{}, ErrInvalidLimits
	}
	if !(step > 0) {
		return Oscillator{}, ErrInvalidStep
	}
	return Oscillator{
		Value:       start,
		Lower:       lower,
		Upper:       upper,
		Step:        step,
		TowardLower: towardLower,
	}, nil
}

// Tick advances the value by Step*scale in the current direction.
func (o *Oscillator) Tick(scale float32) {
	// A start value already past the limit it heads for turns around
	// without first moving further out.
	o.reflect()

	step := o.Step * scale
	if o.TowardLower {
		o.Value -= step
	} else {
		o.Value += step
	}

	o.reflect()
}

// Direction returns -1 while moving toward Lower and +1 otherwise.
func (o *Oscillator) Direction() float32 {
	if o.TowardLower {
		return -1
	}
	return 1
}

func (o *Oscillator) reflect() {
	if o.TowardLower && o.Value < o.Lower {
		o.TowardLower = false
	} else if !o.TowardLower && o.Value > o.Upper {
		o.TowardLower = true
	}
}

// Spinner accumulates a rotation angle in degrees at a constant speed.
type Spinner struct {
	Angle float32
	Speed float32 // degrees per tick at scale 1
}

// Tick advances the angle by Speed*scale, kept within [0, 360).
func (s *Spinner) Tick(scale float32) {
	a := gomath.Mod(float64(s.Angle+s.Speed*scale), 360)
	if a < 0 {
		a += 360
	}
	s.Angle = float32(a)
}
