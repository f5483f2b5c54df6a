// Package camera holds the viewing parameters the mouse drives and turns
// them into view and projection matrices.
package camera

import (
	gomath "math"

	"github.com/Faultbox/hierarchy/pkg/math"
)

// Projection defaults.
const (
	DefaultFOV   = 45.0 // degrees, vertical
	DefaultZNear = 0.01
	DefaultZFar  = 1000.0
)

// View is a camera that orbits, pans and dollies around the center of the
// box it was last reset to.
type View struct {
	// Point the scene rotates about
	Center math.Vec3

	// Eye position before rotation
	Position math.Vec3

	// Rotation about Y (Yaw) and X (Pitch) through Center, in degrees
	Yaw   float32
	Pitch float32

	FOV   float32
	ZNear float32
	ZFar  float32

	// Drag sensitivity: scene units per pixel and degrees per pixel
	MotionSpeed float32
	RotateSpeed float32
}

// NewView creates a view fitted to the unit box [-1,1]³.
func NewView() *View {
	v := &View{}
	v.Reset(math.Vec3{X: -1, Y: -1, Z: -1}, math.Vec3{X: 1, Y: 1, Z: 1})
	return v
}

// Reset frames the box [lo, hi]: the eye looks down -Z at its center from
// far enough that a sphere around the box fills the field of view, and
// any rotation is cleared.
func (v *View) Reset(lo, hi math.Vec3) {
	radius := hi.Sub(lo).Length() * 0.707

	v.Center = lo.Add(hi).Scale(0.5)
	v.Position = math.Vec3{
		X: v.Center.X,
		Y: v.Center.Y,
		Z: radius/float32(gomath.Sin(float64(math.Radians(DefaultFOV)))) + v.Center.Z,
	}
	v.Yaw = 0
	v.Pitch = 0

	v.FOV = DefaultFOV
	v.ZNear = DefaultZNear
	v.ZFar = DefaultZFar

	v.MotionSpeed = 0.002 * radius
	v.RotateSpeed = 0.1
}

// Orbit rotates the scene by a drag of (dx, dy) pixels.
func (v *View) Orbit(dx, dy float32) {
	v.Yaw -= dx * v.RotateSpeed
	v.Pitch += dy * v.RotateSpeed
}

// Pan moves the eye sideways and vertically by a drag of (dx, dy) pixels.
func (v *View) Pan(dx, dy float32) {
	v.Position.X -= dx * v.MotionSpeed
	v.Position.Y += dy * v.MotionSpeed
}

// Dolly moves the eye along the view axis by a vertical drag of dy pixels.
// Dragging down moves closer.
func (v *View) Dolly(dy float32) {
	v.Position.Z -= dy * v.MotionSpeed
}

// ViewMatrix returns the world-to-eye transform:
//
//	T(-Position) · T(Center) · Ry(360 - Yaw) · Rx(Pitch) · T(-Center)
func (v *View) ViewMatrix() math.Mat4 {
	return math.TranslateVec(v.Position.Scale(-1)).
		Mul(math.TranslateVec(v.Center)).
		Mul(math.RotateY(math.Radians(360 - v.Yaw))).
		Mul(math.RotateX(math.Radians(v.Pitch))).
		Mul(math.TranslateVec(v.Center.Scale(-1)))
}

// Projection returns the perspective projection for a viewport with the
// given width/height ratio.
func (v *View) Projection(aspect float32) math.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return math.Perspective(math.Radians(v.FOV), aspect, v.ZNear, v.ZFar)
}
