package scene

import "github.com/Faultbox/hierarchy/pkg/math"

// Transform is a node's placement relative to its parent.
//
// A point is first shifted by Offset, then scaled, rotated by Angle degrees
// about Axis, and finally moved by Translation:
//
//	T(Translation) · R(Axis, Angle) · S(Scale) · T(Offset)
//
// Offset is zero for most nodes; it places a node away from the pivot it
// spins around.
type Transform struct {
	Translation math.Vec3
	Axis        math.Vec3
	Angle       float32 // degrees
	Scale       math.Vec3
	Offset      math.Vec3
}

// IdentityTransform returns a transform that leaves points unchanged.
func IdentityTransform() Transform {
	return Transform{
		Axis:  math.Vec3{Y: 1},
		Scale: math.Vec3{X: 1, Y: 1, Z: 1},
	}
}

// Matrix returns the transform as a column-major matrix.
func (t Transform) Matrix() math.Mat4 {
	m := math.TranslateVec(t.Translation)
	if t.Angle != 0 {
		m = m.Mul(math.QuatFromAxisAngle(t.Axis, math.Radians(t.Angle)).ToMat4())
	}
	m = m.Mul(math.Scale(t.Scale.X, t.Scale.Y, t.Scale.Z))
	if !t.Offset.IsZero() {
		m = m.Mul(math.TranslateVec(t.Offset))
	}
	return m
}
