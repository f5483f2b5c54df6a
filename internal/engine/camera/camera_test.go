package camera

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/hierarchy/pkg/math"
)

const eps = 1e-4

func TestResetUnitBox(t *testing.T) {
	v := NewView()

	radius := float32(gomath.Sqrt(12)) * 0.707
	wantZ := radius / float32(gomath.Sin(gomath.Pi/4))

	if !v.Center.IsZero() {
		t.Errorf("Center = %v, want origin", v.Center)
	}
	if v.Position.X != 0 || v.Position.Y != 0 || abs(v.Position.Z-wantZ) > eps {
		t.Errorf("Position = %v, want (0, 0, %v)", v.Position, wantZ)
	}
	if abs(v.MotionSpeed-0.002*radius) > eps {
		t.Errorf("MotionSpeed = %v, want %v", v.MotionSpeed, 0.002*radius)
	}
	if v.RotateSpeed != 0.1 {
		t.Errorf("RotateSpeed = %v, want 0.1", v.RotateSpeed)
	}
	if v.ZNear != DefaultZNear || v.ZFar != DefaultZFar || v.FOV != DefaultFOV {
		t.Errorf("projection = fov %v near %v far %v", v.FOV, v.ZNear, v.ZFar)
	}
}

func TestResetClearsRotation(t *testing.T) {
	v := NewView()
	v.Orbit(100, -40)
	v.Pan(5, 5)
	v.Reset(math.Vec3{X: 1, Y: 2, Z: 3}, math.Vec3{X: 3, Y: 4, Z: 5})

	if v.Yaw != 0 || v.Pitch != 0 {
		t.Errorf("rotation not cleared: yaw %v pitch %v", v.Yaw, v.Pitch)
	}
	want := math.Vec3{X: 2, Y: 3, Z: 4}
	if v.Center != want {
		t.Errorf("Center = %v, want %v", v.Center, want)
	}
	if v.Position.X != 2 || v.Position.Y != 3 || v.Position.Z <= 4 {
		t.Errorf("Position = %v, want in front of the center", v.Position)
	}
}

func TestDrags(t *testing.T) {
	tests := []struct {
		name  string
		drag  func(v *View)
		check func(t *testing.T, v *View, m float32)
	}{
		{
			name: "orbit",
			drag: func(v *View) { v.Orbit(10, 20) },
			check: func(t *testing.T, v *View, m float32) {
				if abs(v.Yaw+1) > eps || abs(v.Pitch-2) > eps {
					t.Errorf("yaw %v pitch %v, want -1 and 2", v.Yaw, v.Pitch)
				}
			},
		},
		{
			name: "pan",
			drag: func(v *View) { v.Pan(10, 20) },
			check: func(t *testing.T, v *View, m float32) {
				if abs(v.Position.X+10*m) > eps || abs(v.Position.Y-20*m) > eps {
					t.Errorf("position %v", v.Position)
				}
			},
		},
		{
			name: "dolly",
			drag: func(v *View) { v.Dolly(10) },
			check: func(t *testing.T, v *View, m float32) {
				start := NewView().Position.Z
				if abs(v.Position.Z-(start-10*m)) > eps {
					t.Errorf("z = %v, want %v", v.Position.Z, start-10*m)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewView()
			tt.drag(v)
			tt.check(t, v, v.MotionSpeed)
		})
	}
}

func TestViewMatrixCenterInFront(t *testing.T) {
	v := NewView()
	v.Orbit(123, -45)

	// Rotation is about the center, so it stays straight ahead of the eye.
	p := v.ViewMatrix().TransformPoint(v.Center)
	want := math.Vec3{Z: -v.Position.Z}
	if p.Distance(want) > eps {
		t.Errorf("center in eye space = %v, want %v", p, want)
	}
}

func TestViewMatrixYaw(t *testing.T) {
	v := NewView()
	v.Yaw = 90

	// Ry(270) turns +X toward +Z.
	p := v.ViewMatrix().TransformDirection(math.Vec3{X: 1})
	if p.Distance(math.Vec3{Z: 1}) > eps {
		t.Errorf("+X in eye space = %v, want +Z", p)
	}
}

func TestProjection(t *testing.T) {
	v := NewView()
	got := v.Projection(2)
	want := math.Perspective(math.Radians(45), 2, 0.01, 1000)
	if !got.ApproxEqual(want, eps) {
		t.Errorf("Projection(2) = %v, want %v", got, want)
	}
	if !v.Projection(0).ApproxEqual(v.Projection(1), 0) {
		t.Error("non-positive aspect should fall back to 1")
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
