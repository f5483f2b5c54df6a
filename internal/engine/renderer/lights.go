package renderer

import "github.com/Faultbox/hierarchy/pkg/math"

// MaxLights is the number of directional lights the shader evaluates.
const MaxLights = 3

// Light is a directional light fixed in eye space.
type Light struct {
	Direction math.Vec3 // toward the light
	Diffuse   [3]float32
	Specular  [3]float32
}

// DefaultLights returns a white light at the eye and a dim red and blue
// pair from the upper left and upper right.
func DefaultLights() []Light {
	return []Light{
		{
			Direction: math.Vec3{Z: 1},
			Diffuse:   [3]float32{1, 1, 1},
			Specular:  [3]float32{1, 1, 1},
		},
		{
			Direction: math.Vec3{X: -0.1, Y: 0.1},
			Diffuse:   [3]float32{0.6, 0.05, 0.05},
			Specular:  [3]float32{0.6, 0.05, 0.05},
		},
		{
			Direction: math.Vec3{X: 0.1, Y: 0.1},
			Diffuse:   [3]float32{0.05, 0.05, 0.6},
			Specular:  [3]float32{0.05, 0.05, 0.6},
		},
	}
}

// Global ambient light times the ambient reflectance every material shares.
const (
	sceneAmbient    = 1.0
	materialAmbient = 0.2
)

// lightBlock is the uniform data for up to MaxLights lights. Unused slots
// stay black.
type lightBlock struct {
	directions [MaxLights * 3]float32
	diffuse    [MaxLights * 3]float32
	specular   [MaxLights * 3]float32
	count      int32
}

func packLights(lights []Light) lightBlock {
	var b lightBlock
	for i, l := range lights {
		if i == MaxLights {
			break
		}
		d := l.Direction.Normalize()
		copy(b.directions[i*3:], []float32{d.X, d.Y, d.Z})
		copy(b.diffuse[i*3:], l.Diffuse[:])
		copy(b.specular[i*3:], l.Specular[:])
		b.count++
	}
	return b
}
