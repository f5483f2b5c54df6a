package model

import (
	gomath "math"

	"github.com/Faultbox/hierarchy/pkg/math"
)

// Sphere builds a UV sphere centered at the origin. Unlike loaded meshes it
// is not normalized; normals are exact. slices is clamped to at least 3 and
// stacks to at least 2.
func Sphere(name string, radius float32, slices, stacks int) *Mesh {
	slices = max(slices, 3)
	stacks = max(stacks, 2)

	vertCount := (stacks + 1) * (slices + 1)
	m := &Mesh{
		name:      name,
		positions: make([]float32, 0, vertCount*3),
		normals:   make([]float32, 0, vertCount*3),
		indices:   make([]uint32, 0, slices*(stacks-1)*6),
		bounds: Bounds{
			Min: math.Vec3{X: -radius, Y: -radius, Z: -radius},
			Max: math.Vec3{X: radius, Y: radius, Z: radius},
		},
	}

	for i := 0; i <= stacks; i++ {
		phi := gomath.Pi * float64(i) / float64(stacks)
		sinPhi, cosPhi := gomath.Sincos(phi)
		for j := 0; j <= slices; j++ {
			theta := 2 * gomath.Pi * float64(j) / float64(slices)
			sinTheta, cosTheta := gomath.Sincos(theta)

			n := math.Vec3{
				X: float32(sinPhi * cosTheta),
				Y: float32(cosPhi),
				Z: float32(-sinPhi * sinTheta),
			}
			p := n.Scale(radius)
			m.positions = append(m.positions, p.X, p.Y, p.Z)
			m.normals = append(m.normals, n.X, n.Y, n.Z)
		}
	}

	// Counter-clockwise seen from outside. The pole rows collapse one of
	// each quad's two triangles, which is skipped.
	row := uint32(slices + 1)
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			a := uint32(i)*row + uint32(j)
			b := a + row
			c := b + 1
			d := a + 1
			if i != stacks-1 {
				m.indices = append(m.indices, a, b, c)
			}
			if i != 0 {
				m.indices = append(m.indices, a, c, d)
			}
		}
	}

	return m
}
