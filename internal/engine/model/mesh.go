package model

import (
	"errors"

	"github.com/Faultbox/hierarchy/pkg/formats"
	"github.com/Faultbox/hierarchy/pkg/math"
)

// ErrNilDescription is returned when Build is given no parsed description.
var ErrNilDescription = errors.New("nil mesh description")

// Build normalizes a parsed description and estimates per-vertex normals.
//
// Vertices are moved so the centroid sits at the origin and divided by the
// largest bounding-box extent, giving a largest extent of exactly 1. Each
// vertex normal is the normalized sum of the unnormalized cross products
// taken at that vertex's corner of every triangle that uses it, so larger
// triangles and wider corners weigh more.
func Build(name string, obj *formats.OBJ, opts BuildOptions) (*Mesh, error) {
	if obj == nil {
		return nil, ErrNilDescription
	}

	vertices := normalizePositions(obj)
	accum := accumulateNormals(vertices, obj.Faces)

	m := &Mesh{
		name:      name,
		positions: make([]float32, 0, len(vertices)*3),
		normals:   make([]float32, 0, len(vertices)*3),
		indices:   make([]uint32, 0, len(obj.Faces)*3),
	}

	for i, p := range vertices {
		n := accum[i].Normalize()
		if n.IsZero() {
			m.degenerate = append(m.degenerate, i)
			if opts.NormalFallback != nil {
				n = opts.NormalFallback.Normalize()
			}
		}
		m.positions = append(m.positions, p.X, p.Y, p.Z)
		m.normals = append(m.normals, n.X, n.Y, n.Z)

		if i == 0 {
			m.bounds = Bounds{Min: p, Max: p}
		} else {
			m.bounds.Min = m.bounds.Min.Min(p)
			m.bounds.Max = m.bounds.Max.Max(p)
		}
	}

	for _, f := range obj.Faces {
		m.indices = append(m.indices, f[0], f[1], f[2])
	}

	return m, nil
}

// normalizePositions centers the vertices on their centroid and scales them
// by the largest bounding-box extent. A description whose vertices all
// coincide is only centered.
func normalizePositions(obj *formats.OBJ) []math.Vec3 {
	center := obj.Centroid()
	scale := float32(1)
	if bbmax := obj.Extent().MaxComponent(); bbmax > 0 {
		scale = 1 / bbmax
	}

	out := make([]math.Vec3, len(obj.Vertices))
	for i, v := range obj.Vertices {
		out[i] = v.Sub(center).Scale(scale)
	}
	return out
}

// accumulateNormals sums, per vertex, the corner cross products of the
// triangles using it. At each corner the two edges run from the vertex to
// its successor and then to its predecessor in winding order, so all three
// corners of a triangle agree on its facing.
func accumulateNormals(vertices []math.Vec3, faces [][3]uint32) []math.Vec3 {
	accum := make([]math.Vec3, len(vertices))
	for _, f := range faces {
		for corner := 0; corner < 3; corner++ {
			v := f[corner]
			next := f[(corner+1)%3]
			prev := f[(corner+2)%3]

			e1 := vertices[next].Sub(vertices[v])
			e2 := vertices[prev].Sub(vertices[v])
			accum[v] = accum[v].Add(e1.Cross(e2))
		}
	}
	return accum
}
