// Package model turns parsed mesh descriptions into immutable, normalized,
// renderer-ready triangle meshes.
package model

import "github.com/Faultbox/hierarchy/pkg/math"

// Mesh is an immutable indexed triangle mesh with per-vertex normals.
// The flat buffers are laid out for direct GPU upload: three floats per
// position and normal, three indices per triangle. A Mesh may be shared
// by any number of scene nodes; callers must not modify the slices it
// returns.
type Mesh struct {
	name       string
	positions  []float32
	normals    []float32
	indices    []uint32
	bounds     Bounds
	degenerate []int
}

// Bounds holds the axis-aligned bounding box of the mesh.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Extent returns the size of the box on each axis.
func (b Bounds) Extent() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// Center returns the middle of the box.
func (b Bounds) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// BuildOptions contains options for mesh building.
type BuildOptions struct {
	// NormalFallback, when set, replaces the zero normal of vertices that
	// no triangle touches. Left nil, such vertices keep a zero normal.
	NormalFallback *math.Vec3
}

// Name returns the name the mesh was loaded under.
func (m *Mesh) Name() string { return m.name }

// Positions returns the flat position buffer (x, y, z per vertex).
func (m *Mesh) Positions() []float32 { return m.positions }

// Normals returns the flat normal buffer, index-aligned with Positions.
func (m *Mesh) Normals() []float32 { return m.normals }

// Indices returns the flat triangle index buffer (three per face).
func (m *Mesh) Indices() []uint32 { return m.indices }

// Bounds returns the bounding box of the stored positions.
func (m *Mesh) Bounds() Bounds { return m.bounds }

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return len(m.positions) / 3 }

// FaceCount returns the number of triangles.
func (m *Mesh) FaceCount() int { return len(m.indices) / 3 }

// Position returns vertex i.
func (m *Mesh) Position(i int) math.Vec3 {
	return math.Vec3{X: m.positions[i*3], Y: m.positions[i*3+1], Z: m.positions[i*3+2]}
}

// Normal returns the normal of vertex i.
func (m *Mesh) Normal(i int) math.Vec3 {
	return math.Vec3{X: m.normals[i*3], Y: m.normals[i*3+1], Z: m.normals[i*3+2]}
}

// Face returns the vertex indices of triangle i.
func (m *Mesh) Face(i int) [3]uint32 {
	return [3]uint32{m.indices[i*3], m.indices[i*3+1], m.indices[i*3+2]}
}

// DegenerateVertices returns the indices of vertices whose normal could not
// be estimated because no triangle with non-zero area touches them.
func (m *Mesh) DegenerateVertices() []int { return m.degenerate }
