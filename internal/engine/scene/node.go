// Package scene holds the transform hierarchy, the fixed scene built from it
// and the per-frame updater that animates it.
package scene

import (
	"errors"
	"fmt"

	"github.com/Faultbox/hierarchy/internal/engine/model"
	"github.com/Faultbox/hierarchy/pkg/math"
)

// Node errors.
var (
	ErrAlreadyAttached = errors.New("node already has a parent")
	ErrCycle           = errors.New("attaching node would create a cycle")
	ErrDuplicateID     = errors.New("duplicate node id")
)

// NodeID identifies a node within a graph.
type NodeID string

// Material holds surface lighting parameters for a node's mesh.
type Material struct {
	Diffuse   [4]float32
	Specular  [4]float32
	Shininess float32
}

// DefaultMaterial returns a neutral grey material.
func DefaultMaterial() Material {
	return Material{
		Diffuse:   [4]float32{0.8, 0.8, 0.8, 1},
		Specular:  [4]float32{0, 0, 0, 1},
		Shininess: 0,
	}
}

// Node is an element of the transform hierarchy. A node without a mesh
// only groups its children.
type Node struct {
	ID       NodeID
	Local    Transform
	Mesh     *model.Mesh
	Material Material

	parent   *Node
	children []*Node
	err      error
}

// NodeOption configures a Node created by NewNode.
type NodeOption func(n *Node)

// NewNode creates a node with an identity transform.
func NewNode(id NodeID, opts ...NodeOption) *Node {
	n := &Node{
		ID:       id,
		Local:    IdentityTransform(),
		Material: DefaultMaterial(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// WithMesh sets the mesh drawn at the node.
func WithMesh(m *model.Mesh) NodeOption {
	return func(n *Node) {
		n.Mesh = m
	}
}

// WithTranslation sets the local translation.
func WithTranslation(x, y, z float32) NodeOption {
	return func(n *Node) {
		n.Local.Translation = math.Vec3{X: x, Y: y, Z: z}
	}
}

// WithRotation sets the local rotation, in degrees about axis.
func WithRotation(angle float32, axis math.Vec3) NodeOption {
	return func(n *Node) {
		n.Local.Angle = angle
		n.Local.Axis = axis
	}
}

// WithScale sets a per-axis local scale.
func WithScale(x, y, z float32) NodeOption {
	return func(n *Node) {
		n.Local.Scale = math.Vec3{X: x, Y: y, Z: z}
	}
}

// WithUniformScale sets the same local scale on every axis.
func WithUniformScale(s float32) NodeOption {
	return WithScale(s, s, s)
}

// WithOffset sets the pre-rotation offset.
func WithOffset(x, y, z float32) NodeOption {
	return func(n *Node) {
		n.Local.Offset = math.Vec3{X: x, Y: y, Z: z}
	}
}

// WithMaterial sets the node's material.
func WithMaterial(m Material) NodeOption {
	return func(n *Node) {
		n.Material = m
	}
}

// WithChildren attaches children in order. The first attach failure is kept
// on the node and reported by NewGraph.
func WithChildren(children ...*Node) NodeOption {
	return func(n *Node) {
		for _, c := range children {
			if err := n.AddChild(c); err != nil && n.err == nil {
				n.err = err
			}
		}
	}
}

// AddChild appends child to the node's children. Attaching a node below
// itself or one of its descendants is a cycle, whether or not it already
// has a parent.
func (n *Node) AddChild(child *Node) error {
	for p := n; p != nil; p = p.parent {
		if p == child {
			return fmt.Errorf("%w: %s under %s", ErrCycle, child.ID, n.ID)
		}
	}
	if child.parent != nil {
		return fmt.Errorf("%w: %s under %s", ErrAlreadyAttached, child.ID, child.parent.ID)
	}
	child.parent = n
	n.children = append(n.children, child)
	return nil
}

// Children returns the node's children in draw order.
func (n *Node) Children() []*Node {
	return n.children
}

// Parent returns the node's parent, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}
