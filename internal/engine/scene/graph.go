package scene

import (
	"fmt"

	"github.com/Faultbox/hierarchy/pkg/math"
)

// Graph is a fixed tree of nodes indexed by ID.
type Graph struct {
	root  *Node
	nodes map[NodeID]*Node
}

// Placement is a node together with its composed world transform.
type Placement struct {
	Node  *Node
	World math.Mat4
}

// NewGraph indexes the tree under root. Node IDs must be unique.
func NewGraph(root *Node) (*Graph, error) {
	g := &Graph{
		root:  root,
		nodes: make(map[NodeID]*Node),
	}

	var index func(n *Node) error
	index = func(n *Node) error {
		if n.err != nil {
			return n.err
		}
		if _, ok := g.nodes[n.ID]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateID, n.ID)
		}
		g.nodes[n.ID] = n
		for _, c := range n.children {
			if err := index(c); err != nil {
				return err
			}
		}
		return nil
	}
	if err := index(root); err != nil {
		return nil, err
	}

	return g, nil
}

// Root returns the root node.
func (g *Graph) Root() *Node {
	return g.root
}

// Node returns the node with the given ID, or nil.
func (g *Graph) Node(id NodeID) *Node {
	return g.nodes[id]
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Walk visits every node parent-first, passing world = parentWorld · local.
// world is the transform the root is placed under.
func (g *Graph) Walk(world math.Mat4, fn func(n *Node, world math.Mat4)) {
	walk(g.root, world, fn)
}

func walk(n *Node, parent math.Mat4, fn func(n *Node, world math.Mat4)) {
	world := parent.Mul(n.Local.Matrix())
	fn(n, world)
	for _, c := range n.children {
		walk(c, world, fn)
	}
}

// Compose appends the placement of every node, parent-first, to dst and
// returns it. Passing the previous frame's slice back as dst[:0] avoids
// allocating once it has grown to the graph's size.
func (g *Graph) Compose(dst []Placement, world math.Mat4) []Placement {
	g.Walk(world, func(n *Node, w math.Mat4) {
		dst = append(dst, Placement{Node: n, World: w})
	})
	return dst
}

// Bounds returns the world-space box enclosing every mesh at its current
// placement, transforming each mesh's local box corners.
func (g *Graph) Bounds(world math.Mat4) (lo, hi math.Vec3, ok bool) {
	g.Walk(world, func(n *Node, w math.Mat4) {
		if n.Mesh == nil {
			return
		}
		b := n.Mesh.Bounds()
		for i := 0; i < 8; i++ {
			corner := b.Min
			if i&1 != 0 {
				corner.X = b.Max.X
			}
			if i&2 != 0 {
				corner.Y = b.Max.Y
			}
			if i&4 != 0 {
				corner.Z = b.Max.Z
			}
			p := w.TransformPoint(corner)
			if !ok {
				lo, hi, ok = p, p, true
				continue
			}
			lo, hi = lo.Min(p), hi.Max(p)
		}
	})
	return lo, hi, ok
}
