package scene

import (
	"errors"
	"fmt"

	"github.com/Faultbox/hierarchy/internal/engine/model"
	"github.com/Faultbox/hierarchy/pkg/math"
)

// ErrMissingMesh is returned when a mesh the scene needs was not supplied.
var ErrMissingMesh = errors.New("missing mesh")

// Node IDs of the scene built by BuildHierarchy.
const (
	NodeRoot   NodeID = "root"
	NodeSun    NodeID = "sun"
	NodeStatue NodeID = "statue"
	NodeAxe    NodeID = "axe"
	NodeDragon NodeID = "dragon"
	NodeForest NodeID = "forest"
	NodeMale   NodeID = "male"
	NodeFemale NodeID = "female"
	NodeBunny  NodeID = "bunny"
	NodeBird   NodeID = "bird"
)

// Mesh keys BuildHierarchy looks up.
const (
	MeshStatue = "statue"
	MeshAxe    = "axe"
	MeshMale   = "male"
	MeshFemale = "female"
	MeshDragon = "dragon"
	MeshBird   = "bird"
	MeshBunny  = "bunny"
	MeshTree   = "tree"
)

// RequiredMeshes lists every mesh key BuildHierarchy needs.
var RequiredMeshes = []string{
	MeshStatue, MeshAxe, MeshMale, MeshFemale, MeshDragon, MeshBird, MeshBunny, MeshTree,
}

// Sun sphere resolution and radius.
const (
	sunRadius = 0.3
	sunSlices = 50
	sunStacks = 50
)

// Forest layout: one tree every forestSpacing along the diagonal, for
// offsets in [forestStart, forestEnd).
const (
	forestStart   = -5.0
	forestEnd     = 5.0
	forestSpacing = 0.5
)

var (
	axisY    = math.Vec3{Y: 1}
	axisNegY = math.Vec3{Y: -1}
)

// TreeID returns the node ID of the i-th tree of the forest.
func TreeID(i int) NodeID {
	return NodeID(fmt.Sprintf("tree-%02d", i))
}

// BuildHierarchy assembles the scene from loaded meshes and returns it with
// the updater that animates it.
//
//	root
//	├─ sun
//	├─ statue
//	├─ axe
//	└─ dragon
//	   ├─ forest ─ tree × 20
//	   └─ male
//	      ├─ female ─ bunny
//	      └─ bird
func BuildHierarchy(meshes map[string]*model.Mesh) (*Graph, *Updater, error) {
	for _, key := range RequiredMeshes {
		if meshes[key] == nil {
			return nil, nil, fmt.Errorf("%w: %s", ErrMissingMesh, key)
		}
	}

	sun := NewNode(NodeSun,
		WithMesh(model.Sphere("sun", sunRadius, sunSlices, sunStacks)),
		WithTranslation(0, 1.3, 0),
		WithUniformScale(0.3),
		WithRotation(0, axisY),
		WithMaterial(Material{
			Diffuse:   [4]float32{1, 0.7, 0, 1},
			Specular:  [4]float32{0.7, 0.2, 0, 1},
			Shininess: 30,
		}),
	)

	statue := NewNode(NodeStatue,
		WithMesh(meshes[MeshStatue]),
		WithTranslation(0, -0.6, 0),
		WithUniformScale(0.3),
		WithRotation(0, axisNegY),
		WithMaterial(Material{
			Diffuse:   [4]float32{0.2, 0.2, 0.2, 1},
			Specular:  [4]float32{0.5, 0.5, 0.5, 1},
			Shininess: 128,
		}),
	)

	axe := NewNode(NodeAxe,
		WithMesh(meshes[MeshAxe]),
		WithUniformScale(0.3),
		WithRotation(0, axisY),
		WithMaterial(Material{
			Diffuse:   [4]float32{1, 1, 0, 1},
			Specular:  [4]float32{1, 1, 1, 1},
			Shininess: 128,
		}),
	)

	treeMaterial := Material{
		Diffuse:   [4]float32{1, 0.5, 0, 1},
		Specular:  [4]float32{0.5, 1, 0, 1},
		Shininess: 128,
	}
	var trees []*Node
	for i, off := 0, float32(forestStart); off < forestEnd; i, off = i+1, off+forestSpacing {
		trees = append(trees, NewNode(TreeID(i),
			WithMesh(meshes[MeshTree]),
			WithTranslation(off+3, 0.2, off-1),
			WithMaterial(treeMaterial),
		))
	}
	forest := NewNode(NodeForest, WithChildren(trees...))

	bunny := NewNode(NodeBunny,
		WithMesh(meshes[MeshBunny]),
		WithTranslation(0, -0.5, 0),
		WithUniformScale(0.2),
		WithRotation(0, axisY),
		WithMaterial(Material{
			Diffuse:   [4]float32{0.5, 0.4, 0.4, 1},
			Specular:  [4]float32{1, 0.2, 0.1, 0},
			Shininess: 128,
		}),
	)

	female := NewNode(NodeFemale,
		WithMesh(meshes[MeshFemale]),
		WithTranslation(-0.5, -0.05, 0),
		WithRotation(0, axisY),
		WithMaterial(Material{
			Diffuse:   [4]float32{0.5, 0.4, 0.4, 1},
			Specular:  [4]float32{1, 0.2, 0.1, 0},
			Shininess: 128,
		}),
		WithChildren(bunny),
	)

	bird := NewNode(NodeBird,
		WithMesh(meshes[MeshBird]),
		WithTranslation(0.3, 0, 0),
		WithUniformScale(0.2),
		WithRotation(0, axisY),
		WithMaterial(Material{
			Diffuse:   [4]float32{0, 0.7, 0, 1},
			Specular:  [4]float32{0.8, 0.3, 0.2, 1},
			Shininess: 128,
		}),
	)

	male := NewNode(NodeMale,
		WithMesh(meshes[MeshMale]),
		WithTranslation(2, 0.2, 0),
		WithUniformScale(0.5),
		WithRotation(-90, axisY),
		WithMaterial(Material{
			Diffuse:   [4]float32{0.5, 0.7, 0.7, 1},
			Specular:  [4]float32{1, 0.2, 0.1, 0},
			Shininess: 100,
		}),
		WithChildren(female, bird),
	)

	dragon := NewNode(NodeDragon,
		WithMesh(meshes[MeshDragon]),
		WithRotation(0, axisY),
		WithOffset(-1, -0.5, 0),
		WithMaterial(Material{
			Diffuse:   [4]float32{0.5, 0, 0, 1},
			Specular:  [4]float32{0.5, 0.5, 0.5, 1},
			Shininess: 90,
		}),
		WithChildren(forest, male),
	)

	root := NewNode(NodeRoot, WithChildren(sun, statue, axe, dragon))

	g, err := NewGraph(root)
	if err != nil {
		return nil, nil, err
	}

	u, err := newSceneUpdater(g)
	if err != nil {
		return nil, nil, err
	}
	// Bring every animated node to its initial pose before the first frame.
	u.apply()

	return g, u, nil
}
