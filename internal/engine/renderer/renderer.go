// Package renderer draws scene graphs with OpenGL.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/hierarchy/internal/engine/model"
	"github.com/Faultbox/hierarchy/internal/engine/scene"
	"github.com/Faultbox/hierarchy/internal/engine/shader"
	"github.com/Faultbox/hierarchy/internal/logger"
	"github.com/Faultbox/hierarchy/pkg/math"
)

// Options are the per-frame render toggles.
type Options struct {
	Wireframe bool
	CullFace  bool
	FlatShade bool
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	width  int
	height int

	program *shader.Program
	lights  lightBlock

	// One upload per distinct mesh, however many nodes draw it
	meshes map[*model.Mesh]*gpuMesh
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(width, height int) (*Renderer, error) {
	r := &Renderer{
		meshes: make(map[*model.Mesh]*gpuMesh),
		lights: packLights(DefaultLights()),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.CullFace(gl.BACK)
	gl.ClearColor(0.1, 0.1, 0.1, 1.0)
	gl.ClearDepth(1.0)

	var err error
	r.program, err = shader.NewProgram(meshVertexShader, meshFragmentShader, meshUniforms...)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	logger.Debug("shader program created", zap.Uint32("program", r.program.ID))

	r.Resize(width, height)
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	for m, g := range r.meshes {
		g.delete()
		delete(r.meshes, m)
	}
	if r.program != nil {
		r.program.Delete()
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Aspect returns the viewport's width/height ratio.
func (r *Renderer) Aspect() float32 {
	if r.height == 0 {
		return 1
	}
	return float32(r.width) / float32(r.height)
}

// SetLights replaces the scene lights. Lights past MaxLights are ignored.
func (r *Renderer) SetLights(lights []Light) {
	r.lights = packLights(lights)
}

// Upload sends every mesh of g not yet on the GPU and returns how many
// were uploaded.
func (r *Renderer) Upload(g *scene.Graph) int {
	n := 0
	for _, m := range distinctMeshes(g) {
		if _, ok := r.meshes[m]; ok {
			continue
		}
		r.meshes[m] = uploadMesh(m)
		n++
		logger.Debug("mesh uploaded",
			zap.String("name", m.Name()),
			zap.Int("vertices", m.VertexCount()),
			zap.Int("faces", m.FaceCount()),
		)
	}
	return n
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// DrawScene draws every mesh node of g under the given view.
func (r *Renderer) DrawScene(g *scene.Graph, view, projection math.Mat4, opts Options) {
	if opts.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
	if opts.CullFace {
		gl.Enable(gl.CULL_FACE)
	} else {
		gl.Disable(gl.CULL_FACE)
	}

	p := r.program
	p.Use()
	gl.UniformMatrix4fv(p.Uniform("uProjection"), 1, false, projection.Ptr())
	gl.Uniform3fv(p.Uniform("uLightDir"), MaxLights, &r.lights.directions[0])
	gl.Uniform3fv(p.Uniform("uLightDiffuse"), MaxLights, &r.lights.diffuse[0])
	gl.Uniform3fv(p.Uniform("uLightSpecular"), MaxLights, &r.lights.specular[0])
	gl.Uniform1i(p.Uniform("uLightCount"), r.lights.count)
	gl.Uniform1f(p.Uniform("uAmbient"), sceneAmbient*materialAmbient)
	flat := int32(0)
	if opts.FlatShade {
		flat = 1
	}
	gl.Uniform1i(p.Uniform("uFlat"), flat)

	g.Walk(view, func(n *scene.Node, modelView math.Mat4) {
		if n.Mesh == nil {
			return
		}
		gm, ok := r.meshes[n.Mesh]
		if !ok {
			return
		}
		normal := modelView.NormalMatrix()
		mat := n.Material
		gl.UniformMatrix4fv(p.Uniform("uModelView"), 1, false, modelView.Ptr())
		gl.UniformMatrix3fv(p.Uniform("uNormalMatrix"), 1, false, &normal[0])
		gl.Uniform4fv(p.Uniform("uDiffuse"), 1, &mat.Diffuse[0])
		gl.Uniform4fv(p.Uniform("uSpecular"), 1, &mat.Specular[0])
		gl.Uniform1f(p.Uniform("uShininess"), mat.Shininess)
		gm.draw()
	})
	gl.BindVertexArray(0)
}

// ReadPixels returns the RGBA contents of the back buffer, bottom row first.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	pixels := make([]byte, r.width*r.height*4)
	if len(pixels) == 0 {
		return pixels, r.width, r.height
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(r.width), int32(r.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, r.width, r.height
}

// distinctMeshes returns each mesh of g once, in draw order.
func distinctMeshes(g *scene.Graph) []*model.Mesh {
	seen := make(map[*model.Mesh]bool)
	var out []*model.Mesh
	g.Walk(math.Identity(), func(n *scene.Node, _ math.Mat4) {
		if n.Mesh == nil || seen[n.Mesh] {
			return
		}
		seen[n.Mesh] = true
		out = append(out, n.Mesh)
	})
	return out
}
