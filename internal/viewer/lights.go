package viewer

import (
	"github.com/Faultbox/hierarchy/internal/config"
	"github.com/Faultbox/hierarchy/internal/engine/renderer"
	"github.com/Faultbox/hierarchy/pkg/math"
)

// sceneLights returns the lights cfg configures, or the renderer's
// built-in set when it configures none.
func sceneLights(cfg *config.Config) []renderer.Light {
	if len(cfg.Render.Lights) == 0 {
		return renderer.DefaultLights()
	}

	lights := make([]renderer.Light, len(cfg.Render.Lights))
	for i, l := range cfg.Render.Lights {
		lights[i] = renderer.Light{
			Direction: math.Vec3{X: l.Direction[0], Y: l.Direction[1], Z: l.Direction[2]},
			Diffuse:   l.Diffuse,
			Specular:  l.Specular,
		}
	}
	return lights
}
