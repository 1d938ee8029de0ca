package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// PointLight mirrors the PointLight struct in the fragment shader.
type PointLight struct {
	Position  mgl32.Vec3
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
	Constant  float32
	Linear    float32
	Quadratic float32
	Active    bool
}

func (l PointLight) apply(b Bridge, index int) {
	prefix := fmt.Sprintf("pointLights[%d]", index)
	b.SetVec3(prefix+".position", l.Position)
	b.SetVec3(prefix+".ambient", l.Ambient)
	b.SetVec3(prefix+".diffuse", l.Diffuse)
	b.SetVec3(prefix+".specular", l.Specular)
	b.SetFloat(prefix+".constant", l.Constant)
	b.SetFloat(prefix+".linear", l.Linear)
	b.SetFloat(prefix+".quadratic", l.Quadratic)
	b.SetBool(prefix+".bActive", l.Active)
}

// setupLights enables the lighting path and writes the two scene
// lights: a soft white point light over the desk and a blue glow just
// in front of the CRT panel.
func (c *Composer) setupLights() {
	c.bridge.SetBool(uniformUseLighting, true)

	overhead := PointLight{
		Position:  mgl32.Vec3{0.0, 9.5, 2.5},
		Ambient:   mgl32.Vec3{0.15, 0.15, 0.15},
		Diffuse:   mgl32.Vec3{0.6, 0.6, 0.6},
		Specular:  mgl32.Vec3{0.5, 0.5, 0.5},
		Constant:  1.0,
		Linear:    0.045,
		Quadratic: 0.0075,
		Active:    true,
	}
	crtGlow := PointLight{
		Position:  mgl32.Vec3{-1.25, 3.5, 3.0},
		Ambient:   mgl32.Vec3{0.05, 0.1, 0.2},
		Diffuse:   mgl32.Vec3{0.2, 0.4, 0.8},
		Specular:  mgl32.Vec3{0.1, 0.2, 0.4},
		Constant:  1.0,
		Linear:    0.22,
		Quadratic: 0.2,
		Active:    true,
	}

	overhead.apply(c.bridge, 0)
	crtGlow.apply(c.bridge, 1)
}
