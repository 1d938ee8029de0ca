// Package scene composes the desk scene: it binds transforms, material
// and texture state into the shader and issues one primitive draw per
// part descriptor.
package scene

import (
	"log"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/retrodesk/retrodesk/material"
	"github.com/retrodesk/retrodesk/texture"
	"github.com/retrodesk/retrodesk/transform"
)

// Uniform names shared with the GLSL sources in the shader package.
const (
	uniformModel         = "model"
	uniformObjectColor   = "objectColor"
	uniformObjectTexture = "objectTexture"
	uniformUseTexture    = "bUseTexture"
	uniformUseLighting   = "bUseLighting"
	uniformUVScale       = "UVscale"
)

// Bridge is the named-uniform surface the composer writes into. The
// shader.Program satisfies it; tests substitute a recorder.
type Bridge interface {
	SetFloat(name string, v float32)
	SetInt(name string, v int32)
	SetBool(name string, v bool)
	SetVec2(name string, v mgl32.Vec2)
	SetVec3(name string, v mgl32.Vec3)
	SetVec4(name string, v mgl32.Vec4)
	SetMat4(name string, m mgl32.Mat4)
	SetSampler2D(name string, slot int32)
}

// Meshes is the primitive geometry surface the composer draws against.
type Meshes interface {
	LoadPlane()
	LoadBox()
	LoadPrism()
	LoadCylinder()
	DrawPlane()
	DrawBox()
	DrawPrism()
	DrawCylinder()
}

// Primitive selects which mesh a part is drawn with.
type Primitive int

const (
	Plane Primitive = iota
	Box
	Prism
	Cylinder
)

// DrawState is the complete, immutable state consumed by one draw call.
// Passing it explicitly removes any dependence on setter ordering
// between parts. An empty Texture tag means flat color; an empty
// Material tag leaves the previously bound material in place.
type DrawState struct {
	Model    mgl32.Mat4
	Color    mgl32.Vec4
	Texture  string
	Material string
	UVScale  mgl32.Vec2
}

// Part describes one conceptual scene element: a primitive, where it
// goes, and how it is surfaced. The whole scene is a flat ordered list
// of these, built once at setup and traversed once per frame.
type Part struct {
	Name      string
	Primitive Primitive
	Transform transform.Params
	Color     mgl32.Vec4
	Texture   string
	Material  string
	UVScale   mgl32.Vec2
}

// Composer owns the scene's registries and part list and renders them
// through the shader bridge.
type Composer struct {
	bridge    Bridge
	meshes    Meshes
	textures  *texture.Registry
	materials *material.Registry
	parts     []Part
}

func NewComposer(bridge Bridge, meshes Meshes, textures *texture.Registry, materials *material.Registry) *Composer {
	return &Composer{
		bridge:    bridge,
		meshes:    meshes,
		textures:  textures,
		materials: materials,
	}
}

// Prepare performs all one-time setup: materials, lights, meshes,
// textures, and the part list. Texture failures are logged and skipped;
// the scene renders with whatever loaded.
func (c *Composer) Prepare(textureDir string) {
	c.defineMaterials()
	c.setupLights()

	c.meshes.LoadPlane()
	c.meshes.LoadBox()
	c.meshes.LoadPrism()
	c.meshes.LoadCylinder()

	for _, tex := range []struct {
		file string
		tag  string
	}{
		{"computer_case.jpg", "ComputerCase"},
		{"crt_screen.jpg", "CRTScreen"},
		{"table.jpg", "TableTexture"},
	} {
		if err := c.textures.Register(filepath.Join(textureDir, tex.file), tex.tag); err != nil {
			log.Printf("Could not load texture %q: %v", tex.tag, err)
		}
	}
	c.textures.BindAll()

	c.parts = deskParts()
	log.Printf("Scene prepared: %d parts, %d textures, %d materials",
		len(c.parts), c.textures.LoadedCount(), c.materials.Len())
}

func (c *Composer) defineMaterials() {
	c.materials.Register(material.Material{
		Tag:           "cement",
		DiffuseColor:  mgl32.Vec3{0.5, 0.5, 0.5},
		SpecularColor: mgl32.Vec3{0.4, 0.4, 0.4},
		Shininess:     0.5,
	})
	c.materials.Register(material.Material{
		Tag:           "plastic",
		DiffuseColor:  mgl32.Vec3{1.0, 1.0, 1.0},
		SpecularColor: mgl32.Vec3{0.2, 0.2, 0.2},
		Shininess:     2.0,
	})
}

// Parts returns the prepared part list in render order.
func (c *Composer) Parts() []Part {
	return c.parts
}

// Render traverses the part list once, binding each part's state and
// issuing its draw. There is no failure path here; all validation
// happened at setup.
func (c *Composer) Render() {
	for _, p := range c.parts {
		c.Draw(p.Primitive, DrawState{
			Model:    transform.Compose(p.Transform),
			Color:    p.Color,
			Texture:  p.Texture,
			Material: p.Material,
			UVScale:  p.UVScale,
		})
	}
}

// Draw writes the state into the shader and draws the primitive. A
// texture tag that fails to resolve binds sampler slot -1 and degrades
// to a visual artifact rather than an error.
func (c *Composer) Draw(prim Primitive, st DrawState) {
	c.bridge.SetMat4(uniformModel, st.Model)

	if st.Texture != "" {
		c.bridge.SetBool(uniformUseTexture, true)
		c.bridge.SetSampler2D(uniformObjectTexture, int32(c.textures.FindSlot(st.Texture)))
	} else {
		c.bridge.SetBool(uniformUseTexture, false)
		c.bridge.SetVec4(uniformObjectColor, st.Color)
	}

	if st.Material != "" {
		if m, found := c.materials.Find(st.Material); found {
			c.bridge.SetVec3("material.diffuseColor", m.DiffuseColor)
			c.bridge.SetVec3("material.specularColor", m.SpecularColor)
			c.bridge.SetFloat("material.shininess", m.Shininess)
		}
	}

	uv := st.UVScale
	if uv == (mgl32.Vec2{}) {
		uv = mgl32.Vec2{1, 1}
	}
	c.bridge.SetVec2(uniformUVScale, uv)

	switch prim {
	case Plane:
		c.meshes.DrawPlane()
	case Box:
		c.meshes.DrawBox()
	case Prism:
		c.meshes.DrawPrism()
	case Cylinder:
		c.meshes.DrawCylinder()
	}
}
