// Package material stores named surface property sets used by the
// lighting shader.
package material

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Material describes the lighting response of a surface. Tag is the
// caller-chosen lookup key.
type Material struct {
	Tag           string
	DiffuseColor  mgl32.Vec3
	SpecularColor mgl32.Vec3
	Shininess     float32
}

// Registry is an ordered collection of materials. Duplicate tags are
// legal; the first registration for a tag is the one Find returns, and
// later duplicates are shadowed. That first-match rule is a contract the
// scene constants rely on, not an accident.
type Registry struct {
	materials []Material
	byTag     map[string]int
}

func NewRegistry() *Registry {
	return &Registry{byTag: make(map[string]int)}
}

// Register appends m to the registry. No uniqueness is enforced.
func (r *Registry) Register(m Material) {
	r.materials = append(r.materials, m)
	if _, shadowed := r.byTag[m.Tag]; !shadowed {
		r.byTag[m.Tag] = len(r.materials) - 1
	}
}

// Find returns the first material registered under tag. An empty
// registry reports not-found immediately.
func (r *Registry) Find(tag string) (Material, bool) {
	if len(r.materials) == 0 {
		return Material{}, false
	}
	i, ok := r.byTag[tag]
	if !ok {
		return Material{}, false
	}
	return r.materials[i], true
}

// Len reports the number of registered materials, shadowed duplicates
// included.
func (r *Registry) Len() int {
	return len(r.materials)
}
