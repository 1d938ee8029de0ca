package material

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestFindOnEmptyRegistry(t *testing.T) {
	r := NewRegistry()
	_, found := r.Find("cement")
	assert.False(t, found)
}

func TestFindReturnsRegisteredMaterial(t *testing.T) {
	r := NewRegistry()
	r.Register(Material{
		Tag:           "cement",
		DiffuseColor:  mgl32.Vec3{0.5, 0.5, 0.5},
		SpecularColor: mgl32.Vec3{0.4, 0.4, 0.4},
		Shininess:     0.5,
	})
	r.Register(Material{
		Tag:           "plastic",
		DiffuseColor:  mgl32.Vec3{1, 1, 1},
		SpecularColor: mgl32.Vec3{0.2, 0.2, 0.2},
		Shininess:     2.0,
	})

	m, found := r.Find("plastic")
	assert.True(t, found)
	assert.Equal(t, float32(2.0), m.Shininess)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, m.DiffuseColor)

	_, found = r.Find("chrome")
	assert.False(t, found)
}

func TestDuplicateTagFirstMatchWins(t *testing.T) {
	r := NewRegistry()
	r.Register(Material{Tag: "plastic", Shininess: 2.0})
	r.Register(Material{Tag: "plastic", Shininess: 9.0})

	m, found := r.Find("plastic")
	assert.True(t, found)
	assert.Equal(t, float32(2.0), m.Shininess)
	assert.Equal(t, 2, r.Len())
}
