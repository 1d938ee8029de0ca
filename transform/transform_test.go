package transform

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func matInDelta(t *testing.T, expected, actual mgl32.Mat4, delta float64) {
	t.Helper()
	for i := 0; i < 16; i++ {
		assert.InDelta(t, expected[i], actual[i], delta, "matrix element %d", i)
	}
}

func TestComposeNoRotationIsTranslateTimesScale(t *testing.T) {
	m := Compose(Params{
		Scale:    mgl32.Vec3{2, 1, 1},
		Position: mgl32.Vec3{1, 0, 0},
	})

	want := mgl32.Translate3D(1, 0, 0).Mul4(mgl32.Scale3D(2, 1, 1))
	matInDelta(t, want, m, 1e-6)
}

func TestComposeOffsetAddsToPosition(t *testing.T) {
	a := Compose(Params{
		Scale:    mgl32.Vec3{1, 1, 1},
		Position: mgl32.Vec3{1, 2, 3},
		Offset:   mgl32.Vec3{0.5, -1, 0},
	})
	b := Compose(Params{
		Scale:    mgl32.Vec3{1, 1, 1},
		Position: mgl32.Vec3{1.5, 1, 3},
	})
	matInDelta(t, b, a, 1e-6)
}

func TestComposeRotationOrder(t *testing.T) {
	// With all three angles set, the composition must be T*Rz*Ry*Rx*S.
	p := Params{
		Scale:    mgl32.Vec3{2, 3, 4},
		RotX:     30,
		RotY:     45,
		RotZ:     60,
		Position: mgl32.Vec3{1, 2, 3},
	}
	m := Compose(p)

	want := mgl32.Translate3D(1, 2, 3).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(60))).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(45))).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(30))).
		Mul4(mgl32.Scale3D(2, 3, 4))
	matInDelta(t, want, m, 1e-5)
}

func TestComposeRotatesAboutExpectedAxes(t *testing.T) {
	// 90 degrees about Y maps +X to -Z.
	m := Compose(Params{Scale: mgl32.Vec3{1, 1, 1}, RotY: 90})
	v := m.Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.InDelta(t, 0, v.X(), 1e-5)
	assert.InDelta(t, 0, v.Y(), 1e-5)
	assert.InDelta(t, -1, v.Z(), 1e-5)
}
