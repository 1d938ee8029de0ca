// Package transform composes per-draw model matrices from scale,
// Euler rotation, and position parameters.
package transform

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Params holds the values needed to place one primitive instance in
// world space. Rotations are independent Euler angles in degrees; Offset
// is an additional translation applied on top of Position (zero for most
// parts, handy for moving whole assemblies).
type Params struct {
	Scale    mgl32.Vec3
	RotX     float32
	RotY     float32
	RotZ     float32
	Position mgl32.Vec3
	Offset   mgl32.Vec3
}

// Compose builds the model matrix as
//
//	Translate(Position+Offset) * Rz * Ry * Rx * Scale
//
// The rotation order is fixed. No gimbal-lock mitigation is attempted;
// the scene's tuned constants assume exactly this composition.
func Compose(p Params) mgl32.Mat4 {
	scale := mgl32.Scale3D(p.Scale.X(), p.Scale.Y(), p.Scale.Z())
	rotX := mgl32.HomogRotate3DX(mgl32.DegToRad(p.RotX))
	rotY := mgl32.HomogRotate3DY(mgl32.DegToRad(p.RotY))
	rotZ := mgl32.HomogRotate3DZ(mgl32.DegToRad(p.RotZ))
	pos := p.Position.Add(p.Offset)
	translation := mgl32.Translate3D(pos.X(), pos.Y(), pos.Z())

	return translation.Mul4(rotZ).Mul4(rotY).Mul4(rotX).Mul4(scale)
}
