package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/retrodesk/retrodesk/transform"
)

// Palette and shared constants for the desk scene. Everything below is
// hand-tuned layout data, not logic.
var (
	beige      = mgl32.Vec4{0.96, 0.91, 0.76, 1.0}
	darkGray   = mgl32.Vec4{0.2, 0.2, 0.2, 1.0}
	cableBlack = mgl32.Vec4{0.1, 0.1, 0.1, 1.0}
	footBlack  = mgl32.Vec4{0.05, 0.05, 0.05, 1.0}
	slotBlack  = mgl32.Vec4{0.1, 0.1, 0.1, 1.0}
)

// keyboardSlope tilts the keyboard's upper half and keys toward the
// user; the mouse top shares the same angle.
const keyboardSlope = 7.0

// deskParts assembles the whole scene in draw order: table, computer
// assembly, mouse, keyboard, and their cables.
func deskParts() []Part {
	var parts []Part
	parts = append(parts, tablePart())
	parts = append(parts, computerParts()...)
	parts = append(parts, profileDriveParts()...)
	parts = append(parts, mouseParts()...)
	parts = append(parts, mouseCableParts()...)
	parts = append(parts, keyboardParts()...)
	parts = append(parts, keyboardCableParts()...)
	return parts
}

func tablePart() Part {
	return Part{
		Name:      "table",
		Primitive: Plane,
		Transform: transform.Params{
			Scale:    mgl32.Vec3{20.0, 1.0, 10.0},
			Position: mgl32.Vec3{0.0, 0.0, 0.0},
		},
		Texture:  "TableTexture",
		Material: "cement",
	}
}

// computerParts builds the main computer unit: case body, back support
// base, front feet, floppy drive section, and the CRT screen panel.
func computerParts() []Part {
	parts := []Part{
		{
			Name:      "main body",
			Primitive: Box,
			Transform: transform.Params{
				Scale:    mgl32.Vec3{7.0, 5.0, 5.0},
				Position: mgl32.Vec3{0.0, 3.5, 0.0},
			},
			Texture:  "ComputerCase",
			Material: "plastic",
			UVScale:  mgl32.Vec2{2.0, 2.0},
		},
		{
			Name:      "back base",
			Primitive: Box,
			Transform: transform.Params{
				Scale:    mgl32.Vec3{7.0, 2.5, 3.0},
				Position: mgl32.Vec3{0.0, 1.25, -1.0},
			},
			Texture:  "ComputerCase",
			Material: "plastic",
			UVScale:  mgl32.Vec2{2.0, 2.0},
		},
	}

	// Front feet: a flat box pad plus a wedge on each side.
	for _, side := range []struct {
		name string
		x    float32
	}{{"left", -3.0}, {"right", 3.0}} {
		parts = append(parts,
			Part{
				Name:      side.name + " foot pad",
				Primitive: Box,
				Transform: transform.Params{
					Scale:    mgl32.Vec3{1.0, 1.0, 0.2},
					Position: mgl32.Vec3{side.x, 0.5, 0.6},
				},
				Texture:  "ComputerCase",
				Material: "plastic",
				UVScale:  mgl32.Vec2{2.0, 2.0},
			},
			Part{
				Name:      side.name + " foot wedge",
				Primitive: Prism,
				Transform: transform.Params{
					Scale:    mgl32.Vec3{1.0, 1.0, 0.5},
					RotX:     -90.0,
					RotY:     90.0,
					Position: mgl32.Vec3{side.x, 0.25, 0.7},
				},
				Texture:  "ComputerCase",
				Material: "plastic",
				UVScale:  mgl32.Vec2{2.0, 2.0},
			},
		)
	}

	parts = append(parts,
		Part{
			Name:      "floppy drive indent",
			Primitive: Box,
			Transform: transform.Params{
				Scale:    mgl32.Vec3{2.0, 2.5, 0.2},
				Position: mgl32.Vec3{2.0, 3.5, 2.6},
			},
			Texture:  "ComputerCase",
			Material: "plastic",
			UVScale:  mgl32.Vec2{2.0, 2.0},
		},
		Part{
			Name:      "upper floppy slot",
			Primitive: Box,
			Transform: transform.Params{
				Scale:    mgl32.Vec3{1.5, 0.1, 0.05},
				Position: mgl32.Vec3{2.0, 4.4, 2.7},
			},
			Color: slotBlack,
		},
		Part{
			Name:      "lower floppy slot",
			Primitive: Box,
			Transform: transform.Params{
				Scale:    mgl32.Vec3{1.5, 0.1, 0.05},
				Position: mgl32.Vec3{2.0, 2.8, 2.7},
			},
			Color: slotBlack,
		},
		Part{
			Name:      "crt panel",
			Primitive: Box,
			Transform: transform.Params{
				Scale:    mgl32.Vec3{3.5, 2.8, 0.2},
				Position: mgl32.Vec3{-1.25, 3.5, 2.6},
			},
			Texture: "CRTScreen",
			UVScale: mgl32.Vec2{1.0, 1.0},
		},
	)

	return parts
}

// profileDriveParts builds the external hard drive sitting on top of
// the case, with four rubber feet.
func profileDriveParts() []Part {
	parts := []Part{
		{
			Name:      "profile drive body",
			Primitive: Box,
			Transform: transform.Params{
				Scale:    mgl32.Vec3{6.5, 1.0, 4.0},
				Position: mgl32.Vec3{0.0, 6.7, 0.0},
			},
			Texture:  "ComputerCase",
			Material: "plastic",
			UVScale:  mgl32.Vec2{2.0, 2.0},
		},
	}

	const (
		footY  = 6.10
		xInset = 2.75
		zInset = 1.5
	)
	footScale := mgl32.Vec3{0.3, 0.2, 0.3}
	for _, x := range []float32{-xInset, xInset} {
		for _, z := range []float32{-zInset, zInset} {
			parts = append(parts, Part{
				Name:      fmt.Sprintf("profile foot (%+.2f,%+.2f)", x, z),
				Primitive: Box,
				Transform: transform.Params{
					Scale:    footScale,
					Position: mgl32.Vec3{x, footY, z},
				},
				Color: footBlack,
			})
		}
	}
	return parts
}

func mouseParts() []Part {
	return []Part{
		{
			Name:      "mouse base",
			Primitive: Box,
			Transform: transform.Params{
				Scale:    mgl32.Vec3{1.5, 0.2, 2.5},
				Position: mgl32.Vec3{6.0, 0.1, 4.0},
			},
			Color: beige,
		},
		{
			Name:      "mouse top",
			Primitive: Box,
			Transform: transform.Params{
				Scale:    mgl32.Vec3{1.5, 0.5, 2.5},
				RotX:     keyboardSlope,
				Position: mgl32.Vec3{6.0, 0.1, 4.0},
			},
			Color: beige,
		},
		{
			Name:      "mouse button",
			Primitive: Box,
			Transform: transform.Params{
				Scale:    mgl32.Vec3{1.2, 0.05, 0.5},
				RotX:     keyboardSlope,
				Position: mgl32.Vec3{6.0, 0.45, 3.3},
			},
			Color: darkGray,
		},
	}
}

// cableSegment is one independently transformed cylinder of a cable
// run. Endpoints are manually tuned so consecutive segments appear to
// join; there is no automatic continuity.
type cableSegment struct {
	length   float32
	rotX     float32
	rotY     float32
	rotZ     float32
	position mgl32.Vec3
}

func cableParts(name string, thickness float32, segments []cableSegment) []Part {
	parts := make([]Part, 0, len(segments))
	for i, s := range segments {
		parts = append(parts, Part{
			Name:      fmt.Sprintf("%s segment %d", name, i+1),
			Primitive: Cylinder,
			Transform: transform.Params{
				Scale:    mgl32.Vec3{thickness, s.length, thickness},
				RotX:     s.rotX,
				RotY:     s.rotY,
				RotZ:     s.rotZ,
				Position: s.position,
			},
			Color: cableBlack,
		})
	}
	return parts
}

func mouseCableParts() []Part {
	return cableParts("mouse cable", 0.05, []cableSegment{
		{length: 7.5, rotX: 90.0, rotZ: 0.25, position: mgl32.Vec3{6.0, 0.0, -3.0}},
		{length: 1.0, rotX: 90.0, rotZ: 0.25, position: mgl32.Vec3{1.25, 0.0, -3.0}},
		{length: 4.85, rotZ: 90.0, position: mgl32.Vec3{6.05, 0.0, -3.0}},
	})
}

func keyboardCableParts() []Part {
	return cableParts("keyboard cable", 0.05, []cableSegment{
		{length: 0.5, rotX: 90.0, position: mgl32.Vec3{0.0, 0.1, 3.5}},
		{length: 2.02, rotZ: 90.0, position: mgl32.Vec3{2.0, 0.1, 3.5}},
		{length: 3.0, rotX: 90.0, position: mgl32.Vec3{2.0, 0.1, 0.5}},
	})
}

// Keyboard layout constants. Four uniform rows of 14 keys sit above a
// variable-width bottom row (modifiers and spacebar). Per-row vertical
// adjustments step the key tops like a real keyboard profile.
const (
	keyRows     = 4
	keyCols     = 14
	keySpacingX = 0.35
	keySpacingZ = 0.35
	keyGridZ    = 5.3
	keyBaseY    = 0.55
)

var keyRowAdjust = []float32{-0.02, 0.02, 0.06, 0.10}

var bottomRowWidths = []float32{0.3, 0.6, 1.8, 0.6, 0.3}

const bottomRowSpacing = 0.05

func keyPart(name string, scale mgl32.Vec3, pos mgl32.Vec3) Part {
	return Part{
		Name:      name,
		Primitive: Box,
		Transform: transform.Params{
			Scale:    scale,
			RotX:     keyboardSlope,
			Position: pos,
		},
		Color:    darkGray,
		Material: "plastic",
	}
}

func keyboardParts() []Part {
	parts := []Part{
		{
			Name:      "keyboard base",
			Primitive: Box,
			Transform: transform.Params{
				Scale:    mgl32.Vec3{5.0, 0.5, 2.0},
				Position: mgl32.Vec3{0.0, 0.1, 5.0},
			},
			Color:    beige,
			Material: "plastic",
		},
		{
			Name:      "keyboard top",
			Primitive: Box,
			Transform: transform.Params{
				Scale:    mgl32.Vec3{5.0, 0.4, 2.0},
				RotX:     keyboardSlope,
				Position: mgl32.Vec3{0.0, 0.35, 5.0},
			},
			Color:    beige,
			Material: "plastic",
		},
	}

	keyScale := mgl32.Vec3{0.3, 0.1, 0.3}
	for i, pos := range KeyGrid(keyRows, keyCols, keySpacingX, keySpacingZ, keyBaseY, keyGridZ, keyRowAdjust) {
		parts = append(parts, keyPart(fmt.Sprintf("key %d", i), keyScale, pos))
	}

	// Bottom row: centered variable-width keys, slightly lower and
	// closer to the user than the grid.
	bottomY := float32(keyBaseY - 0.05)
	bottomZ := float32(keyGridZ + keySpacingZ*1.2)
	centers, _ := VariableRow(bottomRowWidths, bottomRowSpacing)
	for i, x := range centers {
		scale := mgl32.Vec3{bottomRowWidths[i], 0.1, 0.3}
		parts = append(parts, keyPart(fmt.Sprintf("bottom key %d", i), scale, mgl32.Vec3{x, bottomY, bottomZ}))
	}

	return parts
}
