// Package mesh owns the GPU geometry for the four primitive shapes the
// scene is built from: plane, box, prism, and cylinder.
package mesh

import (
	"math"
)

// Vertices are interleaved position(3) + normal(3) + uv(2).
const floatsPerVertex = 8

const cylinderSegments = 36

// planeGeometry is a unit quad on the XZ plane with +Y normal,
// extending from -1 to +1 on both axes.
func planeGeometry() ([]float32, []uint32) {
	vertices := []float32{
		-1, 0, -1, 0, 1, 0, 0, 1,
		1, 0, -1, 0, 1, 0, 1, 1,
		1, 0, 1, 0, 1, 0, 1, 0,
		-1, 0, 1, 0, 1, 0, 0, 0,
	}
	indices := []uint32{0, 2, 1, 0, 3, 2}
	return vertices, indices
}

// boxGeometry is a unit cube centered at the origin, one quad per face
// so each face has its own flat normal and full UV range.
func boxGeometry() ([]float32, []uint32) {
	const h = 0.5
	faces := [][4][3]float32{
		// +Z front
		{{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h}},
		// -Z back
		{{h, -h, -h}, {-h, -h, -h}, {-h, h, -h}, {h, h, -h}},
		// +X right
		{{h, -h, h}, {h, -h, -h}, {h, h, -h}, {h, h, h}},
		// -X left
		{{-h, -h, -h}, {-h, -h, h}, {-h, h, h}, {-h, h, -h}},
		// +Y top
		{{-h, h, h}, {h, h, h}, {h, h, -h}, {-h, h, -h}},
		// -Y bottom
		{{-h, -h, -h}, {h, -h, -h}, {h, -h, h}, {-h, -h, h}},
	}
	normals := [][3]float32{
		{0, 0, 1}, {0, 0, -1}, {1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0},
	}
	uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	var vertices []float32
	var indices []uint32
	for f, face := range faces {
		base := uint32(f * 4)
		for v, pos := range face {
			vertices = append(vertices,
				pos[0], pos[1], pos[2],
				normals[f][0], normals[f][1], normals[f][2],
				uvs[v][0], uvs[v][1],
			)
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}
	return vertices, indices
}

// prismGeometry is a right triangular wedge: a right-angle triangle in
// the XY plane (right angle at the lower-left corner) extruded along Z,
// centered at the origin. Scaled and rotated it forms the slanted feet
// of the computer case.
func prismGeometry() ([]float32, []uint32) {
	const h = 0.5
	// Cross-section corners, counter-clockwise viewed from +Z.
	a := [2]float32{-h, -h} // right angle
	b := [2]float32{h, -h}
	c := [2]float32{-h, h}

	// Hypotenuse normal: perpendicular to (c-b), facing away from a.
	nx := float32(1 / math.Sqrt2)
	ny := float32(1 / math.Sqrt2)

	var vertices []float32
	var indices []uint32
	addQuad := func(p [4][3]float32, n [3]float32) {
		base := uint32(len(vertices) / floatsPerVertex)
		uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
		for v, pos := range p {
			vertices = append(vertices,
				pos[0], pos[1], pos[2],
				n[0], n[1], n[2],
				uvs[v][0], uvs[v][1],
			)
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}
	addCap := func(z, nz float32, flip bool) {
		base := uint32(len(vertices) / floatsPerVertex)
		for _, p := range [][2]float32{a, b, c} {
			vertices = append(vertices,
				p[0], p[1], z,
				0, 0, nz,
				p[0]+h, p[1]+h,
			)
		}
		if flip {
			indices = append(indices, base, base+2, base+1)
		} else {
			indices = append(indices, base, base+1, base+2)
		}
	}

	addCap(h, 1, false)
	addCap(-h, -1, true)
	// Bottom face (-Y).
	addQuad([4][3]float32{
		{a[0], a[1], -h}, {b[0], b[1], -h}, {b[0], b[1], h}, {a[0], a[1], h},
	}, [3]float32{0, -1, 0})
	// Vertical face (-X).
	addQuad([4][3]float32{
		{a[0], a[1], h}, {c[0], c[1], h}, {c[0], c[1], -h}, {a[0], a[1], -h},
	}, [3]float32{-1, 0, 0})
	// Hypotenuse face.
	addQuad([4][3]float32{
		{b[0], b[1], h}, {b[0], b[1], -h}, {c[0], c[1], -h}, {c[0], c[1], h},
	}, [3]float32{nx, ny, 0})

	return vertices, indices
}

// cylinderGeometry is a radius-1 cylinder with its base at y=0 and top
// at y=1, so cables can pivot around a segment endpoint. Side normals
// are smooth; caps are flat.
func cylinderGeometry() ([]float32, []uint32) {
	var vertices []float32
	var indices []uint32

	// Side: (segments+1) column pairs so UVs wrap cleanly.
	for i := 0; i <= cylinderSegments; i++ {
		theta := 2 * math.Pi * float64(i) / cylinderSegments
		x := float32(math.Cos(theta))
		z := float32(math.Sin(theta))
		u := float32(i) / cylinderSegments
		vertices = append(vertices,
			x, 0, z, x, 0, z, u, 0,
			x, 1, z, x, 0, z, u, 1,
		)
	}
	for i := 0; i < cylinderSegments; i++ {
		base := uint32(i * 2)
		indices = append(indices,
			base, base+1, base+2,
			base+2, base+1, base+3,
		)
	}

	// Caps: fan around a center vertex.
	addCap := func(y, ny float32) {
		center := uint32(len(vertices) / floatsPerVertex)
		vertices = append(vertices, 0, y, 0, 0, ny, 0, 0.5, 0.5)
		for i := 0; i <= cylinderSegments; i++ {
			theta := 2 * math.Pi * float64(i) / cylinderSegments
			x := float32(math.Cos(theta))
			z := float32(math.Sin(theta))
			vertices = append(vertices,
				x, y, z, 0, ny, 0, 0.5+x/2, 0.5+z/2,
			)
		}
		for i := 0; i < cylinderSegments; i++ {
			ring := center + 1 + uint32(i)
			if ny > 0 {
				indices = append(indices, center, ring+1, ring)
			} else {
				indices = append(indices, center, ring, ring+1)
			}
		}
	}
	addCap(1, 1)
	addCap(0, -1)

	return vertices, indices
}
