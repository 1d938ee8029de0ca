package mesh

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkGeometry(t *testing.T, vertices []float32, indices []uint32) {
	t.Helper()
	require.Zero(t, len(vertices)%floatsPerVertex, "vertex data must be a whole number of vertices")
	require.Zero(t, len(indices)%3, "indices must form whole triangles")

	vertexCount := len(vertices) / floatsPerVertex
	for _, idx := range indices {
		assert.Less(t, int(idx), vertexCount, "index out of range")
	}

	// Normals must be unit length.
	for v := 0; v < vertexCount; v++ {
		nx := float64(vertices[v*floatsPerVertex+3])
		ny := float64(vertices[v*floatsPerVertex+4])
		nz := float64(vertices[v*floatsPerVertex+5])
		assert.InDelta(t, 1.0, math.Sqrt(nx*nx+ny*ny+nz*nz), 1e-5, "vertex %d normal not normalized", v)
	}
}

func TestPlaneGeometry(t *testing.T) {
	v, i := planeGeometry()
	checkGeometry(t, v, i)
	assert.Len(t, v, 4*floatsPerVertex)
	assert.Len(t, i, 6)
}

func TestBoxGeometry(t *testing.T) {
	v, i := boxGeometry()
	checkGeometry(t, v, i)
	assert.Len(t, v, 24*floatsPerVertex)
	assert.Len(t, i, 36)
}

func TestPrismGeometry(t *testing.T) {
	v, i := prismGeometry()
	checkGeometry(t, v, i)
	// Two triangular caps plus three quads.
	assert.Len(t, i, 2*3+3*6)
}

func TestCylinderGeometry(t *testing.T) {
	v, i := cylinderGeometry()
	checkGeometry(t, v, i)

	// Side quads plus two cap fans.
	assert.Len(t, i, cylinderSegments*6+2*cylinderSegments*3)

	// The duplicated seam columns must coincide in position.
	first := v[0:3]
	seam := cylinderSegments * 2 * floatsPerVertex
	last := v[seam : seam+3]
	for k := 0; k < 3; k++ {
		assert.InDelta(t, first[k], last[k], 1e-5)
	}

	// All side verts lie on the unit circle with y in {0,1}.
	for c := 0; c <= cylinderSegments; c++ {
		for col := 0; col < 2; col++ {
			base := (c*2 + col) * floatsPerVertex
			x := float64(v[base])
			y := v[base+1]
			z := float64(v[base+2])
			assert.InDelta(t, 1.0, math.Sqrt(x*x+z*z), 1e-5)
			assert.Contains(t, []float32{0, 1}, y)
		}
	}
}
