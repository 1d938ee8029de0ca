package mesh

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

type glMesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
	loaded     bool
}

// Library owns one GPU copy of each primitive's geometry. Each shape is
// loaded once at setup no matter how many times it is drawn per frame.
type Library struct {
	plane    glMesh
	box      glMesh
	prism    glMesh
	cylinder glMesh
}

func NewLibrary() *Library {
	return &Library{}
}

func (m *glMesh) load(vertices []float32, indices []uint32) {
	if m.loaded {
		return
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.GenBuffers(1, &m.ebo)

	gl.BindVertexArray(m.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	stride := int32(floatsPerVertex * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(6*4))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)

	m.indexCount = int32(len(indices))
	m.loaded = true
}

func (m *glMesh) draw() {
	if !m.loaded {
		return
	}
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
	gl.BindVertexArray(0)
}

func (m *glMesh) destroy() {
	if !m.loaded {
		return
	}
	gl.DeleteVertexArrays(1, &m.vao)
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteBuffers(1, &m.ebo)
	m.loaded = false
}

func (l *Library) LoadPlane() {
	v, i := planeGeometry()
	l.plane.load(v, i)
}

func (l *Library) LoadBox() {
	v, i := boxGeometry()
	l.box.load(v, i)
}

func (l *Library) LoadPrism() {
	v, i := prismGeometry()
	l.prism.load(v, i)
}

func (l *Library) LoadCylinder() {
	v, i := cylinderGeometry()
	l.cylinder.load(v, i)
}

func (l *Library) DrawPlane()    { l.plane.draw() }
func (l *Library) DrawBox()      { l.box.draw() }
func (l *Library) DrawPrism()    { l.prism.draw() }
func (l *Library) DrawCylinder() { l.cylinder.draw() }

// Destroy releases all loaded geometry.
func (l *Library) Destroy() {
	l.plane.destroy()
	l.box.destroy()
	l.prism.destroy()
	l.cylinder.destroy()
}
