package game

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"island/internal/scene"
)

// Attribute locations shared by the lit and shadow programs.
const (
	attrPosition = 0
	attrNormal   = 1
	attrColor    = 2
)

// Drawable is a mesh uploaded to the GPU.
type Drawable struct {
	Name  string
	Model mgl32.Mat4

	vao     uint32
	buffers [4]uint32 // positions, normals, colours, indices
	count   int32
}

func uploadMesh(m scene.Mesh) Drawable {
	d := Drawable{Name: m.Name, Model: mgl32.Ident4(), count: int32(len(m.Indices))}
	if len(m.Indices) == 0 || len(m.Positions) == 0 {
		return d
	}

	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)
	gl.GenBuffers(int32(len(d.buffers)), &d.buffers[0])

	attrs := []struct {
		loc  uint32
		data []float32
	}{
		{attrPosition, m.Positions},
		{attrNormal, m.Normals},
		{attrColor, m.Colors},
	}
	for i, a := range attrs {
		gl.BindBuffer(gl.ARRAY_BUFFER, d.buffers[i])
		gl.BufferData(gl.ARRAY_BUFFER, len(a.data)*4, gl.Ptr(&a.data[0]), gl.STATIC_DRAW)
		gl.EnableVertexAttribArray(a.loc)
		gl.VertexAttribPointer(a.loc, 3, gl.FLOAT, false, 3*4, glOffset(0))
	}

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, d.buffers[3])
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*2, gl.Ptr(&m.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return d
}

// Draw issues one indexed draw with whatever program is bound.
func (d *Drawable) Draw() {
	if d.vao == 0 {
		return
	}
	gl.BindVertexArray(d.vao)
	gl.DrawElements(gl.TRIANGLES, d.count, gl.UNSIGNED_SHORT, glOffset(0))
}

func (d *Drawable) Delete() {
	if d.vao == 0 {
		return
	}
	gl.DeleteBuffers(int32(len(d.buffers)), &d.buffers[0])
	gl.DeleteVertexArrays(1, &d.vao)
	d.vao = 0
}
