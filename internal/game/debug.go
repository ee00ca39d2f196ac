package game

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"island/internal/scene"
	"island/internal/sim"
)

// footprintY lifts the loops just above the island top so they are not
// z-fighting with it.
const footprintY = scene.SurfaceY + 0.02

// footprintOverlay draws every collision circle as a line loop. The static
// loops are uploaded once; the vehicle loop is an origin-centred circle moved by
// a per-frame offset.
type footprintOverlay struct {
	prog            uint32
	uViewProjection int32
	uColor          int32

	staticVAO, staticVBO   uint32
	staticLoops            int32
	vehicleVAO, vehicleVBO uint32
}

func newFootprintOverlay(obstacles []sim.Obstacle) (*footprintOverlay, error) {
	prog, err := linkProgram(lineVertSrc, lineFragSrc)
	if err != nil {
		return nil, fmt.Errorf("line program: %w", err)
	}
	o := &footprintOverlay{
		prog:            prog,
		uViewProjection: uniform(prog, "uViewProjection"),
		uColor:          uniform(prog, "uColor"),
		staticLoops:     int32(len(obstacles)),
	}

	o.staticVAO, o.staticVBO = uploadLines(scene.FootprintLoops(obstacles, footprintY))
	o.vehicleVAO, o.vehicleVBO = uploadLines(scene.FootprintLoop(sim.Circle{Radius: sim.VehicleRadius}, footprintY))
	return o, nil
}

func uploadLines(pos []float32) (vao, vbo uint32) {
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	if len(pos) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(pos)*4, gl.Ptr(&pos[0]), gl.STATIC_DRAW)
	}
	gl.EnableVertexAttribArray(attrPosition)
	gl.VertexAttribPointer(attrPosition, 3, gl.FLOAT, false, 3*4, glOffset(0))
	gl.BindVertexArray(0)
	return vao, vbo
}

// Draw renders the obstacle loops, then the vehicle loop at its current
// footprint.
func (o *footprintOverlay) Draw(viewProj mgl32.Mat4, vehicle sim.Circle) {
	gl.UseProgram(o.prog)

	gl.UniformMatrix4fv(o.uViewProjection, 1, false, &viewProj[0])
	c := scene.Palette.Footprint
	gl.Uniform3f(o.uColor, c.R, c.G, c.B)
	gl.BindVertexArray(o.staticVAO)
	for i := int32(0); i < o.staticLoops; i++ {
		gl.DrawArrays(gl.LINE_LOOP, i*scene.FootprintSegments, scene.FootprintSegments)
	}

	moved := viewProj.Mul4(mgl32.Translate3D(float32(vehicle.Center.X), 0, float32(vehicle.Center.Z)))
	gl.UniformMatrix4fv(o.uViewProjection, 1, false, &moved[0])
	c = c.Mul(0.6)
	gl.Uniform3f(o.uColor, c.R, c.G, c.B)
	gl.BindVertexArray(o.vehicleVAO)
	gl.DrawArrays(gl.LINE_LOOP, 0, scene.FootprintSegments)

	gl.BindVertexArray(0)
}

func (o *footprintOverlay) Delete() {
	for _, vbo := range []uint32{o.staticVBO, o.vehicleVBO} {
		if vbo != 0 {
			gl.DeleteBuffers(1, &vbo)
		}
	}
	for _, vao := range []uint32{o.staticVAO, o.vehicleVAO} {
		if vao != 0 {
			gl.DeleteVertexArrays(1, &vao)
		}
	}
	if o.prog != 0 {
		gl.DeleteProgram(o.prog)
	}
	*o = footprintOverlay{}
}
