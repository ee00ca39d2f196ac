package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"island/internal/scene"
	"island/internal/sim"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

const shadowTextureUnit = 0

// Renderer owns every GL object of the scene and draws the two passes.
type Renderer struct {
	// Lit program.
	litProg         uint32
	uModel          int32
	uView           int32
	uProjection     int32
	uLightSpace     int32
	uLightPosition  int32
	uViewPosition   int32
	uLightColor     int32
	uLightDirection int32
	uAmbientColor   int32
	uShadowMap      int32
	uCosInner       int32
	uCosOuter       int32
	uAttenuation    int32
	uBoost          int32
	uShininess      int32
	uShadowBias     int32
	uShadowedLight  int32

	// Depth-only program.
	shadowProg       uint32
	shadowUModel     int32
	shadowULightSpac int32

	shadowMap *ShadowTarget

	static  []Drawable
	vehicle []Drawable

	overlay        *footprintOverlay
	ShowFootprints bool

	fbW, fbH int
}

func NewRenderer(layout scene.Layout) (*Renderer, error) {
	litProg, err := linkProgram(litVertSrc, litFragSrc)
	if err != nil {
		return nil, fmt.Errorf("lit program: %w", err)
	}
	shadowProg, err := linkProgram(shadowVertSrc, shadowFragSrc)
	if err != nil {
		gl.DeleteProgram(litProg)
		return nil, fmt.Errorf("shadow program: %w", err)
	}
	shadowMap, err := newShadowTarget(sim.ShadowMapSize)
	if err != nil {
		gl.DeleteProgram(litProg)
		gl.DeleteProgram(shadowProg)
		return nil, err
	}

	r := &Renderer{
		litProg:    litProg,
		shadowProg: shadowProg,
		shadowMap:  shadowMap,
	}

	overlay, err := newFootprintOverlay(layout.Obstacles)
	if err != nil {
		r.Destroy()
		return nil, fmt.Errorf("footprint overlay: %w", err)
	}
	r.overlay = overlay

	gl.UseProgram(litProg)
	r.uModel = uniform(litProg, "uModel")
	r.uView = uniform(litProg, "uView")
	r.uProjection = uniform(litProg, "uProjection")
	r.uLightSpace = uniform(litProg, "uLightSpace")
	r.uLightPosition = uniform(litProg, "uLightPosition")
	r.uViewPosition = uniform(litProg, "uViewPosition")
	r.uLightColor = uniform(litProg, "uLightColor")
	r.uLightDirection = uniform(litProg, "uLightDirection")
	r.uAmbientColor = uniform(litProg, "uAmbientColor")
	r.uShadowMap = uniform(litProg, "uShadowMap")
	r.uCosInner = uniform(litProg, "uCosInner")
	r.uCosOuter = uniform(litProg, "uCosOuter")
	r.uAttenuation = uniform(litProg, "uAttenuation")
	r.uBoost = uniform(litProg, "uBoost")
	r.uShininess = uniform(litProg, "uShininess")
	r.uShadowBias = uniform(litProg, "uShadowBias")
	r.uShadowedLight = uniform(litProg, "uShadowedLight")

	// Constant for the session.
	gl.Uniform1i(r.uShadowMap, shadowTextureUnit)
	gl.Uniform3f(r.uLightColor, sim.LightColor[0], sim.LightColor[1], sim.LightColor[2])
	gl.Uniform3f(r.uAmbientColor, sim.AmbientColor[0], sim.AmbientColor[1], sim.AmbientColor[2])
	gl.Uniform3f(r.uBoost, sim.AmbientBoost, sim.DiffuseBoost, sim.SpecularBoost)
	gl.Uniform1f(r.uShininess, sim.Shininess)
	gl.Uniform2f(r.uShadowBias, sim.ShadowBiasSlope, sim.ShadowBiasMin)
	gl.Uniform1f(r.uShadowedLight, sim.ShadowedLightFactor)

	gl.UseProgram(shadowProg)
	r.shadowUModel = uniform(shadowProg, "uModel")
	r.shadowULightSpac = uniform(shadowProg, "uLightSpace")

	for _, m := range layout.Static {
		r.static = append(r.static, uploadMesh(m))
	}
	for _, m := range layout.Vehicle {
		r.vehicle = append(r.vehicle, uploadMesh(m))
	}

	gl.UseProgram(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	for i := range r.static {
		r.static[i].Delete()
	}
	for i := range r.vehicle {
		r.vehicle[i].Delete()
	}
	r.static, r.vehicle = nil, nil
	if r.overlay != nil {
		r.overlay.Delete()
		r.overlay = nil
	}
	if r.shadowMap != nil {
		r.shadowMap.Delete()
		r.shadowMap = nil
	}
	for _, id := range []uint32{r.litProg, r.shadowProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	r.litProg, r.shadowProg = 0, 0
}

// SetViewport records the framebuffer size the main pass renders at.
func (r *Renderer) SetViewport(fbW, fbH int) {
	r.fbW, r.fbH = fbW, fbH
}

// ShadowPass renders scene depth from the spotlight into the shadow map.
func (r *Renderer) ShadowPass(w *sim.World) {
	lightSpace := sim.LightSpaceMatrix(w.Light)

	r.shadowMap.Bind()
	gl.UseProgram(r.shadowProg)
	setMat4(r.shadowULightSpac, lightSpace)

	for i := range r.static {
		setMat4(r.shadowUModel, r.static[i].Model)
		r.static[i].Draw()
	}
	vm := w.Vehicle.ModelMatrix()
	for i := range r.vehicle {
		setMat4(r.shadowUModel, vm.Mul4(r.vehicle[i].Model))
		r.vehicle[i].Draw()
	}

	gl.BindVertexArray(0)
	r.shadowMap.Unbind()
}

// MainPass renders the lit scene to the default framebuffer.
func (r *Renderer) MainPass(w *sim.World) {
	gl.Viewport(0, 0, int32(r.fbW), int32(r.fbH))
	gl.ClearColor(sim.ClearColor[0], sim.ClearColor[1], sim.ClearColor[2], 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	light := w.Light
	view := w.Camera.View()
	proj := w.Camera.Projection(r.fbW, r.fbH)
	eye := w.Camera.Eye().Array()
	lightPos := light.Position.Array()
	lightDir := light.Direction.Array()
	cosInner, cosOuter := light.CosCutoffs()
	attn := light.Attenuation

	gl.UseProgram(r.litProg)
	setMat4(r.uView, view)
	setMat4(r.uProjection, proj)
	setMat4(r.uLightSpace, sim.LightSpaceMatrix(light))
	gl.Uniform3f(r.uLightPosition, lightPos[0], lightPos[1], lightPos[2])
	gl.Uniform3f(r.uLightDirection, lightDir[0], lightDir[1], lightDir[2])
	gl.Uniform3f(r.uViewPosition, eye[0], eye[1], eye[2])
	gl.Uniform1f(r.uCosInner, float32(cosInner))
	gl.Uniform1f(r.uCosOuter, float32(cosOuter))
	gl.Uniform3f(r.uAttenuation, float32(attn.Constant), float32(attn.Linear), float32(attn.Quadratic))

	r.shadowMap.BindTexture(shadowTextureUnit)

	for i := range r.static {
		setMat4(r.uModel, r.static[i].Model)
		r.static[i].Draw()
	}
	vm := w.Vehicle.ModelMatrix()
	for i := range r.vehicle {
		setMat4(r.uModel, vm.Mul4(r.vehicle[i].Model))
		r.vehicle[i].Draw()
	}
	gl.BindVertexArray(0)

	if r.ShowFootprints {
		r.overlay.Draw(proj.Mul4(view), w.Vehicle.Footprint())
	}
}

func setMat4(loc int32, m mgl32.Mat4) {
	gl.UniformMatrix4fv(loc, 1, false, &m[0])
}
