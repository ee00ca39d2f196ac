package game

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// ShadowTarget is a depth-only framebuffer the shadow pass renders into.
type ShadowTarget struct {
	fbo      uint32
	depthTex uint32
	Size     int32
}

func newShadowTarget(size int32) (*ShadowTarget, error) {
	st := &ShadowTarget{Size: size}

	gl.GenTextures(1, &st.depthTex)
	gl.BindTexture(gl.TEXTURE_2D, st.depthTex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.DEPTH_COMPONENT24, size, size, 0, gl.DEPTH_COMPONENT, gl.UNSIGNED_INT, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	// Outside the light frustum reads as far depth, i.e. lit.
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_BORDER)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_BORDER)
	border := [4]float32{1, 1, 1, 1}
	gl.TexParameterfv(gl.TEXTURE_2D, gl.TEXTURE_BORDER_COLOR, &border[0])

	gl.GenFramebuffers(1, &st.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, st.fbo)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.TEXTURE_2D, st.depthTex, 0)
	gl.DrawBuffer(gl.NONE)
	gl.ReadBuffer(gl.NONE)

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		st.Delete()
		return nil, fmt.Errorf("shadow framebuffer incomplete: 0x%x", status)
	}
	return st, nil
}

// Bind makes the depth map the render target and clears it.
func (st *ShadowTarget) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, st.fbo)
	gl.Viewport(0, 0, st.Size, st.Size)
	gl.Clear(gl.DEPTH_BUFFER_BIT)
}

func (st *ShadowTarget) Unbind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

// BindTexture binds the depth map for sampling on the given texture unit.
func (st *ShadowTarget) BindTexture(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, st.depthTex)
}

func (st *ShadowTarget) Delete() {
	if st.fbo != 0 {
		gl.DeleteFramebuffers(1, &st.fbo)
		st.fbo = 0
	}
	if st.depthTex != 0 {
		gl.DeleteTextures(1, &st.depthTex)
		st.depthTex = 0
	}
}
