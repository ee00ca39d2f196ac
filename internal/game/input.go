package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"island/internal/sim"
)

// keyBindings maps held keys to simulation actions.
var keyBindings = map[glfw.Key]sim.Action{
	glfw.KeyUp:    sim.ActionAccelerate,
	glfw.KeyDown:  sim.ActionReverse,
	glfw.KeyLeft:  sim.ActionTurnLeft,
	glfw.KeyRight: sim.ActionTurnRight,
	glfw.KeyA:     sim.ActionCameraLeft,
	glfw.KeyD:     sim.ActionCameraRight,
	glfw.KeyS:     sim.ActionCameraRaise,
	glfw.KeyW:     sim.ActionCameraLower,
	glfw.KeyQ:     sim.ActionZoomIn,
	glfw.KeyE:     sim.ActionZoomOut,
}

type Input struct {
	window      *glfw.Window
	prevKeys    map[glfw.Key]bool
	scroll      float64
	scrollScale float64
}

// NewInput installs the scroll callback on window. Wheel up (positive yoff)
// turns into a negative scroll delta.
func NewInput(window *glfw.Window, scrollScale float64) *Input {
	in := &Input{
		window:      window,
		prevKeys:    make(map[glfw.Key]bool),
		scrollScale: scrollScale,
	}
	window.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		in.scroll -= yoff * in.scrollScale
	})
	return in
}

// Snapshot reads the held actions and drains the scroll accumulated since
// the previous call.
func (in *Input) Snapshot() sim.Snapshot {
	var s sim.Snapshot
	for key, action := range keyBindings {
		if in.window.GetKey(key) == glfw.Press {
			s.Held |= action
		}
	}
	s.Scroll = in.scroll
	in.scroll = 0
	return s
}

func (in *Input) JustPressed(key glfw.Key) bool {
	down := in.window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}
