package game

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/rs/zerolog"

	"island/internal/config"
	"island/internal/scene"
	"island/internal/sim"
)

// RunDesktop opens the window and drives the frame loop until the window is
// closed. It must be called from the main goroutine.
func RunDesktop(cfg config.Config, log zerolog.Logger) error {
	runtime.LockOSThread()

	layout := scene.Build()
	world, err := sim.NewWorld(layout.Obstacles)
	if err != nil {
		return err
	}

	window, err := initWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	log.Info().
		Str("version", gl.GoStr(gl.GetString(gl.VERSION))).
		Str("renderer", gl.GoStr(gl.GetString(gl.RENDERER))).
		Msg("OpenGL ready")

	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(sim.ClearColor[0], sim.ClearColor[1], sim.ClearColor[2], 1.0)

	rend, err := NewRenderer(layout)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()
	rend.ShowFootprints = cfg.Debug.Footprints

	if cfg.Audio.Enabled {
		audio, err := NewAudio(cfg.Audio.Volume, log)
		if err != nil {
			log.Warn().Err(err).Msg("audio init failed, continuing without sound")
		} else {
			audio.Subscribe(world.Events, world.Vehicle.MaxSpeed)
		}
	}

	world.Events.Subscribe(sim.EventObstacleHit, func(e sim.Event) {
		log.Debug().
			Stringer("category", e.Category).
			Float64("x", e.X).Float64("z", e.Z).
			Float64("speed", e.Speed).
			Msg("obstacle contact")
	})
	world.Events.Subscribe(sim.EventBoundaryHit, func(e sim.Event) {
		log.Debug().
			Float64("x", e.X).Float64("z", e.Z).
			Float64("speed", e.Speed).
			Msg("boundary contact")
	})

	input := NewInput(window, cfg.Input.ScrollScale)
	log.Info().
		Int("obstacles", len(layout.Obstacles)).
		Int("meshes", len(layout.Static)+len(layout.Vehicle)).
		Msg("scene built")

	for !window.ShouldClose() {
		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}
		if input.JustPressed(glfw.KeyB) {
			rend.ShowFootprints = !rend.ShowFootprints
			log.Debug().Bool("footprints", rend.ShowFootprints).Msg("debug overlay toggled")
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}
		rend.SetViewport(fbW, fbH)

		world.Tick(input.Snapshot(), rend)
		window.SwapBuffers()
	}

	log.Info().Uint64("frames", world.Frame).Msg("window closed")
	return nil
}
