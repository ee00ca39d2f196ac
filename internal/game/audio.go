package game

import (
	"time"

	"github.com/hajimehoshi/oto/v2"
	"github.com/rs/zerolog"

	"island/internal/sfx"
	"island/internal/sim"
)

// Audio plays the contact cues. Each cue gets its own short-lived player.
type Audio struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64
	log    zerolog.Logger
}

func NewAudio(volume float64, log zerolog.Logger) (*Audio, error) {
	ctx, ready, err := oto.NewContext(sfx.SampleRate, sfx.ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, err
	}
	return &Audio{ctx: ctx, ready: ready, volume: volume, log: log}, nil
}

// Play starts samples in the background. It drops the cue if the device is
// not ready yet.
func (a *Audio) Play(samples []byte, gain float64) {
	if a == nil || gain <= 0 || len(samples) == 0 {
		return
	}
	select {
	case <-a.ready:
	default:
		return
	}
	go func() {
		player := a.ctx.NewPlayer(sfx.NewReader(samples))
		player.SetVolume(a.volume * clamp01(gain))
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := player.Close(); err != nil {
			a.log.Debug().Err(err).Msg("closing audio player")
		}
	}()
}

// Subscribe plays a bump for obstacle contacts and a thud for the island
// edge, louder the faster the vehicle was going.
func (a *Audio) Subscribe(bus *sim.EventBus, maxSpeed float64) {
	bus.Subscribe(sim.EventObstacleHit, func(e sim.Event) {
		a.Play(sfx.Generate(sfx.CueBump, e.Category), sfx.GainForSpeed(e.Speed, maxSpeed))
	})
	bus.Subscribe(sim.EventBoundaryHit, func(e sim.Event) {
		a.Play(sfx.Generate(sfx.CueThud, e.Category), sfx.GainForSpeed(e.Speed, maxSpeed))
	})
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
