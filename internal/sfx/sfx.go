// Package sfx synthesizes the short collision cues as stereo float32 PCM.
package sfx

import (
	"encoding/binary"
	"io"
	"math"

	"island/internal/sim"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	FrameBytes   = 8 // two float32 channels
)

// Cue identifies a sound effect.
type Cue int

const (
	CueBump Cue = iota
	CueThud
)

func (c Cue) String() string {
	switch c {
	case CueBump:
		return "bump"
	case CueThud:
		return "thud"
	}
	return "unknown"
}

// bumpPitch gives each obstacle kind its own knock.
var bumpPitch = map[sim.Category]float64{
	sim.CategoryBuilding: 140,
	sim.CategoryTree:     220,
	sim.CategoryBush:     320,
}

// Bump is a short FM knock for hitting an obstacle.
func Bump(cat sim.Category) []byte {
	base, ok := bumpPitch[cat]
	if !ok {
		base = 200
	}
	n := int(0.12 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.4, 0.15, 0.4)
		freq := base * (1 - 0.35*p)
		s := fm(t, freq, 1.5, 2.2*(1-p)) * env * 0.55
		s += math.Sin(2*math.Pi*freq*2*t) * env * 0.08
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// Thud is a low filtered-noise thump for running into the island edge.
func Thud() []byte {
	n := int(0.22 * SampleRate)
	buf := makeBuf(n)
	seed := uint64(0x15AD)
	lp := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := math.Exp(-p * 6)
		lp = lp*0.9 + lcg(&seed)*0.1
		thump := fm(t, 60, 0.5, 1.0) * math.Exp(-p*14)
		s := (lp*0.45 + thump*0.7) * env
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// Generate returns the samples for a cue. cat only matters for CueBump.
func Generate(c Cue, cat sim.Category) []byte {
	switch c {
	case CueBump:
		return Bump(cat)
	case CueThud:
		return Thud()
	}
	return nil
}

// GainForSpeed scales a cue by how hard the vehicle hit.
func GainForSpeed(speed, maxSpeed float64) float64 {
	if maxSpeed <= 0 {
		return 0
	}
	g := 0.35 + 0.65*math.Abs(speed)/maxSpeed
	return math.Min(math.Max(g, 0), 1)
}

// Reader streams a sample buffer once.
type Reader struct {
	data []byte
	pos  int
}

func NewReader(data []byte) *Reader { return &Reader{data: data} }

func (r *Reader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both channels of frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	binary.LittleEndian.PutUint32(buf[i*FrameBytes:], v)
	binary.LittleEndian.PutUint32(buf[i*FrameBytes+4:], v)
}

// softSat applies gentle tanh-like saturation.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

func makeBuf(n int) []byte { return make([]byte, n*FrameBytes) }
