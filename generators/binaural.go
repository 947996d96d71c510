package generators

import (
	"math"

	"github.com/faiface/beep"
	"github.com/pkg/errors"
)

// Params describes one binaural clip. All values are in Hz, except Duration
// which is in whole seconds.
type Params struct {
	SampleRate    int
	BaseFrequency int
	FrequencyDiff int
	Duration      int
}

// Validate reports whether p can be rendered.
func (p Params) Validate() error {
	switch {
	case p.SampleRate <= 0:
		return errors.Errorf("binaural generator: sample rate must be positive, got %d", p.SampleRate)
	case p.BaseFrequency <= 0:
		return errors.Errorf("binaural generator: base frequency must be positive, got %d", p.BaseFrequency)
	case p.FrequencyDiff <= 0:
		return errors.Errorf("binaural generator: frequency difference must be positive, got %d", p.FrequencyDiff)
	case p.Duration <= 0:
		return errors.Errorf("binaural generator: duration must be positive, got %d", p.Duration)
	}

	n := int64(p.SampleRate) * int64(p.Duration)
	if n/int64(p.Duration) != int64(p.SampleRate) || int64(int(n)) != n {
		return errors.Errorf("binaural generator: %d Hz for %d s does not fit in a sample count", p.SampleRate, p.Duration)
	}

	return nil
}

// FrameCount is the number of stereo frames in the clip.
func (p Params) FrameCount() int {
	return p.SampleRate * p.Duration
}

type binauralGenerator struct {
	left  float64 // radians per second
	right float64
	step  float64 // seconds per frame
	pos   int
	n     int
}

// BinauralTone creates a finite streamer of the raw binaural signal: the left
// channel is a sine at the base frequency, the right one a sine at base+diff.
// The time axis covers [0, duration) in FrameCount even steps, so the last
// frame stops one step short of the endpoint. Samples are not normalized.
func BinauralTone(p Params) (beep.Streamer, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	n := p.FrameCount()
	return &binauralGenerator{
		left:  2 * math.Pi * float64(p.BaseFrequency),
		right: 2 * math.Pi * float64(p.BaseFrequency+p.FrequencyDiff),
		step:  float64(p.Duration) / float64(n),
		n:     n,
	}, nil
}

func (g *binauralGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.n {
		return 0, false
	}

	for i := range samples {
		if g.pos >= g.n {
			break
		}
		t := float64(g.pos) * g.step
		samples[i][0] = math.Sin(g.left * t)
		samples[i][1] = math.Sin(g.right * t)
		g.pos++
		n++
	}

	return n, true
}

func (*binauralGenerator) Err() error {
	return nil
}
