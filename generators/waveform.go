package generators

import (
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/pkg/errors"
)

// FullScale is the largest sample magnitude produced by normalization.
const FullScale = 1<<15 - 1

// Waveform is a rendered clip of 16-bit stereo frames, left channel first.
type Waveform struct {
	SampleRate beep.SampleRate
	Frames     [][2]int16
}

// Generate renders p and scales it to full 16-bit range. Both channels share
// a single scale factor, so their relative amplitude is kept.
func Generate(p Params) (*Waveform, error) {
	tone, err := BinauralTone(p)
	if err != nil {
		return nil, err
	}

	// first pass: peak across both channels
	peak := 0.0
	buf := make([][2]float64, 512)
	for {
		n, ok := tone.Stream(buf)
		if !ok {
			break
		}
		peak = math.Max(peak, peakOf(buf[:n]))
	}

	// second pass: render again and quantize
	tone, err = BinauralTone(p)
	if err != nil {
		return nil, err
	}

	frames := make([][2]int16, 0, p.FrameCount())
	for {
		n, ok := tone.Stream(buf)
		if !ok {
			break
		}
		for _, s := range buf[:n] {
			frames = append(frames, [2]int16{quantize(s[0], peak), quantize(s[1], peak)})
		}
	}

	return &Waveform{SampleRate: beep.SampleRate(p.SampleRate), Frames: frames}, nil
}

// Normalize scales raw so that its largest magnitude becomes FullScale and
// truncates every sample toward zero. A silent buffer stays silent.
func Normalize(raw [][2]float64) [][2]int16 {
	peak := peakOf(raw)
	out := make([][2]int16, len(raw))
	for i, s := range raw {
		out[i] = [2]int16{quantize(s[0], peak), quantize(s[1], peak)}
	}
	return out
}

func peakOf(samples [][2]float64) float64 {
	peak := 0.0
	for _, s := range samples {
		peak = math.Max(peak, math.Max(math.Abs(s[0]), math.Abs(s[1])))
	}
	return peak
}

func quantize(x, peak float64) int16 {
	if peak == 0 {
		return 0
	}
	return int16(x / peak * FullScale)
}

// Len returns the number of frames.
func (w *Waveform) Len() int {
	return len(w.Frames)
}

// Duration returns the play time of the clip.
func (w *Waveform) Duration() time.Duration {
	return w.SampleRate.D(len(w.Frames))
}

// Peak returns the largest absolute sample value over both channels.
func (w *Waveform) Peak() int {
	peak := 0
	for _, f := range w.Frames {
		for _, v := range f {
			a := int(v)
			if a < 0 {
				a = -a
			}
			if a > peak {
				peak = a
			}
		}
	}
	return peak
}

// Channel copies one channel out of the frames, 0 is left and 1 is right.
func (w *Waveform) Channel(c int) []int16 {
	out := make([]int16, len(w.Frames))
	for i, f := range w.Frames {
		out[i] = f[c]
	}
	return out
}

// Streamer plays the frames back as beep samples, so beep encoders can
// consume the clip. Each sample v is emitted as v/FullScale, which the 16-bit
// beep encoders turn back into exactly v.
func (w *Waveform) Streamer() beep.StreamSeeker {
	return &waveformStreamer{w: w}
}

type waveformStreamer struct {
	w   *Waveform
	pos int
}

func (s *waveformStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.w.Frames) {
		return 0, false
	}

	for i := range samples {
		if s.pos >= len(s.w.Frames) {
			break
		}
		f := s.w.Frames[s.pos]
		samples[i][0] = float64(f[0]) / FullScale
		samples[i][1] = float64(f[1]) / FullScale
		s.pos++
		n++
	}

	return n, true
}

func (*waveformStreamer) Err() error {
	return nil
}

func (s *waveformStreamer) Len() int {
	return len(s.w.Frames)
}

func (s *waveformStreamer) Position() int {
	return s.pos
}

func (s *waveformStreamer) Seek(p int) error {
	if p < 0 || p > len(s.w.Frames) {
		return errors.Errorf("waveform: seek position %d out of range [0, %d]", p, len(s.w.Frames))
	}
	s.pos = p
	return nil
}
