// Package wavout stores rendered waveforms as 16-bit stereo PCM WAV files.
package wavout

import (
	"fmt"
	"io"
	"os"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
	"github.com/pkg/errors"

	"github.com/Alextopher/binaural/generators"
)

// FileName names the output file after the beat frequency.
func FileName(beat int) string {
	return fmt.Sprintf("binaural_beat_%dHz.wav", beat)
}

// Format is the PCM layout of every file written by this package.
func Format(sr beep.SampleRate) beep.Format {
	return beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2}
}

// Encode writes w as a WAV stream. The header is patched once all frames are
// written, hence the io.WriteSeeker.
func Encode(ws io.WriteSeeker, w *generators.Waveform) error {
	if w.SampleRate <= 0 {
		return errors.Errorf("wavout: invalid sample rate %d", w.SampleRate)
	}
	return wav.Encode(ws, w.Streamer(), Format(w.SampleRate))
}

// Write creates path and encodes w into it. A file left behind by a failed
// write is not removed.
func Write(path string, w *generators.Waveform) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "wavout")
	}

	if err := Encode(f, w); err != nil {
		f.Close()
		return errors.Wrapf(err, "wavout: encoding %s", path)
	}

	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "wavout: closing %s", path)
	}
	return nil
}
