package config

import (
	"flag"
	"io"

	"github.com/pkg/errors"

	"github.com/Alextopher/binaural/prompt"
)

// DefaultSampleRate is the rate used unless -rate says otherwise.
const DefaultSampleRate = 44100

// The three values asked for, in order.
var (
	BaseFrequency = prompt.Field{Name: "Frequency Base", Min: 100, Max: 2000, Default: 1000, Optional: true}
	BeatFrequency = prompt.Field{Name: "Frequency", Min: 1, Max: 60}
	Duration      = prompt.Field{Name: "Duration in seconds", Min: 10, Max: 3600}
)

// Config holds the command line settings. Base, Beat and Duration are zero
// when they still have to be asked for.
type Config struct {
	SampleRate int
	Base       int
	Beat       int
	Duration   int // seconds
	OutDir     string
	Verbose    bool
}

// Parse reads args (without the program name). Usage and errors are written
// to output.
func Parse(args []string, output io.Writer) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("binaural", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.IntVar(&cfg.SampleRate, "rate", DefaultSampleRate, "sample rate in Hz")
	fs.IntVar(&cfg.Base, "base", 0, "base frequency in Hz, asked for when 0")
	fs.IntVar(&cfg.Beat, "beat", 0, "beat frequency in Hz, asked for when 0")
	fs.IntVar(&cfg.Duration, "duration", 0, "duration in seconds, asked for when 0")
	fs.StringVar(&cfg.OutDir, "o", ".", "output directory")
	fs.BoolVar(&cfg.Verbose, "v", false, "debug logging")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, errors.Errorf("unexpected arguments %q", fs.Args())
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (cfg Config) validate() error {
	for _, v := range []struct {
		val   int
		field prompt.Field
	}{
		{cfg.Base, BaseFrequency},
		{cfg.Beat, BeatFrequency},
		{cfg.Duration, Duration},
	} {
		if v.val == 0 {
			continue
		}
		if err := v.field.Check(v.val); err != nil {
			return errors.Wrap(err, "invalid flag")
		}
	}

	// every reachable tone has to stay below Nyquist
	highest := BaseFrequency.Max + BeatFrequency.Max
	if cfg.SampleRate <= 2*highest {
		return errors.Errorf("sample rate must be more than %d Hz, got %d", 2*highest, cfg.SampleRate)
	}
	return nil
}
