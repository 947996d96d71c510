package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/Alextopher/binaural/config"
	"github.com/Alextopher/binaural/generators"
	"github.com/Alextopher/binaural/prompt"
	"github.com/Alextopher/binaural/wavout"
)

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	cfg.DisableStacktrace = true

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// value returns the flag value when one was given, otherwise asks for it
func value(p *prompt.Prompter, flagged int, f prompt.Field) (int, error) {
	if flagged != 0 {
		return flagged, nil
	}
	return p.Int(f)
}

func main() {
	cfg, err := config.Parse(os.Args[1:], os.Stderr)
	if errors.Cause(err) == flag.ErrHelp {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := newLogger(cfg.Verbose)
	defer logger.Sync()

	p := prompt.New(os.Stdin, os.Stdout)
	p.Echo = term.IsTerminal(int(os.Stdin.Fd()))
	if !p.Echo {
		logger.Debug("stdin is not a terminal, reading answers without prompts")
	}

	params := generators.Params{SampleRate: cfg.SampleRate}
	for _, q := range []struct {
		dst     *int
		flagged int
		field   prompt.Field
	}{
		{&params.BaseFrequency, cfg.Base, config.BaseFrequency},
		{&params.FrequencyDiff, cfg.Beat, config.BeatFrequency},
		{&params.Duration, cfg.Duration, config.Duration},
	} {
		if *q.dst, err = value(p, q.flagged, q.field); err != nil {
			logger.Fatal("no answer", zap.String("field", q.field.Name), zap.Error(err))
		}
	}

	logger.Debug("generating",
		zap.Int("rate", params.SampleRate),
		zap.Int("base", params.BaseFrequency),
		zap.Int("beat", params.FrequencyDiff),
		zap.Int("duration", params.Duration),
	)

	start := time.Now()
	w, err := generators.Generate(params)
	if err != nil {
		logger.Fatal("generate", zap.Error(err))
	}
	logger.Debug("generated", zap.Int("frames", w.Len()), zap.Duration("took", time.Since(start)))

	path := filepath.Join(cfg.OutDir, wavout.FileName(params.FrequencyDiff))
	if err := wavout.Write(path, w); err != nil {
		logger.Fatal("write", zap.String("path", path), zap.Error(err))
	}
	logger.Debug("written", zap.String("path", path), zap.Duration("took", time.Since(start)))

	fmt.Printf("\n\nBinaural beat audio file '%s' generated!\n\n", path)
}
