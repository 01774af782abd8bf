// Package logging builds the zap logger shared by every command.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options select level and destination.
type Options struct {
	Level   string // debug | info | warn | error; empty means warn
	File    string // empty means Fallback
	Verbose bool   // forces debug

	// Fallback is the output path used when File is empty. An empty
	// Fallback returns a no-op logger (used while the alt screen is up).
	Fallback string
}

func New(opt Options) (*zap.Logger, error) {
	out := opt.File
	if out == "" {
		out = opt.Fallback
	}
	if out == "" {
		return zap.NewNop(), nil
	}

	level, err := parseLevel(opt.Level)
	if err != nil {
		return nil, err
	}
	if opt.Verbose {
		level = zapcore.DebugLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{out}
	cfg.ErrorOutputPaths = []string{out}
	cfg.Sampling = nil

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

func parseLevel(s string) (zapcore.Level, error) {
	if strings.TrimSpace(s) == "" {
		return zapcore.WarnLevel, nil
	}
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(strings.ToLower(s))); err != nil {
		return l, fmt.Errorf("log level: %w", err)
	}
	return l, nil
}
