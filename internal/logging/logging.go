// SPDX-License-Identifier: MIT

// Package logging constructs the slog logger shared by the wordchain
// commands.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format selects the slog handler.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Options configures New.
type Options struct {
	// Level is one of debug, info, warn, error. Empty means info.
	Level string

	// Format is text (default) or json.
	Format Format

	// Writer receives log records. Nil means os.Stderr.
	Writer io.Writer

	// Quiet discards everything below warn.
	Quiet bool
}

// ParseLevel maps a level name onto slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("logging: unknown level %q", s)
	}
}

// New returns a logger built from opts.
func New(opts Options) (*slog.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	if opts.Quiet && level < slog.LevelWarn {
		level = slog.LevelWarn
	}
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	hopts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	switch opts.Format {
	case FormatJSON:
		h = slog.NewJSONHandler(w, hopts)
	case FormatText, "":
		h = slog.NewTextHandler(w, hopts)
	default:
		return nil, fmt.Errorf("logging: unknown format %q", opts.Format)
	}

	return slog.New(h), nil
}
