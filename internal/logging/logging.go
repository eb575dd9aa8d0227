// SPDX-License-Identifier: MIT

// Package logging builds the *slog.Logger used by the strassen command.
//
// The libraries in this module never log on their own; they accept a logger
// through options (multiply.WithLogger) and default to discarding.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ErrUnknownLevel is returned by ParseLevel for an unrecognized name.
var ErrUnknownLevel = errors.New("logging: unknown level")

// ErrUnknownFormat is returned by New for a format other than text or json.
var ErrUnknownFormat = errors.New("logging: unknown format")

// ParseLevel maps debug, info, warn and error (case-insensitive) to slog levels.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return slog.LevelInfo, fmt.Errorf("%q: %w", name, ErrUnknownLevel)
}

// New returns a logger writing to w at the given level, as text or json.
// Every record carries component=strassen.
func New(w io.Writer, level, format string) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}

	var h slog.Handler
	switch strings.ToLower(format) {
	case "text", "":
		h = slog.NewTextHandler(w, opts)
	case "json":
		h = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}

	return slog.New(h.WithAttrs([]slog.Attr{slog.String("component", "strassen")})), nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
