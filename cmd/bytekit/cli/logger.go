// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/bureau-foundation/bytekit/lib/config"
)

// NewLogger creates the structured logger for command operations,
// writing to output. With format "auto", a terminal gets
// slog.TextHandler for human-readable output and anything else (pipes,
// CI, scripts) gets slog.JSONHandler. "text" and "json" force one or
// the other.
//
// Callers scope the logger with command-specific context via With():
//
//	logger := cli.NewLogger(os.Stderr, cfg.Log).With("command", "hash")
func NewLogger(output io.Writer, logConfig config.LogConfig) (*slog.Logger, error) {
	level, err := logConfig.SlogLevel()
	if err != nil {
		return nil, Validation("log level %q: %w", logConfig.Level, err)
	}
	options := &slog.HandlerOptions{Level: level}

	text := false
	switch logConfig.Format {
	case config.LogFormatText:
		text = true
	case config.LogFormatJSON:
	default:
		text = isTerminal(output)
	}

	var handler slog.Handler
	if text {
		handler = slog.NewTextHandler(output, options)
	} else {
		handler = slog.NewJSONHandler(output, options)
	}
	return slog.New(handler), nil
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}
