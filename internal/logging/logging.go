// Package logging builds the slog logger used by the canopy command.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/phanxgames/canopy"
)

// Options controls logger construction.
type Options struct {
	Level     string // debug, info, warn or error; anything else is info
	Format    string // "text" or "json"
	File      string // optional path; enables a rotated JSON log file
	AddSource bool
}

// ParseLevel converts a level name to a slog.Level.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New returns a logger writing to console in the requested format and,
// when opts.File is set, to a size-rotated file as JSON. The returned
// closer releases the file and is never nil.
func New(opts Options, console io.Writer) (*slog.Logger, io.Closer) {
	hopts := &slog.HandlerOptions{Level: ParseLevel(opts.Level), AddSource: opts.AddSource}

	var h slog.Handler
	if strings.EqualFold(strings.TrimSpace(opts.Format), "json") {
		h = slog.NewJSONHandler(console, hopts)
	} else {
		h = slog.NewTextHandler(console, hopts)
	}

	var closer io.Closer = nopCloser{}
	if f := strings.TrimSpace(opts.File); f != "" {
		lj := &lumberjack.Logger{Filename: f, MaxSize: 10, MaxBackups: 3, MaxAge: 28, Compress: true}
		h = &multi{hs: []slog.Handler{h, slog.NewJSONHandler(lj, hopts)}}
		closer = lj
	}
	return slog.New(h).With(slog.String("app", "canopy")), closer
}

// Setup builds a logger with New and installs it as both the slog default
// and the canopy library logger.
func Setup(opts Options, console io.Writer) io.Closer {
	l, closer := New(opts, console)
	slog.SetDefault(l)
	canopy.SetLogger(l)
	return closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// multi fans records out to several handlers.
type multi struct{ hs []slog.Handler }

func (m *multi) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.hs {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *multi) Handle(ctx context.Context, r slog.Record) error {
	var firstErr error
	for _, h := range m.hs {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (m *multi) WithAttrs(attrs []slog.Attr) slog.Handler {
	res := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		res[i] = h.WithAttrs(attrs)
	}
	return &multi{hs: res}
}

func (m *multi) WithGroup(name string) slog.Handler {
	res := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		res[i] = h.WithGroup(name)
	}
	return &multi{hs: res}
}
