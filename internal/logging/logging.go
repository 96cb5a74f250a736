// Package logging builds the slog logger used by the cachelayer CLI.
package logging

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"go.trai.ch/zerr"

	"github.com/goliatone/go-cache-layer/internal/config"
)

// ErrUnknownLevel is returned for a level name slog does not know.
var ErrUnknownLevel = zerr.New("unknown log level")

// messager matches zerr errors, which can report their message without the chain.
type messager interface {
	Message() string
}

// New returns a logger writing to w with the level and format of cfg.
func New(w io.Writer, cfg config.Log) (*slog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == config.FormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

// ParseLevel maps debug, info, warn and error to their slog levels.
// The empty string is info.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if name == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return 0, zerr.With(zerr.Wrap(ErrUnknownLevel, "parse level"), "level", name)
	}
	return level, nil
}

// Error logs err with the metadata attached along its zerr chain.
func Error(ctx context.Context, logger *slog.Logger, err error) {
	if err == nil {
		return
	}
	zerr.Log(ctx, logger, err)
}

// Describe renders err as a headline followed by its causes, one per line.
func Describe(err error) string {
	var messages []string
	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			messages = append(messages, current.Error())
			break
		}
		if msg := m.Message(); msg != "" {
			messages = append(messages, msg)
		}
		current = errors.Unwrap(current)
	}

	if len(messages) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Error: " + messages[0])
	if len(messages) > 1 {
		b.WriteString("\n\n  Caused by:")
		for _, msg := range messages[1:] {
			b.WriteString("\n    -> " + msg)
		}
	}
	return b.String()
}
