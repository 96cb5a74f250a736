package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"

	"github.com/goliatone/go-cache-layer/internal/config"
	"github.com/goliatone/go-cache-layer/internal/logging"
)

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(&buf, config.Log{Level: "info", Format: config.FormatJSON})
	require.NoError(t, err)

	logger.Info("cache reset", "entries", 3)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "cache reset", record["msg"])
	assert.InDelta(t, 3, record["entries"], 0)
}

func TestNew_TextFormatFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(&buf, config.Log{Level: "warn", Format: config.FormatText})
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestNew_UnknownLevel(t *testing.T) {
	_, err := logging.New(&bytes.Buffer{}, config.Log{Level: "loud"})
	assert.ErrorIs(t, err, logging.ErrUnknownLevel)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		want slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := logging.ParseLevel(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestError_LogsMetadata(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	err := zerr.With(zerr.Wrap(zerr.New("disk full"), "save report"), "path", "/tmp/report.yaml")
	logging.Error(context.Background(), logger, err)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "save report: disk full", record["msg"])
	assert.Equal(t, "/tmp/report.yaml", record["path"])
}

func TestError_NilIsIgnored(t *testing.T) {
	var buf bytes.Buffer
	logging.Error(context.Background(), slog.New(slog.NewTextHandler(&buf, nil)), nil)
	assert.Empty(t, buf.String())
}

func TestDescribe(t *testing.T) {
	err := zerr.Wrap(zerr.Wrap(zerr.New("entity removed"), "read dimension"), "simulate")
	assert.Equal(t,
		"Error: simulate\n\n  Caused by:\n    -> read dimension\n    -> entity removed",
		logging.Describe(err))

	assert.Equal(t, "Error: plain", logging.Describe(assertionError("plain")))
	assert.Empty(t, logging.Describe(nil))
}

type assertionError string

func (e assertionError) Error() string { return string(e) }
