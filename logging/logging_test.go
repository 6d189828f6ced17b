package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campusnav/config"
	"github.com/katalvlaran/campusnav/logging"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		require.Equal(t, want, logging.ParseLevel(in), in)
	}
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := logging.NewWithWriter(&buf, config.LoggingConfig{Level: "warn", Format: "json"})

	l.Info("dropped")
	l.Warn("kept", "location", "Bascom Hall")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "kept", rec["msg"])
	require.Equal(t, "Bascom Hall", rec["location"])
}

func TestNewWithWriter_Text(t *testing.T) {
	var buf bytes.Buffer
	l := logging.NewWithWriter(&buf, config.LoggingConfig{Level: "debug", Format: "text"})
	l.Debug("hello")
	require.Contains(t, buf.String(), "msg=hello")
}

func TestContextRoundTrip(t *testing.T) {
	require.Same(t, slog.Default(), logging.FromContext(context.Background()))

	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, nil))
	ctx := logging.WithLogger(context.Background(), l)
	require.Same(t, l, logging.FromContext(ctx))
}
