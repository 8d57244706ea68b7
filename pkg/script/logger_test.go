package script

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerSilentByDefault(t *testing.T) {
	require.NotNil(t, Logger())
	assert.False(t, Logger().Enabled(nil, slog.LevelError))
}

func TestDebugLoggingEmitsSegmentRecords(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	New(WithDebug(true)).Segment("Hi 안녕")
	out := buf.String()
	assert.Contains(t, out, "segment")
	assert.Contains(t, out, "script=korean")
}

func TestDebugDisabledLogsNothing(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	New().Segment("Hi 안녕")
	assert.Empty(t, buf.String())
}

func TestSetLoggerNilRestoresSilence(t *testing.T) {
	SetLogger(slog.Default())
	SetLogger(nil)
	assert.False(t, Logger().Enabled(nil, slog.LevelError))
}
