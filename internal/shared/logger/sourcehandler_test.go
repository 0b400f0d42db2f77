package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourceHandler(t *testing.T) {
	tests := []struct {
		name       string
		level      slog.Level
		levels     []slog.Level
		wantSource bool
	}{
		{"info is plain by default", slog.LevelInfo, []slog.Level{slog.LevelWarn, slog.LevelError}, false},
		{"warn carries source", slog.LevelWarn, []slog.Level{slog.LevelWarn, slog.LevelError}, true},
		{"error carries source", slog.LevelError, []slog.Level{slog.LevelWarn, slog.LevelError}, true},
		{"debug mode tags info", slog.LevelInfo, []slog.Level{slog.LevelDebug, slog.LevelInfo}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
			log := slog.New(newSourceHandler(base, tt.levels...))

			log.Log(t.Context(), tt.level, "ticket resolved", "ticket_id", 7)

			out := buf.String()
			assert.Contains(t, out, "ticket_id=7")
			if tt.wantSource {
				assert.Contains(t, out, "sourcehandler_test.go")
			} else {
				assert.NotContains(t, out, "source=")
			}
		})
	}
}

func TestSourceHandler_WithAttrsKeepsLevels(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewTextHandler(&buf, nil)
	log := slog.New(newSourceHandler(base, slog.LevelError)).With("component", "test")

	log.Error("store failure")

	assert.Contains(t, buf.String(), "component=test")
	assert.Contains(t, buf.String(), "source=")
}
