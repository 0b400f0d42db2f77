package goroutine

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketdesk/internal/shared/logger"
)

func newBufferLogger(buf *bytes.Buffer) logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(buf, nil)))
}

func receive(t *testing.T, ch <-chan error) error {
	t.Helper()
	select {
	case err := <-ch:
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("goroutine did not report")
		return nil
	}
}

func TestGo_ReportsNilOnSuccess(t *testing.T) {
	var buf bytes.Buffer
	ran := false

	err := receive(t, Go(newBufferLogger(&buf), "worker", func() error {
		ran = true
		return nil
	}))

	assert.NoError(t, err)
	assert.True(t, ran)
	assert.Empty(t, buf.String())
}

func TestGo_ReportsReturnedError(t *testing.T) {
	var buf bytes.Buffer
	want := errors.New("listen tcp :8080: bind: address already in use")

	err := receive(t, Go(newBufferLogger(&buf), "http-server", func() error {
		return want
	}))

	assert.ErrorIs(t, err, want)
}

func TestGo_RecoversPanic(t *testing.T) {
	var buf bytes.Buffer

	err := receive(t, Go(newBufferLogger(&buf), "http-server", func() error {
		panic("boom")
	}))

	require.Error(t, err)
	assert.Equal(t, "http-server panicked: boom", err.Error())
	assert.Contains(t, buf.String(), "goroutine panicked")
	assert.Contains(t, buf.String(), "goroutine=http-server")
}
