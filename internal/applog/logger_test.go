package applog

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestLogger_Log(t *testing.T) {
	t.Run("writes message when enabled", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(slog.New(slog.NewTextHandler(&buf, nil)))

		logger.Log("order created", "order_id", int64(42))

		out := buf.String()
		if !strings.Contains(out, "order created") {
			t.Errorf("expected log output to contain message, got %q", out)
		}
		if !strings.Contains(out, "order_id=42") {
			t.Errorf("expected log output to contain order_id, got %q", out)
		}
		if !strings.Contains(out, "time=") {
			t.Errorf("expected timestamped line, got %q", out)
		}
	})

	t.Run("stays silent when disabled", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(slog.New(slog.NewTextHandler(&buf, nil)))
		logger.SetEnabled(false)

		logger.Log("should not appear")

		if buf.Len() != 0 {
			t.Errorf("expected no output, got %q", buf.String())
		}
	})
}

func TestLogger_Try(t *testing.T) {
	t.Run("reports success and logs nothing", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(slog.New(slog.NewTextHandler(&buf, nil)))

		ok := logger.Try("save", func() error { return nil })

		if !ok {
			t.Error("expected ok for successful action")
		}
		if buf.Len() != 0 {
			t.Errorf("expected no output on success, got %q", buf.String())
		}
	})

	t.Run("swallows the error and records a diagnostic", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(slog.New(slog.NewTextHandler(&buf, nil)))

		ok := logger.Try("save", func() error { return errors.New("store unreachable") })

		if ok {
			t.Error("expected failure to be reported via the flag")
		}
		out := buf.String()
		if !strings.Contains(out, "suppressed failure") {
			t.Errorf("expected suppression diagnostic, got %q", out)
		}
		if !strings.Contains(out, "store unreachable") {
			t.Errorf("expected failure message in diagnostic, got %q", out)
		}
	})

	t.Run("still swallows errors when logging is disabled", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(slog.New(slog.NewTextHandler(&buf, nil)))
		logger.SetEnabled(false)

		ok := logger.Try("save", func() error { return errors.New("boom") })

		if ok {
			t.Error("expected failure flag")
		}
		if buf.Len() != 0 {
			t.Errorf("expected no output when disabled, got %q", buf.String())
		}
	})
}
