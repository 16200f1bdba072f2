package canvas

import (
	"bytes"
	"log/slog"
	"testing"
)

func TestDefaultLoggerDiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer SetLogger(nil)

	// Restore default, then confirm nothing panics and Logger() is non-nil.
	SetLogger(nil)
	if Logger() == nil {
		t.Fatalf("expected a default logger to always be present")
	}
	Logger().Info("should be discarded")
	if buf.Len() != 0 {
		t.Fatalf("expected the default logger to discard output, got %q", buf.String())
	}
}

func TestSetLoggerSwapsActiveLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer SetLogger(nil)

	Logger().Info("hello")
	if buf.Len() == 0 {
		t.Fatalf("expected the configured logger to receive output")
	}
}

func TestSetLoggerNilRestoresSilence(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	SetLogger(nil)
	defer SetLogger(nil)

	Logger().Info("should be discarded again")
	if buf.Len() != 0 {
		t.Fatalf("expected SetLogger(nil) to restore silent discard, got %q", buf.String())
	}
}
