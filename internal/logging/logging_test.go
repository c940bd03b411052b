package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  slog.LevelDebug,
		Format: FormatText,
		Output: &buf,
	})

	logger.Info("scanning directory", "dir", "/tmp/.envconf")

	out := buf.String()
	if !strings.Contains(out, "scanning directory") {
		t.Errorf("output missing message: %q", out)
	}
	if !strings.Contains(out, "dir=/tmp/.envconf") {
		t.Errorf("output missing attribute: %q", out)
	}
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  slog.LevelInfo,
		Format: FormatJSON,
		Output: &buf,
	})

	logger.Info("loaded", "environments", 3)

	out := buf.String()
	if !strings.Contains(out, `"msg":"loaded"`) {
		t.Errorf("expected JSON output, got %q", out)
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  slog.LevelInfo,
		Format: FormatText,
		Output: &buf,
	})

	logger.Debug("skipped file")

	if buf.Len() != 0 {
		t.Errorf("debug message should be filtered at info level, got %q", buf.String())
	}
}

func TestLevelFromVerbosity(t *testing.T) {
	tests := []struct {
		verbosity int
		want      slog.Level
	}{
		{0, slog.LevelInfo},
		{1, slog.LevelDebug},
		{2, LevelTrace},
		{5, LevelTrace},
		{-1, slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := LevelFromVerbosity(tt.verbosity); got != tt.want {
			t.Errorf("LevelFromVerbosity(%d) = %v, want %v", tt.verbosity, got, tt.want)
		}
	}
}

func TestContextRoundTrip(t *testing.T) {
	logger := NewDiscard()
	ctx := NewContext(context.Background(), logger)

	if got := FromContext(ctx); got != logger {
		t.Error("FromContext() should return the logger stored by NewContext()")
	}
}

func TestFromContext_Fallback(t *testing.T) {
	if got := FromContext(context.Background()); got == nil {
		t.Error("FromContext() should fall back to the default logger")
	}
	if got := FromContext(nil); got == nil { //nolint:staticcheck // nil context is part of the contract
		t.Error("FromContext(nil) should fall back to the default logger")
	}
}

func TestMultiHandler(t *testing.T) {
	var a, b bytes.Buffer
	h := NewMultiHandler(
		slog.NewTextHandler(&a, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewTextHandler(&b, &slog.HandlerOptions{Level: slog.LevelError}),
	)
	logger := slog.New(h)

	logger.Info("info only")
	logger.Error("both")

	if !strings.Contains(a.String(), "info only") || !strings.Contains(a.String(), "both") {
		t.Errorf("first handler should receive both records: %q", a.String())
	}
	if strings.Contains(b.String(), "info only") {
		t.Errorf("second handler should filter info records: %q", b.String())
	}
	if !strings.Contains(b.String(), "both") {
		t.Errorf("second handler should receive error records: %q", b.String())
	}
}

func TestHandler_NoColorForBuffer(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, nil)

	logger := slog.New(h)
	logger.Info("plain")

	if strings.Contains(buf.String(), "\033[") {
		t.Errorf("non-TTY output should not contain ANSI escapes: %q", buf.String())
	}
}
