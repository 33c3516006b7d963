package telemetry

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Level != "info" {
		t.Errorf("expected level info, got %s", cfg.Level)
	}
	if cfg.Format != "json" {
		t.Errorf("expected format json, got %s", cfg.Format)
	}
}

func TestNew(t *testing.T) {
	l := New(nil)
	if l == nil {
		t.Fatal("New(nil) returned nil")
	}
}

func TestSetLevel(t *testing.T) {
	ctx := context.Background()
	l := New(&Config{Level: "error"})
	if l.slog.Enabled(ctx, slog.LevelInfo) {
		t.Fatal("logger constructed at error level should not log info")
	}
	l.SetLevel("debug")
	if !l.slog.Enabled(ctx, slog.LevelDebug) {
		t.Fatal("SetLevel(debug) should enable debug logging")
	}
}

func TestUseHandler(t *testing.T) {
	var buf bytes.Buffer
	UseHandler(slog.NewTextHandler(&buf, nil))
	Default().Info("hello")
	if buf.Len() == 0 {
		t.Fatal("UseHandler should route Default() through the new handler")
	}
}
