package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"", slog.LevelInfo, false},
		{"WARN", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNew(t *testing.T) {
	t.Run("json honours level", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := New("warn", "json", &buf)
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		logger.Info("dropped")
		logger.Warn("kept", "pattern", "RT")

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		if len(lines) != 1 {
			t.Fatalf("got %d lines, want 1: %q", len(lines), buf.String())
		}
		var rec map[string]any
		if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
			t.Fatalf("decoding record: %v", err)
		}
		if rec["msg"] != "kept" || rec["pattern"] != "RT" {
			t.Errorf("record = %v", rec)
		}
	})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := New("info", "text", &buf)
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		logger.Info("loaded", "patterns", 20)
		if !strings.Contains(buf.String(), "patterns=20") {
			t.Errorf("output = %q", buf.String())
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		if _, err := New("info", "xml", &bytes.Buffer{}); err == nil {
			t.Error("expected error")
		}
	})
}

func TestContext(t *testing.T) {
	var buf bytes.Buffer
	logger, _ := New("info", "text", &buf)

	ctx := WithLogger(context.Background(), logger)
	FromContext(ctx).Info("hello")
	if !strings.Contains(buf.String(), "hello") {
		t.Error("expected logger from context")
	}

	// Missing logger falls back to a discarding one
	FromContext(context.Background()).Info("nowhere")
}
