package log

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  LevelInfo,
		Format: FormatJSON,
		Output: NewOutput(&buf),
	})

	logger.Debug("debug message")
	if buf.Len() != 0 {
		t.Errorf("debug message logged below configured level: %s", buf.String())
	}

	logger.Info("info message", "key", "value")
	if !strings.Contains(buf.String(), "info message") {
		t.Errorf("info message not logged: %s", buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}
	if entry["key"] != "value" {
		t.Errorf("attribute key = %v, want %q", entry["key"], "value")
	}
}

func TestLoggerWith(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  LevelInfo,
		Format: FormatJSON,
		Output: NewOutput(&buf),
	})

	child := logger.With("component", "api")
	child.Info("request")

	if !strings.Contains(buf.String(), `"component":"api"`) {
		t.Errorf("With attribute missing from output: %s", buf.String())
	}
}

func TestLoggerWithError(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  LevelError,
		Format: FormatText,
		Output: NewOutput(&buf),
	})

	logger.WithError(nil).Error("no cause")
	if strings.Contains(buf.String(), "error=") {
		t.Errorf("nil error should not add an attribute: %s", buf.String())
	}
}

func TestLoggerEnabled(t *testing.T) {
	logger := New(Config{
		Level:  LevelWarn,
		Format: FormatText,
		Output: NewOutput(&bytes.Buffer{}),
	})

	ctx := context.Background()
	if logger.Enabled(ctx, LevelDebug) {
		t.Error("debug should be disabled at warn level")
	}
	if !logger.Enabled(ctx, LevelError) {
		t.Error("error should be enabled at warn level")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"nonsense", LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
