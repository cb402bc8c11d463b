package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/matchdaycli/matchday/internal/errors"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"bogus", LevelInfo},
	}

	for _, tc := range cases {
		if got := ParseLevel(tc.in); got != tc.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if ParseFormat("json") != FormatJSON {
		t.Error("Expected json to parse as FormatJSON")
	}
	if ParseFormat("console") != FormatText {
		t.Error("Expected console to parse as FormatText")
	}
	if ParseFormat("") != FormatText {
		t.Error("Expected empty string to default to FormatText")
	}
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  LevelInfo,
		Format: FormatJSON,
		Output: NewOutput(&buf),
	})

	logger.Info("players loaded", "count", 50)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Expected valid JSON log entry, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "players loaded" {
		t.Errorf("Expected msg 'players loaded', got %v", entry["msg"])
	}
	if entry["count"] != float64(50) {
		t.Errorf("Expected count 50, got %v", entry["count"])
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  LevelWarn,
		Format: FormatText,
		Output: NewOutput(&buf),
	})

	logger.Debug("hidden")
	logger.Info("also hidden")
	logger.Warn("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Expected debug/info to be filtered, got %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Errorf("Expected warn to be logged, got %q", out)
	}
}

func TestWithError(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  LevelInfo,
		Format: FormatJSON,
		Output: NewOutput(&buf),
	})

	logger.WithError(errors.New(errors.ErrCodeAPIStatus, "HTTP 500")).Error("request failed")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid JSON entry: %v", err)
	}
	if entry["error_code"] != "API-002" {
		t.Errorf("Expected error_code API-002, got %v", entry["error_code"])
	}
	if entry["error"] != "HTTP 500" {
		t.Errorf("Expected error 'HTTP 500', got %v", entry["error"])
	}
}

func TestDefaultLogger(t *testing.T) {
	SetDefaultLogger(nil)
	logger := DefaultLogger()
	if logger == nil {
		t.Fatal("Expected lazily initialized default logger")
	}
	if DefaultLogger() != logger {
		t.Error("Expected DefaultLogger to be stable across calls")
	}
}
