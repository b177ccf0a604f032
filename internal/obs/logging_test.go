package obs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "info", "json")
	logger.Info("day_started", "day", 2)
	logger.Debug("hidden")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one line at info level, got %d: %q", len(lines), buf.String())
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rec["msg"] != "day_started" || rec["day"] != float64(2) {
		t.Fatalf("record = %v", rec)
	}
}

func TestNewLoggerTextDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "debug", "text")
	logger.Debug("customer_spawned", "customer_id", 7)
	if !strings.Contains(buf.String(), "customer_id=7") {
		t.Fatalf("output = %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	if ParseLevel("WARN") != slog.LevelWarn || ParseLevel("bogus") != slog.LevelInfo {
		t.Fatal("unexpected level mapping")
	}
}
