package logging

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func logLine(t *testing.T, raw string) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &m); err != nil {
		t.Fatalf("log output is not JSON: %v\n%s", err, raw)
	}
	return m
}

func TestInfoCarriesFields(t *testing.T) {
	var sb strings.Builder
	logger := NewLogger(&sb, "sweep")

	logger.Info("partition swept",
		String("phase", "sweep"),
		Int("workers", 4),
		Uint64("pairs", 66),
		Float64("rate", 1.5),
		Dur("elapsed", 2*time.Second))

	m := logLine(t, sb.String())
	if m["message"] != "partition swept" {
		t.Errorf("message = %v", m["message"])
	}
	if m["component"] != "sweep" {
		t.Errorf("component = %v", m["component"])
	}
	if m["phase"] != "sweep" || m["workers"] != float64(4) || m["pairs"] != float64(66) {
		t.Errorf("fields missing: %v", m)
	}
	if m["elapsed"] != "2s" {
		t.Errorf("duration field = %v", m["elapsed"])
	}
}

func TestErrorIncludesCause(t *testing.T) {
	var sb strings.Builder
	logger := NewLogger(&sb, "test")

	logger.Error("sweep aborted", errors.New("boom"))

	m := logLine(t, sb.String())
	if m["level"] != "error" {
		t.Errorf("level = %v", m["level"])
	}
	if m["error"] != "boom" {
		t.Errorf("error = %v", m["error"])
	}
}

func TestNopDiscardsEverything(t *testing.T) {
	logger := Nop()
	logger.Info("ignored")
	logger.Error("ignored", errors.New("ignored"))
	logger.Debug("ignored")
}
