package logger

import (
	"bytes"
	"context"
	stdlog "log"
	"strings"
	"testing"
)

func TestLogger_CallerAttribution(t *testing.T) {
	log, err := New("", "test", "debug")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var buf bytes.Buffer
	log.out = stdlog.New(&buf, "", 0)

	log.Infof("direct")
	log.Info("plain")
	log.WithFields(context.Background(), Fields{"k": "v"}).Infof("entry")
	log.WithFields(nil, nil).Warn("entry plain")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 log lines, got %d: %q", len(lines), buf.String())
	}
	for _, line := range lines {
		if !strings.Contains(line, "logger_test.go") {
			t.Errorf("expected caller logger_test.go, got %q", line)
		}
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	log, err := New("", "test", "error")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var buf bytes.Buffer
	log.out = stdlog.New(&buf, "", 0)

	log.Debug("dropped")
	log.Info("dropped")
	log.Error("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("expected sub-level lines to be filtered, got %q", out)
	}
	if !strings.Contains(out, "kept") {
		t.Errorf("expected error line to be logged, got %q", out)
	}
}
