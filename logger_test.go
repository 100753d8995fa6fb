package verve

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// TestLoggerDefaultSilent verifies the default logger discards records
// without formatting them.
func TestLoggerDefaultSilent(t *testing.T) {
	SetLogger(nil) // restore default
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	if l.Enabled(nil, slog.LevelError) {
		t.Error("default logger reports enabled; want silent nop")
	}
}

// TestSetLogger verifies an installed logger receives records and that
// nil restores the silent default.
func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer SetLogger(nil)

	Logger().Info("verve: test message", "key", "value")

	if !strings.Contains(buf.String(), "test message") {
		t.Errorf("log output %q does not contain the message", buf.String())
	}

	SetLogger(nil)
	before := buf.Len()
	Logger().Info("verve: dropped")
	if buf.Len() != before {
		t.Error("output written after SetLogger(nil)")
	}
}
