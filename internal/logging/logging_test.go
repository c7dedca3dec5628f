package logging

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTraceWritesJSONWhenEnabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "trace.log")
	Configure(path)
	SetTraceEnabled(true)
	t.Cleanup(func() {
		SetTraceEnabled(false)
		Configure("")
	})

	Trace("focus.move", map[string]interface{}{"from": "a", "to": "b"})
	Trace("focus.select", nil)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read trace: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 trace lines, got %d", len(lines))
	}
	var entry, next struct {
		Seq     uint64                 `json:"seq"`
		Event   string                 `json:"event"`
		Payload map[string]interface{} `json:"payload"`
	}
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("decode trace: %v", err)
	}
	if err := json.Unmarshal([]byte(lines[1]), &next); err != nil {
		t.Fatalf("decode trace: %v", err)
	}
	if next.Seq != entry.Seq+1 {
		t.Fatalf("expected consecutive sequence numbers, got %d then %d", entry.Seq, next.Seq)
	}
	if entry.Event != "focus.move" {
		t.Fatalf("expected event focus.move, got %q", entry.Event)
	}
	if entry.Payload["to"] != "b" {
		t.Fatalf("expected payload to=b, got %v", entry.Payload["to"])
	}
}

func TestTraceSkippedWhenDisabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.log")
	Configure(path)
	SetTraceEnabled(false)
	t.Cleanup(func() { Configure("") })

	Trace("focus.move", nil)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no trace file, got err=%v", err)
	}
	if TraceEnabled() {
		t.Fatalf("expected tracing disabled")
	}
}

func TestErrorAppendsToLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "error.log")
	Configure(path)
	t.Cleanup(func() { Configure("") })

	Error(errors.New("boom"))
	Errorf("wrapped: %w", errors.New("inner"))
	Error(nil)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "boom") || !strings.Contains(string(data), "wrapped: inner") {
		t.Fatalf("unexpected log contents %q", string(data))
	}
}
