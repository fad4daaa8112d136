package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Config{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	log.Info("index rebuilt", "snapshots", 3)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if entry["msg"] != "index rebuilt" {
		t.Errorf("msg = %v, want %q", entry["msg"], "index rebuilt")
	}
	if entry["snapshots"] != float64(3) {
		t.Errorf("snapshots = %v, want 3", entry["snapshots"])
	}
}

func TestNewTextFormat(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Config{Level: "info", Format: "text", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	log.Info("hello")
	if !strings.Contains(buf.String(), "msg=hello") {
		t.Errorf("text output missing message: %s", buf.String())
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Config{Level: "warn", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	log.Debug("dropped")
	log.Info("dropped too")
	if buf.Len() != 0 {
		t.Errorf("sub-warn output not filtered: %s", buf.String())
	}

	log.Warn("kept")
	if buf.Len() == 0 {
		t.Error("warn output was filtered")
	}
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Config{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	SetLevel("debug")
	defer SetLevel("info")

	if got := GetLevel(); got != "debug" {
		t.Errorf("GetLevel() = %q, want %q", got, "debug")
	}

	log.Debug("now visible")
	if buf.Len() == 0 {
		t.Error("debug output filtered after SetLevel(debug)")
	}
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Config{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	log.With("processor_id", 7).Info("snapshot saved")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if entry["processor_id"] != float64(7) {
		t.Errorf("processor_id = %v, want 7", entry["processor_id"])
	}
}

func TestDefault(t *testing.T) {
	if Default() == nil {
		t.Fatal("Default() = nil")
	}

	var buf bytes.Buffer
	log, err := New(Config{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	SetDefault(log)
	if Default() != log {
		t.Error("Default() did not return the logger set by SetDefault")
	}
}
