package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"
)

func TestJSONLines(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stdout)
	SetLevel("info")

	Info("adapt_ok", Fields{"platform": "twitter"})
	Debug("hidden", nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one line, got %q", buf.String())
	}
	var e map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &e); err != nil {
		t.Fatal(err)
	}
	if e["message"] != "adapt_ok" || e["level"] != "info" || e["platform"] != "twitter" {
		t.Fatalf("unexpected entry %v", e)
	}
}

func TestSetLevelFallsBackToInfo(t *testing.T) {
	SetLevel("loud")
	if Logger().GetLevel().String() != "info" {
		t.Fatalf("level: %s", Logger().GetLevel())
	}
	SetLevel("debug")
	if Logger().GetLevel().String() != "debug" {
		t.Fatalf("level: %s", Logger().GetLevel())
	}
	SetLevel("info")
}
