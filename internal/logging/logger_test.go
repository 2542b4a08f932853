package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "", "warn", "warning", "error", "INFO"} {
		if _, err := New(level); err != nil {
			t.Errorf("level %q: %v", level, err)
		}
	}
	if _, err := New("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestVerbosityFollowsLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter("info", &buf)
	if err != nil {
		t.Fatal(err)
	}
	log.V(1).Info("hidden")
	log.Info("shown", "run", "abc")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("V(1) message leaked at info level: %s", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "abc") {
		t.Errorf("expected info message with key, got %s", out)
	}

	buf.Reset()
	log, _ = NewWithWriter("debug", &buf)
	log.V(1).Info("detail")
	if !strings.Contains(buf.String(), "detail") {
		t.Errorf("expected V(1) message at debug level, got %q", buf.String())
	}
}
