package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewLoggerLevel(t *testing.T) {
	tests := []struct {
		in   string
		want logrus.Level
	}{
		{"", logrus.InfoLevel},
		{"debug", logrus.DebugLevel},
		{"warn", logrus.WarnLevel},
		{"nonsense", logrus.InfoLevel},
	}
	for _, tt := range tests {
		l := newLogger(tt.in, "", &bytes.Buffer{})
		if l.GetLevel() != tt.want {
			t.Errorf("LOG_LEVEL=%q: expected %v, got %v", tt.in, tt.want, l.GetLevel())
		}
	}
}

func TestNewLoggerJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger("info", "JSON", &buf)
	l.WithField("seed", 7).Info("map generated")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Expected JSON output, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "map generated" {
		t.Errorf("Expected msg 'map generated', got %v", entry["msg"])
	}
	if entry["seed"] != float64(7) {
		t.Errorf("Expected seed 7, got %v", entry["seed"])
	}
}

func TestNewLoggerTextFormat(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger("info", "text", &buf)
	l.Info("hello")
	if !strings.Contains(buf.String(), "hello") {
		t.Errorf("Expected text output to contain message, got %q", buf.String())
	}
}

func TestGetBeforeInit(t *testing.T) {
	saved := Log
	Log = nil
	defer func() { Log = saved }()

	if Get() == nil {
		t.Fatal("Expected a usable logger before Init")
	}
	Get().Info("dropped")
}
