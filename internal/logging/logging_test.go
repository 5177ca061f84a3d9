package logging

import (
	"bytes"
	"strings"
	"testing"

	"charm.land/log/v2"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  log.Level
	}{
		{name: "default", input: "", want: log.InfoLevel},
		{name: "debug", input: "debug", want: log.DebugLevel},
		{name: "warn alias", input: "warning", want: log.WarnLevel},
		{name: "trimmed upper", input: "  ERROR ", want: log.ErrorLevel},
		{name: "invalid", input: "nope", want: log.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.want {
				t.Fatalf("parseLevel(%q): got %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewReturnsSameLogger(t *testing.T) {
	if New("same") != New("same") {
		t.Fatal("expected New to cache loggers per component")
	}
}

func TestSetLevelAppliesToExisting(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetLevel(log.InfoLevel)

	l := New("level-test")
	SetLevel(log.ErrorLevel)
	l.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected info to be filtered, got %q", buf.String())
	}

	SetLevelString("debug")
	l.Debug("shown", "key", "value")
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("expected debug output, got %q", buf.String())
	}
}
