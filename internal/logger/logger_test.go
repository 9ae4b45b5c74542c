package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNopByDefault(t *testing.T) {
	// Logging before Init must not panic or print.
	Debug("quiet")
	Info("quiet")
	Warn("quiet")
	Error("quiet")
}

func TestInitWithFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "meshimport.log")

	prev := Log
	Init("debug", logFile)
	defer func() { Log = prev }()

	Info("imported model")
	Sync()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "imported model") {
		t.Errorf("log file missing entry, got: %q", string(data))
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]string{
		"debug": "debug",
		"warn":  "warn",
		"error": "error",
		"info":  "info",
		"bogus": "info",
		"":      "info",
	}

	for in, want := range cases {
		if got := parseLevel(in).String(); got != want {
			t.Errorf("parseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}
