package logging

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"chatty", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestInitializeSilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")
	if err := Initialize(""); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if GetLogger().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("logger should be a no-op when no level is configured")
	}
}

func TestInitializeToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debloater.log")
	if err := InitializeWithOptions(Options{Level: "debug", File: path}); err != nil {
		t.Fatalf("InitializeWithOptions() error = %v", err)
	}
	defer SetLogger(nil)

	Info("hello from test")
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "hello from test") {
		t.Errorf("log file = %q, want it to contain the message", data)
	}
}

func TestDomainHelpers(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	LogDeviceQuery("abc123", "Google Pixel 6", 20*time.Millisecond, nil)
	LogDeviceQuery("", "No phone connected", time.Millisecond, errors.New("no devices"))
	LogCatalogLoad("embedded", 20, time.Millisecond, nil)
	LogStaleResult("StartupLoadCompleted", 1, 2)

	entries := logs.All()
	if len(entries) != 4 {
		t.Fatalf("got %d entries, want 4", len(entries))
	}
	if entries[0].Level != zapcore.InfoLevel || entries[0].ContextMap()["label"] != "Google Pixel 6" {
		t.Errorf("unexpected device entry: %+v", entries[0])
	}
	if entries[1].Level != zapcore.WarnLevel {
		t.Errorf("failed device query level = %v, want warn", entries[1].Level)
	}
	if got := entries[3].ContextMap()["current_generation"]; got != uint64(2) {
		t.Errorf("current_generation = %v, want 2", got)
	}
}
