package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitialize_EmptyLevelIsSilent(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")
	if err := Initialize(""); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if GetLogger().Core().Enabled(zap.ErrorLevel) {
		t.Error("expected nop logger when no level configured")
	}
}

func TestInitialize_Levels(t *testing.T) {
	tests := []struct {
		level   string
		debugOn bool
	}{
		{"debug", true},
		{"info", false},
		{"warn", false},
		{"bogus", false},
	}
	for _, tt := range tests {
		if err := Initialize(tt.level); err != nil {
			t.Fatalf("Initialize(%q) error = %v", tt.level, err)
		}
		if got := GetLogger().Core().Enabled(zap.DebugLevel); got != tt.debugOn {
			t.Errorf("Initialize(%q): debug enabled = %v, want %v", tt.level, got, tt.debugOn)
		}
	}
}

func TestInitializeToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.log")
	if err := InitializeToFile("info", path); err != nil {
		t.Fatalf("InitializeToFile() error = %v", err)
	}
	Info("hello from test")
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hello from test") {
		t.Errorf("log file = %q", data)
	}
}

func TestSet(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	Set(zap.New(core))
	defer Set(nil)

	Warn("contact step failed", zap.String("step", "smtp"))
	if logs.Len() != 1 {
		t.Fatalf("logged %d entries, want 1", logs.Len())
	}
	if got := logs.All()[0].ContextMap()["step"]; got != "smtp" {
		t.Errorf("step field = %v", got)
	}
}
