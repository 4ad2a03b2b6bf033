package logging

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zapcore.Level
		wantErr bool
	}{
		{"debug", zapcore.DebugLevel, false},
		{"INFO", zapcore.InfoLevel, false},
		{"warning", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"loud", zapcore.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestInitialize_SilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")
	if err := InitializeFromEnv(); err != nil {
		t.Fatalf("InitializeFromEnv() error = %v", err)
	}
	if GetLogger().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("expected nop logger when no level is configured")
	}
}

func TestInitialize_BadLevel(t *testing.T) {
	if err := Initialize("chatty"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestDomainHelpers(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(zap.NewNop())

	LogRawLine(3, "- "+strings.Repeat("00, ", 100))
	LogRecordFailure(4, errors.New("bad record size"))
	LogStateChange("npa", "unloaded", "degraded")

	entries := logs.All()
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}

	text := entries[0].ContextMap()["text"].(string)
	if len(text) != maxLoggedLine+3 || !strings.HasSuffix(text, "...") {
		t.Errorf("raw line not truncated: %d bytes", len(text))
	}
	if entries[1].Level != zapcore.WarnLevel {
		t.Errorf("record failure level = %v, want warn", entries[1].Level)
	}
	if got := entries[2].ContextMap()["to"]; got != "degraded" {
		t.Errorf("state change to = %v", got)
	}
}
