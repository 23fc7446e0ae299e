package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/iwvelando/ops-optimizer/internal/config"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input     string
		expected  zapcore.Level
		wantError bool
	}{
		{"debug", zapcore.DebugLevel, false},
		{"info", zapcore.InfoLevel, false},
		{"warn", zapcore.WarnLevel, false},
		{"warning", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"verbose", zapcore.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLevel(tt.input)
			if tt.wantError {
				if err == nil {
					t.Errorf("ParseLevel(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLevel(%q) error = %v", tt.input, err)
			}
			if level != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, expected %v", tt.input, level, tt.expected)
			}
		})
	}
}

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig(config.LoggingConfig{}, "")
	if err != nil {
		t.Fatalf("NewConfig() error = %v", err)
	}
	if cfg.Level.Level() != zapcore.InfoLevel {
		t.Errorf("expected info level, got %v", cfg.Level.Level())
	}
	if cfg.Encoding != "json" {
		t.Errorf("expected json encoding, got %s", cfg.Encoding)
	}
}

func TestNewConfigOverrideTakesPrecedence(t *testing.T) {
	cfg, err := NewConfig(config.LoggingConfig{Level: "error", Format: "console"}, "debug")
	if err != nil {
		t.Fatalf("NewConfig() error = %v", err)
	}
	if cfg.Level.Level() != zapcore.DebugLevel {
		t.Errorf("expected debug level, got %v", cfg.Level.Level())
	}
	if cfg.Encoding != "console" {
		t.Errorf("expected console encoding, got %s", cfg.Encoding)
	}
}

func TestNewConfigInvalid(t *testing.T) {
	if _, err := NewConfig(config.LoggingConfig{Format: "xml"}, ""); err == nil {
		t.Error("expected error for invalid format")
	}
	if _, err := NewConfig(config.LoggingConfig{Level: "loud"}, ""); err == nil {
		t.Error("expected error for invalid level")
	}
}

func TestNewLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "ops.log")

	logger, err := NewLogger(config.LoggingConfig{Level: "info", Format: "json", OutputFile: path}, "")
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}
	logger.Info("hello")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected log file to contain the entry")
	}
}
