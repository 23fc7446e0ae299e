package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/iwvelando/ops-optimizer/pkg/constants"
)

func TestLoadConfigDefaultsWhenMissing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Address != constants.DefaultServerAddress {
		t.Fatalf("expected default address, got %q", cfg.Address)
	}
	if cfg.BodySizeBytes() != constants.DefaultMaxBodySizeBytes {
		t.Fatalf("expected default body size, got %d", cfg.BodySizeBytes())
	}
	if cfg.Logging.Level != "" || cfg.Logging.Format != "" || cfg.Logging.OutputFile != "" {
		t.Fatalf("expected empty logging defaults, got %+v", cfg.Logging)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.BodySizeBytes() <= 0 {
		t.Fatalf("expected positive default body size, got %d", cfg.BodySizeBytes())
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "server-config.yaml")

	contents := []byte(`address: 127.0.0.1:9000
maxBodySize: 2M
calculationConfig: /etc/ops-optimizer/config.yaml
logging:
  level: debug
  format: console
  outputFile: /tmp/server.log
`)
	if err := os.WriteFile(path, contents, 0600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Address != "127.0.0.1:9000" {
		t.Fatalf("expected address override, got %s", cfg.Address)
	}
	if cfg.BodySizeBytes() != 2*1024*1024 {
		t.Fatalf("expected body size override, got %d", cfg.BodySizeBytes())
	}
	if cfg.CalculationConfig != "/etc/ops-optimizer/config.yaml" {
		t.Fatalf("expected calculation config path, got %s", cfg.CalculationConfig)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "console" {
		t.Fatalf("unexpected logging config %+v", cfg.Logging)
	}
	if cfg.Logging.OutputFile != "/tmp/server.log" {
		t.Fatalf("expected logging outputFile /tmp/server.log, got %s", cfg.Logging.OutputFile)
	}
}

func TestLoadConfigInvalidSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")

	if err := os.WriteFile(path, []byte("maxBodySize: invalid"), 0600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for invalid size but got nil")
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")

	if err := os.WriteFile(path, []byte("address: ["), 0600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for invalid YAML but got nil")
	}
}

func TestSetBodySizeBytes(t *testing.T) {
	cfg, _ := LoadConfig("")
	cfg.SetBodySizeBytes(4096)
	if cfg.BodySizeBytes() != 4096 || cfg.MaxBodySize != "4096" {
		t.Fatalf("expected override to 4096, got %d/%s", cfg.BodySizeBytes(), cfg.MaxBodySize)
	}
	cfg.SetBodySizeBytes(-1)
	if cfg.BodySizeBytes() != 4096 {
		t.Fatalf("non-positive override should be ignored, got %d", cfg.BodySizeBytes())
	}
}

func TestCalculation(t *testing.T) {
	cfg, _ := LoadConfig("")

	conf, err := cfg.Calculation()
	if err != nil {
		t.Fatalf("Calculation() error = %v", err)
	}
	if conf.EOQ.Demand != constants.DefaultAnnualDemand {
		t.Fatalf("expected default demand, got %v", conf.EOQ.Demand)
	}

	cfg.CalculationConfig = filepath.Join(t.TempDir(), "missing.yaml")
	if _, err := cfg.Calculation(); err != nil {
		t.Fatalf("missing calculation config should fall back to defaults, got %v", err)
	}

	cfg.CalculationConfig = filepath.Join("..", "..", "test", "test_config.yaml")
	conf, err = cfg.Calculation()
	if err != nil {
		t.Fatalf("Calculation() error = %v", err)
	}
	if conf.LineBalance.Demand != 130 {
		t.Fatalf("expected fixture demand 130, got %v", conf.LineBalance.Demand)
	}
}

func TestParseSize(t *testing.T) {
	tests := map[string]int64{
		"":          constants.DefaultMaxBodySizeBytes,
		"1024":      1024,
		"512b":      512,
		"256K":      256 * 1024,
		"1m":        1024 * 1024,
		"3MB":       3 * 1024 * 1024,
		"2G":        2 * 1024 * 1024 * 1024,
		"  4096   ": 4096,
	}

	for input, expected := range tests {
		got, err := ParseSize(input)
		if err != nil {
			t.Fatalf("ParseSize(%q) returned error: %v", input, err)
		}
		if got != expected {
			t.Fatalf("ParseSize(%q) = %d, expected %d", input, got, expected)
		}
	}

	if _, err := ParseSize("1TB"); err == nil {
		t.Fatal("expected error for unsupported unit")
	}
	if _, err := ParseSize("abc"); err == nil {
		t.Fatal("expected error for invalid number")
	}
	// 2^34+1 gigabytes wraps past int64 to a positive value.
	for _, input := range []string{"17179869185G", "9223372036854775807K"} {
		if _, err := ParseSize(input); err == nil {
			t.Fatalf("expected overflow error for %q", input)
		}
	}
}
