package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/ironcurve/lneto/internal/config"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()

	if cfg.TapDevice.Name != "tap0" {
		t.Errorf("TapDevice.Name = %q, want %q", cfg.TapDevice.Name, "tap0")
	}
	if cfg.TapDevice.HardwareAddr != "02:00:00:00:00:01" {
		t.Errorf("TapDevice.HardwareAddr = %q, want %q", cfg.TapDevice.HardwareAddr, "02:00:00:00:00:01")
	}
	if cfg.TapDevice.IPAddr != "192.168.100.1" {
		t.Errorf("TapDevice.IPAddr = %q, want %q", cfg.TapDevice.IPAddr, "192.168.100.1")
	}
	if cfg.Metrics.Addr != ":9100" {
		t.Errorf("Metrics.Addr = %q, want %q", cfg.Metrics.Addr, ":9100")
	}
	if cfg.Metrics.Path != "/metrics" {
		t.Errorf("Metrics.Path = %q, want %q", cfg.Metrics.Path, "/metrics")
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "info")
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want %q", cfg.Log.Format, "json")
	}

	if err := config.Validate(cfg); err != nil {
		t.Errorf("Validate(DefaultConfig()) = %v, want nil", err)
	}
}

func TestLoadFromYAML(t *testing.T) {
	t.Parallel()

	yamlContent := `
tap:
  name: tap7
  hardware_addr: "02:aa:bb:cc:dd:ee"
  ip_addr: "10.1.1.1"
metrics:
  addr: ":9200"
  path: "/custom-metrics"
log:
  level: debug
  format: text
`
	path := writeTemp(t, yamlContent)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load(%q) error: %v", path, err)
	}

	if cfg.TapDevice.Name != "tap7" {
		t.Errorf("TapDevice.Name = %q, want %q", cfg.TapDevice.Name, "tap7")
	}
	if cfg.TapDevice.HardwareAddr != "02:aa:bb:cc:dd:ee" {
		t.Errorf("TapDevice.HardwareAddr = %q, want %q", cfg.TapDevice.HardwareAddr, "02:aa:bb:cc:dd:ee")
	}
	if cfg.TapDevice.IPAddr != "10.1.1.1" {
		t.Errorf("TapDevice.IPAddr = %q, want %q", cfg.TapDevice.IPAddr, "10.1.1.1")
	}
	if cfg.Metrics.Addr != ":9200" {
		t.Errorf("Metrics.Addr = %q, want %q", cfg.Metrics.Addr, ":9200")
	}
	if cfg.Metrics.Path != "/custom-metrics" {
		t.Errorf("Metrics.Path = %q, want %q", cfg.Metrics.Path, "/custom-metrics")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "debug")
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want %q", cfg.Log.Format, "text")
	}
}

func TestLoadMergesDefaults(t *testing.T) {
	t.Parallel()

	yamlContent := `
tap:
  name: tap9
log:
  level: warn
`
	path := writeTemp(t, yamlContent)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load(%q) error: %v", path, err)
	}

	if cfg.TapDevice.Name != "tap9" {
		t.Errorf("TapDevice.Name = %q, want override %q", cfg.TapDevice.Name, "tap9")
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want override %q", cfg.Log.Level, "warn")
	}

	defaults := config.DefaultConfig()
	if cfg.TapDevice.HardwareAddr != defaults.TapDevice.HardwareAddr {
		t.Errorf("TapDevice.HardwareAddr = %q, want default %q", cfg.TapDevice.HardwareAddr, defaults.TapDevice.HardwareAddr)
	}
	if cfg.Metrics.Addr != defaults.Metrics.Addr {
		t.Errorf("Metrics.Addr = %q, want default %q", cfg.Metrics.Addr, defaults.Metrics.Addr)
	}
	if cfg.Metrics.Path != defaults.Metrics.Path {
		t.Errorf("Metrics.Path = %q, want default %q", cfg.Metrics.Path, defaults.Metrics.Path)
	}
	if cfg.Log.Format != defaults.Log.Format {
		t.Errorf("Log.Format = %q, want default %q", cfg.Log.Format, defaults.Log.Format)
	}
}

func TestValidateErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(*config.Config)
		wantErr error
	}{
		{
			name: "empty hardware addr",
			modify: func(cfg *config.Config) {
				cfg.TapDevice.HardwareAddr = ""
			},
			wantErr: config.ErrEmptyHardwareAddr,
		},
		{
			name: "empty ip addr",
			modify: func(cfg *config.Config) {
				cfg.TapDevice.IPAddr = ""
			},
			wantErr: config.ErrEmptyIPAddr,
		},
		{
			name: "empty metrics addr",
			modify: func(cfg *config.Config) {
				cfg.Metrics.Addr = ""
			},
			wantErr: config.ErrEmptyMetricsAddr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.DefaultConfig()
			tt.modify(cfg)

			err := config.Validate(cfg)
			if err != tt.wantErr {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  slog.Level
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "DEBUG", want: slog.LevelDebug},
		{input: "info", want: slog.LevelInfo},
		{input: "INFO", want: slog.LevelInfo},
		{input: "warn", want: slog.LevelWarn},
		{input: "WARN", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "Error", want: slog.LevelError},
		{input: "unknown", want: slog.LevelInfo},
		{input: "", want: slog.LevelInfo},
		{input: "trace", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got := config.ParseLogLevel(tt.input)
			if got != tt.want {
				t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLoadNonexistentFile(t *testing.T) {
	t.Parallel()

	_, err := config.Load("/nonexistent/path/frametool.yml")
	if err == nil {
		t.Fatal("Load() returned nil error for nonexistent file")
	}
}

func writeTemp(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "frametool.yml")

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp file: %v", err)
	}

	return path
}
