// Package config manages frametool's serve-mode configuration using
// koanf/v2: default, YAML file, and environment variable layers merged
// in that order, each later layer overriding the earlier ones. Grounded on the teacher's internal/config package of
// the same shape, from the sibling gobfd daemon.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds frametool's serve-mode configuration.
type Config struct {
	TapDevice TapDeviceConfig `koanf:"tap"`
	Metrics   MetricsConfig   `koanf:"metrics"`
	Log       LogConfig       `koanf:"log"`
}

// TapDeviceConfig names the Linux TAP interface serve mode attaches to
// and the addresses it answers ARP requests as.
type TapDeviceConfig struct {
	// Name is the TAP interface name, e.g. "tap0". Empty lets the
	// kernel choose one.
	Name string `koanf:"name"`
	// HardwareAddr is the MAC address frametool answers as, in
	// colon-hex form.
	HardwareAddr string `koanf:"hardware_addr"`
	// IPAddr is the IPv4 address frametool answers as, dotted-decimal.
	IPAddr string `koanf:"ip_addr"`
}

// MetricsConfig holds the Prometheus metrics endpoint configuration.
type MetricsConfig struct {
	Addr string `koanf:"addr"`
	Path string `koanf:"path"`
}

// LogConfig holds the logging configuration.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		TapDevice: TapDeviceConfig{
			Name:         "tap0",
			HardwareAddr: "02:00:00:00:00:01",
			IPAddr:       "192.168.100.1",
		},
		Metrics: MetricsConfig{
			Addr: ":9100",
			Path: "/metrics",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// envPrefix is the environment variable prefix for frametool
// configuration. Variables are named FRAMETOOL_<section>_<key>.
const envPrefix = "FRAMETOOL_"

// Load reads configuration from a YAML file at path, overlays
// environment variable overrides, and merges on top of DefaultConfig().
// An empty path skips the file layer.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	defaults := DefaultConfig()
	if err := loadDefaults(k, defaults); err != nil {
		return nil, fmt.Errorf("load config defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config from %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKeyMapper), nil); err != nil {
		return nil, fmt.Errorf("load env overrides: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func envKeyMapper(s string) string {
	s = strings.TrimPrefix(s, envPrefix)
	s = strings.ToLower(s)
	return strings.Replace(s, "_", ".", 1)
}

func loadDefaults(k *koanf.Koanf, defaults *Config) error {
	defaultMap := map[string]any{
		"tap.name":          defaults.TapDevice.Name,
		"tap.hardware_addr": defaults.TapDevice.HardwareAddr,
		"tap.ip_addr":       defaults.TapDevice.IPAddr,
		"metrics.addr":      defaults.Metrics.Addr,
		"metrics.path":      defaults.Metrics.Path,
		"log.level":         defaults.Log.Level,
		"log.format":        defaults.Log.Format,
	}
	for key, val := range defaultMap {
		if err := k.Set(key, val); err != nil {
			return fmt.Errorf("set default %s: %w", key, err)
		}
	}
	return nil
}

// Validation errors.
var (
	ErrEmptyHardwareAddr = errors.New("tap.hardware_addr must not be empty")
	ErrEmptyIPAddr       = errors.New("tap.ip_addr must not be empty")
	ErrEmptyMetricsAddr  = errors.New("metrics.addr must not be empty")
)

// Validate checks the configuration for logical errors.
func Validate(cfg *Config) error {
	if cfg.TapDevice.HardwareAddr == "" {
		return ErrEmptyHardwareAddr
	}
	if cfg.TapDevice.IPAddr == "" {
		return ErrEmptyIPAddr
	}
	if cfg.Metrics.Addr == "" {
		return ErrEmptyMetricsAddr
	}
	return nil
}

// ParseLogLevel maps a configuration log level string to the
// corresponding slog.Level. Unknown values default to slog.LevelInfo.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
