// Package config loads and saves the blockfx tool settings.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/justyntemme/blockfx/pkg/framework/bus"
	"github.com/justyntemme/blockfx/pkg/framework/debug"
)

// AudioConfig sets the processing format
type AudioConfig struct {
	SampleRate float64 `json:"sampleRate"`
	BlockSize  int     `json:"blockSize"`
}

// ArpeggiatorConfig stores arpeggiator parameters
type ArpeggiatorConfig struct {
	Speed float64 `json:"speed"`
}

// NoiseGateConfig stores noise gate parameters
type NoiseGateConfig struct {
	Threshold float64 `json:"threshold"`
	Alpha     float64 `json:"alpha"`
}

// SurroundConfig stores the monitored channel layout
type SurroundConfig struct {
	Layout string `json:"layout"`
}

// Config is the main configuration structure
type Config struct {
	Audio       AudioConfig       `json:"audio"`
	LogLevel    string            `json:"logLevel,omitempty"`
	Arpeggiator ArpeggiatorConfig `json:"arpeggiator"`
	NoiseGate   NoiseGateConfig   `json:"noiseGate"`
	Surround    SurroundConfig    `json:"surround"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Audio: AudioConfig{
			SampleRate: 44100,
			BlockSize:  512,
		},
		LogLevel:    "info",
		Arpeggiator: ArpeggiatorConfig{Speed: 0.5},
		NoiseGate:   NoiseGateConfig{Threshold: 0.5, Alpha: 0.8},
		Surround:    SurroundConfig{Layout: "5.1"},
	}
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "blockfx"), nil
}

// ConfigPath returns the full path to config.json
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from the default path, or returns defaults if
// there is none.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path. A missing file yields defaults, and
// fields absent from the file keep their defaults.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to the default path
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the config to path, creating its directory.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks ranges and names.
func (c *Config) Validate() error {
	var errs []error
	if !(c.Audio.SampleRate > 0) {
		errs = append(errs, fmt.Errorf("audio.sampleRate must be positive, got %v", c.Audio.SampleRate))
	}
	if c.Audio.BlockSize <= 0 {
		errs = append(errs, fmt.Errorf("audio.blockSize must be positive, got %d", c.Audio.BlockSize))
	}
	if _, err := debug.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	for _, p := range []struct {
		name  string
		value float64
	}{
		{"arpeggiator.speed", c.Arpeggiator.Speed},
		{"noiseGate.threshold", c.NoiseGate.Threshold},
		{"noiseGate.alpha", c.NoiseGate.Alpha},
	} {
		if p.value < 0 || p.value > 1 {
			errs = append(errs, fmt.Errorf("%s must be in [0, 1], got %v", p.name, p.value))
		}
	}
	if _, err := bus.ParseLayout(c.Surround.Layout); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Level returns the configured log level.
func (c *Config) Level() debug.LogLevel {
	level, _ := debug.ParseLevel(c.LogLevel)
	return level
}

// SurroundLayout returns the parsed surround layout.
func (c *Config) SurroundLayout() (bus.Layout, error) {
	return bus.ParseLayout(c.Surround.Layout)
}
