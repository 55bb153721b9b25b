// Package config loads the overlay settings from a YAML file in the user's
// config directory. A missing file yields the defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"lume/internal/geometry"
)

type Config struct {
	Window WindowConfig `yaml:"window"`
	Band   BandConfig   `yaml:"band"`
	Render RenderConfig `yaml:"render"`

	// FollowCursor moves the overlay with the host cursor instead of
	// pinning it to the band origin.
	FollowCursor bool `yaml:"follow_cursor"`

	// Profile enables CPU profiling for the process lifetime.
	Profile bool `yaml:"profile"`
}

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

type BandConfig struct {
	WidthFraction  float64 `yaml:"width_fraction"`
	HeightFraction float64 `yaml:"height_fraction"`
	TopOffset      int32   `yaml:"top_offset"`
}

type RenderConfig struct {
	IntervalMS int `yaml:"interval_ms"`

	// ClearColor is the RGBA frame background, components in [0, 1].
	ClearColor [4]float64 `yaml:"clear_color"`
}

// Default returns the stock configuration.
func Default() *Config {
	band := geometry.DefaultBand()
	return &Config{
		Window: WindowConfig{
			Title:  "lume",
			Width:  800,
			Height: 600,
		},
		Band: BandConfig{
			WidthFraction:  band.WidthFraction,
			HeightFraction: band.HeightFraction,
			TopOffset:      band.TopOffset,
		},
		Render: RenderConfig{
			IntervalMS: 15,
			ClearColor: [4]float64{0.1, 0.2, 0.3, 1.0},
		},
	}
}

// Load reads the config from the default location. A missing file is not an
// error; the defaults apply.
func Load() (*Config, error) {
	path, err := defaultPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads the config from an explicit path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to an explicit path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

func defaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config directory: %w", err)
	}
	return filepath.Join(dir, "lume", "config.yaml"), nil
}

// BandPolicy converts the band settings to the geometry policy.
func (c *Config) BandPolicy() geometry.Band {
	return geometry.Band{
		WidthFraction:  c.Band.WidthFraction,
		HeightFraction: c.Band.HeightFraction,
		TopOffset:      c.Band.TopOffset,
	}
}

// Interval returns the render cadence.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.Render.IntervalMS) * time.Millisecond
}
