package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/animfetch/internal/anim"
	"github.com/san-kum/animfetch/internal/fetch"
	"github.com/san-kum/animfetch/internal/providers"
	"github.com/san-kum/animfetch/internal/snow"
	"github.com/san-kum/animfetch/internal/starfield"
)

const (
	DefaultProvider = "planets"
	DefaultFPS      = 30.0
	DefaultWidth    = 50
	// AutoHeight makes the canvas as tall as the text block.
	AutoHeight     = -1
	DefaultRefresh = 5.0
	MaxFPS         = 1000.0
)

type Config struct {
	Provider     string           `yaml:"provider"`
	FPS          float64          `yaml:"fps"`
	Width        int              `yaml:"width"`
	Height       int              `yaml:"height"`
	Refresh      float64          `yaml:"refresh"`
	FetchCommand string           `yaml:"fetch_command"`
	Backend      string           `yaml:"backend"`
	Seed         int64            `yaml:"seed"`
	LogLevel     string           `yaml:"log_level"`
	Stars        starfield.Params `yaml:"stars"`
	Snow         snow.Params      `yaml:"snow"`
}

func DefaultConfig() *Config {
	return &Config{
		Provider:     DefaultProvider,
		FPS:          DefaultFPS,
		Width:        DefaultWidth,
		Height:       AutoHeight,
		Refresh:      DefaultRefresh,
		FetchCommand: fetch.DefaultCommand,
		Backend:      string(starfield.BackendAuto),
		LogLevel:     "info",
		Stars:        starfield.DefaultParams(),
		Snow:         snow.DefaultParams(),
	}
}

// Load reads a yaml file on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadInto(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto reads a yaml file over cfg. Keys missing from the file keep
// their current values.
func LoadInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Clone returns an independent copy.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}

// Clamp caps fps at MaxFPS. Non-positive values are left for Validate.
func (c *Config) Clamp() {
	if c.FPS > MaxFPS {
		c.FPS = MaxFPS
	}
}

func (c *Config) Validate() error {
	if _, err := providers.Parse(c.Provider); err != nil {
		return err
	}
	if _, err := starfield.ParseBackend(c.Backend); err != nil {
		return err
	}
	if c.FPS <= 0 || c.FPS > MaxFPS {
		return fmt.Errorf("%w: fps must be in (0, %g], got %f", anim.ErrInvalidConfig, MaxFPS, c.FPS)
	}
	if c.Width <= 0 {
		return fmt.Errorf("%w: width must be positive, got %d", anim.ErrInvalidConfig, c.Width)
	}
	if c.Height < AutoHeight {
		return fmt.Errorf("%w: height must be positive or %d, got %d", anim.ErrInvalidConfig, AutoHeight, c.Height)
	}
	if c.Refresh <= 0 {
		return fmt.Errorf("%w: refresh must be positive, got %f", anim.ErrInvalidConfig, c.Refresh)
	}
	if err := c.Stars.Validate(); err != nil {
		return err
	}
	return c.Snow.Validate()
}

// AutoHeight reports whether the canvas height follows the text block.
func (c *Config) AutoHeight() bool { return c.Height <= 0 }

// ResolveHeight returns the canvas height for a text block of n lines.
// A derived height is never below one row.
func (c *Config) ResolveHeight(n int) int {
	if !c.AutoHeight() {
		return c.Height
	}
	return max(n, 1)
}

func (c *Config) RefreshInterval() time.Duration {
	return time.Duration(c.Refresh * float64(time.Second))
}

// Kind returns the parsed provider. Call Validate first.
func (c *Config) Kind() providers.Kind {
	k, _ := providers.Parse(c.Provider)
	return k
}

// ProviderOptions converts the config into construction options for a
// canvas of the given height.
func (c *Config) ProviderOptions(height int, tty bool) providers.Options {
	backend, _ := starfield.ParseBackend(c.Backend)
	return providers.Options{
		Width:   c.Width,
		Height:  height,
		FPS:     c.FPS,
		TTY:     tty,
		Seed:    c.Seed,
		Backend: backend,
		Stars:   c.Stars,
		Snow:    c.Snow,
	}
}
