package config

import (
	"sort"

	"github.com/san-kum/animfetch/internal/snow"
	"github.com/san-kum/animfetch/internal/starfield"
)

var Presets = map[string]map[string]*Config{
	"planets": {
		"sparse": withDefaults(func(c *Config) {
			c.Provider = "planets"
			c.Stars = starfield.Params{Density: 0.008, BaseRate: 0.03, BrightenRate: 0.15, DimRate: 0.4}
		}),
		"dense": withDefaults(func(c *Config) {
			c.Provider = "planets"
			c.Stars = starfield.Params{Density: 0.06, BaseRate: 0.2, BrightenRate: 0.4, DimRate: 0.6}
		}),
	},
	"snowy": {
		"flurry": withDefaults(func(c *Config) {
			c.Provider = "snowy"
			c.FPS = 12
			c.Snow = snow.Params{SpawnChance: 0.02}
		}),
		"blizzard": withDefaults(func(c *Config) {
			c.Provider = "snowy"
			c.FPS = 40
			c.Snow = snow.Params{SpawnChance: 0.3}
		}),
	},
}

func withDefaults(apply func(*Config)) *Config {
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(provider, preset string) *Config {
	providerPresets, ok := Presets[provider]
	if !ok {
		return nil
	}
	cfg, ok := providerPresets[preset]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

// ListPresets returns the preset names of a provider in sorted order.
func ListPresets(provider string) []string {
	providerPresets, ok := Presets[provider]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(providerPresets))
	for name := range providerPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
