package starfield

import (
	"fmt"
	"math"

	"github.com/san-kum/animfetch/internal/anim"
)

const (
	DefaultDensity      = 0.02
	DefaultBaseRate     = 0.07
	DefaultBrightenRate = 0.25
	DefaultDimRate      = 0.5
)

// Params holds the immutable tuning of a star field.
type Params struct {
	// Density is the fraction of cells that may hold a star.
	Density float64 `yaml:"density"`
	// BaseRate shapes the spawn chance min(BaseRate/(dt+BaseRate), 1).
	BaseRate float64 `yaml:"base_rate"`
	// BrightenRate and DimRate are per-second transition rates.
	BrightenRate float64 `yaml:"brighten_rate"`
	DimRate      float64 `yaml:"dim_rate"`
}

func DefaultParams() Params {
	return Params{
		Density:      DefaultDensity,
		BaseRate:     DefaultBaseRate,
		BrightenRate: DefaultBrightenRate,
		DimRate:      DefaultDimRate,
	}
}

func (p Params) Validate() error {
	if p.Density < 0 || p.Density > 1 {
		return fmt.Errorf("%w: star density must be in [0, 1], got %f", anim.ErrInvalidConfig, p.Density)
	}
	if p.BaseRate <= 0 {
		return fmt.Errorf("%w: star base rate must be positive, got %f", anim.ErrInvalidConfig, p.BaseRate)
	}
	if p.BrightenRate < 0 || p.DimRate < 0 {
		return fmt.Errorf("%w: star transition rates must not be negative", anim.ErrInvalidConfig)
	}
	return nil
}

// MaxStars is the capacity of a width x height field.
func (p Params) MaxStars(width, height int) int {
	return int(math.Floor(float64(width*height) * p.Density))
}

// SpawnChance is the threshold a draw must exceed for a star to spawn.
// It shrinks as dt grows, so short ticks spawn more often.
func (p Params) SpawnChance(dt float64) float64 {
	return math.Min(p.BaseRate/(dt+p.BaseRate), 1)
}

// Chances returns the brighten and dim probabilities for one tick.
func (p Params) Chances(dt float64) (brighten, dim float64) {
	return math.Min(p.BrightenRate*dt, 1), math.Min(p.DimRate*dt, 1)
}
