// Package providers is the closed set of animations animfetch can run.
// Adding an animation means adding a Kind and a case in New.
package providers

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/san-kum/animfetch/internal/anim"
	"github.com/san-kum/animfetch/internal/snow"
	"github.com/san-kum/animfetch/internal/starfield"
)

var ErrUnknownProvider = errors.New("providers: unknown provider")

type Kind string

const (
	Planets Kind = "planets"
	Snowy   Kind = "snowy"
)

// Kinds returns every provider in display order. The first one is the
// default.
func Kinds() []Kind {
	return []Kind{Planets, Snowy}
}

func Parse(name string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Kinds() {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %s (available: %v)", ErrUnknownProvider, name, Kinds())
}

// Options carries everything a provider may need at construction.
type Options struct {
	Width, Height int
	FPS           float64
	// TTY reports whether frames go to an interactive terminal.
	TTY bool
	// Seed drives the provider's RNG. Zero picks a time based seed.
	Seed    int64
	Backend starfield.Backend
	Stars   starfield.Params
	Snow    snow.Params
}

// DefaultOptions returns options sized like the CLI defaults.
func DefaultOptions() Options {
	return Options{
		Width:   50,
		Height:  12,
		FPS:     30,
		Backend: starfield.BackendAuto,
		Stars:   starfield.DefaultParams(),
		Snow:    snow.DefaultParams(),
	}
}

func (o Options) rng() *rand.Rand {
	seed := o.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// New builds the provider named by k.
func New(k Kind, opts Options) (anim.Provider, error) {
	switch k {
	case Planets:
		sf, err := starfield.New(opts.Backend, opts.Width, opts.Height, opts.Stars, opts.rng())
		if err != nil {
			return nil, err
		}
		return sf, nil
	case Snowy:
		s, err := snow.New(opts.Width, opts.Height, opts.FPS, opts.TTY, opts.Snow, opts.rng())
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, k)
	}
}

type Info struct {
	Kind        Kind
	Description string
}

// List describes every provider, building each one at 1x1 so nothing is
// rendered.
func List(opts Options) ([]Info, error) {
	opts.Width, opts.Height = 1, 1
	if opts.FPS <= 0 {
		opts.FPS = DefaultOptions().FPS
	}
	infos := make([]Info, 0, len(Kinds()))
	for _, k := range Kinds() {
		p, err := New(k, opts)
		if err != nil {
			return nil, fmt.Errorf("describe %s: %w", k, err)
		}
		infos = append(infos, Info{Kind: k, Description: p.Describe()})
	}
	return infos, nil
}
