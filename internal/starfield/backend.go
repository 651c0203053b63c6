package starfield

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/san-kum/animfetch/internal/anim"
)

type Backend string

const (
	BackendAuto      Backend = "auto"
	BackendReference Backend = "reference"
	BackendPacked    Backend = "packed"
)

// Backends lists the selectable backend names.
func Backends() []Backend {
	return []Backend{BackendAuto, BackendReference, BackendPacked}
}

func ParseBackend(s string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(s))); b {
	case "", BackendAuto:
		return BackendAuto, nil
	case BackendReference, BackendPacked:
		return b, nil
	default:
		return "", fmt.Errorf("%w: %q (available: %v)", ErrUnknownBackend, s, Backends())
	}
}

// Simulation is the surface shared by every star field implementation.
type Simulation interface {
	anim.Provider
	anim.Populated
	Name() string
	Stars() []Star
	Resize(w, h int) error
	add(s Star)
}

// New builds the star field selected by b. Auto picks the packed fast path.
func New(b Backend, w, h int, params Params, rng *rand.Rand) (Simulation, error) {
	switch b {
	case BackendReference:
		f, err := NewField(w, h, params, rng)
		if err != nil {
			return nil, err
		}
		return f, nil
	case BackendPacked, BackendAuto, "":
		p, err := NewPacked(w, h, params, rng)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, b)
	}
}
