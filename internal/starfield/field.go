package starfield

import (
	"math/rand/v2"

	"github.com/san-kum/animfetch/internal/anim"
	"github.com/san-kum/animfetch/internal/canvas"
)

// Label is what every star field implementation describes itself as.
const Label = "Planets animation with twinkling stars"

// Field is the record based star field.
type Field struct {
	params Params
	rng    *rand.Rand
	canvas *canvas.Canvas
	stars  []Star
}

// NewField creates an empty star field of the given size.
func NewField(w, h int, params Params, rng *rand.Rand) (*Field, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	c, err := canvas.New(w, h)
	if err != nil {
		return nil, err
	}
	return &Field{
		params: params,
		rng:    ensureRNG(rng),
		canvas: c,
		stars:  make([]Star, 0, params.MaxStars(w, h)),
	}, nil
}

func (f *Field) Name() string     { return string(BackendReference) }
func (f *Field) Describe() string { return Label }
func (f *Field) Population() int  { return len(f.stars) }

// Stars returns a copy of the live stars.
func (f *Field) Stars() []Star {
	out := make([]Star, len(f.stars))
	copy(out, f.stars)
	return out
}

// Resize swaps in a blank canvas of the new size. Stars outside the new
// bounds stay alive but are not drawn.
func (f *Field) Resize(w, h int) error {
	c, err := canvas.New(w, h)
	if err != nil {
		return err
	}
	f.canvas = c
	return nil
}

// Advance runs one tick: spawn, transition, cull.
func (f *Field) Advance(dt float64) {
	if dt < 0 {
		dt = 0
	}
	f.canvas.Clear()

	if len(f.stars) < f.params.MaxStars(f.canvas.Width, f.canvas.Height) &&
		f.rng.Float64() > f.params.SpawnChance(dt) {
		f.stars = append(f.stars, spawn(f.rng, f.canvas.Width, f.canvas.Height))
	}

	brighten, dim := f.params.Chances(dt)
	kept := f.stars[:0]
	for _, s := range f.stars {
		s.Level = transition(s.Level, f.rng.Float64(), brighten, dim)
		if s.Level == Fading {
			f.canvas.Set(s.X, s.Y, canvas.Blank)
			continue
		}
		kept = append(kept, s)
		f.canvas.Set(s.X, s.Y, s.Level.Glyph())
	}
	f.stars = kept
}

func (f *Field) Frame() anim.Frame {
	return append(anim.Frame(f.canvas.Lines()), "")
}

func (f *Field) add(s Star) { f.stars = append(f.stars, s) }

func spawn(rng *rand.Rand, w, h int) Star {
	x := rng.IntN(w)
	y := rng.IntN(h)
	return Star{X: x, Y: y, Level: levels[rng.IntN(len(levels))]}
}

func ensureRNG(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
