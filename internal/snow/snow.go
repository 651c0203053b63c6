// Package snow implements the falling snow cellular automaton.
package snow

import (
	"fmt"
	"math/rand/v2"

	"github.com/san-kum/animfetch/internal/anim"
	"github.com/san-kum/animfetch/internal/canvas"
)

const (
	DefaultSpawnChance = 0.05
	Flake              = '*'
)

type Params struct {
	SpawnChance float64 `yaml:"spawn_chance"`
}

func DefaultParams() Params {
	return Params{SpawnChance: DefaultSpawnChance}
}

func (p Params) Validate() error {
	if p.SpawnChance < 0 || p.SpawnChance > 1 {
		return fmt.Errorf("%w: snow spawn chance must be in [0, 1], got %f", anim.ErrInvalidConfig, p.SpawnChance)
	}
	return nil
}

// Snow is a dense grid of flakes that fall one row per step.
type Snow struct {
	w, h   int
	fps    float64
	tty    bool
	params Params
	rng    *rand.Rand
	cells  []bool
	canvas *canvas.Canvas
	// pending is simulated time not yet consumed by a step.
	pending float64
	steps   int
}

// New creates a snow field and seeds its top row. fps sets the step period
// Frame waits for; tty only affects Describe.
func New(w, h int, fps float64, tty bool, params Params, rng *rand.Rand) (*Snow, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if fps <= 0 {
		return nil, fmt.Errorf("%w: fps must be positive, got %f", anim.ErrInvalidConfig, fps)
	}
	c, err := canvas.New(w, h)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	s := &Snow{
		w:      w,
		h:      h,
		fps:    fps,
		tty:    tty,
		params: params,
		rng:    rng,
		cells:  make([]bool, w*h),
		canvas: c,
	}
	for x := 0; x < w; x++ {
		if s.rng.Float64() < params.SpawnChance {
			s.cells[x] = true
		}
	}
	return s, nil
}

func (s *Snow) idx(x, y int) int { return y*s.w + x }

// Occupied reports whether a flake sits at (x, y).
func (s *Snow) Occupied(x, y int) bool {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return false
	}
	return s.cells[s.idx(x, y)]
}

// Place drops a flake at (x, y). Out of range coordinates are ignored.
func (s *Snow) Place(x, y int) {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return
	}
	s.cells[s.idx(x, y)] = true
}

// Steps returns how many automaton steps have run since construction.
func (s *Snow) Steps() int { return s.steps }

// Advance banks dt seconds. The automaton itself steps in Frame.
func (s *Snow) Advance(dt float64) {
	if dt <= 0 {
		return
	}
	s.pending += dt
}

// catchUp runs at most one step when a full period has been banked. The
// leftover is capped at one period so a late frame never causes a burst.
func (s *Snow) catchUp() {
	period := 1 / s.fps
	if s.pending < period {
		return
	}
	s.pending = min(s.pending-period, period)
	s.Step()
}

// Step advances the automaton by one tick.
func (s *Snow) Step() {
	w, h := s.w, s.h
	last := h - 1

	// Rows are scanned from just above the ground upward so a flake moves at
	// most one row per step.
	for y := h - 2; y >= 0; y-- {
		for x := 0; x < w; x++ {
			i := s.idx(x, y)
			if !s.cells[i] {
				continue
			}
			below := s.idx(x, y+1)
			switch {
			case !s.cells[below]:
				s.cells[i] = false
				s.cells[below] = true
			case y+1 == last:
				s.cells[i] = false
			}
		}
	}

	for x := 0; x < w; x++ {
		s.cells[s.idx(x, last)] = false
	}

	for x := 0; x < w; x++ {
		if s.rng.Float64() < s.params.SpawnChance && !s.cells[x] {
			s.cells[x] = true
		}
	}
	s.steps++
}

// Frame steps once if a period has elapsed, then renders. Flakes move at
// most one row per rendered frame.
func (s *Snow) Frame() anim.Frame {
	s.catchUp()
	s.canvas.Clear()
	for y := 0; y < s.h; y++ {
		for x := 0; x < s.w; x++ {
			if s.cells[s.idx(x, y)] {
				s.canvas.Set(x, y, Flake)
			}
		}
	}
	return append(anim.Frame(s.canvas.Lines()), "")
}

func (s *Snow) Population() int {
	n := 0
	for _, c := range s.cells {
		if c {
			n++
		}
	}
	return n
}

func (s *Snow) Describe() string {
	d := fmt.Sprintf("Snowy Animation: %dx%d at %g FPS", s.w, s.h, s.fps)
	if !s.tty {
		d += " (not a TTY, clearing disabled)"
	}
	return d
}
