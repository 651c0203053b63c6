package starfield

import (
	"math/rand/v2"

	"github.com/san-kum/animfetch/internal/anim"
	"github.com/san-kum/animfetch/internal/canvas"
)

// Packed keeps stars as parallel slices and renders into a flat byte
// buffer. It is the fast path of the star field and must stay draw-for-draw
// compatible with Field.
type Packed struct {
	params Params
	rng    *rand.Rand
	w, h   int
	xs     []int
	ys     []int
	lv     []Brightness
	cells  []byte
}

// NewPacked creates an empty packed star field of the given size.
func NewPacked(w, h int, params Params, rng *rand.Rand) (*Packed, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if err := anim.CheckDimensions(w, h); err != nil {
		return nil, err
	}
	n := params.MaxStars(w, h)
	p := &Packed{
		params: params,
		rng:    ensureRNG(rng),
		xs:     make([]int, 0, n),
		ys:     make([]int, 0, n),
		lv:     make([]Brightness, 0, n),
	}
	p.resize(w, h)
	return p, nil
}

func (p *Packed) Name() string     { return string(BackendPacked) }
func (p *Packed) Describe() string { return Label }
func (p *Packed) Population() int  { return len(p.lv) }

func (p *Packed) Stars() []Star {
	out := make([]Star, len(p.lv))
	for i := range p.lv {
		out[i] = Star{X: p.xs[i], Y: p.ys[i], Level: p.lv[i]}
	}
	return out
}

func (p *Packed) Resize(w, h int) error {
	if err := anim.CheckDimensions(w, h); err != nil {
		return err
	}
	p.resize(w, h)
	return nil
}

func (p *Packed) resize(w, h int) {
	p.w, p.h = w, h
	p.cells = make([]byte, w*h)
	p.clear()
}

func (p *Packed) clear() {
	for i := range p.cells {
		p.cells[i] = canvas.Blank
	}
}

func (p *Packed) set(x, y int, ch byte) {
	if x < 0 || x >= p.w || y < 0 || y >= p.h {
		return
	}
	p.cells[y*p.w+x] = ch
}

func (p *Packed) Advance(dt float64) {
	if dt < 0 {
		dt = 0
	}
	p.clear()

	if len(p.lv) < p.params.MaxStars(p.w, p.h) && p.rng.Float64() > p.params.SpawnChance(dt) {
		s := spawn(p.rng, p.w, p.h)
		p.add(s)
	}

	brighten, dim := p.params.Chances(dt)
	n := 0
	for i := range p.lv {
		level := transition(p.lv[i], p.rng.Float64(), brighten, dim)
		x, y := p.xs[i], p.ys[i]
		if level == Fading {
			p.set(x, y, canvas.Blank)
			continue
		}
		p.xs[n], p.ys[n], p.lv[n] = x, y, level
		p.set(x, y, byte(level.Glyph()))
		n++
	}
	p.xs, p.ys, p.lv = p.xs[:n], p.ys[:n], p.lv[:n]
}

func (p *Packed) Frame() anim.Frame {
	frame := make(anim.Frame, p.h+1)
	for y := 0; y < p.h; y++ {
		frame[y] = string(p.cells[y*p.w : (y+1)*p.w])
	}
	return frame
}

func (p *Packed) add(s Star) {
	p.xs = append(p.xs, s.X)
	p.ys = append(p.ys, s.Y)
	p.lv = append(p.lv, s.Level)
}
