// Package metrics samples provider state over a headless run.
package metrics

import (
	"github.com/san-kum/animfetch/internal/anim"
)

type Metric interface {
	Name() string
	Observe(p anim.Provider, t float64)
	Value() float64
	Reset()
}

func population(p anim.Provider) (int, bool) {
	pp, ok := p.(anim.Populated)
	if !ok {
		return 0, false
	}
	return pp.Population(), true
}

// Population is the mean number of live elements per sample.
type Population struct {
	samples int
	total   float64
}

func NewPopulation() *Population { return &Population{} }

func (m *Population) Name() string { return "mean_population" }

func (m *Population) Observe(p anim.Provider, t float64) {
	n, ok := population(p)
	if !ok {
		return
	}
	m.total += float64(n)
	m.samples++
}

func (m *Population) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

func (m *Population) Reset() {
	m.samples = 0
	m.total = 0
}

type Peak struct {
	max int
}

func NewPeak() *Peak { return &Peak{} }

func (m *Peak) Name() string { return "peak_population" }

func (m *Peak) Observe(p anim.Provider, t float64) {
	if n, ok := population(p); ok && n > m.max {
		m.max = n
	}
}

func (m *Peak) Value() float64 { return float64(m.max) }

func (m *Peak) Reset() { m.max = 0 }

// Series keeps every population sample for plotting. Value is the last one.
type Series struct {
	values []float64
}

func NewSeries() *Series { return &Series{} }

func (m *Series) Name() string { return "population" }

func (m *Series) Observe(p anim.Provider, t float64) {
	if n, ok := population(p); ok {
		m.values = append(m.values, float64(n))
	}
}

func (m *Series) Value() float64 {
	if len(m.values) == 0 {
		return 0
	}
	return m.values[len(m.values)-1]
}

func (m *Series) Values() []float64 { return m.values }

func (m *Series) Reset() { m.values = m.values[:0] }
