package metrics

import (
	"fmt"
	"time"

	"github.com/san-kum/animfetch/internal/anim"
)

// Result describes a headless run.
type Result struct {
	Steps     int
	Simulated float64
	Wall      time.Duration
	Values    map[string]float64
}

// StepsPerSecond is the advance+render throughput measured in wall time.
func (r Result) StepsPerSecond() float64 {
	if r.Wall <= 0 {
		return 0
	}
	return float64(r.Steps) / r.Wall.Seconds()
}

// Runner advances a provider at a fixed dt with no sleeping, rendering every
// step so the measured cost matches the interactive loop.
type Runner struct {
	metrics []Metric
}

func NewRunner(ms ...Metric) *Runner {
	return &Runner{metrics: ms}
}

func (r *Runner) AddMetric(m Metric) { r.metrics = append(r.metrics, m) }

func (r *Runner) Run(p anim.Provider, fps, seconds float64) (Result, error) {
	if fps <= 0 || seconds <= 0 {
		return Result{}, fmt.Errorf("%w: bench needs positive fps and duration", anim.ErrInvalidConfig)
	}
	for _, m := range r.metrics {
		m.Reset()
	}

	dt := 1 / fps
	steps := int(seconds * fps)
	start := time.Now()
	t := 0.0
	n := 0
	for ; n < steps; n++ {
		p.Advance(dt)
		t += dt
		if p.Frame().Done() {
			break
		}
		for _, m := range r.metrics {
			m.Observe(p, t)
		}
	}

	res := Result{
		Steps:     n,
		Simulated: t,
		Wall:      time.Since(start),
		Values:    make(map[string]float64, len(r.metrics)),
	}
	for _, m := range r.metrics {
		res.Values[m.Name()] = m.Value()
	}
	return res, nil
}
