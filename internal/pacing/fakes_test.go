package pacing_test

import (
	"context"
	"fmt"
	"time"

	"github.com/san-kum/animfetch/internal/anim"
	"github.com/san-kum/animfetch/internal/fetch"
	"github.com/san-kum/animfetch/internal/snow"
)

// fakeClock advances only when the loop sleeps.
type fakeClock struct {
	now    time.Time
	sleeps []time.Duration
	// oversleep is added to every sleep, like a busy scheduler.
	oversleep time.Duration
	// cancel, when set, fires after limit sleeps.
	cancel context.CancelFunc
	limit  int
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Unix(1_700_000_000, 0)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d + c.oversleep)
	if c.cancel != nil && len(c.sleeps) >= c.limit {
		c.cancel()
	}
	return ctx.Err()
}

// scriptedProvider returns a one-line frame until its end call, then nil.
type scriptedProvider struct {
	endOn    int
	frames   int
	advances []float64
}

func (p *scriptedProvider) Advance(dt float64) { p.advances = append(p.advances, dt) }

func (p *scriptedProvider) Frame() anim.Frame {
	p.frames++
	if p.endOn > 0 && p.frames >= p.endOn {
		return nil
	}
	return anim.Frame{fmt.Sprintf("f%d", p.frames)}
}

func (p *scriptedProvider) Describe() string { return "scripted" }

type recordingSink struct {
	frames [][]string
	err    error
}

func (s *recordingSink) Write(lines []string) error {
	if s.err != nil {
		return s.err
	}
	s.frames = append(s.frames, append([]string(nil), lines...))
	return nil
}

// countingSource returns "v1", "v2", ... on successive calls.
type countingSource struct {
	calls int
}

func (s *countingSource) Lines(context.Context) fetch.Block {
	s.calls++
	return fetch.Block{fmt.Sprintf("v%d", s.calls)}
}

// steppedSnow ends after limit frames and counts frames whose automaton step
// count did not move by exactly one.
type steppedSnow struct {
	*snow.Snow
	limit  int
	frames int
	last   int
	uneven int
}

func (s *steppedSnow) Frame() anim.Frame {
	if s.frames == s.limit {
		return nil
	}
	f := s.Snow.Frame()
	s.frames++
	if s.Steps()-s.last != 1 {
		s.uneven++
	}
	s.last = s.Steps()
	return f
}
