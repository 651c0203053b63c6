// Package pacing drives a provider at a fixed frame rate while refreshing
// the text panel on its own timer. Everything runs on the caller's
// goroutine.
package pacing

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/san-kum/animfetch/internal/anim"
	"github.com/san-kum/animfetch/internal/compose"
	"github.com/san-kum/animfetch/internal/display"
	"github.com/san-kum/animfetch/internal/fetch"
	"github.com/san-kum/animfetch/internal/logging"
)

const (
	DefaultRefresh = 5 * time.Second
	MaxFPS         = 1000.0
)

type Config struct {
	FPS     float64
	Refresh time.Duration
	Clock   Clock
	Logger  *slog.Logger
}

// Stats summarises a finished or running loop.
type Stats struct {
	Iterations int
	Renders    int
	Refreshes  int
	Elapsed    float64
}

type Loop struct {
	provider anim.Provider
	source   fetch.Source
	sink     display.Sink
	clock    Clock
	logger   *slog.Logger
	period   float64
	refresh  float64
	text     fetch.Block
	stats    Stats
}

func New(p anim.Provider, src fetch.Source, sink display.Sink, cfg Config) (*Loop, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: provider is required", anim.ErrInvalidConfig)
	}
	if sink == nil {
		return nil, fmt.Errorf("%w: sink is required", anim.ErrInvalidConfig)
	}
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	if src == nil {
		src = fetch.Static(nil)
	}
	clock := cfg.Clock
	if clock == nil {
		clock = RealClock()
	}
	refresh := cfg.Refresh
	if refresh == 0 {
		refresh = DefaultRefresh
	}
	return &Loop{
		provider: p,
		source:   src,
		sink:     sink,
		clock:    clock,
		logger:   logging.OrNop(cfg.Logger),
		period:   1 / cfg.FPS,
		refresh:  refresh.Seconds(),
	}, nil
}

func validateConfig(cfg Config) error {
	if cfg.FPS <= 0 || cfg.FPS > MaxFPS {
		return fmt.Errorf("%w: fps must be in (0, %g], got %f", anim.ErrInvalidConfig, MaxFPS, cfg.FPS)
	}
	if cfg.Refresh < 0 {
		return fmt.Errorf("%w: refresh interval must be positive, got %v", anim.ErrInvalidConfig, cfg.Refresh)
	}
	return nil
}

// Text returns the cached text block.
func (l *Loop) Text() fetch.Block { return l.text }

func (l *Loop) Stats() Stats { return l.stats }

// Run loops until the provider returns an empty frame (nil error), the sink
// fails, or ctx is done (ctx.Err()).
func (l *Loop) Run(ctx context.Context) error {
	l.text = l.source.Lines(ctx)
	l.logger.Info("animation started", "provider", l.provider.Describe(), "fps", 1/l.period, "info_lines", len(l.text))

	renderWait := l.period
	refreshWait := l.refresh
	last := l.clock.Now()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		now := l.clock.Now()
		dt := now.Sub(last).Seconds()
		last = now
		l.stats.Iterations++
		l.stats.Elapsed += dt

		l.provider.Advance(dt)

		refreshWait -= dt
		if refreshWait <= 0 {
			refreshWait = l.refresh
			l.text = l.source.Lines(ctx)
			l.stats.Refreshes++
			l.logger.Debug("system info refreshed", "lines", len(l.text))
		}

		renderWait -= dt
		if renderWait <= 0 {
			renderWait = l.period
			done, err := l.render()
			if err != nil {
				return err
			}
			if done {
				l.logger.Info("animation finished", "renders", l.stats.Renders)
				return nil
			}
		}

		if err := l.clock.Sleep(ctx, toDuration(min(renderWait, refreshWait))); err != nil {
			return err
		}
	}
}

// toDuration rounds up so a sleep always covers the remaining wait.
func toDuration(seconds float64) time.Duration {
	return time.Duration(math.Ceil(seconds * float64(time.Second)))
}

func (l *Loop) render() (bool, error) {
	frame := l.provider.Frame()
	if frame.Done() {
		return true, nil
	}
	lines, err := compose.Compose(frame, l.text)
	if err != nil {
		return false, err
	}
	if err := l.sink.Write(lines); err != nil {
		return false, fmt.Errorf("pacing: write frame: %w", err)
	}
	l.stats.Renders++
	l.logger.Log(context.Background(), logging.LevelTrace, "frame written", "lines", len(lines))
	return false, nil
}
