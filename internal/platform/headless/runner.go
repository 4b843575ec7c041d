// Package headless drives a game without a terminal: a bounded loop that
// calls Tick until the game halts, a tick budget runs out or the context
// is cancelled.
package headless

import (
	"context"
	"time"

	"github.com/vovakirdan/skydodge/internal/core"
)

// Ticker is a game advanced one frame at a time.
type Ticker interface {
	Tick(dst core.Surface) core.TickResult
}

// Options bounds a headless run.
type Options struct {
	MaxTicks int           // 0 means no limit
	Interval time.Duration // Delay between ticks; 0 runs as fast as possible
	// BeforeTick is called before every tick with the number of ticks run so far.
	BeforeTick func(tick int)
}

// Result summarises a finished run.
type Result struct {
	Ticks  int
	Last   core.TickResult
	Halted bool // The game stopped asking for ticks
}

// Run ticks t onto dst until it halts, MaxTicks is reached or ctx is done.
func Run(ctx context.Context, t Ticker, dst core.Surface, opts Options) (Result, error) {
	var res Result

	var tick <-chan time.Time
	if opts.Interval > 0 {
		ticker := time.NewTicker(opts.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for opts.MaxTicks <= 0 || res.Ticks < opts.MaxTicks {
		if tick != nil {
			select {
			case <-ctx.Done():
				return res, ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return res, err
		}

		if opts.BeforeTick != nil {
			opts.BeforeTick(res.Ticks)
		}
		res.Last = t.Tick(dst)
		res.Ticks++
		if !res.Last.Continue {
			res.Halted = true
			break
		}
	}
	return res, nil
}

// NullSurface discards all drawing.
type NullSurface struct{}

func (NullSurface) FillRect(x, y, w, h float64, c core.Color)       {}
func (NullSurface) FillEllipse(cx, cy, rx, ry float64, c core.Color) {}
func (NullSurface) FillArc(cx, cy, radius float64, c core.Color)     {}
func (NullSurface) DrawText(x, y float64, text string, c core.Color) {}

var _ core.Surface = NullSurface{}
