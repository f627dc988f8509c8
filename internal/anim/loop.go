package anim

import (
	"context"
	"time"

	"github.com/san-kum/dotscreen/internal/frame"
	"github.com/san-kum/dotscreen/internal/grid"
	"github.com/san-kum/dotscreen/internal/pace"
	"github.com/san-kum/dotscreen/internal/render"
	"github.com/san-kum/dotscreen/internal/term"
)

// Producer draws one frame of content into the back buffer.
type Producer interface {
	Advance(g *grid.Grid, elapsed time.Duration)
}

// Stats summarizes a finished animation run.
type Stats struct {
	Frames       int
	ChangedCells []int
	FrameTimes   []time.Duration
	ActualRate   float64
	Overruns     int
}

// Loop drives the draw/swap/render/pace cycle. It is a plain synchronous
// loop: each iteration draws into the back buffer, swaps, renders the new
// front buffer differentially, then sleeps out the frame budget.
// Cancellation is checked once per frame, so stop latency is bounded by one
// frame's sleep.
type Loop struct {
	buf      *frame.Buffer
	renderer *render.Renderer
	timer    *pace.Timer
	out      term.Output
	resize   <-chan term.ResizeEvent

	// MaxFrames stops the loop after that many frames when positive.
	MaxFrames int
	// CollectStats records per-frame durations and changed-cell counts.
	CollectStats bool
}

// NewLoop assembles a loop at the given cell dimensions and target rate.
func NewLoop(width, height, fps int, out term.Output) (*Loop, error) {
	buf, err := frame.New(width, height)
	if err != nil {
		return nil, err
	}
	return &Loop{
		buf:      buf,
		renderer: render.New(),
		timer:    pace.NewTimer(fps),
		out:      out,
	}, nil
}

// WatchResize makes the loop consume resize events between frames,
// recreating the buffers and invalidating the renderer baseline.
func (l *Loop) WatchResize(events <-chan term.ResizeEvent) {
	l.resize = events
}

// Renderer exposes the differential renderer, mainly for Invalidate.
func (l *Loop) Renderer() *render.Renderer { return l.renderer }

// Timer exposes the frame timer for rate inspection.
func (l *Loop) Timer() *pace.Timer { return l.timer }

// Buffer exposes the frame buffer pair.
func (l *Loop) Buffer() *frame.Buffer { return l.buf }

// Run animates the producer until the context is cancelled or MaxFrames is
// reached. The elapsed time passed to the producer starts at zero.
func (l *Loop) Run(ctx context.Context, p Producer) (Stats, error) {
	var stats Stats
	start := time.Now()
	l.timer.Reset()

	for {
		select {
		case <-ctx.Done():
			stats.ActualRate = l.timer.ActualRate()
			stats.Overruns = l.timer.Overruns()
			return stats, ctx.Err()
		default:
		}

		if l.resize != nil {
			select {
			case ev := <-l.resize:
				if err := l.applyResize(ev); err != nil {
					return stats, err
				}
			default:
			}
		}

		p.Advance(l.buf.Back(), time.Since(start))
		l.buf.Swap()

		frameStart := time.Now()
		changed, err := l.renderer.Render(l.buf.Front(), l.out)
		if err != nil {
			return stats, err
		}

		stats.Frames++
		if l.CollectStats {
			stats.ChangedCells = append(stats.ChangedCells, changed)
			stats.FrameTimes = append(stats.FrameTimes, time.Since(frameStart))
		}

		if l.MaxFrames > 0 && stats.Frames >= l.MaxFrames {
			stats.ActualRate = l.timer.ActualRate()
			stats.Overruns = l.timer.Overruns()
			return stats, nil
		}

		l.timer.WaitForNextFrame()
	}
}

// applyResize rebuilds the buffer pair at the new dimensions and forces a
// full draw on the next render. Old content is discarded; producers redraw
// every frame anyway.
func (l *Loop) applyResize(ev term.ResizeEvent) error {
	buf, err := frame.New(ev.Width, ev.Height)
	if err != nil {
		return err
	}
	l.buf = buf
	l.renderer.Invalidate()
	l.timer.Reset()
	return nil
}
