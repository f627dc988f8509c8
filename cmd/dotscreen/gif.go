package main

import (
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	"time"

	"github.com/san-kum/dotscreen/internal/grid"
	"github.com/san-kum/dotscreen/internal/imaging"
)

// gifProducer replays a decoded GIF. Frames are converted to grids up
// front so playback never decodes on the frame budget; the frame shown at
// any instant is chosen from the GIF's own delay table.
type gifProducer struct {
	frames []*grid.Grid
	starts []time.Duration // cumulative start time of each frame
	total  time.Duration
}

func newGIFProducer(g *gif.GIF, cellW, cellH int, opts imaging.Options) (*gifProducer, error) {
	if len(g.Image) == 0 {
		return nil, fmt.Errorf("gif has no frames")
	}

	p := &gifProducer{
		frames: make([]*grid.Grid, 0, len(g.Image)),
		starts: make([]time.Duration, 0, len(g.Image)),
	}

	// Optimized GIFs encode most frames as sub-rectangles of the logical
	// screen, so each frame is composited onto a persistent canvas at its
	// own offset before conversion. Converting a partial frame directly
	// would stretch the sub-rectangle over the whole grid.
	bounds := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if bounds.Empty() {
		bounds = g.Image[0].Bounds()
	}
	canvas := image.NewRGBA(bounds)

	dotW, dotH := imaging.FitRect(canvas, cellW*grid.DotsPerCellX, cellH*grid.DotsPerCellY)
	fitW := (dotW + grid.DotsPerCellX - 1) / grid.DotsPerCellX
	fitH := (dotH + grid.DotsPerCellY - 1) / grid.DotsPerCellY

	for i, src := range g.Image {
		var restore *image.RGBA
		if i < len(g.Disposal) && g.Disposal[i] == gif.DisposalPrevious {
			restore = image.NewRGBA(bounds)
			draw.Draw(restore, bounds, canvas, bounds.Min, draw.Src)
		}

		draw.Draw(canvas, src.Bounds(), src, src.Bounds().Min, draw.Over)

		fg, err := imaging.ToGrid(canvas, fitW, fitH, opts)
		if err != nil {
			return nil, err
		}
		p.frames = append(p.frames, fg)
		p.starts = append(p.starts, p.total)

		// GIF delays are hundredths of a second; zero means "as fast as
		// the player likes", commonly rendered as 100ms.
		delay := 100 * time.Millisecond
		if i < len(g.Delay) && g.Delay[i] > 0 {
			delay = time.Duration(g.Delay[i]) * 10 * time.Millisecond
		}
		p.total += delay

		// Disposal applies after the frame is shown.
		if i < len(g.Disposal) {
			switch g.Disposal[i] {
			case gif.DisposalBackground:
				draw.Draw(canvas, src.Bounds(), image.Transparent, image.Point{}, draw.Src)
			case gif.DisposalPrevious:
				canvas = restore
			}
		}
	}
	return p, nil
}

func (p *gifProducer) Advance(g *grid.Grid, elapsed time.Duration) {
	at := elapsed % p.total
	idx := 0
	for i := len(p.starts) - 1; i >= 0; i-- {
		if p.starts[i] <= at {
			idx = i
			break
		}
	}

	g.Clear()
	src := p.frames[idx]
	if g.SameSize(src) {
		g.CopyFrom(src)
		return
	}
	// Grid was resized mid-playback; blit what fits.
	for cy := 0; cy < src.Height() && cy < g.Height(); cy++ {
		for cx := 0; cx < src.Width() && cx < g.Width(); cx++ {
			cell, err := src.Cell(cx, cy)
			if err != nil {
				continue
			}
			if cell.Override != 0 {
				g.SetOverride(cx, cy, cell.Override)
			}
			if cell.HasColor {
				g.SetCellColor(cx, cy, cell.Color)
			}
			g.SetCellBits(cx, cy, cell.Bits)
		}
	}
}
