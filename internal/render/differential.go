package render

import (
	"log"

	"github.com/san-kum/dotscreen/internal/grid"
	"github.com/san-kum/dotscreen/internal/term"
)

// Renderer emits output only for cells that changed since the last rendered
// frame. It keeps an owned snapshot of the previous grid (the baseline), so
// later mutation of the caller's buffers cannot corrupt the comparison.
//
// Two states: no baseline (nil snapshot, nothing rendered yet) and baseline
// held. The first render, and any render whose grid dimensions differ from
// the baseline, falls back to a full draw.
type Renderer struct {
	baseline *grid.Grid
	logf     func(format string, args ...any)
}

// New creates a renderer with no baseline; its first Render call performs a
// full draw regardless of content.
func New() *Renderer {
	return &Renderer{logf: log.Printf}
}

// SetLogger replaces the diagnostic logger. A nil logger silences
// diagnostics.
func (r *Renderer) SetLogger(logf func(format string, args ...any)) {
	r.logf = logf
}

// Invalidate drops the baseline, forcing the next Render to perform a full
// draw. Called after a terminal resize or an explicit refresh request.
func (r *Renderer) Invalidate() {
	r.baseline = nil
}

// HasBaseline reports whether a previous frame snapshot is held.
func (r *Renderer) HasBaseline() bool { return r.baseline != nil }

// Render writes g to the output sink, emitting only changed cells when a
// same-size baseline exists. It returns the number of cells written. The
// grid becomes the new baseline via an independent copy.
func (r *Renderer) Render(g *grid.Grid, out term.Output) (int, error) {
	if r.baseline == nil {
		return r.fullDraw(g, out)
	}
	if !r.baseline.SameSize(g) {
		if r.logf != nil {
			r.logf("render: baseline %dx%d does not match grid %dx%d, forcing full draw",
				r.baseline.Width(), r.baseline.Height(), g.Width(), g.Height())
		}
		return r.fullDraw(g, out)
	}

	changed := 0
	for cy := 0; cy < g.Height(); cy++ {
		for cx := 0; cx < g.Width(); cx++ {
			cur, err := g.Cell(cx, cy)
			if err != nil {
				return changed, err
			}
			prev, err := r.baseline.Cell(cx, cy)
			if err != nil {
				return changed, err
			}
			if cur == prev {
				continue
			}
			if err := r.emit(out, cx, cy, cur); err != nil {
				return changed, err
			}
			changed++
		}
	}

	if err := out.Flush(); err != nil {
		return changed, err
	}
	r.baseline = g.Clone()
	return changed, nil
}

// Diff returns the number of cells that would be written by Render without
// emitting any output or advancing the baseline. With no baseline or a
// size mismatch every cell counts as changed.
func (r *Renderer) Diff(g *grid.Grid) int {
	if r.baseline == nil || !r.baseline.SameSize(g) {
		return g.Width() * g.Height()
	}
	changed := 0
	for cy := 0; cy < g.Height(); cy++ {
		for cx := 0; cx < g.Width(); cx++ {
			cur, _ := g.Cell(cx, cy)
			prev, _ := r.baseline.Cell(cx, cy)
			if cur != prev {
				changed++
			}
		}
	}
	return changed
}

func (r *Renderer) fullDraw(g *grid.Grid, out term.Output) (int, error) {
	changed := 0
	for cy := 0; cy < g.Height(); cy++ {
		for cx := 0; cx < g.Width(); cx++ {
			cell, err := g.Cell(cx, cy)
			if err != nil {
				return changed, err
			}
			if err := r.emit(out, cx, cy, cell); err != nil {
				return changed, err
			}
			changed++
		}
	}
	if err := out.Flush(); err != nil {
		return changed, err
	}
	r.baseline = g.Clone()
	return changed, nil
}

func (r *Renderer) emit(out term.Output, cx, cy int, cell grid.Cell) error {
	if err := out.MoveTo(cy, cx); err != nil {
		return err
	}
	if cell.HasColor {
		if err := out.SetColor(cell.Color); err != nil {
			return err
		}
	}
	if err := out.WriteRune(cell.Rune()); err != nil {
		return err
	}
	if cell.HasColor {
		return out.ResetColor()
	}
	return nil
}
