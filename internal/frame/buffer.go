package frame

import (
	"github.com/san-kum/dotscreen/internal/grid"
	"github.com/san-kum/dotscreen/internal/term"
)

// Buffer holds two same-size grids: the front grid is what the terminal
// currently shows, the back grid is where the next frame is drawn. Front
// and back are roles, not fixed identities; Swap exchanges them without
// copying cell data, so promotion of a prepared frame is atomic from the
// caller's point of view.
type Buffer struct {
	front *grid.Grid
	back  *grid.Grid
}

// New allocates a buffer pair of the given cell dimensions.
func New(width, height int) (*Buffer, error) {
	front, err := grid.New(width, height)
	if err != nil {
		return nil, err
	}
	back, err := grid.New(width, height)
	if err != nil {
		return nil, err
	}
	return &Buffer{front: front, back: back}, nil
}

// Back returns the grid being prepared for the next frame.
func (b *Buffer) Back() *grid.Grid { return b.back }

// Front returns the grid currently presented.
func (b *Buffer) Front() *grid.Grid { return b.front }

// Width returns the buffer width in cells.
func (b *Buffer) Width() int { return b.front.Width() }

// Height returns the buffer height in cells.
func (b *Buffer) Height() int { return b.front.Height() }

// Swap exchanges the front and back roles in constant time.
func (b *Buffer) Swap() {
	b.front, b.back = b.back, b.front
}

// Present writes the entire front grid to the output sink. This is the
// non-differential fallback path: always correct, cost proportional to the
// total cell count.
func (b *Buffer) Present(out term.Output) error {
	g := b.front
	for cy := 0; cy < g.Height(); cy++ {
		if err := out.MoveTo(cy, 0); err != nil {
			return err
		}
		for cx := 0; cx < g.Width(); cx++ {
			cell, err := g.Cell(cx, cy)
			if err != nil {
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
				if err := out.ResetColor(); err != nil {
					return err
				}
			}
		}
	}
	return out.Flush()
}
