package frame

import (
	"fmt"
	"strings"
	"testing"

	"github.com/san-kum/dotscreen/internal/grid"
)

// recordingOutput captures sink operations as readable op strings.
type recordingOutput struct {
	ops     []string
	flushes int
}

func (r *recordingOutput) MoveTo(row, col int) error {
	r.ops = append(r.ops, fmt.Sprintf("move %d,%d", row, col))
	return nil
}

func (r *recordingOutput) SetColor(c grid.Color) error {
	r.ops = append(r.ops, fmt.Sprintf("color %d,%d,%d", c.R, c.G, c.B))
	return nil
}

func (r *recordingOutput) ResetColor() error {
	r.ops = append(r.ops, "reset")
	return nil
}

func (r *recordingOutput) WriteRune(ch rune) error {
	r.ops = append(r.ops, fmt.Sprintf("rune %U", ch))
	return nil
}

func (r *recordingOutput) WriteString(s string) error {
	r.ops = append(r.ops, "str "+s)
	return nil
}

func (r *recordingOutput) Flush() error {
	r.flushes++
	return nil
}

func TestFrontBlankBeforeSwap(t *testing.T) {
	buf, err := New(80, 24)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := buf.Back().SetDot(10, 10, true); err != nil {
		t.Fatal(err)
	}
	if err := buf.Back().SetOverride(5, 5, 'X'); err != nil {
		t.Fatal(err)
	}

	// Nothing drawn into the back buffer may leak into the front.
	for cy := 0; cy < buf.Height(); cy++ {
		for cx := 0; cx < buf.Width(); cx++ {
			r, _ := buf.Front().CellRune(cx, cy)
			if r != 0x2800 {
				t.Fatalf("front cell (%d,%d) not blank before swap: %U", cx, cy, r)
			}
		}
	}

	buf.Swap()

	r, _ := buf.Front().CellRune(5, 5)
	if r != 'X' {
		t.Errorf("front cell (5,5) after swap: got %U, want 'X'", r)
	}
	bits, _ := buf.Front().CellBits(5, 2)
	if bits == 0 {
		t.Error("front missing dot content after swap")
	}
}

func TestSwapExchangesRoles(t *testing.T) {
	buf, _ := New(4, 4)

	buf.Back().SetOverride(0, 0, 'b')
	buf.Swap()
	// Old front is now the back buffer, still blank.
	if r, _ := buf.Back().CellRune(0, 0); r != 0x2800 {
		t.Errorf("new back should hold old front content, got %U", r)
	}
	if r, _ := buf.Front().CellRune(0, 0); r != 'b' {
		t.Errorf("new front should hold drawn content, got %U", r)
	}

	buf.Back().SetOverride(0, 0, 'c')
	buf.Swap()
	if r, _ := buf.Front().CellRune(0, 0); r != 'c' {
		t.Errorf("second swap front: got %U, want 'c'", r)
	}
	if r, _ := buf.Back().CellRune(0, 0); r != 'b' {
		t.Errorf("second swap back: got %U, want 'b'", r)
	}
}

func TestSwapCopiesNoCellData(t *testing.T) {
	buf, _ := New(8, 8)
	front, back := buf.Front(), buf.Back()
	buf.Swap()
	if buf.Front() != back || buf.Back() != front {
		t.Error("swap must exchange grid pointers, not copy contents")
	}
}

func TestPresentWritesEveryCell(t *testing.T) {
	buf, _ := New(3, 2)
	buf.Back().SetDot(0, 0, true)
	buf.Back().SetCellColor(1, 0, grid.Color{R: 255})
	buf.Swap()

	rec := &recordingOutput{}
	if err := buf.Present(rec); err != nil {
		t.Fatalf("present failed: %v", err)
	}

	runes := 0
	for _, op := range rec.ops {
		if strings.HasPrefix(op, "rune ") {
			runes++
		}
	}
	if runes != 6 {
		t.Errorf("expected 6 rune writes, got %d", runes)
	}
	if rec.flushes != 1 {
		t.Errorf("expected 1 flush, got %d", rec.flushes)
	}

	joined := strings.Join(rec.ops, ";")
	if !strings.Contains(joined, "color 255,0,0") {
		t.Error("expected colored cell to emit a color op")
	}
	if !strings.Contains(joined, "reset") {
		t.Error("expected color reset after colored cell")
	}
}

func TestNewInvalid(t *testing.T) {
	if _, err := New(0, 10); err == nil {
		t.Error("expected error for zero width")
	}
}
