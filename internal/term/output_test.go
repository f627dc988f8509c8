package term

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/san-kum/dotscreen/internal/grid"
)

func TestANSISequences(t *testing.T) {
	var buf bytes.Buffer
	out := NewANSI(&buf)

	tests := []struct {
		name string
		op   func() error
		want string
	}{
		{"move to origin", func() error { return out.MoveTo(0, 0) }, "\033[1;1H"},
		{"move to row 5 col 10", func() error { return out.MoveTo(5, 10) }, "\033[6;11H"},
		{"set color", func() error { return out.SetColor(grid.Color{R: 1, G: 2, B: 3}) }, "\033[38;2;1;2;3m"},
		{"reset color", out.ResetColor, "\033[0m"},
		{"write rune", func() error { return out.WriteRune('⣿') }, "⣿"},
		{"write string", func() error { return out.WriteString("hi") }, "hi"},
		{"hide cursor", out.HideCursor, "\033[?25l"},
		{"show cursor", out.ShowCursor, "\033[?25h"},
		{"clear screen", out.ClearScreen, "\033[2J\033[H"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			if err := tt.op(); err != nil {
				t.Fatalf("op failed: %v", err)
			}
			if err := out.Flush(); err != nil {
				t.Fatalf("flush failed: %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) { return 0, errors.New("broken pipe") }

func TestFlushPropagatesOutputError(t *testing.T) {
	out := NewANSI(failWriter{})
	if err := out.WriteString("data"); err != nil {
		t.Fatalf("buffered write should not fail: %v", err)
	}

	err := out.Flush()
	if err == nil {
		t.Fatal("expected error from flush")
	}
	var oerr *OutputError
	if !errors.As(err, &oerr) {
		t.Fatalf("expected OutputError, got %T", err)
	}
	if !strings.Contains(oerr.Error(), "broken pipe") {
		t.Errorf("error should carry the cause: %v", oerr)
	}
}

func TestSizeFallback(t *testing.T) {
	// In test environments stdout is rarely a TTY; Size must still return
	// usable dimensions.
	w, h := Size()
	if w <= 0 || h <= 0 {
		t.Errorf("expected positive fallback size, got %dx%d", w, h)
	}
}
