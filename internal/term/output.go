package term

import (
	"bufio"
	"fmt"
	"io"

	"github.com/san-kum/dotscreen/internal/grid"
)

// Output is the sink the renderer writes through. Implementations decide
// the concrete control-sequence syntax; the engine only requests the
// operations it needs.
type Output interface {
	// MoveTo positions the cursor at an absolute 0-based row and column.
	MoveTo(row, col int) error
	// SetColor sets the foreground color for subsequent writes.
	SetColor(c grid.Color) error
	// ResetColor restores the terminal default foreground.
	ResetColor() error
	WriteRune(r rune) error
	WriteString(s string) error
	Flush() error
}

// ANSI control sequences used by the engine.
const (
	seqClearScreen    = "\033[2J\033[H"
	seqHideCursor     = "\033[?25l"
	seqShowCursor     = "\033[?25h"
	seqEnterAltScreen = "\033[?1049h"
	seqLeaveAltScreen = "\033[?1049l"
	seqResetColor     = "\033[0m"
)

// ANSI writes escape-sequence output to an io.Writer through an internal
// buffer. Cursor addressing is CSI row;colH and colors use 24-bit SGR.
type ANSI struct {
	w *bufio.Writer
}

// NewANSI wraps a writer, typically os.Stdout.
func NewANSI(w io.Writer) *ANSI {
	return &ANSI{w: bufio.NewWriterSize(w, 32*1024)}
}

func (a *ANSI) MoveTo(row, col int) error {
	// ANSI cursor addressing is 1-based.
	_, err := fmt.Fprintf(a.w, "\033[%d;%dH", row+1, col+1)
	return wrap("move cursor", err)
}

func (a *ANSI) SetColor(c grid.Color) error {
	_, err := fmt.Fprintf(a.w, "\033[38;2;%d;%d;%dm", c.R, c.G, c.B)
	return wrap("set color", err)
}

func (a *ANSI) ResetColor() error {
	_, err := a.w.WriteString(seqResetColor)
	return wrap("reset color", err)
}

func (a *ANSI) WriteRune(r rune) error {
	_, err := a.w.WriteRune(r)
	return wrap("write rune", err)
}

func (a *ANSI) WriteString(s string) error {
	_, err := a.w.WriteString(s)
	return wrap("write string", err)
}

func (a *ANSI) Flush() error {
	return wrap("flush", a.w.Flush())
}

// ClearScreen erases the display and homes the cursor.
func (a *ANSI) ClearScreen() error {
	_, err := a.w.WriteString(seqClearScreen)
	return wrap("clear screen", err)
}

// HideCursor makes the cursor invisible for the duration of an animation.
func (a *ANSI) HideCursor() error {
	_, err := a.w.WriteString(seqHideCursor)
	return wrap("hide cursor", err)
}

// ShowCursor restores cursor visibility.
func (a *ANSI) ShowCursor() error {
	_, err := a.w.WriteString(seqShowCursor)
	return wrap("show cursor", err)
}

// EnterAltScreen switches to the alternate screen buffer.
func (a *ANSI) EnterAltScreen() error {
	_, err := a.w.WriteString(seqEnterAltScreen)
	return wrap("enter alt screen", err)
}

// LeaveAltScreen switches back to the main screen buffer.
func (a *ANSI) LeaveAltScreen() error {
	_, err := a.w.WriteString(seqLeaveAltScreen)
	return wrap("leave alt screen", err)
}
