package term

import (
	"os"

	xterm "golang.org/x/term"
)

// Size returns the terminal dimensions in cells, reserving one row for the
// shell prompt. Falls back to 80x24 when stdout is not a terminal.
func Size() (width, height int) {
	w, h, err := xterm.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24
	}
	if h > 1 {
		h--
	}
	return w, h
}

// IsTerminal reports whether stdout is attached to a terminal.
func IsTerminal() bool {
	return xterm.IsTerminal(int(os.Stdout.Fd()))
}
