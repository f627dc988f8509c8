// Package term abstracts the terminal the engine renders to.
//
// [Output] is the capability the renderer writes through: cursor
// positioning, 24-bit foreground color, literal text, and flushing. [ANSI]
// is the escape-sequence implementation used against a real terminal; tests
// substitute in-memory recorders. The package also provides size detection
// and a SIGWINCH-backed [ResizeWatcher] on unix platforms.
package term
