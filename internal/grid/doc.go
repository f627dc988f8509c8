// Package grid implements the dot/cell data model for braille terminal
// rendering.
//
// A grid is a rectangular array of cells; each cell displays a 2x4 matrix
// of binary dots as a single braille code point (U+2800..U+28FF), with an
// optional 24-bit foreground color and an optional override rune:
//
//   - [Grid]: cell array with dot-space and cell-space accessors
//   - [Cell]: bitfield + color + override, plain value semantics
//   - [Color]: RGB triple
//
// Dot space is twice as wide and four times as tall as cell space. All
// mutators validate coordinates and reject out-of-bounds calls with
// [OutOfBoundsError]; nothing is silently clamped.
package grid
