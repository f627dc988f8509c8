// Package render implements differential terminal rendering.
//
// Terminal I/O dominates per-frame cost, and most animated scenes keep a
// large static background. [Renderer] therefore compares each frame against
// a snapshot of the previously rendered grid and emits cursor moves, color,
// and characters only for cells that actually changed: output volume is
// proportional to the number of changed cells, not the grid size.
//
// The first frame, a forced [Renderer.Invalidate], or a grid whose size
// differs from the snapshot all fall back to a full draw.
package render
