// Package anim wires the engine together into a synchronous animation
// loop: draw into the back buffer, swap, render the diff, pace the frame.
// The loop spawns no goroutines of its own; cancellation and resize events
// are consumed between frames.
package anim
