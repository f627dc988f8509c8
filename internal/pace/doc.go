// Package pace provides frame-rate control for the animation loop.
//
// [Timer] sleeps out the remainder of each frame's time budget and keeps a
// bounded history of observed frame durations for rate measurement. Frames
// that blow their budget are recorded as overruns and never compensated
// for: the timer deliberately avoids catch-up bursts after a stall.
package pace
