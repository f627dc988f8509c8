package pace

import "time"

const (
	// MinFPS and MaxFPS bound the supported target frame rates. Requests
	// outside the range are clamped, never rejected.
	MinFPS = 1
	MaxFPS = 240

	historyCapacity = 120
)

// Timer paces a render loop toward a target frame rate and measures the
// rate actually achieved. It is infallible by construction and assumes a
// single owning loop.
type Timer struct {
	fps     int
	budget  time.Duration
	last    time.Time
	history []time.Duration
	// ring write position; history grows until historyCapacity then wraps.
	pos      int
	lastSeen time.Duration
	overruns int
}

// NewTimer creates a timer for the given target frame rate, clamped into
// the supported range.
func NewTimer(targetFPS int) *Timer {
	fps := targetFPS
	if fps < MinFPS {
		fps = MinFPS
	}
	if fps > MaxFPS {
		fps = MaxFPS
	}
	return &Timer{
		fps:     fps,
		budget:  time.Second / time.Duration(fps),
		last:    time.Now(),
		history: make([]time.Duration, 0, historyCapacity),
	}
}

// TargetFPS returns the clamped target frame rate.
func (t *Timer) TargetFPS() int { return t.fps }

// FrameBudget returns the per-frame time budget derived from the target rate.
func (t *Timer) FrameBudget() time.Duration { return t.budget }

// WaitForNextFrame sleeps until the current frame's budget is spent. When
// the frame work already exceeded the budget no sleep happens and the
// overrun is recorded; the next frame is measured from now rather than from
// the missed boundary, so a stall never turns into a burst of catch-up
// frames. Every call appends the observed frame duration to the rolling
// history.
func (t *Timer) WaitForNextFrame() {
	elapsed := time.Since(t.last)
	if remaining := t.budget - elapsed; remaining > 0 {
		time.Sleep(remaining)
	} else {
		t.overruns++
	}
	observed := time.Since(t.last)
	t.record(observed)
	t.last = time.Now()
}

func (t *Timer) record(d time.Duration) {
	t.lastSeen = d
	if len(t.history) < historyCapacity {
		t.history = append(t.history, d)
		return
	}
	t.history[t.pos] = d
	t.pos = (t.pos + 1) % historyCapacity
}

// ActualRate returns the average frame rate over the rolling history, or
// zero when no frames have been recorded.
func (t *Timer) ActualRate() float64 {
	if len(t.history) == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range t.history {
		total += d
	}
	if total <= 0 {
		return 0
	}
	return float64(len(t.history)) / total.Seconds()
}

// LastFrameDuration returns the most recently observed frame duration, or
// zero before the first frame.
func (t *Timer) LastFrameDuration() time.Duration { return t.lastSeen }

// Overruns returns how many frames exceeded their budget.
func (t *Timer) Overruns() int { return t.overruns }

// Reset clears the rolling history and restarts measurement from now. Used
// after an intentional pause or a resize so stale durations do not skew the
// measured rate.
func (t *Timer) Reset() {
	t.history = t.history[:0]
	t.pos = 0
	t.lastSeen = 0
	t.overruns = 0
	t.last = time.Now()
}
