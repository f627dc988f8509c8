package scheme

import (
	"testing"

	"github.com/san-kum/dotscreen/internal/grid"
)

func TestGradientEndpoints(t *testing.T) {
	if c := Mono.At(0); c != (grid.Color{R: 0, G: 0, B: 0}) {
		t.Errorf("mono at 0: got %v, want black", c)
	}
	if c := Mono.At(1); c != (grid.Color{R: 255, G: 255, B: 255}) {
		t.Errorf("mono at 1: got %v, want white", c)
	}
}

func TestGradientClamps(t *testing.T) {
	lo := Fire.At(-0.5)
	hi := Fire.At(1.5)
	if lo != Fire.At(0) {
		t.Errorf("below-range sample should clamp to first keypoint, got %v", lo)
	}
	if hi != Fire.At(1) {
		t.Errorf("above-range sample should clamp to last keypoint, got %v", hi)
	}
}

func TestGradientMidpointBetweenEndpoints(t *testing.T) {
	mid := Mono.At(0.5)
	// HCL blending of black to white stays on the gray axis.
	if mid.R < 80 || mid.R > 200 {
		t.Errorf("mono midpoint out of gray range: %v", mid)
	}
	if mid.R != mid.G || mid.G != mid.B {
		// Allow one step of rounding between channels.
		if diff(mid.R, mid.G) > 2 || diff(mid.G, mid.B) > 2 {
			t.Errorf("mono midpoint not gray: %v", mid)
		}
	}
}

func diff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}

func TestByName(t *testing.T) {
	for _, name := range Names() {
		g := ByName(name)
		if len(g) == 0 {
			t.Errorf("scheme %q is empty", name)
		}
	}
	if ByName("nonexistent") == nil {
		t.Error("unknown scheme should fall back, not return nil")
	}
}

func TestEmptyGradient(t *testing.T) {
	var g Gradient
	if c := g.At(0.5); c != (grid.Color{R: 255, G: 255, B: 255}) {
		t.Errorf("empty gradient should sample white, got %v", c)
	}
}
