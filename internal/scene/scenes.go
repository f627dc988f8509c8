package scene

import (
	"math"
	"time"

	"github.com/fogleman/ease"

	"github.com/san-kum/dotscreen/internal/draw"
	"github.com/san-kum/dotscreen/internal/grid"
	"github.com/san-kum/dotscreen/internal/scheme"
)

// Wave scrolls a sine wave across the grid, colored by height.
type Wave struct {
	palette scheme.Gradient
}

func NewWave(palette scheme.Gradient) *Wave {
	return &Wave{palette: palette}
}

func (s *Wave) Name() string { return "wave" }

func (s *Wave) Advance(g *grid.Grid, elapsed time.Duration) {
	g.Clear()
	w, h := g.DotWidth(), g.DotHeight()
	t := elapsed.Seconds()

	mid := float64(h) / 2
	amp := float64(h) * 0.4
	for x := 0; x < w; x++ {
		phase := float64(x)*0.08 - t*3
		y := mid + amp*math.Sin(phase)
		yi := int(y)
		g.SetDot(x, yi, true)
		if yi+1 < h {
			g.SetDot(x, yi+1, true)
		}

		// Normalized height drives the color.
		frac := (y - (mid - amp)) / (2 * amp)
		g.SetCellColor(x/grid.DotsPerCellX, yi/grid.DotsPerCellY, s.palette.At(frac))
	}
}

// Balls bounces circles off the grid edges with eased vertical motion.
type Balls struct {
	palette scheme.Gradient
	count   int
}

func NewBalls(palette scheme.Gradient, count int) *Balls {
	if count < 1 {
		count = 1
	}
	return &Balls{palette: palette, count: count}
}

func (s *Balls) Name() string { return "balls" }

func (s *Balls) Advance(g *grid.Grid, elapsed time.Duration) {
	g.Clear()
	w, h := g.DotWidth(), g.DotHeight()
	t := elapsed.Seconds()

	for i := 0; i < s.count; i++ {
		offset := float64(i) * 0.7
		period := 1.6 + 0.3*float64(i)

		// Horizontal ping-pong across the width.
		xPhase := math.Mod((t+offset)/period, 2)
		if xPhase > 1 {
			xPhase = 2 - xPhase
		}
		x := int(xPhase * float64(w-1))

		// Vertical bounce with an ease-out curve for a gravity feel.
		yPhase := math.Mod((t+offset)/(period*0.8), 2)
		if yPhase > 1 {
			yPhase = 2 - yPhase
		}
		y := int(ease.OutBounce(yPhase) * float64(h-1))

		radius := 3 + i
		draw.Circle(g, x, y, radius)
		color := s.palette.At(float64(i) / float64(s.count))
		paintCellsAround(g, x, y, radius, color)
	}
}

// Lissajous traces a slowly precessing lissajous figure.
type Lissajous struct {
	palette scheme.Gradient
}

func NewLissajous(palette scheme.Gradient) *Lissajous {
	return &Lissajous{palette: palette}
}

func (s *Lissajous) Name() string { return "lissajous" }

func (s *Lissajous) Advance(g *grid.Grid, elapsed time.Duration) {
	g.Clear()
	w, h := g.DotWidth(), g.DotHeight()
	t := elapsed.Seconds()

	cx, cy := float64(w)/2, float64(h)/2
	ax, ay := float64(w)*0.45, float64(h)*0.45

	const steps = 600
	for i := 0; i < steps; i++ {
		u := float64(i) / steps * 2 * math.Pi
		x := cx + ax*math.Sin(3*u+t*0.5)
		y := cy + ay*math.Sin(2*u)
		xi, yi := int(x), int(y)
		g.SetDot(xi, yi, true)
		g.SetCellColor(xi/grid.DotsPerCellX, yi/grid.DotsPerCellY, s.palette.At(float64(i)/steps))
	}
}

// Spinner rotates a set of spokes around the grid center.
type Spinner struct {
	palette scheme.Gradient
}

func NewSpinner(palette scheme.Gradient) *Spinner {
	return &Spinner{palette: palette}
}

func (s *Spinner) Name() string { return "spinner" }

func (s *Spinner) Advance(g *grid.Grid, elapsed time.Duration) {
	g.Clear()
	w, h := g.DotWidth(), g.DotHeight()
	t := elapsed.Seconds()

	cx, cy := w/2, h/2
	r := min(w, h)/2 - 1
	const spokes = 6
	for i := 0; i < spokes; i++ {
		angle := t*2 + float64(i)*2*math.Pi/spokes
		x := cx + int(float64(r)*math.Cos(angle))
		y := cy + int(float64(r)*math.Sin(angle))
		draw.Line(g, cx, cy, x, y)
		g.SetCellColor(x/grid.DotsPerCellX, y/grid.DotsPerCellY, s.palette.At(float64(i)/spokes))
	}
	draw.Circle(g, cx, cy, r)
}

// paintCellsAround colors the cells covered by a circle's bounding box.
func paintCellsAround(g *grid.Grid, x, y, radius int, c grid.Color) {
	for cy := (y - radius) / grid.DotsPerCellY; cy <= (y+radius)/grid.DotsPerCellY; cy++ {
		for cx := (x - radius) / grid.DotsPerCellX; cx <= (x+radius)/grid.DotsPerCellX; cx++ {
			if cx < 0 || cy < 0 || cx >= g.Width() || cy >= g.Height() {
				continue
			}
			g.SetCellColor(cx, cy, c)
		}
	}
}
