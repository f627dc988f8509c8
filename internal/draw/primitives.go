package draw

import "github.com/san-kum/dotscreen/internal/grid"

// Primitives operate in dot space and clip silently at the grid extent:
// content producers routinely draw shapes partially off-screen, so only the
// visible dots are set.

func set(g *grid.Grid, x, y int) {
	if x < 0 || y < 0 || x >= g.DotWidth() || y >= g.DotHeight() {
		return
	}
	g.SetDot(x, y, true)
}

// Line draws a line between two dot coordinates using Bresenham's
// algorithm.
func Line(g *grid.Grid, x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		set(g, x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Circle draws a circle outline using the midpoint algorithm.
func Circle(g *grid.Grid, cx, cy, radius int) {
	if radius < 0 {
		return
	}
	x, y := radius, 0
	err := 1 - radius

	for x >= y {
		set(g, cx+x, cy+y)
		set(g, cx+y, cy+x)
		set(g, cx-y, cy+x)
		set(g, cx-x, cy+y)
		set(g, cx-x, cy-y)
		set(g, cx-y, cy-x)
		set(g, cx+y, cy-x)
		set(g, cx+x, cy-y)
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2*(y-x) + 1
		}
	}
}

// Rect draws an axis-aligned rectangle outline between two corners.
func Rect(g *grid.Grid, x0, y0, x1, y1 int) {
	Line(g, x0, y0, x1, y0)
	Line(g, x1, y0, x1, y1)
	Line(g, x1, y1, x0, y1)
	Line(g, x0, y1, x0, y0)
}

// FillRect fills an axis-aligned rectangle between two corners.
func FillRect(g *grid.Grid, x0, y0, x1, y1 int) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			set(g, x, y)
		}
	}
}

// Polyline draws connected line segments through the given dot coordinates.
func Polyline(g *grid.Grid, points [][2]int) {
	for i := 1; i < len(points); i++ {
		Line(g, points[i-1][0], points[i-1][1], points[i][0], points[i][1])
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
