package scheme

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/dotscreen/internal/grid"
)

// Keypoint anchors a color at a position in [0,1].
type Keypoint struct {
	Color colorful.Color
	Pos   float64
}

// Gradient is a look-up table of colors blended in HCL space, which avoids
// the muddy midpoints RGB interpolation produces.
type Gradient []Keypoint

// At samples the gradient at t, clamped to [0,1].
func (g Gradient) At(t float64) grid.Color {
	if len(g) == 0 {
		return grid.Color{R: 255, G: 255, B: 255}
	}
	if t <= g[0].Pos {
		return toGridColor(g[0].Color)
	}
	for i := 0; i < len(g)-1; i++ {
		c1, c2 := g[i], g[i+1]
		if c1.Pos <= t && t <= c2.Pos {
			frac := (t - c1.Pos) / (c2.Pos - c1.Pos)
			return toGridColor(c1.Color.BlendHcl(c2.Color, frac).Clamped())
		}
	}
	return toGridColor(g[len(g)-1].Color)
}

func toGridColor(c colorful.Color) grid.Color {
	r, gg, b := c.Clamped().RGB255()
	return grid.Color{R: r, G: gg, B: b}
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
