package imaging

import (
	"fmt"
	"image"
	"image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/san-kum/dotscreen/internal/grid"
)

// Options control how an image is converted to dots.
type Options struct {
	// Luminosity is the on/off threshold in [0,1] applied to perceived
	// brightness when dithering is disabled.
	Luminosity float64
	// Dither enables Floyd-Steinberg error diffusion instead of a hard
	// threshold.
	Dither bool
	// Inverted flips which side of the threshold produces a set dot.
	Inverted bool
	// Colorize transfers the average source color of each cell to the grid.
	Colorize bool
}

// DefaultOptions matches the common "photo on a dark terminal" case.
func DefaultOptions() Options {
	return Options{Luminosity: 0.45, Dither: true, Colorize: true}
}

// Decode reads any registered image format from r.
func Decode(r io.Reader) (image.Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	_ = format
	return img, nil
}

// DecodeFile decodes an image from a file path.
func DecodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// DecodeGIFFile reads all frames of a GIF animation.
func DecodeGIFFile(path string) (*gif.GIF, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	g, err := gif.DecodeAll(f)
	if err != nil {
		return nil, fmt.Errorf("decode gif: %w", err)
	}
	return g, nil
}

// Resize scales img to exactly width x height pixels.
func Resize(img image.Image, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}

// FitRect computes the largest width x height that fits img's aspect ratio
// within the given dot-space bounds. Terminal cells are roughly twice as
// tall as wide, which the 2x4 dot layout already compensates for.
func FitRect(img image.Image, maxW, maxH int) (int, int) {
	b := img.Bounds()
	srcW, srcH := b.Dx(), b.Dy()
	if srcW == 0 || srcH == 0 || maxW <= 0 || maxH <= 0 {
		return 0, 0
	}
	w := maxW
	h := srcH * maxW / srcW
	if h > maxH {
		h = maxH
		w = srcW * maxH / srcH
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// ToGrid renders img onto a fresh grid of the given cell dimensions. The
// image is scaled to the grid's full dot extent, converted to dots by
// threshold or dithering, and optionally colorized per cell.
func ToGrid(img image.Image, cellW, cellH int, opts Options) (*grid.Grid, error) {
	g, err := grid.New(cellW, cellH)
	if err != nil {
		return nil, err
	}
	if err := Paint(g, img, opts); err != nil {
		return nil, err
	}
	return g, nil
}

// Paint renders img onto an existing grid, overwriting its content.
func Paint(g *grid.Grid, img image.Image, opts Options) error {
	g.Clear()
	dotW, dotH := g.DotWidth(), g.DotHeight()
	scaled := Resize(img, dotW, dotH)

	lum := luminanceMap(scaled)
	if opts.Dither {
		ditherFloydSteinberg(lum, dotW, dotH, opts.Luminosity)
	}

	for y := 0; y < dotH; y++ {
		for x := 0; x < dotW; x++ {
			on := lum[y*dotW+x] >= opts.Luminosity
			if opts.Inverted {
				on = !on
			}
			if on {
				if err := g.SetDot(x, y, true); err != nil {
					return err
				}
			}
		}
	}

	if opts.Colorize {
		colorize(g, scaled)
	}
	return nil
}

// luminanceMap computes perceived brightness in [0,1] per pixel.
func luminanceMap(img *image.RGBA) []float64 {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	lum := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := img.RGBAAt(b.Min.X+x, b.Min.Y+y)
			lum[y*w+x] = (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255.0
		}
	}
	return lum
}

// ditherFloydSteinberg diffuses quantization error to neighboring pixels,
// preserving gradient detail a hard threshold would destroy.
func ditherFloydSteinberg(lum []float64, w, h int, threshold float64) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			old := lum[y*w+x]
			var quantized float64
			if old >= threshold {
				quantized = 1
			}
			err := old - quantized
			lum[y*w+x] = quantized
			if x+1 < w {
				lum[y*w+x+1] += err * 7 / 16
			}
			if y+1 < h {
				if x > 0 {
					lum[(y+1)*w+x-1] += err * 3 / 16
				}
				lum[(y+1)*w+x] += err * 5 / 16
				if x+1 < w {
					lum[(y+1)*w+x+1] += err * 1 / 16
				}
			}
		}
	}
}

// colorize sets each cell's color to the average color of its 2x4 source
// pixel block.
func colorize(g *grid.Grid, scaled *image.RGBA) {
	for cy := 0; cy < g.Height(); cy++ {
		for cx := 0; cx < g.Width(); cx++ {
			var r, gg, b, n uint32
			for dy := 0; dy < grid.DotsPerCellY; dy++ {
				for dx := 0; dx < grid.DotsPerCellX; dx++ {
					c := scaled.RGBAAt(cx*grid.DotsPerCellX+dx, cy*grid.DotsPerCellY+dy)
					r += uint32(c.R)
					gg += uint32(c.G)
					b += uint32(c.B)
					n++
				}
			}
			g.SetCellColor(cx, cy, grid.Color{
				R: uint8(r / n),
				G: uint8(gg / n),
				B: uint8(b / n),
			})
		}
	}
}
