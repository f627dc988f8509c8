package imaging

import (
	"image"
	"image/color"
	"testing"
)

// halfAndHalf builds an image whose left half is black and right half white.
func halfAndHalf(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x < w/2 {
				img.Set(x, y, color.Black)
			} else {
				img.Set(x, y, color.White)
			}
		}
	}
	return img
}

func TestThresholdSplit(t *testing.T) {
	img := halfAndHalf(16, 16)
	g, err := ToGrid(img, 8, 4, Options{Luminosity: 0.5})
	if err != nil {
		t.Fatalf("ToGrid failed: %v", err)
	}

	// Left half of the grid stays dark, right half lights up.
	on, _ := g.Dot(2, 2)
	if on {
		t.Error("dot in dark half should be off")
	}
	on, _ = g.Dot(13, 2)
	if !on {
		t.Error("dot in bright half should be on")
	}
}

func TestInverted(t *testing.T) {
	img := halfAndHalf(16, 16)
	g, err := ToGrid(img, 8, 4, Options{Luminosity: 0.5, Inverted: true})
	if err != nil {
		t.Fatal(err)
	}
	on, _ := g.Dot(2, 2)
	if !on {
		t.Error("inverted: dark half should be on")
	}
	on, _ = g.Dot(13, 2)
	if on {
		t.Error("inverted: bright half should be off")
	}
}

func TestColorize(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 10, B: 10, A: 255})
		}
	}

	g, err := ToGrid(img, 4, 2, Options{Luminosity: 0.2, Colorize: true})
	if err != nil {
		t.Fatal(err)
	}
	cell, _ := g.Cell(0, 0)
	if !cell.HasColor {
		t.Fatal("expected cell color")
	}
	if cell.Color.R < 150 || cell.Color.G > 60 {
		t.Errorf("expected reddish cell color, got %v", cell.Color)
	}
}

func TestDitherPreservesAverageBrightness(t *testing.T) {
	// A mid-gray image thresholded at 0.5 collapses to all-off or all-on;
	// dithering must keep roughly half the dots set.
	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			img.Set(x, y, color.RGBA{R: 128, G: 128, B: 128, A: 255})
		}
	}

	g, err := ToGrid(img, 16, 8, Options{Luminosity: 0.5, Dither: true})
	if err != nil {
		t.Fatal(err)
	}

	set := 0
	total := g.DotWidth() * g.DotHeight()
	for y := 0; y < g.DotHeight(); y++ {
		for x := 0; x < g.DotWidth(); x++ {
			if on, _ := g.Dot(x, y); on {
				set++
			}
		}
	}
	ratio := float64(set) / float64(total)
	if ratio < 0.3 || ratio > 0.7 {
		t.Errorf("dithered mid-gray should set ~50%% of dots, got %.0f%%", ratio*100)
	}
}

func TestFitRect(t *testing.T) {
	tests := []struct {
		name         string
		imgW, imgH   int
		maxW, maxH   int
		wantW, wantH int
	}{
		{"wide image bounded by width", 200, 100, 100, 100, 100, 50},
		{"tall image bounded by height", 100, 200, 100, 100, 50, 100},
		{"exact fit", 80, 40, 80, 40, 80, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := image.NewRGBA(image.Rect(0, 0, tt.imgW, tt.imgH))
			w, h := FitRect(img, tt.maxW, tt.maxH)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("got %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestResizeDimensions(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 60))
	dst := Resize(img, 20, 12)
	if dst.Bounds().Dx() != 20 || dst.Bounds().Dy() != 12 {
		t.Errorf("resize produced %v", dst.Bounds())
	}
}
