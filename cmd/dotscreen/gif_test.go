package main

import (
	"image"
	"image/color"
	"image/gif"
	"testing"

	"github.com/san-kum/dotscreen/internal/imaging"
)

func palettedRect(r image.Rectangle, c color.Color) *image.Paletted {
	img := image.NewPaletted(r, color.Palette{color.Black, color.White})
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestGIFProducerCompositesPartialFrames(t *testing.T) {
	// Frame 0 fills the 8x8 logical screen with white; frame 1 encodes only
	// a black patch in the bottom-right quadrant, the way optimized encoders
	// ship unchanged regions.
	g := &gif.GIF{
		Image: []*image.Paletted{
			palettedRect(image.Rect(0, 0, 8, 8), color.White),
			palettedRect(image.Rect(4, 4, 8, 8), color.Black),
		},
		Delay:    []int{10, 10},
		Disposal: []byte{gif.DisposalNone, gif.DisposalNone},
		Config:   image.Config{Width: 8, Height: 8},
	}

	p, err := newGIFProducer(g, 4, 2, imaging.Options{Luminosity: 0.5})
	if err != nil {
		t.Fatal(err)
	}
	if len(p.frames) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(p.frames))
	}

	second := p.frames[1]
	if on, _ := second.Dot(0, 0); !on {
		t.Error("region outside the partial frame must keep prior content")
	}
	if on, _ := second.Dot(5, 5); on {
		t.Error("patched region must be dark")
	}
}

func TestGIFProducerDisposalBackground(t *testing.T) {
	// Frame 0 lights the whole screen but is disposed to background, so
	// frame 1 shows only its own small patch.
	g := &gif.GIF{
		Image: []*image.Paletted{
			palettedRect(image.Rect(0, 0, 8, 8), color.White),
			palettedRect(image.Rect(0, 0, 2, 2), color.White),
		},
		Delay:    []int{10, 10},
		Disposal: []byte{gif.DisposalBackground, gif.DisposalNone},
		Config:   image.Config{Width: 8, Height: 8},
	}

	p, err := newGIFProducer(g, 4, 2, imaging.Options{Luminosity: 0.5})
	if err != nil {
		t.Fatal(err)
	}

	second := p.frames[1]
	if on, _ := second.Dot(1, 1); !on {
		t.Error("new frame's own patch must be lit")
	}
	if on, _ := second.Dot(6, 6); on {
		t.Error("disposed background must be dark")
	}
}

func TestGIFProducerDisposalPrevious(t *testing.T) {
	// Frame 1 covers the dark screen with white but is disposed to the
	// previous contents, so frame 2's view is dark again outside its patch.
	g := &gif.GIF{
		Image: []*image.Paletted{
			palettedRect(image.Rect(0, 0, 8, 8), color.Black),
			palettedRect(image.Rect(0, 0, 8, 8), color.White),
			palettedRect(image.Rect(0, 0, 2, 2), color.White),
		},
		Delay:    []int{10, 10, 10},
		Disposal: []byte{gif.DisposalNone, gif.DisposalPrevious, gif.DisposalNone},
		Config:   image.Config{Width: 8, Height: 8},
	}

	p, err := newGIFProducer(g, 4, 2, imaging.Options{Luminosity: 0.5})
	if err != nil {
		t.Fatal(err)
	}

	third := p.frames[2]
	if on, _ := third.Dot(1, 1); !on {
		t.Error("new frame's own patch must be lit")
	}
	if on, _ := third.Dot(6, 6); on {
		t.Error("restored region must match the frame before the disposal")
	}
}
