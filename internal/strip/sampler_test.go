package strip

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/poolsense/stripscan/internal/imaging"
)

// fillRect paints a solid rectangle onto an RGBA image.
func fillRect(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			img.Set(x, y, c)
		}
	}
}

// pixBand is a horizontal colored band on a vertical strip image.
type pixBand struct {
	y0, y1 int
	c      color.RGBA
}

// makeStripImage builds a white vertical strip image with the given bands.
func makeStripImage(w, h int, bands []pixBand) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fillRect(img, 0, 0, w, h, color.RGBA{255, 255, 255, 255})
	for _, b := range bands {
		fillRect(img, 0, b.y0, w, b.y1, b.c)
	}
	return img
}

func TestSampleAxis_CountAndOrder(t *testing.T) {
	img := makeStripImage(120, 600, nil)
	buf := imaging.NewPixelBuffer(img)

	p := DefaultParams()
	samples := SampleAxis(buf, p)
	if len(samples) != p.SampleCount {
		t.Fatalf("samples: got %d, want %d", len(samples), p.SampleCount)
	}
	for i, s := range samples {
		if s.Index != i {
			t.Errorf("sample %d has index %d", i, s.Index)
		}
	}
}

func TestSampleAxis_DerivedChannels(t *testing.T) {
	tests := []struct {
		name  string
		c     color.RGBA
		wantL float64
		wantS float64
	}{
		{"pure red", color.RGBA{255, 0, 0, 255}, 50, 100},
		{"white", color.RGBA{255, 255, 255, 255}, 100, 0},
		{"mid gray", color.RGBA{128, 128, 128, 255}, 50.2, 0},
		{"saturated teal", color.RGBA{40, 170, 170, 255}, 41.2, 76.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := makeStripImage(60, 300, []pixBand{{0, 300, tt.c}})
			samples := SampleAxis(imaging.NewPixelBuffer(img), DefaultParams())

			s := samples[len(samples)/2]
			if math.Abs(s.Lightness-tt.wantL) > 1 {
				t.Errorf("lightness: got %g, want %g", s.Lightness, tt.wantL)
			}
			if math.Abs(s.Saturation-tt.wantS) > 1 {
				t.Errorf("saturation: got %g, want %g", s.Saturation, tt.wantS)
			}
		})
	}
}

func TestSampleAxis_HorizontalOrientation(t *testing.T) {
	// Wider than tall: the axis runs along X.
	img := image.NewRGBA(image.Rect(0, 0, 600, 120))
	fillRect(img, 0, 0, 300, 120, color.RGBA{200, 40, 40, 255})
	fillRect(img, 300, 0, 600, 120, color.RGBA{40, 40, 200, 255})

	samples := SampleAxis(imaging.NewPixelBuffer(img), DefaultParams())
	if len(samples) == 0 {
		t.Fatal("no samples produced")
	}

	first := samples[2]
	last := samples[len(samples)-3]
	if first.R < first.B {
		t.Errorf("left end should be red: R=%g B=%g", first.R, first.B)
	}
	if last.B < last.R {
		t.Errorf("right end should be blue: R=%g B=%g", last.R, last.B)
	}
}

func TestSampleAxis_TransparentPixelsDefaultToWhite(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 60, 300))
	for y := 0; y < 300; y++ {
		for x := 0; x < 60; x++ {
			img.Set(x, y, color.NRGBA{200, 40, 40, 100}) // below the alpha floor
		}
	}

	samples := SampleAxis(imaging.NewPixelBuffer(img), DefaultParams())
	for _, s := range samples {
		if s.R != 255 || s.G != 255 || s.B != 255 {
			t.Fatalf("sample %d = (%g,%g,%g), want white default", s.Index, s.R, s.G, s.B)
		}
	}
}

func TestSampleAxis_NilBuffer(t *testing.T) {
	if got := SampleAxis(nil, DefaultParams()); got != nil {
		t.Errorf("nil buffer: got %d samples, want nil", len(got))
	}
}

func TestSampleAxis_InsetSkipsEdges(t *testing.T) {
	// Paint only the top 5% of the strip; the 8% inset must keep every
	// patch clear of it.
	img := makeStripImage(120, 600, []pixBand{{0, 30, color.RGBA{200, 40, 40, 255}}})

	samples := SampleAxis(imaging.NewPixelBuffer(img), DefaultParams())
	for _, s := range samples {
		if s.Saturation > 5 {
			t.Fatalf("sample %d saturated (%g); edge band leaked past the inset",
				s.Index, s.Saturation)
		}
	}
}
