package strip

import (
	"github.com/lucasb-eyer/go-colorful"
)

// sampleFromRGB builds one axis sample the same way the sampler derives
// lightness and saturation from a patch mean.
func sampleFromRGB(index int, r, g, b float64) AxisSample {
	c := colorful.Color{R: r / 255, G: g / 255, B: b / 255}
	_, _, light := c.Hsl()
	_, sat, _ := c.Hsv()
	return AxisSample{
		Index:      index,
		R:          r,
		G:          g,
		B:          b,
		Lightness:  light * 100,
		Saturation: sat * 100,
	}
}

// band is a contiguous colored range in sample-index space.
type band struct {
	start, end int
	r, g, b    float64
}

// bandSamples builds a sample sequence of length n that is white except for
// the given colored bands.
func bandSamples(n int, bands []band) []AxisSample {
	samples := make([]AxisSample, n)
	for i := 0; i < n; i++ {
		r, g, b := 255.0, 255.0, 255.0
		for _, bd := range bands {
			if i >= bd.start && i <= bd.end {
				r, g, b = bd.r, bd.g, bd.b
				break
			}
		}
		samples[i] = sampleFromRGB(i, r, g, b)
	}
	return samples
}

// evenBands distributes count equal bands of the given color across n
// samples, covering roughly 60% of each band's slot.
func evenBands(n, count int, r, g, b float64) []band {
	slot := n / count
	width := slot * 3 / 5
	bands := make([]band, count)
	for i := 0; i < count; i++ {
		start := i*slot + slot/5
		bands[i] = band{start: start, end: start + width - 1, r: r, g: g, b: b}
	}
	return bands
}
