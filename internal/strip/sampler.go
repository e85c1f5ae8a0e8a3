package strip

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/poolsense/stripscan/internal/imaging"
)

// SampleAxis reduces a pixel buffer to a fixed-size ordered sequence of
// color samples along the strip's long axis.
//
// The axis is vertical when the image is at least as tall as it is wide,
// horizontal otherwise. Samples are evenly spaced along the axis, inset by
// EdgeInsetFrac at each end to avoid strip-edge artifacts. Each sample
// averages pixel color over a small rectangular patch centered at its
// position, visiting pixels with a spatial stride to bound cost and skipping
// pixels with alpha below AlphaMin (transparent or antialiased edges). A
// patch with no qualifying pixels defaults to white.
//
// Returns nil when the buffer is missing, empty, or too small to fit the
// inset margins.
func SampleAxis(buf *imaging.PixelBuffer, p Params) []AxisSample {
	if buf == nil || buf.Width <= 0 || buf.Height <= 0 || p.SampleCount <= 0 {
		return nil
	}

	vertical := buf.Height >= buf.Width
	axisLen := buf.Width
	crossLen := buf.Height
	if vertical {
		axisLen = buf.Height
		crossLen = buf.Width
	}

	inset := float64(axisLen) * p.EdgeInsetFrac
	usable := float64(axisLen) - 2*inset
	if usable < 1 {
		return nil
	}
	step := usable / float64(p.SampleCount)

	// Sample the central half of the cross axis; the outer quarters catch
	// strip borders and backdrop.
	crossLo := crossLen / 4
	crossHi := crossLen - crossLen/4
	if crossHi <= crossLo {
		crossLo, crossHi = 0, crossLen
	}

	halfAlong := int(step/2) + 1

	samples := make([]AxisSample, p.SampleCount)
	for i := 0; i < p.SampleCount; i++ {
		center := int(inset + (float64(i)+0.5)*step)
		alongLo := clampInt(center-halfAlong, 0, axisLen-1)
		alongHi := clampInt(center+halfAlong, 0, axisLen-1)

		r, g, b := patchMean(buf, vertical, alongLo, alongHi, crossLo, crossHi, p.AlphaMin)

		c := colorful.Color{R: r / 255, G: g / 255, B: b / 255}
		_, _, light := c.Hsl()
		_, sat, _ := c.Hsv()

		samples[i] = AxisSample{
			Index:      i,
			R:          r,
			G:          g,
			B:          b,
			Lightness:  light * 100,
			Saturation: sat * 100,
		}
	}
	return samples
}

// patchMean averages the opaque pixels of one sample patch. alongLo/alongHi
// index the strip axis, crossLo/crossHi the perpendicular one.
func patchMean(buf *imaging.PixelBuffer, vertical bool, alongLo, alongHi, crossLo, crossHi int, alphaMin uint8) (r, g, b float64) {
	strideAlong := (alongHi - alongLo + 1) / 8
	if strideAlong < 1 {
		strideAlong = 1
	}
	strideCross := (crossHi - crossLo) / 8
	if strideCross < 1 {
		strideCross = 1
	}

	var sumR, sumG, sumB float64
	count := 0
	for along := alongLo; along <= alongHi; along += strideAlong {
		for cross := crossLo; cross < crossHi; cross += strideCross {
			x, y := cross, along
			if !vertical {
				x, y = along, cross
			}
			pr, pg, pb, pa := buf.RGBA(x, y)
			if pa < alphaMin {
				continue
			}
			sumR += float64(pr)
			sumG += float64(pg)
			sumB += float64(pb)
			count++
		}
	}
	if count == 0 {
		return 255, 255, 255
	}
	return sumR / float64(count), sumG / float64(count), sumB / float64(count)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
