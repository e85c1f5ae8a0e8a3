package strip

import (
	"gonum.org/v1/gonum/stat"
)

// segmentFromRange builds a segment over the inclusive sample range
// [start,end], averaging color, lightness and saturation across it.
func segmentFromRange(samples []AxisSample, start, end int) SampleSegment {
	var r, g, b, light, sat float64
	n := float64(end - start + 1)
	for i := start; i <= end; i++ {
		r += samples[i].R
		g += samples[i].G
		b += samples[i].B
		light += samples[i].Lightness
		sat += samples[i].Saturation
	}
	return SampleSegment{
		Start:      start,
		End:        end,
		R:          r / n,
		G:          g / n,
		B:          b / n,
		Lightness:  light / n,
		Saturation: sat / n,
	}
}

// filterPadSegments drops segments that cannot be reagent pads: anything
// shorter than the minimum span, and anything both very bright and
// essentially unsaturated — that is background, not a pad.
func filterPadSegments(segs []SampleSegment, p Params) []SampleSegment {
	kept := make([]SampleSegment, 0, len(segs))
	for _, s := range segs {
		if s.Span() < p.MinSegmentSpan {
			continue
		}
		if s.Lightness > p.BackgroundLight && s.Saturation < p.BackgroundSat {
			continue
		}
		kept = append(kept, s)
	}
	return kept
}

// segmentStrength is the segment's prominence: the seeding peak's value when
// the segment came from the peak strategy, otherwise the strongest
// prominence inside its range.
func segmentStrength(s SampleSegment, sig Signal) float64 {
	if s.PeakStrength > 0 {
		return s.PeakStrength
	}
	strength := 0.0
	for i := s.Start; i <= s.End && i < len(sig.Prominence); i++ {
		if sig.Prominence[i] > strength {
			strength = sig.Prominence[i]
		}
	}
	return strength
}

// computeStats aggregates descriptors over a segment list. Returns nil for
// an empty list, mirroring a candidate that found nothing.
func computeStats(segs []SampleSegment, sig Signal, sampleCount int) *SegmentStats {
	if len(segs) == 0 {
		return nil
	}

	spans := make([]float64, len(segs))
	strengths := make([]float64, len(segs))
	covered := 0
	for i, s := range segs {
		spans[i] = float64(s.Span())
		strengths[i] = segmentStrength(s, sig)
		covered += s.Span()
	}

	minStrength := strengths[0]
	for _, v := range strengths[1:] {
		if v < minStrength {
			minStrength = v
		}
	}

	spanStdDev := 0.0
	if len(spans) > 1 {
		spanStdDev = stat.StdDev(spans, nil)
	}

	gapRatio := 0.0
	if sampleCount > 0 {
		gapRatio = 1 - float64(covered)/float64(sampleCount)
		if gapRatio < 0 {
			gapRatio = 0
		}
	}

	return &SegmentStats{
		AvgStrength: stat.Mean(strengths, nil),
		MinStrength: minStrength,
		SpanMean:    stat.Mean(spans, nil),
		SpanStdDev:  spanStdDev,
		GapRatio:    gapRatio,
	}
}
