package strip

import (
	"github.com/lucasb-eyer/go-colorful"
)

// clusterSegments implements the color-clustering strategy: grow a segment
// while each new sample stays close in color to the running segment mean,
// start a new one on a distance break. Over-wide segments are then split at
// clear prominence valleys, which corrects under-segmentation where two pads
// were fused by color similarity, and the surviving count is normalized by
// merging adjacent segments.
func clusterSegments(samples []AxisSample, sig Signal, p Params) SegmentCandidate {
	raw := clusterWalk(samples, p)

	refined := make([]SampleSegment, 0, len(raw))
	for _, s := range raw {
		refined = append(refined, splitAtValleys(samples, sig, s.Start, s.End, p)...)
	}

	rawKept := filterPadSegments(raw, p)
	refinedKept := filterPadSegments(refined, p)

	kept := rawKept
	if len(refinedKept) > len(rawKept) {
		kept = refinedKept
	}

	kept = normalizeCount(samples, kept, p)

	return SegmentCandidate{
		Source:   SourceCluster,
		Segments: kept,
		Stats:    computeStats(kept, sig, len(samples)),
	}
}

// clusterWalk groups consecutive samples whose color distance to the running
// segment mean stays under the break threshold.
func clusterWalk(samples []AxisSample, p Params) []SampleSegment {
	if len(samples) == 0 {
		return nil
	}

	var segs []SampleSegment
	start := 0
	sumR, sumG, sumB := samples[0].R, samples[0].G, samples[0].B
	count := 1.0

	for i := 1; i < len(samples); i++ {
		mean := colorful.Color{R: sumR / count / 255, G: sumG / count / 255, B: sumB / count / 255}
		next := colorful.Color{R: samples[i].R / 255, G: samples[i].G / 255, B: samples[i].B / 255}
		// DistanceRgb works on unit-range channels; scale back to 0-255.
		if mean.DistanceRgb(next)*255 > p.ClusterDistMax {
			segs = append(segs, segmentFromRange(samples, start, i-1))
			start = i
			sumR, sumG, sumB, count = 0, 0, 0, 0
		}
		sumR += samples[i].R
		sumG += samples[i].G
		sumB += samples[i].B
		count++
	}
	segs = append(segs, segmentFromRange(samples, start, len(samples)-1))
	return segs
}

// splitAtValleys recursively splits the range [start,end] at the deepest
// qualifying prominence valley while the range is wider than one expected
// pad. A valley qualifies when it sits at least SplitEdgeGap samples from
// both edges and is no deeper than SplitValleyFrac of the weaker of its two
// neighboring peaks.
func splitAtValleys(samples []AxisSample, sig Signal, start, end int, p Params) []SampleSegment {
	if end-start+1 <= p.targetPadWidth() {
		return []SampleSegment{segmentFromRange(samples, start, end)}
	}

	valley := findValley(sig, start, end, p)
	if valley < 0 {
		return []SampleSegment{segmentFromRange(samples, start, end)}
	}

	left := splitAtValleys(samples, sig, start, valley, p)
	right := splitAtValleys(samples, sig, valley+1, end, p)
	return append(left, right...)
}

// findValley locates the deepest local prominence minimum inside [start,end]
// that separates two sufficiently stronger peaks. Returns -1 when none
// qualifies.
func findValley(sig Signal, start, end int, p Params) int {
	prom := sig.Prominence
	best := -1
	bestVal := 0.0

	for i := start + p.SplitEdgeGap; i <= end-p.SplitEdgeGap; i++ {
		if prom[i] > prom[i-1] || prom[i] > prom[i+1] {
			continue
		}

		leftPeak := 0.0
		for j := start; j < i; j++ {
			if prom[j] > leftPeak {
				leftPeak = prom[j]
			}
		}
		rightPeak := 0.0
		for j := i + 1; j <= end; j++ {
			if prom[j] > rightPeak {
				rightPeak = prom[j]
			}
		}

		weaker := leftPeak
		if rightPeak < weaker {
			weaker = rightPeak
		}
		if weaker <= 0 || prom[i] > p.SplitValleyFrac*weaker {
			continue
		}

		if best < 0 || prom[i] < bestVal {
			best = i
			bestVal = prom[i]
		}
	}
	return best
}

// normalizeCount merges the adjacent pair with the smallest combined span
// until at most NormalizeMaxCount segments remain. Normalization never
// discards segments, only merges; an empty filtered list is returned as-is.
func normalizeCount(samples []AxisSample, segs []SampleSegment, p Params) []SampleSegment {
	if len(segs) == 0 {
		return segs
	}

	for len(segs) > p.NormalizeMaxCount {
		bestIdx := 0
		bestSpan := segs[1].End - segs[0].Start + 1
		for i := 1; i < len(segs)-1; i++ {
			span := segs[i+1].End - segs[i].Start + 1
			if span < bestSpan {
				bestSpan = span
				bestIdx = i
			}
		}

		merged := segmentFromRange(samples, segs[bestIdx].Start, segs[bestIdx+1].End)
		segs = append(segs[:bestIdx], append([]SampleSegment{merged}, segs[bestIdx+2:]...)...)
	}
	return segs
}
