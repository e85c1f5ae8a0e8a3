package strip

import (
	"sort"
)

// peakSegments implements the peak-detection strategy: find prominent local
// maxima in the prominence series, retry with relaxed thresholds when too
// few are found, fall back to the globally most prominent indices when none
// are, then derive one contiguous non-overlapping range around each
// surviving peak.
func peakSegments(samples []AxisSample, sig Signal, p Params) SegmentCandidate {
	n := len(samples)
	prom := sig.Prominence
	empty := SegmentCandidate{Source: SourcePeak}

	maxProm := 0.0
	for _, v := range prom {
		if v > maxProm {
			maxProm = v
		}
	}
	if maxProm <= 0 {
		return empty
	}

	minDist := p.peakMinDistance(n)
	peaks := findPeaks(prom, p.PeakMinPromFrac*maxProm, minDist)

	if len(peaks) < 4 {
		relaxedDist := minDist * 3 / 4
		if relaxedDist < 1 {
			relaxedDist = 1
		}
		relaxed := findPeaks(prom, p.PeakRelaxedPromFrac*maxProm, relaxedDist)
		if len(relaxed) > len(peaks) {
			peaks = relaxed
		}
	}
	if len(peaks) == 0 {
		peaks = topProminent(prom, p.PeakMaxCount, minDist)
	}
	if len(peaks) == 0 {
		return empty
	}

	// Keep at most the strongest peaks, then restore positional order.
	sort.Slice(peaks, func(i, j int) bool { return prom[peaks[i]] > prom[peaks[j]] })
	if len(peaks) > p.PeakMaxCount {
		peaks = peaks[:p.PeakMaxCount]
	}
	sort.Ints(peaks)

	ranges := peakRanges(prom, peaks, minDist, p)

	raw := make([]SampleSegment, 0, len(ranges))
	for i, r := range ranges {
		seg := segmentFromRange(samples, r[0], r[1])
		seg.PeakStrength = prom[peaks[i]]
		raw = append(raw, seg)
	}

	kept := filterPadSegments(raw, p)
	// Heavy filter losses mean the filter is rejecting real pads (e.g. pale
	// pads on an overexposed photo); trust the peak evidence instead.
	if float64(len(kept)) < p.PeakSurvivalFrac*float64(len(raw)) {
		kept = raw
	}

	return SegmentCandidate{
		Source:   SourcePeak,
		Segments: kept,
		Stats:    computeStats(kept, sig, n),
	}
}

// findPeaks returns local maxima of the series with value at or above
// minProm, enforcing a minimum index distance between accepted peaks
// (stronger peaks win). The result is ordered by position.
func findPeaks(series []float64, minProm float64, minDist int) []int {
	n := len(series)
	if n < 2 {
		return nil
	}

	var candidates []int
	for i := 0; i < n; i++ {
		if series[i] < minProm {
			continue
		}
		// Plateaus count once, at their falling edge; series ends must
		// strictly exceed their neighbor.
		var isPeak bool
		switch {
		case i == 0:
			isPeak = series[0] > series[1]
		case i == n-1:
			isPeak = series[n-1] > series[n-2]
		default:
			isPeak = series[i] >= series[i-1] && series[i] > series[i+1]
		}
		if isPeak {
			candidates = append(candidates, i)
		}
	}

	return spaceApart(series, candidates, minDist, len(series))
}

// topProminent returns up to k of the highest-valued indices subject to the
// minimum distance constraint, ordered by position. Used as a last resort
// when no structural local maxima survive thresholding.
func topProminent(series []float64, k, minDist int) []int {
	indices := make([]int, 0, len(series))
	for i, v := range series {
		if v > 0 {
			indices = append(indices, i)
		}
	}
	return spaceApart(series, indices, minDist, k)
}

// spaceApart greedily accepts up to maxCount candidates in descending value
// order, skipping any within minDist of an already accepted index, and
// returns the accepted set ordered by position.
func spaceApart(series []float64, candidates []int, minDist, maxCount int) []int {
	byStrength := make([]int, len(candidates))
	copy(byStrength, candidates)
	sort.Slice(byStrength, func(i, j int) bool { return series[byStrength[i]] > series[byStrength[j]] })

	var accepted []int
	for _, c := range byStrength {
		if len(accepted) >= maxCount {
			break
		}
		ok := true
		for _, a := range accepted {
			d := c - a
			if d < 0 {
				d = -d
			}
			if d < minDist {
				ok = false
				break
			}
		}
		if ok {
			accepted = append(accepted, c)
		}
	}
	sort.Ints(accepted)
	return accepted
}

// peakRanges derives one contiguous range per peak. Each peak owns the
// territory up to the midpoint with its neighbors (a fixed half-width at the
// series ends); within that territory the range grows outward from the peak
// while the series stays above a soft-drop threshold relative to the peak's
// own prominence. Ranges never overlap and are widened to a minimum span
// where the territory allows.
func peakRanges(series []float64, peaks []int, halfWidth int, p Params) [][2]int {
	n := len(series)
	ranges := make([][2]int, len(peaks))

	for i, pk := range peaks {
		lo := pk - halfWidth
		if i > 0 {
			lo = (peaks[i-1]+pk)/2 + 1
		}
		if lo < 0 {
			lo = 0
		}

		hi := pk + halfWidth
		if i < len(peaks)-1 {
			hi = (pk + peaks[i+1]) / 2
		}
		if hi > n-1 {
			hi = n - 1
		}
		if hi < lo {
			lo, hi = pk, pk
		}

		softDrop := p.PeakSoftDropFrac * series[pk]
		start, end := pk, pk
		for start > lo && series[start-1] >= softDrop {
			start--
		}
		for end < hi && series[end+1] >= softDrop {
			end++
		}

		// Widen toward the territory bounds to reach the minimum span.
		for end-start+1 < p.PeakMinRangeSpan && (start > lo || end < hi) {
			if end < hi {
				end++
			} else {
				start--
			}
		}

		ranges[i] = [2]int{start, end}
	}
	return ranges
}
