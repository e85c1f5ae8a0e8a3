package strip

// Evaluator weights. These encode the domain prior that real strips more
// often have 6 pads than 3, while still letting strong, well-separated
// 3-pad evidence win. Calibrated together with the classifier's confidence
// blend; change with care.
const (
	weightPadPreference = 0.60
	weightStrength      = 0.25
	weightGap           = 0.10
	weightSpan          = 0.05

	peakSourceBoost = 0.05
	highPadBonus    = 0.12
	lowPadPenalty   = 0.08

	sixPadTieMargin   = 0.85
	strengthFullScale = 12.0
	highPadCountMin   = 5
	lowPadCountMax    = 3
)

// evaluateCandidates picks the winning candidate among those that found at
// least one segment. When every strategy came up empty, the (empty) cluster
// candidate is returned so the caller degrades to the zero result.
func evaluateCandidates(cands []SegmentCandidate) SegmentCandidate {
	best := -1
	bestScore := 0.0
	for i, c := range cands {
		if len(c.Segments) == 0 {
			continue
		}
		score := candidateScore(c)
		if best < 0 || score > bestScore {
			best = i
			bestScore = score
		}
	}
	if best >= 0 {
		return cands[best]
	}

	for _, c := range cands {
		if c.Source == SourceCluster {
			return c
		}
	}
	return SegmentCandidate{Source: SourceCluster}
}

// candidateScore rates one candidate's pad layout.
func candidateScore(c SegmentCandidate) float64 {
	count := len(c.Segments)
	stats := c.Stats

	score := weightPadPreference*padPreference(count) +
		weightStrength*strengthScore(stats.AvgStrength) +
		weightGap*gapScore(stats.GapRatio) +
		weightSpan*spanScore(stats)

	if c.Source == SourcePeak {
		score += peakSourceBoost
	}
	if count >= highPadCountMin {
		score += highPadBonus
	}
	if count <= lowPadCountMax {
		score -= lowPadPenalty
	}
	return score
}

// padPreference favors counts near 6 over counts near 3, with a margin-based
// tie-break toward 6.
func padPreference(count int) float64 {
	nearSix := clamp01(1 - absFloat(float64(count)-6)/6)
	nearThree := clamp01(1 - absFloat(float64(count)-3)/3)
	if nearSix >= nearThree*sixPadTieMargin {
		return nearSix
	}
	return nearThree
}

func strengthScore(avgStrength float64) float64 {
	s := avgStrength / strengthFullScale
	if s > 1 {
		s = 1
	}
	return s
}

func gapScore(gapRatio float64) float64 {
	s := 1 - 2*gapRatio
	if s < 0 {
		s = 0
	}
	return s
}

func spanScore(stats *SegmentStats) float64 {
	if stats.SpanMean <= 0 {
		return 0
	}
	s := 1 - stats.SpanStdDev/stats.SpanMean
	if s < 0 {
		s = 0
	}
	return s
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
