package strip

// scoreSegments implements the score-thresholding strategy: each sample gets
// a pad-likelihood score (saturation minus a penalty for near-white
// brightness), a dynamic threshold is placed within the observed score
// range, and contiguous runs of at-or-above-threshold samples become
// segments.
func scoreSegments(samples []AxisSample, sig Signal, p Params) SegmentCandidate {
	n := len(samples)
	scores := make([]float64, n)
	minScore, maxScore := 0.0, 0.0
	for i, s := range samples {
		score := s.Saturation
		if s.Lightness > p.ScoreLightnessKnee {
			score -= p.ScoreBrightPenalty * (s.Lightness - p.ScoreLightnessKnee)
		}
		if score < 0 {
			score = 0
		}
		scores[i] = score
		if i == 0 || score < minScore {
			minScore = score
		}
		if i == 0 || score > maxScore {
			maxScore = score
		}
	}

	threshold := minScore + p.ScoreThresholdFrac*(maxScore-minScore)
	if threshold < p.ScoreThresholdMin {
		threshold = p.ScoreThresholdMin
	}

	var segs []SampleSegment
	start := -1
	for i := 0; i < n; i++ {
		inPad := scores[i] >= threshold
		switch {
		case inPad && start < 0:
			start = i
		case !inPad && start >= 0:
			segs = append(segs, segmentFromRange(samples, start, i-1))
			start = -1
		}
	}
	if start >= 0 {
		segs = append(segs, segmentFromRange(samples, start, n-1))
	}

	kept := filterPadSegments(segs, p)
	return SegmentCandidate{
		Source:   SourceScore,
		Segments: kept,
		Stats:    computeStats(kept, sig, n),
	}
}
