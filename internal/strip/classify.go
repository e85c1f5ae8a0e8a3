package strip

// Classifier confidence weights. Calibrated against the evaluator's
// heuristics; preserved as-is rather than "improved".
const (
	confidenceBase        = 0.28
	confidenceCountWeight = 0.35
	confidenceStability   = 0.25
	confidenceConsistency = 0.15
	confidenceGap         = 0.15

	confidencePeakWinner    = 0.07
	confidenceCorroboration = 0.025
	confidenceCorroboMax    = 0.05
	confidenceFallbackDrop  = 0.12

	stabilityStrengthWeight = 0.6
	stabilityUniformWeight  = 0.4
)

// inferType maps a pad count to a strip family: 0 means unknown, 6 or more
// is the six-pad family, 2 or fewer the three-pad family. In between, the
// numerically closer family wins, with the boundary counts 4 and 5 breaking
// toward six-pad. Returns the family and its expected pad count.
func inferType(padCount int) (StripType, float64) {
	switch {
	case padCount <= 0:
		return TypeUnknown, 0
	case padCount >= 6:
		return TypeSixPad, 6
	case padCount <= 2:
		return TypeThreePad, 3
	case padCount >= 4:
		return TypeSixPad, 6
	default:
		return TypeThreePad, 3
	}
}

// classify maps the winning candidate to a strip family and computes the
// confidence score. The others list holds the remaining candidates, used
// only for corroboration credit. fallback reports that a non-cluster
// strategy had to stand in for an empty cluster candidate.
func classify(winner SegmentCandidate, others []SegmentCandidate, fallback bool) Detection {
	padCount := len(winner.Segments)
	inferred, expected := inferType(padCount)
	if inferred == TypeUnknown {
		return degenerate()
	}

	stats := winner.Stats

	countScore := clamp01(1 - absFloat(float64(padCount)-expected)/expected)

	// Stability blends overall pad strength with uniformity across pads: a
	// strip whose weakest pad is nearly as prominent as the average is a
	// cleaner read than one carried by a single strong pad.
	uniformity := 0.0
	if stats.AvgStrength > 0 {
		uniformity = clamp01(stats.MinStrength / stats.AvgStrength)
	}
	stability := stabilityStrengthWeight*strengthScore(stats.AvgStrength) +
		stabilityUniformWeight*uniformity

	confidence := confidenceBase +
		confidenceCountWeight*countScore +
		confidenceStability*stability +
		confidenceConsistency*spanScore(stats) +
		confidenceGap*gapScore(stats.GapRatio)

	if winner.Source == SourcePeak {
		confidence += confidencePeakWinner
	}

	corroboration := 0.0
	for _, c := range others {
		if c.Source == winner.Source || len(c.Segments) == 0 {
			continue
		}
		if family, _ := inferType(len(c.Segments)); family == inferred {
			corroboration += confidenceCorroboration
		}
	}
	if corroboration > confidenceCorroboMax {
		corroboration = confidenceCorroboMax
	}
	confidence += corroboration

	if fallback {
		confidence -= confidenceFallbackDrop
	}

	return Detection{
		PadCount:     padCount,
		InferredType: inferred,
		Confidence:   clamp01(confidence),
	}
}
