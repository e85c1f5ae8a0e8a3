package strip

import (
	"testing"
)

func TestInferType(t *testing.T) {
	tests := []struct {
		padCount int
		want     StripType
	}{
		{0, TypeUnknown},
		{1, TypeThreePad},
		{2, TypeThreePad},
		{3, TypeThreePad},
		{4, TypeSixPad}, // boundary breaks toward six-pad
		{5, TypeSixPad},
		{6, TypeSixPad},
		{7, TypeSixPad},
	}
	for _, tt := range tests {
		if got, _ := inferType(tt.padCount); got != tt.want {
			t.Errorf("inferType(%d) = %s, want %s", tt.padCount, got, tt.want)
		}
	}
}

func TestClassify_ZeroSegmentsIsDegenerate(t *testing.T) {
	det := classify(SegmentCandidate{Source: SourceCluster}, nil, false)

	if det.PadCount != 0 {
		t.Errorf("padCount: got %d, want 0", det.PadCount)
	}
	if det.InferredType != TypeUnknown {
		t.Errorf("inferredType: got %s, want unknown", det.InferredType)
	}
	if det.Confidence != 0 {
		t.Errorf("confidence: got %g, want exactly 0", det.Confidence)
	}
}

func TestClassify_StrongSixPadEvidence(t *testing.T) {
	winner := candidateWith(SourcePeak, 6, statsFor(14, 13, 10, 0.5, 0.25))

	det := classify(winner, nil, false)
	if det.InferredType != TypeSixPad {
		t.Fatalf("inferredType: got %s, want six-pad", det.InferredType)
	}
	if det.PadCount != 6 {
		t.Errorf("padCount: got %d, want 6", det.PadCount)
	}
	if det.Confidence <= 0.7 {
		t.Errorf("confidence: got %g, want > 0.7", det.Confidence)
	}
	if det.Confidence > 1 {
		t.Errorf("confidence: got %g, want <= 1", det.Confidence)
	}
}

func TestClassify_StrongThreePadEvidence(t *testing.T) {
	winner := candidateWith(SourcePeak, 3, statsFor(14, 13, 18, 1, 0.3))

	det := classify(winner, nil, false)
	if det.InferredType != TypeThreePad {
		t.Fatalf("inferredType: got %s, want three-pad", det.InferredType)
	}
	if det.Confidence <= 0.7 {
		t.Errorf("confidence: got %g, want > 0.7", det.Confidence)
	}
}

func TestClassify_FallbackPenalty(t *testing.T) {
	// Middling stats keep the confidence below the clamp so the penalty is
	// observable.
	winner := candidateWith(SourceScore, 6, statsFor(6, 3, 10, 3, 0.45))

	normal := classify(winner, nil, false)
	fallback := classify(winner, nil, true)

	diff := normal.Confidence - fallback.Confidence
	if !closeTo(diff, confidenceFallbackDrop) {
		t.Errorf("fallback penalty = %g, want %g", diff, confidenceFallbackDrop)
	}
}

func TestClassify_CorroborationCredit(t *testing.T) {
	winner := candidateWith(SourceScore, 6, statsFor(6, 3, 10, 3, 0.45))
	agreeing := candidateWith(SourceCluster, 5, statsFor(9, 7, 11, 2, 0.35)) // also six-pad family
	disagreeing := candidateWith(SourcePeak, 3, statsFor(9, 7, 11, 2, 0.35))

	alone := classify(winner, nil, false)
	corroborated := classify(winner, []SegmentCandidate{winner, agreeing, disagreeing}, false)

	diff := corroborated.Confidence - alone.Confidence
	if !closeTo(diff, confidenceCorroboration) {
		t.Errorf("corroboration credit = %g, want %g", diff, confidenceCorroboration)
	}
}

func TestClassify_ConfidenceClamped(t *testing.T) {
	// Overwhelming evidence must not push confidence past 1.
	winner := candidateWith(SourcePeak, 6, statsFor(50, 50, 10, 0, 0))
	agree1 := candidateWith(SourceCluster, 6, statsFor(50, 50, 10, 0, 0))
	agree2 := candidateWith(SourceScore, 6, statsFor(50, 50, 10, 0, 0))

	det := classify(winner, []SegmentCandidate{winner, agree1, agree2}, false)
	if det.Confidence != 1 {
		t.Errorf("confidence: got %g, want clamped to 1", det.Confidence)
	}
}
