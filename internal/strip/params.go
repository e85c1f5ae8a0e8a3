package strip

// Params controls every tunable threshold in the detection pipeline. The
// defaults are calibrated against real strip photos; the evaluator and
// classifier weights are deliberately not exposed here because confidence
// scoring is calibrated against them.
type Params struct {
	// Axis sampling
	SampleCount   int     // samples along the strip axis
	EdgeInsetFrac float64 // padding margin skipped at each end of the axis
	AlphaMin      uint8   // minimum alpha for a pixel to count toward a patch

	// Signal conditioning
	SmoothWindow      int     // centered moving-average window for the saturation series
	BaselineDiv       int     // baseline window ≈ SampleCount / BaselineDiv
	BaselineMinWindow int     // lower bound on the baseline window (made odd)
	ProminenceLift    float64 // weight of the above-global-minimum term

	// Cluster strategy
	ClusterDistMax  float64 // max Euclidean RGB distance to the running segment mean
	SplitEdgeGap    int     // valley must be this many samples from both segment edges
	SplitValleyFrac float64 // valley depth limit relative to the weaker neighboring peak

	// Score strategy
	ScoreLightnessKnee float64 // lightness above which the brightness penalty applies
	ScoreBrightPenalty float64 // penalty per lightness unit above the knee
	ScoreThresholdFrac float64 // dynamic threshold position within the score range
	ScoreThresholdMin  float64 // floor for the dynamic threshold

	// Peak strategy
	PeakMinPromFrac     float64 // minimum prominence as a fraction of the global max
	PeakRelaxedPromFrac float64 // relaxed fraction for the retry pass
	PeakDistDiv         int     // minimum peak distance ≈ SampleCount / PeakDistDiv
	PeakMinDist         int     // lower bound on the minimum peak distance
	PeakMaxCount        int     // keep at most this many strongest peaks
	PeakSoftDropFrac    float64 // range growth stops below this fraction of the peak
	PeakMinRangeSpan    int     // minimum span of a derived range
	PeakSurvivalFrac    float64 // below this filtered/raw ratio, keep the raw set

	// Common pad filter and normalization
	MinSegmentSpan    int     // segments shorter than this are dropped
	BackgroundLight   float64 // lightness above which a segment may be background
	BackgroundSat     float64 // saturation below which a bright segment is background
	NormalizeMaxCount int     // merge adjacent segments until at most this many remain
}

// DefaultParams returns the calibrated detection parameters.
func DefaultParams() Params {
	return Params{
		SampleCount:   96,
		EdgeInsetFrac: 0.08,
		AlphaMin:      220,

		SmoothWindow:      5,
		BaselineDiv:       6,
		BaselineMinWindow: 9,
		ProminenceLift:    0.6,

		ClusterDistMax:  12,
		SplitEdgeGap:    3,
		SplitValleyFrac: 0.55,

		ScoreLightnessKnee: 90,
		ScoreBrightPenalty: 1.5,
		ScoreThresholdFrac: 0.35,
		ScoreThresholdMin:  6,

		PeakMinPromFrac:     0.24,
		PeakRelaxedPromFrac: 0.18,
		PeakDistDiv:         18,
		PeakMinDist:         4,
		PeakMaxCount:        6,
		PeakSoftDropFrac:    0.18,
		PeakMinRangeSpan:    3,
		PeakSurvivalFrac:    0.6,

		MinSegmentSpan:    3,
		BackgroundLight:   92,
		BackgroundSat:     6,
		NormalizeMaxCount: 6,
	}
}

// WithSampleCount returns a copy of params with a different axis resolution.
// The count is fixed per detection run; it is never resized mid-pipeline.
func (p Params) WithSampleCount(n int) Params {
	if n > 0 {
		p.SampleCount = n
	}
	return p
}

// WithClusterDistance returns a copy of params with a different color-break
// threshold for the cluster strategy.
func (p Params) WithClusterDistance(d float64) Params {
	if d > 0 {
		p.ClusterDistMax = d
	}
	return p
}

// baselineWindow computes the baseline moving-average window for a series of
// length n: the next odd number at or above both BaselineMinWindow and n/BaselineDiv.
func (p Params) baselineWindow(n int) int {
	w := n / p.BaselineDiv
	if w < p.BaselineMinWindow {
		w = p.BaselineMinWindow
	}
	if w%2 == 0 {
		w++
	}
	return w
}

// peakMinDistance computes the minimum index distance between accepted peaks.
func (p Params) peakMinDistance(n int) int {
	d := n / p.PeakDistDiv
	if d < p.PeakMinDist {
		d = p.PeakMinDist
	}
	return d
}

// targetPadWidth is the expected span of a single pad on a full six-pad
// strip; cluster segments wider than this are candidates for valley splits.
func (p Params) targetPadWidth() int {
	w := p.SampleCount / 6
	if w < p.MinSegmentSpan*2 {
		w = p.MinSegmentSpan * 2
	}
	return w
}
