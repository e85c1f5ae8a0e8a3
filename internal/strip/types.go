package strip

// Source identifies which segmentation strategy produced a candidate.
type Source int

const (
	// SourceCluster groups samples by running-mean color distance.
	SourceCluster Source = iota
	// SourceScore thresholds a per-sample pad-likelihood score.
	SourceScore
	// SourcePeak derives segments from prominence peaks.
	SourcePeak
)

func (s Source) String() string {
	switch s {
	case SourceCluster:
		return "cluster"
	case SourceScore:
		return "score"
	case SourcePeak:
		return "peak"
	default:
		return "unknown"
	}
}

// AxisSample is one point along the strip's long axis: the mean color of a
// small sampled patch plus its derived lightness and saturation, both scaled
// to [0,100]. Samples are immutable once produced and ordered by physical
// position along the strip.
type AxisSample struct {
	Index      int
	R, G, B    float64 // mean patch color, 0-255
	Lightness  float64 // HSL lightness, 0-100
	Saturation float64 // HSV saturation, 0-100
}

// SampleSegment is a contiguous index range [Start,End] over the sample
// sequence, hypothesized to be one reagent pad. Color, lightness and
// saturation are averaged over the range. PeakStrength is the prominence at
// the seeding peak for peak-derived segments and zero otherwise.
type SampleSegment struct {
	Start, End   int
	R, G, B      float64
	Lightness    float64
	Saturation   float64
	PeakStrength float64
}

// Span returns the number of samples the segment covers.
func (s SampleSegment) Span() int { return s.End - s.Start + 1 }

// SegmentStats aggregates descriptors over a candidate's segments. Derived,
// recomputed per candidate, never mutated.
type SegmentStats struct {
	AvgStrength float64 // mean per-segment prominence strength
	MinStrength float64 // weakest segment's strength
	SpanMean    float64 // mean span length in samples
	SpanStdDev  float64 // stddev of span lengths
	GapRatio    float64 // fraction of the axis not covered by any segment
}

// SegmentCandidate is one strategy's proposed pad layout. Stats is nil when
// the strategy found no segments.
type SegmentCandidate struct {
	Source   Source
	Segments []SampleSegment
	Stats    *SegmentStats
}

// StripType is the inferred product family of a test strip.
type StripType string

const (
	TypeThreePad StripType = "three-pad"
	TypeSixPad   StripType = "six-pad"
	TypeUnknown  StripType = "unknown"
)

// Detection is the final pipeline output.
type Detection struct {
	PadCount     int       `json:"padCount"`
	InferredType StripType `json:"inferredType"`
	Confidence   float64   `json:"confidence"`
}

// degenerate is the zero-confidence result returned for undecodable images
// and flat signals.
func degenerate() Detection {
	return Detection{PadCount: 0, InferredType: TypeUnknown, Confidence: 0}
}
