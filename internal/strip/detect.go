package strip

import (
	"context"
	"image"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/stat"

	"github.com/poolsense/stripscan/internal/imaging"
)

// flatSignalVariance is the saturation variance below which the sample
// series is considered degenerate (solid-color or empty image).
const flatSignalVariance = 1e-9

// Detector runs the strip-type detection pipeline. Detection is best-effort:
// undecodable images and flat signals yield the degenerate zero-confidence
// result instead of an error, so a Detector never fails its caller.
//
// Every call allocates fresh samples and segments and produces an
// independent result; concurrent detections on different images are safe
// without locking. Logger is a diagnostic side channel only and never
// affects the returned result; it defaults to a no-op logger.
type Detector struct {
	Params Params
	Logger zerolog.Logger

	loader *imaging.Loader
}

// NewDetector creates a detector with the given parameters and a silent
// logger.
func NewDetector(params Params) *Detector {
	return &Detector{
		Params: params,
		Logger: zerolog.Nop(),
		loader: imaging.NewLoader(),
	}
}

// DetectResource resolves an image resource (local path or http(s) URL) and
// classifies it. A resource that cannot be loaded or decoded yields the
// degenerate result; no retry is attempted.
func (d *Detector) DetectResource(ctx context.Context, resource string) Detection {
	img, err := d.loader.Load(ctx, resource)
	if err != nil {
		d.Logger.Warn().Str("resource", resource).Err(err).Msg("image load failed")
		return degenerate()
	}
	return d.DetectImage(img)
}

// DetectImage classifies an already decoded image.
func (d *Detector) DetectImage(img image.Image) Detection {
	buf := imaging.NewPixelBuffer(img)
	if buf == nil {
		d.Logger.Warn().Msg("no drawable surface")
		return degenerate()
	}
	return d.DetectBuffer(buf)
}

// DetectBuffer classifies a pixel buffer. This is the pure core of the
// pipeline: identical buffers always produce bit-identical results.
func (d *Detector) DetectBuffer(buf *imaging.PixelBuffer) Detection {
	return d.detectSamples(SampleAxis(buf, d.Params))
}

func (d *Detector) detectSamples(samples []AxisSample) Detection {
	if len(samples) == 0 {
		return degenerate()
	}

	saturations := make([]float64, len(samples))
	for i, s := range samples {
		saturations[i] = s.Saturation
	}
	if stat.Variance(saturations, nil) < flatSignalVariance {
		d.Logger.Debug().Msg("flat saturation signal")
		return degenerate()
	}

	sig := ConditionSignal(samples, d.Params)

	cluster := clusterSegments(samples, sig, d.Params)
	score := scoreSegments(samples, sig, d.Params)
	peak := peakSegments(samples, sig, d.Params)
	candidates := []SegmentCandidate{cluster, score, peak}

	for _, c := range candidates {
		d.traceCandidate(c)
	}

	winner := evaluateCandidates(candidates)
	fallback := winner.Source != SourceCluster && len(cluster.Segments) == 0

	detection := classify(winner, candidates, fallback)

	d.Logger.Debug().
		Stringer("winner", winner.Source).
		Bool("fallback", fallback).
		Int("padCount", detection.PadCount).
		Str("inferredType", string(detection.InferredType)).
		Float64("confidence", detection.Confidence).
		Msg("strip classified")

	return detection
}

func (d *Detector) traceCandidate(c SegmentCandidate) {
	ev := d.Logger.Debug().
		Stringer("source", c.Source).
		Int("segments", len(c.Segments))
	if c.Stats != nil {
		ev = ev.
			Float64("avgStrength", c.Stats.AvgStrength).
			Float64("gapRatio", c.Stats.GapRatio).
			Float64("spanMean", c.Stats.SpanMean).
			Float64("score", candidateScore(c))
	}
	ev.Msg("segmentation candidate")
}
