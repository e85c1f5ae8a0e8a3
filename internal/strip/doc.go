// Package strip implements the strip-type detection pipeline: given a
// photograph of a test strip, determine how many reagent pads it contains
// and classify it into one of two known product families with a confidence
// score.
//
// # Pipeline
//
// Data flows strictly forward; no stage mutates another's inputs:
//
//  1. Axis sampling: the pixel buffer is reduced to a fixed-size ordered
//     sequence of color/lightness/saturation samples along the strip's
//     long axis.
//  2. Signal conditioning: the saturation series is smoothed and a local
//     prominence signal (saturation above a local baseline) is derived.
//  3. Segmentation: three independent strategies — color clustering, score
//     thresholding, and peak detection — each propose a list of contiguous
//     pad segments.
//  4. Evaluation: the strategies' candidates compete through one weighted
//     scoring function; the winner's pad count drives classification.
//  5. Classification: the pad count maps to a strip family (three-pad,
//     six-pad, or unknown) with a blended confidence score in [0,1].
//
// # Invariants
//
// Segments within a candidate are non-overlapping and ordered by start
// index. The sample sequence length is fixed per detection run. All derived
// structures are value objects without back-references.
//
// # Error Handling
//
// Detection never fails its caller: undecodable images, missing drawable
// surfaces, and degenerate (flat) signals all yield the zero-confidence
// result {padCount: 0, inferredType: "unknown", confidence: 0}.
package strip
