// Package imaging handles resolution of image resources for strip detection.
//
// It loads and decodes images from local paths or http(s) URLs and flattens
// them into read-only RGBA pixel buffers for the sampling stage. Decoding is
// the only I/O the detection pipeline performs; everything downstream is pure
// computation over the buffer.
//
// # Thread Safety
//
// The Loader type is safe for concurrent use. PixelBuffer values are never
// mutated after construction, so concurrent detections on the same buffer
// are safe without locking.
//
// # Error Handling
//
// Functions return errors for unreadable files, failed fetches, and
// undecodable data. Callers in the detection pipeline map all such errors to
// the degenerate zero-confidence result rather than propagating them.
package imaging
