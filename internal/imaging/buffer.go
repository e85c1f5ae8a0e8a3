package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/clone"
)

// PixelBuffer is a decoded image flattened to premultiplied-free RGBA bytes.
//
// It is the only pixel representation the detection pipeline reads. The buffer
// is produced once by the loader and treated as read-only by every downstream
// stage; nothing in this module mutates Pix after construction.
type PixelBuffer struct {
	// Width is the buffer width in pixels.
	Width int

	// Height is the buffer height in pixels.
	Height int

	// Stride is the byte offset between vertically adjacent pixels.
	Stride int

	// Pix holds the pixel data as R, G, B, A byte quadruplets in row-major
	// order. Its length is Stride * Height.
	Pix []uint8
}

// NewPixelBuffer converts any decoded image into a flat RGBA buffer.
//
// Returns nil for a nil image or an image with an empty bounding box, which
// callers treat as "no drawable surface" and map to the degenerate detection
// result.
func NewPixelBuffer(img image.Image) *PixelBuffer {
	if img == nil {
		return nil
	}
	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil
	}

	rgba := clone.AsRGBA(img)
	return &PixelBuffer{
		Width:  rgba.Bounds().Dx(),
		Height: rgba.Bounds().Dy(),
		Stride: rgba.Stride,
		Pix:    rgba.Pix,
	}
}

// RGBA returns the 8-bit color components of the pixel at (x, y).
// Coordinates are 0-based with origin at the top-left corner.
func (b *PixelBuffer) RGBA(x, y int) (r, g, bl, a uint8) {
	i := y*b.Stride + x*4
	return b.Pix[i], b.Pix[i+1], b.Pix[i+2], b.Pix[i+3]
}
