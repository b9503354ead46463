package render

import (
	"errors"
	"fmt"

	"game-of-life/internal/base64"
	"game-of-life/internal/core"
)

const (
	// RGBBytes is the number of bytes per pixel in a Frame.
	RGBBytes = 3

	alivePixel = 0xff
	deadPixel  = 0x00
)

// ErrInvalidScale is returned for a scale factor below 1.
var ErrInvalidScale = errors.New("invalid scale")

// Frame rasterizes a board into a 24-bit RGB buffer where every cell becomes
// a scale x scale block. The buffers are allocated once and reused by every
// call to Render.
type Frame struct {
	cols, rows int
	scale      int

	buffer     []byte
	chunkAlive []byte
	payload    []byte
	generation uint32
}

// NewFrame allocates a frame for a cols x rows board upscaled by scale.
func NewFrame(cols, rows, scale int) (*Frame, error) {
	if _, err := core.NewGrid(cols, rows); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	if scale < 1 {
		return nil, fmt.Errorf("render: %w: %d", ErrInvalidScale, scale)
	}
	chunk := make([]byte, RGBBytes*scale)
	for i := range chunk {
		chunk[i] = alivePixel
	}
	return &Frame{
		cols:       cols,
		rows:       rows,
		scale:      scale,
		buffer:     make([]byte, cols*rows*RGBBytes*scale*scale),
		chunkAlive: chunk,
	}, nil
}

// Width returns the raster width in pixels.
func (f *Frame) Width() int { return f.cols * f.scale }

// Height returns the raster height in pixels.
func (f *Frame) Height() int { return f.rows * f.scale }

// Scale returns the upscale factor.
func (f *Frame) Scale() int { return f.scale }

// Generation returns the board generation captured by the last Render.
func (f *Frame) Generation() uint32 { return f.generation }

// Pixels exposes the RGB buffer. It is overwritten by the next Render.
func (f *Frame) Pixels() []byte { return f.buffer }

// Render rasterizes the current board of b and captures its generation.
// Boards of a different size than the frame are ignored.
func (f *Frame) Render(b core.Board) {
	size := b.Size()
	if size.W != f.cols || size.H != f.rows {
		return
	}
	for i := range f.buffer {
		f.buffer[i] = deadPixel
	}

	cells := b.Cells()
	chunkLen := len(f.chunkAlive)
	rowLen := f.cols * chunkLen
	cur := 0
	for y := 0; y < f.rows; y++ {
		rowStart := cur
		for _, c := range cells[y*f.cols : (y+1)*f.cols] {
			// The buffer is already dead-colored, only alive cells need writes.
			if c == core.Alive {
				copy(f.buffer[cur:cur+chunkLen], f.chunkAlive)
			}
			cur += chunkLen
		}
		for i := 1; i < f.scale; i++ {
			copy(f.buffer[cur:cur+rowLen], f.buffer[rowStart:rowStart+rowLen])
			cur += rowLen
		}
	}
	f.generation = b.Generation()
}

// Payload returns the base64 encoding of the RGB buffer. The returned slice is
// reused by the next call.
func (f *Frame) Payload() []byte {
	f.payload = base64.AppendEncode(f.payload[:0], f.buffer)
	return f.payload
}
