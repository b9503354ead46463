// Package kitty streams rasterized frames to a terminal using the kitty
// graphics protocol.
package kitty

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"game-of-life/internal/render"
)

const (
	// ImageID is the persistent image id every frame is transmitted to.
	ImageID = 246
	// MaxChunk is the largest payload chunk the protocol accepts.
	MaxChunk = 4096

	colorDepth = 24
	quiet      = 2

	actionTransmitDisplay = 'T'
	actionTransmit        = 't'
)

// ErrInvalidChunk is returned for chunk sizes that are not a positive
// multiple of 4 up to MaxChunk.
var ErrInvalidChunk = errors.New("invalid chunk size")

// Options configures an Emitter.
type Options struct {
	// FlushEvery flushes the output whenever the frame generation is a
	// multiple of it. Zero or negative flushes every frame.
	FlushEvery int
	// Chunk splits payloads into chunks of at most this many bytes. Zero
	// sends each frame as a single escape sequence.
	Chunk int
}

// ValidateChunk reports whether n is usable as Options.Chunk.
func ValidateChunk(n int) error {
	if n == 0 {
		return nil
	}
	if n < 0 || n > MaxChunk || n%4 != 0 {
		return fmt.Errorf("%w: %d", ErrInvalidChunk, n)
	}
	return nil
}

// Emitter writes frames as kitty graphics escape sequences. The generation 0
// frame creates and displays the image, later frames replace its data.
type Emitter struct {
	w    *bufio.Writer
	opts Options
}

// NewEmitter wraps w in a buffered emitter.
func NewEmitter(w io.Writer, opts Options) (*Emitter, error) {
	if err := ValidateChunk(opts.Chunk); err != nil {
		return nil, fmt.Errorf("kitty: %w", err)
	}
	return &Emitter{w: bufio.NewWriterSize(w, 64*1024), opts: opts}, nil
}

// Emit writes the rendered frame.
func (e *Emitter) Emit(f *render.Frame) error {
	action := byte(actionTransmit)
	if f.Generation() == 0 {
		action = actionTransmitDisplay
	}
	payload := f.Payload()

	var err error
	if e.opts.Chunk == 0 || len(payload) <= e.opts.Chunk {
		_, err = fmt.Fprintf(e.w, "\x1b_Ga=%c,f=%d,s=%d,v=%d,i=%d,q=%d;%s\x1b\\",
			action, colorDepth, f.Width(), f.Height(), ImageID, quiet, payload)
	} else {
		err = e.emitChunked(action, f, payload)
	}
	if err != nil {
		return fmt.Errorf("kitty: write frame %d: %w", f.Generation(), err)
	}

	if e.opts.FlushEvery <= 0 || f.Generation()%uint32(e.opts.FlushEvery) == 0 {
		if err := e.w.Flush(); err != nil {
			return fmt.Errorf("kitty: flush: %w", err)
		}
	}
	return nil
}

func (e *Emitter) emitChunked(action byte, f *render.Frame, payload []byte) error {
	for start := 0; start < len(payload); start += e.opts.Chunk {
		end := min(start+e.opts.Chunk, len(payload))
		more := 1
		if end == len(payload) {
			more = 0
		}
		var err error
		if start == 0 {
			_, err = fmt.Fprintf(e.w, "\x1b_Ga=%c,f=%d,s=%d,v=%d,i=%d,q=%d,m=%d;%s\x1b\\",
				action, colorDepth, f.Width(), f.Height(), ImageID, quiet, more, payload[start:end])
		} else {
			_, err = fmt.Fprintf(e.w, "\x1b_Gm=%d;%s\x1b\\", more, payload[start:end])
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Close flushes any buffered output.
func (e *Emitter) Close() error {
	if err := e.w.Flush(); err != nil {
		return fmt.Errorf("kitty: flush: %w", err)
	}
	return nil
}
