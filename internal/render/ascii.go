package render

import (
	"fmt"
	"io"

	"game-of-life/internal/core"
)

const (
	asciiAlive = '@'
	asciiDead  = '.'
)

// ASCIIFrame renders a board as one byte per cell with a line feed after
// every row.
type ASCIIFrame struct {
	cols, rows int
	buffer     []byte
	generation uint32
}

// NewASCIIFrame allocates a text frame for a cols x rows board.
func NewASCIIFrame(cols, rows int) (*ASCIIFrame, error) {
	if _, err := core.NewGrid(cols, rows); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return &ASCIIFrame{cols: cols, rows: rows, buffer: make([]byte, (cols+1)*rows)}, nil
}

// Render writes the board into the frame and captures its generation.
func (a *ASCIIFrame) Render(b core.Board) {
	size := b.Size()
	if size.W != a.cols || size.H != a.rows {
		return
	}
	i := 0
	for n, c := range b.Cells() {
		if c == core.Alive {
			a.buffer[i] = asciiAlive
		} else {
			a.buffer[i] = asciiDead
		}
		i++
		if (n+1)%a.cols == 0 {
			a.buffer[i] = '\n'
			i++
		}
	}
	a.generation = b.Generation()
}

// Bytes returns the rendered rows including line feeds.
func (a *ASCIIFrame) Bytes() []byte { return a.buffer }

// Row returns row y without its line feed.
func (a *ASCIIFrame) Row(y int) []byte {
	start := y * (a.cols + 1)
	return a.buffer[start : start+a.cols]
}

// Generation returns the generation captured by the last Render.
func (a *ASCIIFrame) Generation() uint32 { return a.generation }

// WriteTo writes a full terminal frame: clear screen, the board and a
// generation footer.
func (a *ASCIIFrame) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintf(w, "\x1b[3J\x1b[H\x1b[2J\n%s\nGeneration: %d\n", a.buffer, a.generation)
	return int64(n), err
}
