// Package delay provides the circular delay line backing the amp reverb.
package delay

import "fmt"

// Line is a circular delay line with a single write cursor.
type Line struct {
	buffer   []float64
	writePos int
}

// New returns a delay line of fixed size with all-zero content.
func New(size int) (*Line, error) {
	if size <= 0 {
		return nil, fmt.Errorf("delay size must be > 0: %d", size)
	}
	return &Line{buffer: make([]float64, size)}, nil
}

// Len returns internal buffer size.
func (d *Line) Len() int {
	return len(d.buffer)
}

// Write writes one sample and advances the cursor.
func (d *Line) Write(sample float64) {
	d.buffer[d.writePos] = sample
	d.writePos++
	if d.writePos >= len(d.buffer) {
		d.writePos = 0
	}
}

// Read reads an integer delay in samples relative to the write cursor.
// Read(Len()) returns the oldest sample, the slot the next Write replaces.
func (d *Line) Read(delay int) float64 {
	size := len(d.buffer)
	if size == 0 {
		return 0
	}
	readPos := (d.writePos - delay + size) % size
	if readPos < 0 {
		readPos += size
	}
	return d.buffer[readPos]
}

// Reset clears line state.
func (d *Line) Reset() {
	for i := range d.buffer {
		d.buffer[i] = 0
	}
	d.writePos = 0
}
