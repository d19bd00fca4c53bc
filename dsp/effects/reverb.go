package effects

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-amp/dsp/delay"
)

const (
	// 50 ms of delay at the configured sample rate.
	reverbDelaySeconds = 0.05
	reverbFeedback     = 0.3
)

// Reverb is a single-tap feedback delay line with a wet/dry mix control.
// A mix of 0 is an exact passthrough that leaves the delay state frozen.
// The delay buffer and cursor persist across calls.
type Reverb struct {
	mix  float64
	line *delay.Line
}

// NewReverb creates a reverb sized for the given sample rate with the
// effect disabled.
func NewReverb(sampleRate float64) (*Reverb, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("reverb sample rate must be > 0: %f", sampleRate)
	}

	line, err := delay.New(int(reverbDelaySeconds * sampleRate))
	if err != nil {
		return nil, fmt.Errorf("reverb delay line: %w", err)
	}

	return &Reverb{line: line}, nil
}

// SetMix sets the wet amount in [0, 1].
func (r *Reverb) SetMix(mix float64) error {
	if mix < 0 || mix > 1 || math.IsNaN(mix) {
		return fmt.Errorf("reverb mix must be in [0, 1]: %f", mix)
	}
	r.mix = mix
	return nil
}

// Mix returns the wet amount.
func (r *Reverb) Mix() float64 { return r.mix }

// DelaySamples returns the delay line length in samples.
func (r *Reverb) DelaySamples() int { return r.line.Len() }

// ProcessSample processes one sample through the delay loop. Each call
// reads the slot under the cursor, feeds the input plus scaled feedback
// back into it, and advances the cursor by one.
func (r *Reverb) ProcessSample(input float64) float64 {
	delayed := r.line.Read(r.line.Len())
	r.line.Write(input + delayed*reverbFeedback)

	return input*(1-r.mix) + delayed*r.mix
}

// ProcessInPlace applies the reverb to buf in place, strictly in sample
// order. The write-then-advance sequence is load-bearing: each buffer slot
// must be updated before the cursor moves on, so this must not be
// vectorized across the feedback dependency.
func (r *Reverb) ProcessInPlace(buf []float64) {
	if r.mix == 0 {
		return
	}

	for i := range buf {
		buf[i] = r.ProcessSample(buf[i])
	}
}

// Reset clears the delay buffer and cursor.
func (r *Reverb) Reset() {
	r.line.Reset()
}
