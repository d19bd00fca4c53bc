// Package amp implements a virtual guitar amplifier: a mono, block-at-a-time
// effects chain of clean gain, tanh soft-clip distortion, three-band tone
// control and a feedback-delay reverb, driven by a clamped parameter store.
//
// The chain order is fixed: Gain, Distortion, ToneControl, Reverb. Every
// stage is invoked on every block; stages short-circuit to exact identity
// when their control sits at its neutral value. Filter and delay state
// persists across blocks, so output is continuous at block boundaries.
//
// An Amp is not safe for concurrent use. Callers that change parameters from
// another goroutine must serialize those writes against Process.
package amp

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-amp/dsp/core"
	"github.com/cwbudde/algo-amp/dsp/effects"
)

// ErrLengthMismatch reports that a processed block changed length. With
// correct stage implementations this cannot happen.
var ErrLengthMismatch = errors.New("amp: processed block length mismatch")

// Amp is the virtual amplifier engine.
type Amp struct {
	cfg    core.ProcessorConfig
	params Params

	gain       *effects.Gain
	distortion *effects.Distortion
	tone       *effects.ToneControl
	reverb     *effects.Reverb
}

// New creates an amp for the configured sample rate (default 44.1 kHz),
// with the clean default parameters.
func New(opts ...core.ProcessorOption) (*Amp, error) {
	cfg := core.ApplyProcessorOptions(opts...)

	tone, err := effects.NewToneControl(cfg.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("amp: tone control: %w", err)
	}

	reverb, err := effects.NewReverb(cfg.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("amp: reverb: %w", err)
	}

	a := &Amp{
		cfg:        cfg,
		params:     DefaultParams(),
		gain:       effects.NewGain(),
		distortion: effects.NewDistortion(),
		tone:       tone,
		reverb:     reverb,
	}
	a.push()

	return a, nil
}

// SetParameters merges u into the parameter store. Present fields are
// clamped to their declared range and applied; absent fields keep their
// value. It never fails and never partially applies.
func (a *Amp) SetParameters(u Update) {
	a.params.apply(u)
	a.push()
}

// Parameters returns a copy of the current control values.
func (a *Amp) Parameters() Params {
	return a.params
}

// Config returns the processing configuration.
func (a *Amp) Config() core.ProcessorConfig {
	return a.cfg
}

// Process runs one block through the chain in place and returns it. The
// output has the same length as the input; values are not limited to
// [-1, 1], final clipping belongs to the output boundary.
func (a *Amp) Process(block []float64) ([]float64, error) {
	n := len(block)

	a.gain.ProcessInPlace(block)
	a.distortion.ProcessInPlace(block)
	a.tone.ProcessInPlace(block)
	a.reverb.ProcessInPlace(block)

	if len(block) != n {
		return nil, ErrLengthMismatch
	}

	return block, nil
}

// Reset clears all filter and delay state without touching parameters.
func (a *Amp) Reset() {
	a.tone.Reset()
	a.reverb.Reset()
}

// push transfers the stored values into the stages. The store clamps every
// value into its setter's accepted range, so the error returns cannot fire.
func (a *Amp) push() {
	_ = a.gain.SetAmount(a.params.Gain)
	_ = a.distortion.SetAmount(a.params.Distortion)
	_ = a.tone.SetBass(a.params.Bass)
	_ = a.tone.SetMid(a.params.Mid)
	_ = a.tone.SetTreble(a.params.Treble)
	_ = a.reverb.SetMix(a.params.ReverbMix)
}
