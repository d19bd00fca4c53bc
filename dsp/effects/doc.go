// Package effects provides the non-I/O DSP stages of the guitar amp chain.
//
//   - Gain: clean scalar gain.
//   - Distortion: tanh soft clipping with drive and level compensation.
//   - ToneControl: three-band EQ (bass shelf, mid emphasis, treble shelf)
//     built from persistent biquad sections.
//   - Reverb: single-tap feedback delay line with wet/dry mix.
//
// All stages are designed for block-at-a-time real-time processing with
// zero-allocation hot paths. Stateful stages (ToneControl, Reverb) carry
// their internal memory across calls so output is continuous at block
// boundaries. None of the stages is safe for concurrent use.
package effects
