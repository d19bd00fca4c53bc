// Package biquad provides biquad (second-order IIR) filter runtime primitives.
//
// A [Section] implements Direct Form II Transposed processing for a single
// second-order section defined by [Coefficients]. The tone-control bands of
// the amp each own one Section whose delay memory persists across blocks.
//
// This package provides the processing runtime only. Coefficient design
// (Butterworth/RBJ lowpass, highpass, bandpass) lives in dsp/filter/design.
package biquad
