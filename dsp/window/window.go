// Package window generates the analysis window functions used by the
// spectrum measurements in measure/response.
package window

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
)

// Option configures window generation.
type Option func(*config)

type config struct {
	periodic bool
}

// WithPeriodic configures periodic form (FFT framing) instead of symmetric form.
func WithPeriodic() Option {
	return func(c *config) {
		c.periodic = true
	}
}

// Cosine-sum coefficients, a0 - a1*cos(2πx) + a2*cos(4πx).
var (
	hannCoeffs     = []float64{0.5, 0.5}
	hammingCoeffs  = []float64{0.54, 0.46}
	blackmanCoeffs = []float64{0.42, 0.5, 0.08}
)

// Generate returns window coefficients of the given length.
func Generate(t Type, length int, opts ...Option) []float64 {
	if length <= 0 {
		return nil
	}

	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	out := make([]float64, length)
	for i := range out {
		x := samplePosition(i, length, cfg.periodic)
		out[i] = evalWindow(t, x)
	}

	return out
}

// Apply multiplies buf in-place by the selected window.
func Apply(t Type, buf []float64, opts ...Option) {
	if len(buf) == 0 {
		return
	}

	coeffs := Generate(t, len(buf), opts...)
	vecmath.MulBlockInPlace(buf, coeffs)
}

// CoherentGain returns the mean coefficient value, the factor by which a
// windowed sine's spectral peak is reduced.
func CoherentGain(coeffs []float64) float64 {
	if len(coeffs) == 0 {
		return 0
	}

	sum := 0.0
	for _, c := range coeffs {
		sum += c
	}

	return sum / float64(len(coeffs))
}

func samplePosition(i, length int, periodic bool) float64 {
	if periodic {
		return float64(i) / float64(length)
	}

	if length == 1 {
		return 0.5
	}

	return float64(i) / float64(length-1)
}

func evalWindow(t Type, x float64) float64 {
	switch t {
	case TypeHann:
		return cosineFromCoeffs(x, hannCoeffs)
	case TypeHamming:
		return cosineFromCoeffs(x, hammingCoeffs)
	case TypeBlackman:
		return cosineFromCoeffs(x, blackmanCoeffs)
	default:
		return 1
	}
}

func cosineFromCoeffs(x float64, coeffs []float64) float64 {
	sum := 0.0
	sign := 1.0
	for k, a := range coeffs {
		sum += sign * a * math.Cos(2*math.Pi*float64(k)*x)
		sign = -sign
	}

	return sum
}
