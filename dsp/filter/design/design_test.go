package design

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-amp/dsp/filter/biquad"
)

const sampleRate = 44100.0

// magnitudeAt evaluates |H(e^jw)| of a biquad at freq Hz.
func magnitudeAt(c biquad.Coefficients, freq float64) float64 {
	w := 2 * math.Pi * freq / sampleRate
	z1 := cmplx.Exp(complex(0, -w))
	z2 := z1 * z1

	num := complex(c.B0, 0) + complex(c.B1, 0)*z1 + complex(c.B2, 0)*z2
	den := complex(1, 0) + complex(c.A1, 0)*z1 + complex(c.A2, 0)*z2

	return cmplx.Abs(num / den)
}

func TestLowpassResponse(t *testing.T) {
	c := Lowpass(100, ButterworthQ, sampleRate)

	if got := magnitudeAt(c, 1); math.Abs(got-1) > 1e-3 {
		t.Fatalf("DC gain = %g, want ~1", got)
	}
	if got := magnitudeAt(c, 100); math.Abs(got-1/math.Sqrt2) > 1e-3 {
		t.Fatalf("cutoff gain = %g, want ~0.707", got)
	}
	if got := magnitudeAt(c, 10000); got > 1e-3 {
		t.Fatalf("stopband gain = %g, want ~0", got)
	}
}

func TestHighpassResponse(t *testing.T) {
	c := Highpass(3000, ButterworthQ, sampleRate)

	if got := magnitudeAt(c, 20000); math.Abs(got-1) > 1e-2 {
		t.Fatalf("passband gain = %g, want ~1", got)
	}
	if got := magnitudeAt(c, 3000); math.Abs(got-1/math.Sqrt2) > 1e-3 {
		t.Fatalf("cutoff gain = %g, want ~0.707", got)
	}
	if got := magnitudeAt(c, 30); got > 1e-3 {
		t.Fatalf("stopband gain = %g, want ~0", got)
	}
}

func TestBandpassEdgesResponse(t *testing.T) {
	c := BandpassEdges(400, 1600, sampleRate)

	center := math.Sqrt(400.0 * 1600.0)
	if got := magnitudeAt(c, center); math.Abs(got-1) > 1e-3 {
		t.Fatalf("center gain = %g, want ~1", got)
	}
	if got := magnitudeAt(c, 40); got > 0.1 {
		t.Fatalf("low stopband gain = %g, want small", got)
	}
	if got := magnitudeAt(c, 16000); got > 0.1 {
		t.Fatalf("high stopband gain = %g, want small", got)
	}
}

func TestInvalidParametersReturnZeroCoefficients(t *testing.T) {
	zero := biquad.Coefficients{}

	tests := []struct {
		name string
		got  biquad.Coefficients
	}{
		{"zero freq", Lowpass(0, ButterworthQ, sampleRate)},
		{"freq above nyquist", Highpass(30000, ButterworthQ, sampleRate)},
		{"zero sample rate", Bandpass(800, 1, 0)},
		{"inverted edges", BandpassEdges(1600, 400, sampleRate)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != zero {
				t.Fatalf("got %+v, want zero coefficients", tt.got)
			}
		})
	}
}

func TestNegativeQFallsBackToButterworth(t *testing.T) {
	if got, want := Lowpass(100, -1, sampleRate), Lowpass(100, ButterworthQ, sampleRate); got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}
