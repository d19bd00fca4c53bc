package window

import (
	"math"
	"testing"
)

func TestGenerateRectangular(t *testing.T) {
	coeffs := Generate(TypeRectangular, 8)
	for i, c := range coeffs {
		if c != 1 {
			t.Fatalf("coeff %d = %g, want 1", i, c)
		}
	}
}

func TestGenerateHannSymmetric(t *testing.T) {
	coeffs := Generate(TypeHann, 9)

	if math.Abs(coeffs[0]) > 1e-15 || math.Abs(coeffs[8]) > 1e-15 {
		t.Fatalf("symmetric Hann edges should be 0: %g, %g", coeffs[0], coeffs[8])
	}
	if math.Abs(coeffs[4]-1) > 1e-15 {
		t.Fatalf("Hann center = %g, want 1", coeffs[4])
	}
	for i := range coeffs {
		if math.Abs(coeffs[i]-coeffs[len(coeffs)-1-i]) > 1e-15 {
			t.Fatalf("Hann not symmetric at %d", i)
		}
	}
}

func TestGeneratePeriodicHann(t *testing.T) {
	coeffs := Generate(TypeHann, 8, WithPeriodic())

	// Periodic form: w[i] matches a symmetric window of length n+1 with
	// the last sample dropped.
	want := Generate(TypeHann, 9)
	for i := range coeffs {
		if math.Abs(coeffs[i]-want[i]) > 1e-15 {
			t.Fatalf("periodic coeff %d = %g, want %g", i, coeffs[i], want[i])
		}
	}
}

func TestGenerateEdgeCases(t *testing.T) {
	if got := Generate(TypeHann, 0); got != nil {
		t.Fatalf("zero length should return nil, got %v", got)
	}
	if got := Generate(TypeHamming, 1); len(got) != 1 || math.Abs(got[0]-1) > 1e-12 {
		t.Fatalf("length-1 window = %v, want [1]", got)
	}
}

func TestCoherentGain(t *testing.T) {
	if got := CoherentGain(nil); got != 0 {
		t.Fatalf("CoherentGain(nil) = %g, want 0", got)
	}

	// Hann coherent gain approaches 0.5 for large sizes.
	got := CoherentGain(Generate(TypeHann, 4096, WithPeriodic()))
	if math.Abs(got-0.5) > 1e-3 {
		t.Fatalf("Hann coherent gain = %g, want ~0.5", got)
	}
}

func TestApply(t *testing.T) {
	buf := []float64{1, 1, 1, 1}
	Apply(TypeBlackman, buf, WithPeriodic())

	want := Generate(TypeBlackman, 4, WithPeriodic())
	for i := range buf {
		if buf[i] != want[i] {
			t.Fatalf("applied coeff %d = %g, want %g", i, buf[i], want[i])
		}
	}
}
