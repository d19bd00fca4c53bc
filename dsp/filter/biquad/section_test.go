package biquad

import (
	"math"
	"testing"
)

// identity passes input through unchanged.
var identity = Coefficients{B0: 1}

func TestSectionIdentity(t *testing.T) {
	s := NewSection(identity)

	for _, x := range []float64{0, 1, -0.5, 0.25} {
		if got := s.ProcessSample(x); got != x {
			t.Fatalf("identity section changed %g to %g", x, got)
		}
	}
}

func TestProcessBlockMatchesProcessSample(t *testing.T) {
	c := Coefficients{B0: 0.2, B1: 0.4, B2: 0.2, A1: -0.5, A2: 0.1}
	s1 := NewSection(c)
	s2 := NewSection(c)

	input := make([]float64, 256)
	for i := range input {
		input[i] = math.Sin(2 * math.Pi * float64(i) / 17)
	}

	want := make([]float64, len(input))
	for i, x := range input {
		want[i] = s1.ProcessSample(x)
	}

	got := make([]float64, len(input))
	copy(got, input)
	s2.ProcessBlock(got)

	for i := range got {
		if diff := math.Abs(got[i] - want[i]); diff > 1e-12 {
			t.Fatalf("sample %d mismatch: got=%g want=%g diff=%g", i, got[i], want[i], diff)
		}
	}
}

func TestProcessBlockToMatchesInPlace(t *testing.T) {
	c := Coefficients{B0: 0.3, B1: 0.1, B2: 0.05, A1: -0.2, A2: 0.04}
	s1 := NewSection(c)
	s2 := NewSection(c)

	input := make([]float64, 64)
	for i := range input {
		input[i] = math.Cos(float64(i) / 3)
	}

	inPlace := make([]float64, len(input))
	copy(inPlace, input)
	s1.ProcessBlock(inPlace)

	dst := make([]float64, len(input))
	s2.ProcessBlockTo(dst, input)

	for i := range dst {
		if dst[i] != inPlace[i] {
			t.Fatalf("sample %d mismatch: got=%g want=%g", i, dst[i], inPlace[i])
		}
	}
}

func TestStatePersistsAcrossBlocks(t *testing.T) {
	c := Coefficients{B0: 0.2, B1: 0.4, B2: 0.2, A1: -0.5, A2: 0.1}
	whole := NewSection(c)
	split := NewSection(c)

	input := make([]float64, 128)
	for i := range input {
		input[i] = math.Sin(float64(i) / 5)
	}

	want := make([]float64, len(input))
	copy(want, input)
	whole.ProcessBlock(want)

	got := make([]float64, len(input))
	copy(got, input)
	split.ProcessBlock(got[:37])
	split.ProcessBlock(got[37:90])
	split.ProcessBlock(got[90:])

	for i := range got {
		if diff := math.Abs(got[i] - want[i]); diff > 1e-12 {
			t.Fatalf("block split changed output at %d: got=%g want=%g", i, got[i], want[i])
		}
	}
}

func TestResetAndStateRoundTrip(t *testing.T) {
	c := Coefficients{B0: 0.5, B1: 0.25, A1: -0.3}
	s := NewSection(c)

	s.ProcessSample(1)
	s.ProcessSample(-0.5)

	saved := s.State()
	y1 := s.ProcessSample(0.25)

	s.SetState(saved)
	y2 := s.ProcessSample(0.25)

	if y1 != y2 {
		t.Fatalf("state round trip diverged: %g vs %g", y1, y2)
	}

	s.Reset()
	if got := s.State(); got != [2]float64{} {
		t.Fatalf("state after Reset = %v", got)
	}
}

func BenchmarkProcessBlock(b *testing.B) {
	s := NewSection(Coefficients{B0: 0.2, B1: 0.4, B2: 0.2, A1: -0.5, A2: 0.1})
	buf := make([]float64, 1024)
	for i := range buf {
		buf[i] = math.Sin(float64(i) / 7)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.ProcessBlock(buf)
	}
}
