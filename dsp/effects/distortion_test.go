package effects

import (
	"math"
	"testing"
)

func TestDistortionZeroAmountIsExactIdentity(t *testing.T) {
	d := NewDistortion()

	input := []float64{0, 0.3, -0.7, 1, -1, 1e-9}
	got := make([]float64, len(input))
	copy(got, input)
	d.ProcessInPlace(got)

	for i := range got {
		if got[i] != input[i] {
			t.Fatalf("sample %d changed: got=%g want=%g", i, got[i], input[i])
		}
	}
}

func TestDistortionTransferFunction(t *testing.T) {
	d := NewDistortion()
	if err := d.SetAmount(0.5); err != nil {
		t.Fatal(err)
	}

	input := []float64{0.01, -0.1, 0.5, -1}
	got := make([]float64, len(input))
	copy(got, input)
	d.ProcessInPlace(got)

	drive := 1 + 0.5*49.0
	makeup := 1 / (1 + 0.5*0.5)
	for i, x := range input {
		want := math.Tanh(x*drive) * makeup
		if math.Abs(got[i]-want) > 1e-15 {
			t.Fatalf("sample %d: got=%g want=%g", i, got[i], want)
		}
	}
}

func TestDistortionBoundedOutput(t *testing.T) {
	for _, amount := range []float64{0.1, 0.5, 0.9, 1} {
		d := NewDistortion()
		if err := d.SetAmount(amount); err != nil {
			t.Fatal(err)
		}

		buf := []float64{-100, -1, -0.5, 0, 0.5, 1, 100}
		d.ProcessInPlace(buf)

		for i, v := range buf {
			if v <= -1 || v >= 1 || math.IsNaN(v) {
				t.Fatalf("amount %g sample %d out of (-1, 1): %g", amount, i, v)
			}
		}
	}
}

func TestDistortionOddSymmetry(t *testing.T) {
	d := NewDistortion()
	if err := d.SetAmount(0.8); err != nil {
		t.Fatal(err)
	}

	pos := []float64{0.1, 0.4, 0.9}
	neg := []float64{-0.1, -0.4, -0.9}
	d.ProcessInPlace(pos)
	d.ProcessInPlace(neg)

	for i := range pos {
		if math.Abs(pos[i]+neg[i]) > 1e-15 {
			t.Fatalf("sample %d not odd-symmetric: %g vs %g", i, pos[i], neg[i])
		}
	}
}

func TestDistortionSetAmountRejectsInvalid(t *testing.T) {
	d := NewDistortion()

	for _, amount := range []float64{-0.1, 1.1, math.NaN()} {
		if err := d.SetAmount(amount); err == nil {
			t.Fatalf("SetAmount(%g) should fail", amount)
		}
	}
}

func BenchmarkDistortionProcessInPlace(b *testing.B) {
	d := NewDistortion()
	if err := d.SetAmount(0.7); err != nil {
		b.Fatal(err)
	}

	buf := make([]float64, 1024)
	for i := range buf {
		buf[i] = math.Sin(float64(i) / 9)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.ProcessInPlace(buf)
	}
}
