package response

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-amp/dsp/core"
	"github.com/cwbudde/algo-amp/dsp/effects"
	"github.com/cwbudde/algo-amp/dsp/signal"
	"github.com/cwbudde/algo-amp/dsp/window"
)

type passthrough struct{}

func (passthrough) ProcessInPlace([]float64) {}

func TestMagnitudePassthroughIsFlat(t *testing.T) {
	mags, err := Magnitude(passthrough{}, Config{})
	if err != nil {
		t.Fatal(err)
	}

	if len(mags) != defaultFFTSize/2+1 {
		t.Fatalf("bins = %d, want %d", len(mags), defaultFFTSize/2+1)
	}
	for i, m := range mags {
		if math.Abs(m-1) > 1e-9 {
			t.Fatalf("bin %d = %g, want 1", i, m)
		}
	}
}

func TestMagnitudeOfBassBoost(t *testing.T) {
	cfg := Config{SampleRate: 44100, FFTSize: 8192}

	tc, err := effects.NewToneControl(cfg.SampleRate)
	if err != nil {
		t.Fatal(err)
	}
	if err := tc.SetBass(1); err != nil {
		t.Fatal(err)
	}

	mags, err := Magnitude(tc, cfg)
	if err != nil {
		t.Fatal(err)
	}

	if got := mags[BinFor(50, cfg)]; got < 1.2 {
		t.Fatalf("|H(50 Hz)| = %g, want boosted above 1.2", got)
	}
	if got := mags[BinFor(5000, cfg)]; math.Abs(got-1) > 0.05 {
		t.Fatalf("|H(5 kHz)| = %g, want ~1", got)
	}
}

func TestSpectrumFindsSinePeak(t *testing.T) {
	cfg := Config{SampleRate: 44100, FFTSize: 4096, WindowType: window.TypeHann}

	gen := signal.NewGenerator(core.WithSampleRate(cfg.SampleRate))
	freq := BinFreq(200, cfg) // exactly on a bin center
	sig, err := gen.Sine(freq, 0.5, cfg.FFTSize)
	if err != nil {
		t.Fatal(err)
	}

	mags, err := Spectrum(sig, cfg)
	if err != nil {
		t.Fatal(err)
	}

	if got := mags[200]; math.Abs(got-0.5) > 0.01 {
		t.Fatalf("peak amplitude = %g, want ~0.5", got)
	}

	if got := mags[600]; got > 0.01 {
		t.Fatalf("off-peak bin = %g, want ~0", got)
	}
}

func TestSpectrumRejectsShortSignal(t *testing.T) {
	if _, err := Spectrum(make([]float64, 16), Config{FFTSize: 1024}); err == nil {
		t.Fatal("short signal should fail")
	}
}

func TestBinHelpers(t *testing.T) {
	cfg := Config{SampleRate: 44100, FFTSize: 4096}

	if got := BinFreq(0, cfg); got != 0 {
		t.Fatalf("BinFreq(0) = %g", got)
	}

	bin := BinFor(441, cfg)
	if diff := math.Abs(BinFreq(bin, cfg) - 441); diff > cfg.SampleRate/float64(cfg.FFTSize) {
		t.Fatalf("BinFor(441) off by %g Hz", diff)
	}

	if got := BinFor(-10, cfg); got != 0 {
		t.Fatalf("negative freq bin = %d, want 0", got)
	}
	if got := BinFor(1e6, cfg); got != cfg.FFTSize/2 {
		t.Fatalf("above-nyquist bin = %d, want %d", got, cfg.FFTSize/2)
	}
}
