// Package response measures frequency-domain behavior of amp processing
// stages: magnitude response by impulse excitation and windowed amplitude
// spectra of rendered signals.
package response

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-amp/dsp/window"
	"github.com/cwbudde/algo-vecmath"
)

const (
	defaultFFTSize    = 4096
	defaultSampleRate = 44100.0
)

// BlockProcessor is the slice of an effect stage the measurements need.
type BlockProcessor interface {
	ProcessInPlace(buf []float64)
}

// Config holds measurement parameters.
type Config struct {
	SampleRate float64
	FFTSize    int
	WindowType window.Type
}

func normalizeConfig(cfg Config) Config {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = defaultSampleRate
	}
	if cfg.FFTSize <= 0 {
		cfg.FFTSize = defaultFFTSize
	}
	return cfg
}

// Magnitude measures |H(f)| of proc by feeding a unit impulse through it and
// transforming the response. The processor should be freshly constructed or
// reset; its state is consumed by the measurement. The result holds
// FFTSize/2+1 bins from DC to Nyquist.
func Magnitude(proc BlockProcessor, cfg Config) ([]float64, error) {
	cfg = normalizeConfig(cfg)

	impulse := make([]float64, cfg.FFTSize)
	impulse[0] = 1
	proc.ProcessInPlace(impulse)

	return transformMagnitude(impulse, cfg.FFTSize)
}

// Spectrum returns the single-sided amplitude spectrum of the first FFTSize
// samples of sig, windowed by cfg.WindowType and compensated for the window's
// coherent gain. A full-scale sine at a bin center reports its amplitude.
func Spectrum(sig []float64, cfg Config) ([]float64, error) {
	cfg = normalizeConfig(cfg)
	if len(sig) < cfg.FFTSize {
		return nil, fmt.Errorf("signal must hold at least %d samples: %d", cfg.FFTSize, len(sig))
	}

	coeffs := window.Generate(cfg.WindowType, cfg.FFTSize, window.WithPeriodic())
	gain := window.CoherentGain(coeffs)
	if gain <= 0 {
		return nil, fmt.Errorf("window has non-positive coherent gain: %g", gain)
	}

	frame := make([]float64, cfg.FFTSize)
	copy(frame, sig[:cfg.FFTSize])
	vecmath.MulBlockInPlace(frame, coeffs)

	mags, err := transformMagnitude(frame, cfg.FFTSize)
	if err != nil {
		return nil, err
	}

	scale := 2 / (float64(cfg.FFTSize) * gain)
	vecmath.ScaleBlock(mags, mags, scale)
	mags[0] /= 2 // DC has no mirrored bin

	return mags, nil
}

// BinFreq returns the center frequency of bin i.
func BinFreq(i int, cfg Config) float64 {
	cfg = normalizeConfig(cfg)
	return float64(i) * cfg.SampleRate / float64(cfg.FFTSize)
}

// BinFor returns the bin whose center is nearest to freq.
func BinFor(freq float64, cfg Config) int {
	cfg = normalizeConfig(cfg)

	bin := int(freq*float64(cfg.FFTSize)/cfg.SampleRate + 0.5)
	if bin < 0 {
		bin = 0
	}
	if max := cfg.FFTSize / 2; bin > max {
		bin = max
	}
	return bin
}

func transformMagnitude(frame []float64, fftSize int) ([]float64, error) {
	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("response: fft plan: %w", err)
	}

	in := make([]complex128, fftSize)
	for i, v := range frame {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("response: fft: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := 0; i < bins; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	mags := make([]float64, bins)
	vecmath.Magnitude(mags, re, im)

	return mags, nil
}
