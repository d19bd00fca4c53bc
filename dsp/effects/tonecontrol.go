package effects

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-amp/dsp/core"
	"github.com/cwbudde/algo-amp/dsp/filter/biquad"
	"github.com/cwbudde/algo-amp/dsp/filter/design"
)

const (
	bassCutoffHz   = 100.0
	trebleCutoffHz = 3000.0
	midLowEdgeHz   = 400.0
	midHighEdgeHz  = 1600.0

	// The mid band is an additive emphasis, not a shelf; the 0.5 factor
	// limits its boost/cut strength relative to bass and treble.
	midLevelScale = 0.5
)

// ToneControl is a three-band EQ with bass, mid and treble controls in
// [-1, 1]. Bass and treble act as shelves built by difference from the dry
// signal; the mid band injects a scaled bandpass directly. Each band is
// computed from the stage input, not chained through the others, and a band
// at exactly 0 is bypassed without touching its filter state.
//
// The three biquad states persist across calls, so output stays continuous
// at block boundaries.
type ToneControl struct {
	sampleRate float64

	bass   float64
	mid    float64
	treble float64

	low  *biquad.Section
	high *biquad.Section
	band *biquad.Section

	dry []float64
	wet []float64
}

// NewToneControl creates a flat tone control for the given sample rate.
func NewToneControl(sampleRate float64) (*ToneControl, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("tone control sample rate must be > 0: %f", sampleRate)
	}

	return &ToneControl{
		sampleRate: sampleRate,
		low:        biquad.NewSection(design.Lowpass(bassCutoffHz, design.ButterworthQ, sampleRate)),
		high:       biquad.NewSection(design.Highpass(trebleCutoffHz, design.ButterworthQ, sampleRate)),
		band:       biquad.NewSection(design.BandpassEdges(midLowEdgeHz, midHighEdgeHz, sampleRate)),
	}, nil
}

// SetBass sets the bass control in [-1, 1].
func (t *ToneControl) SetBass(v float64) error {
	if err := validBandGain("bass", v); err != nil {
		return err
	}
	t.bass = v
	return nil
}

// SetMid sets the mid control in [-1, 1].
func (t *ToneControl) SetMid(v float64) error {
	if err := validBandGain("mid", v); err != nil {
		return err
	}
	t.mid = v
	return nil
}

// SetTreble sets the treble control in [-1, 1].
func (t *ToneControl) SetTreble(v float64) error {
	if err := validBandGain("treble", v); err != nil {
		return err
	}
	t.treble = v
	return nil
}

func validBandGain(name string, v float64) error {
	if v < -1 || v > 1 || math.IsNaN(v) {
		return fmt.Errorf("%s control must be in [-1, 1]: %f", name, v)
	}
	return nil
}

// Bass returns the bass control value.
func (t *ToneControl) Bass() float64 { return t.bass }

// Mid returns the mid control value.
func (t *ToneControl) Mid() float64 { return t.mid }

// Treble returns the treble control value.
func (t *ToneControl) Treble() float64 { return t.treble }

// SampleRate returns the configured sample rate in Hz.
func (t *ToneControl) SampleRate() float64 { return t.sampleRate }

// ProcessInPlace applies the enabled bands to buf. With all three controls
// at 0 the input passes through untouched.
func (t *ToneControl) ProcessInPlace(buf []float64) {
	if t.bass == 0 && t.mid == 0 && t.treble == 0 {
		return
	}

	t.dry = core.EnsureLen(t.dry, len(buf))
	copy(t.dry, buf)
	t.wet = core.EnsureLen(t.wet, len(buf))

	if t.bass != 0 {
		t.low.ProcessBlockTo(t.wet, t.dry)
		gain := 1 + t.bass
		for i := range buf {
			buf[i] += (t.wet[i] - t.dry[i]) * gain
		}
	}

	if t.treble != 0 {
		t.high.ProcessBlockTo(t.wet, t.dry)
		gain := 1 + t.treble
		for i := range buf {
			buf[i] += (t.wet[i] - t.dry[i]) * gain
		}
	}

	if t.mid != 0 {
		t.band.ProcessBlockTo(t.wet, t.dry)
		gain := (1 + t.mid) * midLevelScale
		for i := range buf {
			buf[i] += t.wet[i] * gain
		}
	}
}

// Reset clears all filter delay memory.
func (t *ToneControl) Reset() {
	t.low.Reset()
	t.high.Reset()
	t.band.Reset()
}
