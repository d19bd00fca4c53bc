package amp

import "github.com/cwbudde/algo-amp/dsp/core"

// Control value ranges. Writes outside a range are clamped, never rejected.
const (
	MinGain = 0.1
	MaxGain = 5.0

	MinDistortion = 0.0
	MaxDistortion = 1.0

	MinBandGain = -1.0
	MaxBandGain = 1.0

	MinReverbMix = 0.0
	MaxReverbMix = 1.0
)

// Params holds the six amp control values, each inside its declared range.
type Params struct {
	Gain       float64
	Distortion float64
	Bass       float64
	Mid        float64
	Treble     float64
	ReverbMix  float64
}

// DefaultParams returns the clean power-on state: unity gain, everything
// else off.
func DefaultParams() Params {
	return Params{Gain: 1}
}

// Update is a partial parameter change. Nil fields leave the stored value
// unchanged; present fields are clamped to their range and applied. Applying
// an Update never fails.
type Update struct {
	Gain       *float64
	Distortion *float64
	Bass       *float64
	Mid        *float64
	Treble     *float64
	ReverbMix  *float64
}

// Float returns a pointer to v, for building Update literals.
func Float(v float64) *float64 { return &v }

// apply merges u into p, clamping each present field.
func (p *Params) apply(u Update) {
	if u.Gain != nil {
		p.Gain = core.Clamp(*u.Gain, MinGain, MaxGain)
	}
	if u.Distortion != nil {
		p.Distortion = core.Clamp(*u.Distortion, MinDistortion, MaxDistortion)
	}
	if u.Bass != nil {
		p.Bass = core.Clamp(*u.Bass, MinBandGain, MaxBandGain)
	}
	if u.Mid != nil {
		p.Mid = core.Clamp(*u.Mid, MinBandGain, MaxBandGain)
	}
	if u.Treble != nil {
		p.Treble = core.Clamp(*u.Treble, MinBandGain, MaxBandGain)
	}
	if u.ReverbMix != nil {
		p.ReverbMix = core.Clamp(*u.ReverbMix, MinReverbMix, MaxReverbMix)
	}
}
