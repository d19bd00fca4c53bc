// Package preset maps amplifier preset names to parameter snapshots. The
// engine itself never resolves names; callers look a preset up and hand the
// resulting update to amp.SetParameters.
package preset

import (
	"sort"

	"github.com/cwbudde/algo-amp/amp"
)

var presets = map[string]amp.Params{
	"clean": {
		Gain:      1.0,
		ReverbMix: 0.2,
	},
	"crunch": {
		Gain:       2.0,
		Distortion: 0.3,
		Bass:       0.2,
		Mid:        0.1,
		Treble:     0.1,
		ReverbMix:  0.15,
	},
	"overdrive": {
		Gain:       2.5,
		Distortion: 0.5,
		Bass:       0.1,
		Mid:        0.3,
		Treble:     0.2,
		ReverbMix:  0.1,
	},
	"distortion": {
		Gain:       3.0,
		Distortion: 0.7,
		Bass:       0.3,
		Mid:        0.2,
		Treble:     0.3,
		ReverbMix:  0.1,
	},
	"metal": {
		Gain:       4.0,
		Distortion: 0.9,
		Bass:       0.4,
		Mid:        -0.2,
		Treble:     0.5,
		ReverbMix:  0.05,
	},
}

// Lookup returns the update for a named preset. Every preset sets all six
// controls, so loading one fully replaces the previous sound.
func Lookup(name string) (amp.Update, bool) {
	p, ok := presets[name]
	if !ok {
		return amp.Update{}, false
	}

	return amp.Update{
		Gain:       amp.Float(p.Gain),
		Distortion: amp.Float(p.Distortion),
		Bass:       amp.Float(p.Bass),
		Mid:        amp.Float(p.Mid),
		Treble:     amp.Float(p.Treble),
		ReverbMix:  amp.Float(p.ReverbMix),
	}, true
}

// Names returns all preset names in sorted order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
