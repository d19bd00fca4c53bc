package effects

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

const defaultGainAmount = 1.0

// Gain scales the signal by a constant factor. Pure and stateless; the
// output is not limited to [-1, 1].
type Gain struct {
	amount float64
}

// NewGain creates a unity gain stage.
func NewGain() *Gain {
	return &Gain{amount: defaultGainAmount}
}

// SetAmount sets the gain factor. The value must be positive and finite.
func (g *Gain) SetAmount(amount float64) error {
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return fmt.Errorf("gain must be > 0 and finite: %f", amount)
	}
	g.amount = amount
	return nil
}

// Amount returns the current gain factor.
func (g *Gain) Amount() float64 { return g.amount }

// ProcessInPlace scales buf by the gain factor.
func (g *Gain) ProcessInPlace(buf []float64) {
	vecmath.ScaleBlock(buf, buf, g.amount)
}

// ProcessBlockTo scales src into dst. Both slices must have the same length.
func (g *Gain) ProcessBlockTo(dst, src []float64) {
	vecmath.ScaleBlock(dst, src, g.amount)
}
