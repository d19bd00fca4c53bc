package effects

import (
	"fmt"
	"math"
)

const (
	// Drive grows from 1x to 50x across the control range.
	distortionDriveRange = 49.0
	// Output compensation keeps perceived loudness roughly constant.
	distortionCompensation = 0.5
)

// Distortion models tube-style soft clipping with a tanh transfer function.
// An amount of 0 is an exact passthrough. The stage is stateless; output is
// bounded to (-1, 1) for any finite input when the amount is non-zero.
type Distortion struct {
	amount float64
}

// NewDistortion creates a distortion stage with the effect disabled.
func NewDistortion() *Distortion {
	return &Distortion{}
}

// SetAmount sets the distortion amount in [0, 1].
func (d *Distortion) SetAmount(amount float64) error {
	if amount < 0 || amount > 1 || math.IsNaN(amount) {
		return fmt.Errorf("distortion amount must be in [0, 1]: %f", amount)
	}
	d.amount = amount
	return nil
}

// Amount returns the current distortion amount.
func (d *Distortion) Amount() float64 { return d.amount }

// ProcessInPlace applies soft clipping to buf in place.
func (d *Distortion) ProcessInPlace(buf []float64) {
	if d.amount == 0 {
		return
	}

	drive := 1 + d.amount*distortionDriveRange
	makeup := 1 / (1 + d.amount*distortionCompensation)

	for i, x := range buf {
		buf[i] = math.Tanh(x*drive) * makeup
	}
}
