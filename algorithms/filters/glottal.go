package filters

import (
	"fmt"
	"math"
)

// GlottalFilter models the glottal transfer function applied to an impulse
// train during voice synthesis. It is a pair of coincident first-order
// lowpass poles at 250 Hz, realized as the single second-order recursion
//
//	y[n] = x[n] + a^2 * y[n-2],  a = exp(-2*pi*250/sampleRate)
type GlottalFilter struct {
	sampleRate float64
	a          float64
}

// NewGlottalFilter creates a glottal filter for the given sample rate
func NewGlottalFilter(sampleRate float64) (*GlottalFilter, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be positive, got %g", sampleRate)
	}

	return &GlottalFilter{
		sampleRate: sampleRate,
		a:          math.Exp(-250 * 2 * math.Pi / sampleRate),
	}, nil
}

// Apply filters the signal through the glottal model
func (g *GlottalFilter) Apply(x []float64) ([]float64, error) {
	return Recursive(
		[]float64{1, 0, 0},
		[]float64{1, 0, -g.a * g.a},
		x,
	)
}
