package filters

import (
	"fmt"
	"math"
)

// FormantFilter models a single vocal-tract formant as a two-pole resonator.
//
// The pole radius and angle follow the classic formant synthesis recipe
// (Rabiner & Schafer, "Digital Processing of Speech Signals"): for formant
// frequency f, bandwidth bw and sample rate fs,
//
//	rho   = exp(-pi * (f/fs) / (f/bw))
//	theta = 2*pi * (f/fs) * sqrt(1 - 1/(4*(f/bw)^2))
//
// giving the denominator [1, -2*rho*cos(theta), rho^2]. The numerator is the
// scalar 1 + a1 + a2 so the filter has unit gain at DC.
type FormantFilter struct {
	sampleRate float64
	frequency  float64
	bandwidth  float64

	// Difference equation coefficients
	b0     float64
	a1, a2 float64
}

// NewFormantFilter creates a formant resonator.
// The bandwidth defaults to 50 Hz when bw <= 0.
func NewFormantFilter(frequency, sampleRate, bw float64) (*FormantFilter, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be positive, got %g", sampleRate)
	}
	if frequency <= 0 || frequency >= sampleRate/2 {
		return nil, fmt.Errorf("formant frequency %g out of range (0, %g)", frequency, sampleRate/2)
	}
	if bw <= 0 {
		bw = 50
	}

	ff := &FormantFilter{
		sampleRate: sampleRate,
		frequency:  frequency,
		bandwidth:  bw,
	}
	ff.computeCoefficients()
	return ff, nil
}

func (ff *FormantFilter) computeCoefficients() {
	cft := ff.frequency / ff.sampleRate
	q := ff.frequency / ff.bandwidth

	rho := math.Exp(-math.Pi * cft / q)
	theta := 2 * math.Pi * cft * math.Sqrt(1-1/(4*q*q))

	ff.a1 = -2 * rho * math.Cos(theta)
	ff.a2 = rho * rho
	ff.b0 = 1 + ff.a1 + ff.a2
}

// Apply filters the signal through the formant resonator
func (ff *FormantFilter) Apply(x []float64) ([]float64, error) {
	return Recursive(
		[]float64{ff.b0, 0, 0},
		[]float64{1, ff.a1, ff.a2},
		x,
	)
}

// GetCoefficients returns the current difference equation coefficients
func (ff *FormantFilter) GetCoefficients() (b0, a1, a2 float64) {
	return ff.b0, ff.a1, ff.a2
}
