package windowing

import (
	"fmt"
	"math"
)

// NormalizedHamming is a Hamming-family raised-cosine window scaled to
// constant power and shifted by half a period.
//
// The coefficients are
//
//	w[i] = 2*wr/sqrt(4*a^2 + 2*b^2) * (a + b*cos(2*pi*i/size + pi/size))
//
// with a = 0.54, b = -0.46 and reference amplitude wr = sqrt(64/256). This is
// the analysis window used by short-time autocorrelation (correlogram)
// displays, following Slaney's Auditory Toolbox. Unlike the plain Hamming
// window it is periodic (denominator size, not size-1) and carries a phase
// offset of pi/size so the window is symmetric about the segment center.
type NormalizedHamming struct {
	size         int
	coefficients []float64
}

// NewNormalizedHamming creates a normalized Hamming window of the given size
func NewNormalizedHamming(size int) *NormalizedHamming {
	w := &NormalizedHamming{size: size}
	w.generate()
	return w
}

func (w *NormalizedHamming) generate() {
	const (
		a  = 0.54
		b  = -0.46
		wr = 0.5 // sqrt(64/256)
	)

	scale := 2 * wr / math.Sqrt(4*a*a+2*b*b)
	phi := math.Pi / float64(w.size)

	w.coefficients = make([]float64, w.size)
	for i := range w.coefficients {
		w.coefficients[i] = scale * (a + b*math.Cos(2*math.Pi*float64(i)/float64(w.size)+phi))
	}
}

// Apply applies the window to a signal (creates new array)
func (w *NormalizedHamming) Apply(signal []float64) []float64 {
	if len(signal) != w.size {
		return nil
	}

	windowed := make([]float64, w.size)
	for i := range windowed {
		windowed[i] = signal[i] * w.coefficients[i]
	}

	return windowed
}

// ApplyInPlace applies the window to a signal in-place
func (w *NormalizedHamming) ApplyInPlace(signal []float64) error {
	if len(signal) != w.size {
		return fmt.Errorf("signal length (%d) doesn't match window size (%d)", len(signal), w.size)
	}

	for i := range signal {
		signal[i] *= w.coefficients[i]
	}

	return nil
}

// GetCoefficients returns a copy of the window coefficients
func (w *NormalizedHamming) GetCoefficients() []float64 {
	coeffs := make([]float64, len(w.coefficients))
	copy(coeffs, w.coefficients)
	return coeffs
}

// GetSize returns the window size
func (w *NormalizedHamming) GetSize() int {
	return w.size
}

// GetType returns the window type
func (w *NormalizedHamming) GetType() string {
	return "normalized_hamming"
}
