package filters

import (
	"fmt"
)

// Recursive applies a generic recursive (IIR) linear filter to a signal,
// following the standard difference equation
//
//	a[0]*y[n] = b[0]*x[n] + b[1]*x[n-1] + ... - a[1]*y[n-1] - a[2]*y[n-2] - ...
//
// b holds the numerator (feed-forward) taps and a the denominator
// (feedback) taps. Coefficients are normalized by a[0], which must be
// non-zero. Initial filter state is zero; the output has the same length as
// the input.
//
// This is the same contract as scipy.signal.lfilter and is the single
// filtering primitive behind the gammatone cascade, the glottal and formant
// filters, and the correlogram pitch smoother.
func Recursive(b, a, x []float64) ([]float64, error) {
	if len(b) == 0 {
		return nil, fmt.Errorf("numerator coefficients must not be empty")
	}
	if len(a) == 0 {
		return nil, fmt.Errorf("denominator coefficients must not be empty")
	}
	if a[0] == 0 {
		return nil, fmt.Errorf("denominator coefficient a[0] must be non-zero")
	}

	bn := make([]float64, len(b))
	for i, v := range b {
		bn[i] = v / a[0]
	}
	an := make([]float64, len(a))
	for i, v := range a {
		an[i] = v / a[0]
	}

	y := make([]float64, len(x))
	for n := range x {
		acc := 0.0
		for k := 0; k < len(bn) && k <= n; k++ {
			acc += bn[k] * x[n-k]
		}
		for k := 1; k < len(an) && k <= n; k++ {
			acc -= an[k] * y[n-k]
		}
		y[n] = acc
	}

	return y, nil
}

// RunningSum filters x with a length-tap moving-sum window. This is the
// recursive form (numerator of ones, unit denominator), so y[n] is the sum of
// the most recent `length` input samples.
func RunningSum(x []float64, length int) ([]float64, error) {
	if length < 1 {
		return nil, fmt.Errorf("running sum length must be >= 1, got %d", length)
	}

	ones := make([]float64, length)
	for i := range ones {
		ones[i] = 1
	}

	return Recursive(ones, []float64{1}, x)
}
