package gammatone

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Coefficients holds the per-channel filter parameters for a bank of
// 4th-order gammatone filters, one value per channel in each slice.
//
// The ten arrays follow Slaney's MakeERBFilters: A0..A2 and B0..B2 are the
// real difference equation taps, A11..A14 the four first-order numerator
// variants realizing the two conjugate pole pairs with real arithmetic, and
// Gain the transfer function magnitude at the center frequency used to
// normalize the cascade to unit passband gain.
type Coefficients struct {
	A0, A11, A12, A13, A14, A2 []float64
	B0, B1, B2                 []float64
	Gain                       []float64

	CenterFreqs []float64
	SampleRate  float64
}

// NumChannels returns the number of filterbank channels
func (c *Coefficients) NumChannels() int {
	return len(c.A0)
}

// MakeERBFilters computes gammatone filter coefficients for numChannels
// channels extending from half the sample rate down to lowFreq, with center
// frequencies spaced on the ERB scale.
//
// The design follows 'An Efficient Implementation of the
// Patterson-Holdsworth Auditory Filter Bank' by Malcolm Slaney.
func MakeERBFilters(sampleRate float64, numChannels int, lowFreq float64) (*Coefficients, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be positive, got %g", sampleRate)
	}

	cf, err := ERBSpace(lowFreq, sampleRate/2, numChannels)
	if err != nil {
		return nil, err
	}

	return MakeERBFiltersCF(sampleRate, cf)
}

// MakeERBFiltersCF computes gammatone filter coefficients for an explicit
// set of center frequencies (Hz). Every frequency must lie strictly between
// 0 and the Nyquist frequency.
func MakeERBFiltersCF(sampleRate float64, centerFreqs []float64) (*Coefficients, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be positive, got %g", sampleRate)
	}
	if len(centerFreqs) == 0 {
		return nil, fmt.Errorf("at least one center frequency is required")
	}
	for i, cf := range centerFreqs {
		if cf <= 0 || cf >= sampleRate/2 {
			return nil, fmt.Errorf("center frequency %g (channel %d) outside (0, %g)", cf, i, sampleRate/2)
		}
	}

	n := len(centerFreqs)
	c := &Coefficients{
		A0:          make([]float64, n),
		A11:         make([]float64, n),
		A12:         make([]float64, n),
		A13:         make([]float64, n),
		A14:         make([]float64, n),
		A2:          make([]float64, n),
		B0:          make([]float64, n),
		B1:          make([]float64, n),
		B2:          make([]float64, n),
		Gain:        make([]float64, n),
		CenterFreqs: append([]float64(nil), centerFreqs...),
		SampleRate:  sampleRate,
	}

	t := 1 / sampleRate
	sqrtPlus := math.Sqrt(3 + math.Pow(2, 1.5))
	sqrtMinus := math.Sqrt(3 - math.Pow(2, 1.5))

	for i, cf := range centerFreqs {
		// First-order ERB model of the filter bandwidth at cf
		erb := cf/earQ + minBW
		b := 1.019 * 2 * math.Pi * erb

		theta := 2 * cf * math.Pi * t
		decay := math.Exp(b * t)
		cosT := math.Cos(theta)
		sinT := math.Sin(theta)

		c.A0[i] = t
		c.A2[i] = 0
		c.B0[i] = 1
		c.B1[i] = -2 * cosT / decay
		c.B2[i] = math.Exp(-2 * b * t)

		c.A11[i] = -(2*t*cosT/decay + 2*sqrtPlus*t*sinT/decay) / 2
		c.A12[i] = -(2*t*cosT/decay - 2*sqrtPlus*t*sinT/decay) / 2
		c.A13[i] = -(2*t*cosT/decay + 2*sqrtMinus*t*sinT/decay) / 2
		c.A14[i] = -(2*t*cosT/decay - 2*sqrtMinus*t*sinT/decay) / 2

		c.Gain[i] = filterGain(cf, b, t)
	}

	return c, nil
}

// filterGain evaluates the closed-form magnitude of the 4th-order gammatone
// transfer function at the filter's center frequency. The numerator is the
// product of four complex first-order factors (one per pole pair branch) and
// the denominator a common second-order term raised to the 4th power.
// complex128 is used throughout; 64-bit precision materially affects filter
// stability at low center frequencies.
func filterGain(cf, b, t float64) float64 {
	theta := 2 * cf * math.Pi * t
	cosT := complex(math.Cos(theta), 0)
	sinT := complex(math.Sin(theta), 0)
	tc := complex(t, 0)

	sqrtPlus := complex(math.Sqrt(3+math.Pow(2, 1.5)), 0)
	sqrtMinus := complex(math.Sqrt(3-math.Pow(2, 1.5)), 0)

	// exp(4i*cf*pi*t) and exp(-b*t + 2i*cf*pi*t)
	zExp := cmplx.Exp(complex(0, 2*theta))
	zDecay := cmplx.Exp(complex(-b*t, theta))

	f1 := -2*zExp*tc + 2*zDecay*tc*(cosT-sqrtMinus*sinT)
	f2 := -2*zExp*tc + 2*zDecay*tc*(cosT+sqrtMinus*sinT)
	f3 := -2*zExp*tc + 2*zDecay*tc*(cosT-sqrtPlus*sinT)
	f4 := -2*zExp*tc + 2*zDecay*tc*(cosT+sqrtPlus*sinT)

	den := complex(-2*math.Exp(-2*b*t), 0) - 2*zExp +
		2*(1+zExp)*complex(math.Exp(-b*t), 0)

	return cmplx.Abs(f1 * f2 * f3 * f4 / cmplx.Pow(den, 4))
}
