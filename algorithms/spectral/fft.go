package spectral

import (
	"github.com/mjibson/go-dsp/fft"
)

// FFT provides Fast Fourier Transform functionality backed by mjibson/go-dsp
type FFT struct {
	// No state needed for now
}

// NewFFT creates a new FFT calculator
func NewFFT() *FFT {
	return &FFT{}
}

// Compute computes the forward FFT of a real signal.
// Takes []float64 input and returns []complex128 output.
func (f *FFT) Compute(x []float64) []complex128 {
	if len(x) == 0 {
		return []complex128{}
	}

	// mjibson/go-dsp handles all sizes efficiently, including non-power-of-2
	return fft.FFTReal(x)
}

// ComputeInverse computes inverse FFT
func (f *FFT) ComputeInverse(x []complex128) []complex128 {
	if len(x) == 0 {
		return []complex128{}
	}

	return fft.IFFT(x)
}

// ComputeInverseReal computes inverse FFT and returns real part only
func (f *FFT) ComputeInverseReal(x []complex128) []float64 {
	if len(x) == 0 {
		return []float64{}
	}

	result := fft.IFFT(x)
	realResult := make([]float64, len(result))

	for i, val := range result {
		realResult[i] = real(val)
	}

	return realResult
}

// Autocorrelation computes the autocorrelation of x via the Wiener-Khinchin
// identity: IFFT(FFT(x) * conj(FFT(x))). The input is zero-padded to fftSize
// before transforming; fftSize must be at least 2*len(x) to avoid circular
// wraparound. Returns the real part, length fftSize.
func (f *FFT) Autocorrelation(x []float64, fftSize int) []float64 {
	if len(x) == 0 || fftSize < len(x) {
		return []float64{}
	}

	padded := make([]float64, fftSize)
	copy(padded, x)

	spectrum := fft.FFTReal(padded)
	for i, c := range spectrum {
		// c * conj(c) is the power spectrum
		re := real(c)
		im := imag(c)
		spectrum[i] = complex(re*re+im*im, 0)
	}

	return f.ComputeInverseReal(spectrum)
}
