package synth

import (
	"fmt"
	"math"
)

// FMPoints generates the impulse locations of a frequency-modulated
// (vibrato) pulse train: the positive-going zero crossings of the phase
// function
//
//	phi(t) = 2*pi*freq*t + (fmAmp/fmFreq)*sin(2*pi*fmFreq*t)
//
// The k-th crossing falls approximately at sample
//
//	(fs/freq)*(k - (fmAmp/(2*pi*fmFreq))*sin(2*pi*k*(fmFreq/freq)))
//
// Adapted from FMPoints by Malcolm Slaney (shifted back one sample relative
// to the original Matlab routine). fmAmp defaults to 0.05*freq when <= 0.
//
// sampleLen is the signal length in samples, freq the base frequency (Hz),
// fmFreq the vibrato rate (Hz) and fmAmp the FM deviation (Hz). The result
// feeds MakeVowelTrain.
func FMPoints(sampleLen int, freq, fmFreq, fmAmp, sampleRate float64) ([]float64, error) {
	if sampleLen < 1 {
		return nil, fmt.Errorf("sample length must be >= 1, got %d", sampleLen)
	}
	if freq <= 0 {
		return nil, fmt.Errorf("base frequency must be positive, got %g", freq)
	}
	if fmFreq <= 0 {
		return nil, fmt.Errorf("vibrato frequency must be positive, got %g", fmFreq)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be positive, got %g", sampleRate)
	}
	if fmAmp <= 0 {
		fmAmp = 0.05 * freq
	}

	kmax := int(math.Floor(freq * float64(sampleLen) / sampleRate))
	points := make([]float64, kmax)
	for k := range points {
		points[k] = (sampleRate / freq) *
			(float64(k) - (fmAmp/(2*math.Pi*fmFreq))*math.Sin(2*math.Pi*(fmFreq/freq)*float64(k)))
	}

	return points, nil
}
