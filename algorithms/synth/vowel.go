// Package synth generates deterministic test and demo signals: synthetic
// vowels built from glottal pulse trains and formant filters, and vibrato
// (FM) impulse trains. All synthesis is expressed through the generic
// recursive filtering primitive in algorithms/filters.
package synth

import (
	"fmt"
	"math"
	"sort"

	"github.com/RyanBlaney/cochlear/algorithms/filters"
)

// Vowel identifies a preset vowel with known formant frequencies
type Vowel string

const (
	VowelA Vowel = "a"
	VowelI Vowel = "i"
	VowelU Vowel = "u"
)

// Formants returns the three formant frequencies (Hz) of a preset vowel
func (v Vowel) Formants() ([]float64, error) {
	switch v {
	case VowelA:
		return []float64{730, 1090, 2440}, nil
	case VowelI:
		return []float64{270, 2290, 3010}, nil
	case VowelU:
		return []float64{300, 870, 2240}, nil
	default:
		return nil, fmt.Errorf("unknown vowel %q", string(v))
	}
}

// DefaultFormantBandwidth is the formant filter bandwidth (Hz) used when the
// caller passes bw <= 0.
const DefaultFormantBandwidth = 50

// MakeVowel synthesizes an artificial vowel of sampleLen samples at a
// constant pitch (Hz), shaping a glottal pulse train with up to three
// formant resonators. formants holds 1 to 3 formant frequencies in Hz
// (zero entries are skipped); bw is the formant bandwidth, 50 Hz if <= 0.
//
// Adapted from MakeVowel by Malcolm Slaney. Common vowels:
//
//	/a/   730  1090  2440
//	/i/   270  2290  3010
//	/u/   300   870  2240
func MakeVowel(sampleLen int, pitch, sampleRate float64, formants []float64, bw float64) ([]float64, error) {
	if pitch <= 0 {
		return nil, fmt.Errorf("pitch must be positive, got %g", pitch)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be positive, got %g", sampleRate)
	}

	// Pulse onsets at every pitch period up to the end of the signal
	var points []float64
	for p := 0.0; p < float64(sampleLen-1); p += sampleRate / pitch {
		points = append(points, p)
	}

	return MakeVowelTrain(sampleLen, points, sampleRate, formants, bw)
}

// MakeVowelTrain synthesizes a vowel from explicit glottal pulse locations
// (fractional sample positions, e.g. the output of FMPoints), allowing
// vowels with varying pitch. Locations at or past sampleLen-1 are dropped.
func MakeVowelTrain(sampleLen int, points []float64, sampleRate float64, formants []float64, bw float64) ([]float64, error) {
	if sampleLen < 1 {
		return nil, fmt.Errorf("sample length must be >= 1, got %d", sampleLen)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be positive, got %g", sampleRate)
	}
	if len(formants) == 0 || len(formants) > 3 {
		return nil, fmt.Errorf("need 1 to 3 formant frequencies, got %d", len(formants))
	}

	y := glottalPulses(sampleLen, points)

	glottis, err := filters.NewGlottalFilter(sampleRate)
	if err != nil {
		return nil, err
	}
	y, err = glottis.Apply(y)
	if err != nil {
		return nil, err
	}

	for _, f := range formants {
		if f <= 0 {
			continue
		}
		formant, err := filters.NewFormantFilter(f, sampleRate, bw)
		if err != nil {
			return nil, err
		}
		y, err = formant.Apply(y)
		if err != nil {
			return nil, err
		}
	}

	return y, nil
}

// glottalPulses places a triangular approximation of an impulse at each
// fractional location. Splitting the unit amplitude across the two
// neighboring samples keeps the total pulse amplitude constant regardless of
// the fractional position.
func glottalPulses(sampleLen int, points []float64) []float64 {
	sorted := append([]float64(nil), points...)
	sort.Float64s(sorted)

	y := make([]float64, sampleLen)
	for _, p := range sorted {
		if p < 0 || p >= float64(sampleLen-1) {
			continue
		}
		idx := int(math.Floor(p))
		y[idx] = float64(idx+1) - p
		y[idx+1] = p - float64(idx)
	}

	return y
}
