package gammatone

import (
	"fmt"
	"sync"

	"github.com/RyanBlaney/cochlear/algorithms/filters"
)

// Filterbank applies a bank of 4th-order gammatone auditory filters to audio
// of shape (time) or (batch, time), producing a cochleagram of shape
// (channels, time) or (batch, channels, time).
//
// The design follows 'An Efficient Implementation of the
// Patterson-Holdsworth Auditory Filter Bank' by Malcolm Slaney:
// <https://engineering.purdue.edu/~malcolm/interval/1998-010/AuditoryToolboxTechReport.pdf>
//
// Coefficients are computed once at construction and read-only afterwards;
// Process is a pure function of its input. Filtering delays are not
// compensated, uniform temporal sampling is assumed, and the input is not
// mean-centered or zero-padded before filtering.
type Filterbank struct {
	sampleRate  float64
	numChannels int
	coefs       *Coefficients
	sos         sosMatrix
}

// NewFilterbank creates a gammatone filterbank with numChannels channels
// extending from the Nyquist frequency down to lowestFrequency, spaced on
// the ERB scale.
func NewFilterbank(sampleRate float64, numChannels int, lowestFrequency float64) (*Filterbank, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be positive, got %g", sampleRate)
	}
	if lowestFrequency <= 0 || lowestFrequency >= sampleRate/2 {
		return nil, fmt.Errorf("lowest frequency %g outside (0, %g)", lowestFrequency, sampleRate/2)
	}

	coefs, err := MakeERBFilters(sampleRate, numChannels, lowestFrequency)
	if err != nil {
		return nil, err
	}

	return &Filterbank{
		sampleRate:  sampleRate,
		numChannels: coefs.NumChannels(),
		coefs:       coefs,
		sos:         secondOrderSections(coefs),
	}, nil
}

// NewFilterbankCF creates a gammatone filterbank with an explicit set of
// center frequencies (Hz) instead of ERB-spaced ones.
func NewFilterbankCF(sampleRate float64, centerFreqs []float64) (*Filterbank, error) {
	coefs, err := MakeERBFiltersCF(sampleRate, centerFreqs)
	if err != nil {
		return nil, err
	}

	return &Filterbank{
		sampleRate:  sampleRate,
		numChannels: coefs.NumChannels(),
		coefs:       coefs,
		sos:         secondOrderSections(coefs),
	}, nil
}

// Process filters one waveform through the bank and returns a
// (numChannels, time) cochleagram. The signal must have at least 2 samples.
//
// Channels are independent, so they are filtered in parallel; within a
// channel the IIR recursion is strictly sequential in time.
func (fb *Filterbank) Process(signal []float64) ([][]float64, error) {
	if len(signal) <= 1 {
		return nil, fmt.Errorf("signal must have more than one sample, got %d", len(signal))
	}

	out := make([][]float64, fb.numChannels)

	var wg sync.WaitGroup
	wg.Add(fb.numChannels)
	for ch := 0; ch < fb.numChannels; ch++ {
		go func(ch int) {
			defer wg.Done()
			out[ch] = fb.processChannel(ch, signal)
		}(ch)
	}
	wg.Wait()

	return out, nil
}

// ProcessBatch filters a batch of waveforms, returning one cochleagram per
// batch element: shape (batch, numChannels, time). All signals must have
// more than one sample.
func (fb *Filterbank) ProcessBatch(signals [][]float64) ([][][]float64, error) {
	if len(signals) == 0 {
		return nil, fmt.Errorf("batch must contain at least one signal")
	}

	out := make([][][]float64, len(signals))
	for i, signal := range signals {
		y, err := fb.Process(signal)
		if err != nil {
			return nil, fmt.Errorf("batch element %d: %w", i, err)
		}
		out[i] = y
	}

	return out, nil
}

// processChannel runs the four-stage biquad cascade for one channel.
// Each stage shares the denominator [1, B1, B2]; stage outputs feed the next
// stage's input.
func (fb *Filterbank) processChannel(ch int, signal []float64) []float64 {
	y := signal
	for s := 0; s < numStages; s++ {
		b, a := fb.sos.stage(ch, s)
		// Recursive cannot fail here: a[0] is 1 by construction
		y, _ = filters.Recursive(b[:], a[:], y)
	}
	return y
}

// SampleRate returns the filterbank sample rate
func (fb *Filterbank) SampleRate() float64 {
	return fb.sampleRate
}

// NumChannels returns the number of channels
func (fb *Filterbank) NumChannels() int {
	return fb.numChannels
}

// CenterFrequencies returns a copy of the channel center frequencies,
// in decreasing order.
func (fb *Filterbank) CenterFrequencies() []float64 {
	return append([]float64(nil), fb.coefs.CenterFreqs...)
}

// FilterCoefficients returns the underlying designer output
func (fb *Filterbank) FilterCoefficients() *Coefficients {
	return fb.coefs
}
