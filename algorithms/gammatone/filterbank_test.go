package gammatone

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// responseMagnitude evaluates |H(f)| of an impulse response by direct DFT at
// a single frequency, avoiding FFT bin quantization.
func responseMagnitude(h []float64, freq, fs float64) float64 {
	var re, im float64
	for n, v := range h {
		phase := -2 * math.Pi * freq * float64(n) / fs
		re += v * math.Cos(phase)
		im += v * math.Sin(phase)
	}
	return math.Hypot(re, im)
}

func TestFilterbankImpulseResponsePeak(t *testing.T) {
	fb, err := NewFilterbank(16000, 16, 100)
	require.NoError(t, err)

	impulse := make([]float64, 4096)
	impulse[0] = 1

	y, err := fb.Process(impulse)
	require.NoError(t, err)

	// After gain normalization every channel's magnitude response at its own
	// center frequency is unity.
	for ch, cf := range fb.CenterFrequencies() {
		mag := responseMagnitude(y[ch], cf, 16000)
		assert.InDelta(t, 1.0, mag, 0.02, "channel %d at %.1f Hz", ch, cf)
	}
}

func TestFilterbankOutputShape(t *testing.T) {
	fb, err := NewFilterbank(16000, 64, 100)
	require.NoError(t, err)

	signal := make([]float64, 512)
	signal[0] = 1

	y, err := fb.Process(signal)
	require.NoError(t, err)
	require.Len(t, y, 64)
	for ch := range y {
		assert.Len(t, y[ch], 512)
	}
}

func TestFilterbankBatchShape(t *testing.T) {
	fb, err := NewFilterbank(16000, 8, 100)
	require.NoError(t, err)

	batch := [][]float64{make([]float64, 256), make([]float64, 256)}
	batch[0][0] = 1
	batch[1][10] = 1

	y, err := fb.ProcessBatch(batch)
	require.NoError(t, err)
	require.Len(t, y, 2)
	for b := range y {
		require.Len(t, y[b], 8)
		for ch := range y[b] {
			assert.Len(t, y[b][ch], 256)
		}
	}

	// A delayed impulse produces a delayed copy of the impulse response
	for ch := range y[1] {
		for n := 0; n < 10; n++ {
			assert.Zero(t, y[1][ch][n])
		}
		assert.InDelta(t, y[0][ch][100], y[1][ch][110], 1e-12)
	}
}

func TestFilterbankDeterministic(t *testing.T) {
	fb, err := NewFilterbank(16000, 32, 100)
	require.NoError(t, err)

	signal := make([]float64, 1000)
	for i := range signal {
		signal[i] = math.Sin(2 * math.Pi * 440 * float64(i) / 16000)
	}

	y1, err := fb.Process(signal)
	require.NoError(t, err)
	y2, err := fb.Process(signal)
	require.NoError(t, err)

	// Channel parallelism must not affect results
	require.Equal(t, y1, y2)
}

func TestFilterbankInvalidArguments(t *testing.T) {
	_, err := NewFilterbank(16000, 64, 0)
	assert.Error(t, err, "lowest frequency zero")

	_, err = NewFilterbank(16000, 64, 9000)
	assert.Error(t, err, "lowest frequency above Nyquist")

	_, err = NewFilterbank(-1, 64, 100)
	assert.Error(t, err, "negative sample rate")

	fb, err := NewFilterbank(16000, 4, 100)
	require.NoError(t, err)

	_, err = fb.Process([]float64{1})
	assert.Error(t, err, "single-sample signal")

	_, err = fb.Process(nil)
	assert.Error(t, err, "empty signal")

	_, err = fb.ProcessBatch(nil)
	assert.Error(t, err, "empty batch")
}
