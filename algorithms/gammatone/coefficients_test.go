package gammatone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeERBFiltersShapes(t *testing.T) {
	c, err := MakeERBFilters(16000, 64, 100)
	require.NoError(t, err)

	assert.Equal(t, 64, c.NumChannels())
	for name, arr := range map[string][]float64{
		"a0": c.A0, "a11": c.A11, "a12": c.A12, "a13": c.A13, "a14": c.A14,
		"a2": c.A2, "b0": c.B0, "b1": c.B1, "b2": c.B2, "gain": c.Gain,
	} {
		assert.Len(t, arr, 64, "array %s", name)
	}
	assert.Equal(t, 16000.0, c.SampleRate)
}

func TestMakeERBFiltersValues(t *testing.T) {
	c, err := MakeERBFilters(16000, 64, 100)
	require.NoError(t, err)

	for i := 0; i < c.NumChannels(); i++ {
		// gain is a magnitude normalizer and must be strictly positive
		assert.Greater(t, c.Gain[i], 0.0, "channel %d gain", i)

		// stable poles: |b2| = pole radius squared, strictly inside the unit circle
		assert.Greater(t, c.B2[i], 0.0, "channel %d b2", i)
		assert.Less(t, c.B2[i], 1.0, "channel %d b2", i)

		// a0 is the sampling interval, a2 is structurally zero
		assert.InDelta(t, 1.0/16000, c.A0[i], 1e-15)
		assert.Zero(t, c.A2[i])
		assert.Equal(t, 1.0, c.B0[i])
	}
}

func TestMakeERBFiltersCFRoundTrip(t *testing.T) {
	cf := []float64{220, 440, 880, 1760}
	c, err := MakeERBFiltersCF(22050, cf)
	require.NoError(t, err)
	assert.Equal(t, cf, c.CenterFreqs)
	assert.Equal(t, 4, c.NumChannels())
}

func TestMakeERBFiltersInvalidArguments(t *testing.T) {
	_, err := MakeERBFilters(0, 64, 100)
	assert.Error(t, err, "zero sample rate")

	_, err = MakeERBFilters(-16000, 64, 100)
	assert.Error(t, err, "negative sample rate")

	_, err = MakeERBFiltersCF(16000, nil)
	assert.Error(t, err, "no center frequencies")

	_, err = MakeERBFiltersCF(16000, []float64{100, 8000})
	assert.Error(t, err, "center frequency at Nyquist")

	_, err = MakeERBFiltersCF(16000, []float64{-5})
	assert.Error(t, err, "negative center frequency")
}

func TestSecondOrderSectionsMismatchPanics(t *testing.T) {
	c, err := MakeERBFilters(16000, 8, 100)
	require.NoError(t, err)

	c.B1 = c.B1[:4] // corrupt the designer output
	assert.Panics(t, func() {
		secondOrderSections(c)
	})
}
