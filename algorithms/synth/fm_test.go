package synth

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFMPointsCountAndSpacing(t *testing.T) {
	const (
		sr     = 16000.0
		freq   = 160.0
		fmFreq = 10.0
		n      = 16000
	)

	points, err := FMPoints(n, freq, fmFreq, 8, sr)
	require.NoError(t, err)

	// One point per cycle of the carrier
	require.Len(t, points, int(math.Floor(freq*n/sr)))

	// First point at zero, spacing near one nominal period
	assert.InDelta(t, 0.0, points[0], 1e-9)
	nominal := sr / freq
	for k := 1; k < len(points); k++ {
		gap := points[k] - points[k-1]
		assert.Greater(t, gap, 0.5*nominal, "gap %d", k)
		assert.Less(t, gap, 1.5*nominal, "gap %d", k)
	}
}

func TestFMPointsModulationDeviation(t *testing.T) {
	const (
		sr     = 16000.0
		freq   = 100.0
		fmFreq = 5.0
	)

	modulated, err := FMPoints(8000, freq, fmFreq, 20, sr)
	require.NoError(t, err)

	// With vibrato the points wander around the unmodulated grid but never
	// further than the deviation allows.
	maxShift := 0.0
	for k, p := range modulated {
		shift := math.Abs(p - float64(k)*sr/freq)
		maxShift = math.Max(maxShift, shift)
	}
	assert.Greater(t, maxShift, 1.0)
	assert.LessOrEqual(t, maxShift, (20/(2*math.Pi*fmFreq))*sr/freq+1e-9)
}

func TestFMPointsDefaultDeviation(t *testing.T) {
	defaulted, err := FMPoints(4000, 100, 5, 0, 16000)
	require.NoError(t, err)
	explicit, err := FMPoints(4000, 100, 5, 5, 16000)
	require.NoError(t, err)

	// fmAmp <= 0 falls back to 5% of the base frequency
	assert.Equal(t, explicit, defaulted)
}

func TestFMPointsInvalidArguments(t *testing.T) {
	_, err := FMPoints(0, 100, 5, 1, 16000)
	assert.Error(t, err, "zero length")

	_, err = FMPoints(100, 0, 5, 1, 16000)
	assert.Error(t, err, "zero base frequency")

	_, err = FMPoints(100, 100, 0, 1, 16000)
	assert.Error(t, err, "zero vibrato rate")

	_, err = FMPoints(100, 100, 5, 1, 0)
	assert.Error(t, err, "zero sample rate")
}
