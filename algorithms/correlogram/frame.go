// Package correlogram computes short-time autocorrelation displays of
// multi-channel (cochleagram) signals and extracts pitch estimates from
// them, following the correlogram functions of Slaney's Auditory Toolbox.
package correlogram

import (
	"fmt"
	"math"

	"github.com/RyanBlaney/cochlear/algorithms/common"
	"github.com/RyanBlaney/cochlear/algorithms/spectral"
	"github.com/RyanBlaney/cochlear/algorithms/windowing"
)

// Frame generates one frame of a correlogram using FFTs to compute
// autocorrelation.
//
// data is a (channels, time) array, one time-domain signal per channel.
// picWidth is the number of lags in the output frame, start the first sample
// of the analysis window, and winLen the window length in samples (0 means
// the whole signal).
//
// Per channel the windowed segment is autocorrelated via the power spectrum,
// negative values are clipped to zero, and the result truncated to picWidth
// lags. A channel is kept only when its lag-0 value is positive and strictly
// exceeds lags 1 and 2; kept channels are scaled so lag 0 equals 1, all
// other channels are zeroed. Degenerate channels are not an error, they
// simply read as all-zero.
func Frame(data [][]float64, picWidth, start, winLen int) ([][]float64, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("data must have at least one channel")
	}
	if picWidth < 1 {
		return nil, fmt.Errorf("picture width must be >= 1, got %d", picWidth)
	}

	dataLen := len(data[0])
	for ch, row := range data {
		if len(row) != dataLen {
			return nil, fmt.Errorf("channel %d has %d samples, want %d", ch, len(row), dataLen)
		}
	}

	if winLen <= 0 {
		winLen = dataLen
	}

	// Double the window and round up to a power of two so the circular
	// autocorrelation does not wrap around.
	fftSize := common.NextPowerOfTwo(2 * max(picWidth, winLen))

	start = max(start, 0)
	// A window starting at or past the end of the data is empty
	last := max(min(dataLen, start+winLen), start)

	window := windowing.NewNormalizedHamming(winLen)
	ws := window.GetCoefficients()

	fft := spectral.NewFFT()

	pic := make([][]float64, len(data))
	for ch := range data {
		segment := make([]float64, last-start)
		for i := range segment {
			segment[i] = data[ch][start+i] * ws[i]
		}

		acf := fft.Autocorrelation(segment, fftSize)

		row := make([]float64, picWidth)
		for lag := 0; lag < picWidth && lag < len(acf); lag++ {
			// Negative values are numerical noise
			row[lag] = math.Max(0, acf[lag])
		}

		// Keep the channel only if lag 0 is a clear local maximum
		if row[0] > 0 && picWidth > 2 && row[0] > row[1] && row[0] > row[2] {
			scale := 1 / math.Sqrt(row[0])
			for lag := range row {
				row[lag] *= scale
			}
		} else {
			for lag := range row {
				row[lag] = 0
			}
		}

		pic[ch] = row
	}

	return pic, nil
}
