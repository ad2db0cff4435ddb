package gammatone

import (
	"fmt"
	"math"
)

// Glasberg and Moore parameters for the ERB scale.
// Changing these alters both ERBSpace and the filter design, so they are
// shared constants of the package.
const (
	earQ  = 9.26449
	minBW = 24.7
)

// ERBSpace computes n center frequencies uniformly spaced on the ERB
// (equivalent rectangular bandwidth) scale between lowFreq and highFreq.
//
// The frequencies are returned in decreasing order: the first is just below
// highFreq, the last equals lowFreq. The spacing expressions are derived in
// Apple TR #35, "An Efficient Implementation of the Patterson-Holdsworth
// Cochlear Filter Bank" (Slaney), pages 33-34; for the definition of ERB see
// Moore & Glasberg (1983), J. Acoust. Soc. Am. 74, 750-753.
func ERBSpace(lowFreq, highFreq float64, n int) ([]float64, error) {
	if lowFreq <= 0 {
		return nil, fmt.Errorf("lowest frequency must be positive, got %g", lowFreq)
	}
	if highFreq <= lowFreq {
		return nil, fmt.Errorf("highest frequency (%g) must exceed lowest frequency (%g)", highFreq, lowFreq)
	}
	if n < 1 {
		return nil, fmt.Errorf("channel count must be >= 1, got %d", n)
	}

	overlap := earQ * minBW
	step := (math.Log(lowFreq+overlap) - math.Log(highFreq+overlap)) / float64(n)

	cf := make([]float64, n)
	for k := 1; k <= n; k++ {
		cf[k-1] = -overlap + math.Exp(float64(k)*step)*(highFreq+overlap)
	}

	return cf, nil
}
