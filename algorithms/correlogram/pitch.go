package correlogram

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/RyanBlaney/cochlear/algorithms/common"
	"github.com/RyanBlaney/cochlear/algorithms/filters"
)

// smoothingLength is the length of the running-sum filter applied to the
// summary correlogram before the valley search. The first smoothingLength
// difference samples are the filter warm-up region and are ignored.
const smoothingLength = 16

// Pitch computes per-frame pitch estimates from a correlogram movie by
// finding, for each frame, the time lag with the largest summary
// correlation energy.
//
// movie must be a well-formed (frames, channels, width) array, width the lag
// count of each frame. lowPitch and highPitch bound the search range in Hz;
// lowPitch may be 0 to leave the low end open.
//
// Returns one (pitch, salience) pair per frame: pitch in Hz, or 0 when no
// pitch is found, and salience in [0, 1], the summary peak normalized by the
// zero-lag energy. No frame-to-frame continuity is enforced; every estimate
// is independent and free to change instantaneously between frames.
//
// Two degenerate cases report pitch 0 and salience 0 rather than failing:
// a frame whose smoothed summary never turns back upward after the zero-lag
// peak, and a frame with no zero-lag energy.
func Pitch(movie [][][]float64, width int, sampleRate, lowPitch, highPitch float64) (pitch, salience []float64, err error) {
	if err := validateMovie(movie, width); err != nil {
		return nil, nil, err
	}
	if sampleRate <= 0 {
		return nil, nil, fmt.Errorf("sample rate must be positive, got %g", sampleRate)
	}
	if highPitch <= 0 || highPitch <= lowPitch {
		return nil, nil, fmt.Errorf("pitch range [%g, %g) is invalid", lowPitch, highPitch)
	}
	if lowPitch < 0 {
		return nil, nil, fmt.Errorf("lowest pitch must be >= 0, got %g", lowPitch)
	}

	// Lags shorter than the period of highPitch are excluded; if lowPitch is
	// set, so are lags longer than its period.
	dropLow := int(sampleRate / highPitch)
	dropHigh := width
	if lowPitch > 0 {
		dropHigh = min(width, int(math.Ceil(sampleRate/lowPitch)))
	}

	frames := len(movie)
	pitch = make([]float64, frames)
	salience = make([]float64, frames)

	for j, frame := range movie {
		// Sum across channels as a function of time lag
		summary := make([]float64, width)
		for _, channel := range frame {
			floats.Add(summary, channel)
		}
		zeroLag := summary[0]

		// Find the first minimum past the peak at zero lag: smooth the
		// summary a bit, then look for the first point where it goes back
		// up. Everything before that point is zeroed out.
		sumfilt, ferr := filters.RunningSum(summary, smoothingLength)
		if ferr != nil {
			return nil, nil, ferr
		}

		valley := -1
		for i := smoothingLength; i < width-1; i++ {
			if sumfilt[i+1]-sumfilt[i] > 0 {
				valley = i
				break
			}
		}
		if valley < 0 || zeroLag <= 0 {
			// No upward turn within the window, or no energy at all
			continue
		}

		for i := 0; i < valley; i++ {
			summary[i] = 0
		}
		for i := 1; i < dropLow && i < width; i++ {
			summary[i] = 0
		}
		for i := dropHigh; i < width; i++ {
			summary[i] = 0
		}

		// The biggest remaining peak is the pitch period
		p := common.ArgMax(summary)
		if p > 0 {
			pitch[j] = sampleRate / float64(p)
		}
		salience[j] = summary[p] / zeroLag
	}

	return pitch, salience, nil
}

// validateMovie checks that movie is a non-ragged 3-D array of shape
// (frames, channels, width).
func validateMovie(movie [][][]float64, width int) error {
	if width <= 0 {
		return fmt.Errorf("width must be positive, got %d", width)
	}
	if len(movie) == 0 {
		return fmt.Errorf("correlogram must have at least one frame")
	}

	channels := len(movie[0])
	for j, frame := range movie {
		if len(frame) != channels {
			return fmt.Errorf("frame %d has %d channels, want %d", j, len(frame), channels)
		}
		for ch, row := range frame {
			if len(row) != width {
				return fmt.Errorf("frame %d channel %d has %d lags, want %d", j, ch, len(row), width)
			}
		}
	}
	if channels == 0 {
		return fmt.Errorf("correlogram frames must have at least one channel")
	}

	return nil
}
