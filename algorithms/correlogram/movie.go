package correlogram

import (
	"fmt"
	"sync"
)

// Movie slides Frame over a multi-channel signal at a fixed frame rate and
// returns the resulting sequence of correlogram frames, shape
// (frames, channels, width).
//
// The frame increment is int(sampleRate/frameRate) samples, each frame's
// analysis window is four increments long, and the frame count is
// (T-width)/increment + 1. The signal must be at least width samples long.
//
// Frames only read the shared input and write disjoint outputs, so they are
// computed in parallel; results are bit-identical to sequential evaluation.
func Movie(data [][]float64, sampleRate float64, frameRate, width int) ([][][]float64, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("data must have at least one channel")
	}
	if frameRate <= 0 {
		return nil, fmt.Errorf("frame rate must be positive, got %d", frameRate)
	}
	if width <= 0 {
		return nil, fmt.Errorf("width must be positive, got %d", width)
	}

	sampleLen := len(data[0])
	if sampleLen < width {
		return nil, fmt.Errorf("signal length %d is shorter than correlogram width %d", sampleLen, width)
	}

	frameIncrement := int(sampleRate / float64(frameRate))
	if frameIncrement < 1 {
		return nil, fmt.Errorf("frame rate %d exceeds sample rate %g", frameRate, sampleRate)
	}

	frameCount := (sampleLen-width)/frameIncrement + 1

	movie := make([][][]float64, frameCount)
	errs := make([]error, frameCount)

	var wg sync.WaitGroup
	wg.Add(frameCount)
	for i := 0; i < frameCount; i++ {
		go func(i int) {
			defer wg.Done()
			movie[i], errs[i] = Frame(data, width, i*frameIncrement, 4*frameIncrement)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
	}

	return movie, nil
}
