package correlogram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovieFrameCount(t *testing.T) {
	data := [][]float64{rectifiedSine(1000, 40)}

	movie, err := Movie(data, 1000, 10, 256)
	require.NoError(t, err)

	// increment = 100 samples: (1000-256)/100 + 1 frames
	require.Len(t, movie, 8)
	for i := range movie {
		require.Len(t, movie[i], 1)
		assert.Len(t, movie[i][0], 256)
	}
}

func TestMovieMatchesFrame(t *testing.T) {
	data := [][]float64{rectifiedSine(1200, 40), rectifiedSine(1200, 60)}

	movie, err := Movie(data, 1000, 10, 256)
	require.NoError(t, err)

	// Each movie frame equals a directly computed frame at the same offset
	for i := range movie {
		want, err := Frame(data, 256, i*100, 400)
		require.NoError(t, err)
		require.Equal(t, want, movie[i], "frame %d", i)
	}
}

func TestMovieDeterministic(t *testing.T) {
	data := [][]float64{rectifiedSine(2000, 48)}

	m1, err := Movie(data, 1000, 10, 256)
	require.NoError(t, err)
	m2, err := Movie(data, 1000, 10, 256)
	require.NoError(t, err)

	// Frame parallelism must not affect results
	require.Equal(t, m1, m2)
}

func TestMovieInvalidArguments(t *testing.T) {
	data := [][]float64{rectifiedSine(100, 20)}

	_, err := Movie(data, 1000, 10, 256)
	assert.Error(t, err, "signal shorter than width")

	_, err = Movie(data, 1000, 0, 64)
	assert.Error(t, err, "zero frame rate")

	_, err = Movie(data, 1000, 10, 0)
	assert.Error(t, err, "zero width")

	_, err = Movie(nil, 1000, 10, 64)
	assert.Error(t, err, "no channels")

	_, err = Movie(data, 5, 10, 64)
	assert.Error(t, err, "frame rate above sample rate")
}
