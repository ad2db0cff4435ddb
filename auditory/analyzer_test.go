package auditory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/cochlear/algorithms/synth"
	"github.com/RyanBlaney/cochlear/audio"
	"github.com/RyanBlaney/cochlear/auditory/config"
)

// vowelSignal synthesizes one second of the vowel /a/ at the given pitch,
// sampled at 16 kHz.
func vowelSignal(t *testing.T, pitch float64) []float64 {
	t.Helper()

	formants, err := synth.VowelA.Formants()
	require.NoError(t, err)
	signal, err := synth.MakeVowel(16000, pitch, 16000, formants, 0)
	require.NoError(t, err)
	return signal
}

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Pitch.LowPitch = 50
	cfg.Pitch.HighPitch = 1000
	return cfg
}

func TestAnalyzeVowelPitch(t *testing.T) {
	const pitch = 120.0

	analyzer, err := NewAnalyzer(testConfig())
	require.NoError(t, err)

	result, err := analyzer.Analyze(vowelSignal(t, pitch))
	require.NoError(t, err)

	// Shapes: 64-channel cochleagram, (16000-256)/1333+1 = 12 frames
	require.Len(t, result.Cochleagram, 64)
	require.Len(t, result.Cochleagram[0], 16000)
	require.Len(t, result.Movie, 12)
	require.Len(t, result.Pitch, 12)
	require.Len(t, result.Salience, 12)
	assert.Equal(t, 16000.0, result.SampleRate)
	assert.Equal(t, 12, result.FrameRate)

	// Every frame of a steady vowel reads within 5% of the true pitch,
	// with a confident salience
	for j, p := range result.Pitch {
		assert.InDelta(t, pitch, p, 0.05*pitch, "frame %d", j)
		assert.Greater(t, result.Salience[j], 0.4, "frame %d", j)
		assert.LessOrEqual(t, result.Salience[j], 1.0, "frame %d", j)
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	analyzer, err := NewAnalyzer(testConfig())
	require.NoError(t, err)

	signal := vowelSignal(t, 150)
	r1, err := analyzer.Analyze(signal)
	require.NoError(t, err)
	r2, err := analyzer.Analyze(signal)
	require.NoError(t, err)

	// Channel and frame parallelism must not leak into the results
	require.Equal(t, r1.Cochleagram, r2.Cochleagram)
	require.Equal(t, r1.Movie, r2.Movie)
	require.Equal(t, r1.Pitch, r2.Pitch)
	require.Equal(t, r1.Salience, r2.Salience)
}

func TestAnalyzeAudioCollapsesToMono(t *testing.T) {
	analyzer, err := NewAnalyzer(testConfig())
	require.NoError(t, err)

	mono := vowelSignal(t, 100)
	interleaved := make([]float64, 2*len(mono))
	for i, v := range mono {
		interleaved[2*i] = v
		interleaved[2*i+1] = v
	}
	stereo := &audio.AudioData{PCM: interleaved, SampleRate: 16000, Channels: 2}

	fromAudio, err := analyzer.AnalyzeAudio(stereo)
	require.NoError(t, err)
	direct, err := analyzer.Analyze(mono)
	require.NoError(t, err)

	require.Equal(t, direct.Pitch, fromAudio.Pitch)
	require.Equal(t, direct.Salience, fromAudio.Salience)
}

func TestAnalyzeAudioRejectsMismatchedRate(t *testing.T) {
	analyzer, err := NewAnalyzer(testConfig())
	require.NoError(t, err)

	_, err = analyzer.AnalyzeAudio(&audio.AudioData{
		PCM:        make([]float64, 44100),
		SampleRate: 44100,
		Channels:   1,
	})
	assert.Error(t, err)

	_, err = analyzer.AnalyzeAudio(nil)
	assert.Error(t, err)
}

func TestNewAnalyzerDefaults(t *testing.T) {
	analyzer, err := NewAnalyzer(nil)
	require.NoError(t, err)

	assert.Equal(t, 64, analyzer.Filterbank().NumChannels())
	assert.Equal(t, 16000.0, analyzer.Config().Filterbank.SampleRate)
}

func TestNewAnalyzerExplicitCenterFrequencies(t *testing.T) {
	cfg := testConfig()
	cfg.Filterbank.CenterFrequencies = []float64{250, 500, 1000, 2000}

	analyzer, err := NewAnalyzer(cfg)
	require.NoError(t, err)

	assert.Equal(t, 4, analyzer.Filterbank().NumChannels())
	assert.Equal(t, cfg.Filterbank.CenterFrequencies, analyzer.Filterbank().CenterFrequencies())
}

func TestNewAnalyzerInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Correlogram.Width = 0

	_, err := NewAnalyzer(cfg)
	assert.Error(t, err)
}
