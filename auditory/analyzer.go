// Package auditory wires the gammatone filterbank and the correlogram pitch
// extractor into a single analysis pipeline.
package auditory

import (
	"fmt"
	"time"

	"github.com/RyanBlaney/cochlear/algorithms/correlogram"
	"github.com/RyanBlaney/cochlear/algorithms/gammatone"
	"github.com/RyanBlaney/cochlear/audio"
	"github.com/RyanBlaney/cochlear/auditory/config"
	"github.com/RyanBlaney/cochlear/logging"
)

// Result holds the full output of one analysis pass
type Result struct {
	// Cochleagram is the filterbank output, shape (channels, time)
	Cochleagram [][]float64 `json:"-"`

	// Movie is the correlogram, shape (frames, channels, width)
	Movie [][][]float64 `json:"-"`

	// Pitch and Salience hold one estimate per correlogram frame
	Pitch    []float64 `json:"pitch"`
	Salience []float64 `json:"salience"`

	SampleRate float64       `json:"sample_rate"`
	FrameRate  int           `json:"frame_rate"`
	Elapsed    time.Duration `json:"elapsed"`
}

// Analyzer runs signal -> cochleagram -> correlogram -> pitch.
// It is stateless across calls: Analyze is a pure function of its input and
// the construction-time configuration.
type Analyzer struct {
	config     *config.Config
	filterbank *gammatone.Filterbank
	logger     logging.Logger
}

// NewAnalyzer creates an analyzer from the given configuration, or from
// config.DefaultConfig() when cfg is nil.
func NewAnalyzer(cfg *config.Config) (*Analyzer, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	var (
		fb  *gammatone.Filterbank
		err error
	)
	if len(cfg.Filterbank.CenterFrequencies) > 0 {
		fb, err = gammatone.NewFilterbankCF(cfg.Filterbank.SampleRate, cfg.Filterbank.CenterFrequencies)
	} else {
		fb, err = gammatone.NewFilterbank(cfg.Filterbank.SampleRate, cfg.Filterbank.NumChannels, cfg.Filterbank.LowestFrequency)
	}
	if err != nil {
		return nil, err
	}

	return &Analyzer{
		config:     cfg,
		filterbank: fb,
		logger: logging.WithFields(logging.Fields{
			"component": "auditory_analyzer",
		}),
	}, nil
}

// Analyze runs the full pipeline on a mono waveform sampled at the
// configured sample rate.
func (a *Analyzer) Analyze(signal []float64) (*Result, error) {
	start := time.Now()

	cochleagram, err := a.filterbank.Process(signal)
	if err != nil {
		return nil, fmt.Errorf("filterbank: %w", err)
	}
	a.logger.Debug("filterbank applied", logging.Fields{
		"channels": len(cochleagram),
		"samples":  len(signal),
	})

	movie, err := correlogram.Movie(cochleagram, a.config.Filterbank.SampleRate,
		a.config.Correlogram.FrameRate, a.config.Correlogram.Width)
	if err != nil {
		return nil, fmt.Errorf("correlogram: %w", err)
	}
	a.logger.Debug("correlogram computed", logging.Fields{
		"frames": len(movie),
		"width":  a.config.Correlogram.Width,
	})

	pitch, salience, err := correlogram.Pitch(movie, a.config.Correlogram.Width,
		a.config.Filterbank.SampleRate, a.config.Pitch.LowPitch, a.config.Pitch.HighPitch)
	if err != nil {
		return nil, fmt.Errorf("pitch extraction: %w", err)
	}

	elapsed := time.Since(start)
	a.logger.Debug("analysis completed", logging.Fields{
		"frames":  len(pitch),
		"elapsed": elapsed.Seconds(),
	})

	return &Result{
		Cochleagram: cochleagram,
		Movie:       movie,
		Pitch:       pitch,
		Salience:    salience,
		SampleRate:  a.config.Filterbank.SampleRate,
		FrameRate:   a.config.Correlogram.FrameRate,
		Elapsed:     elapsed,
	}, nil
}

// AnalyzeAudio runs the pipeline on decoded audio, collapsing multi-channel
// data to mono first. The audio sample rate must match the configured
// filterbank sample rate; this library does not resample.
func (a *Analyzer) AnalyzeAudio(data *audio.AudioData) (*Result, error) {
	if data == nil {
		return nil, fmt.Errorf("audio data cannot be nil")
	}
	if float64(data.SampleRate) != a.config.Filterbank.SampleRate {
		return nil, fmt.Errorf("audio sample rate %d does not match configured rate %g",
			data.SampleRate, a.config.Filterbank.SampleRate)
	}

	return a.Analyze(data.Mono())
}

// Filterbank exposes the underlying gammatone filterbank
func (a *Analyzer) Filterbank() *gammatone.Filterbank {
	return a.filterbank
}

// Config returns the analyzer configuration
func (a *Analyzer) Config() *config.Config {
	return a.config
}
