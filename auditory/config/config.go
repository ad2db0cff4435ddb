// Package config holds the user-facing configuration for the auditory
// analysis pipeline.
package config

import "fmt"

// FilterbankConfig configures the gammatone filterbank front-end
type FilterbankConfig struct {
	SampleRate      float64 `json:"sample_rate"`
	NumChannels     int     `json:"num_channels"`
	LowestFrequency float64 `json:"lowest_frequency"`

	// CenterFrequencies, when set, overrides NumChannels and
	// LowestFrequency with an explicit list of channel frequencies (Hz)
	CenterFrequencies []float64 `json:"center_frequencies,omitempty"`
}

// CorrelogramConfig configures correlogram generation
type CorrelogramConfig struct {
	FrameRate int `json:"frame_rate"` // Frames per second
	Width     int `json:"width"`      // Lags per frame
}

// PitchConfig bounds the pitch search range in Hz.
// LowPitch may be 0 to leave the low end open.
type PitchConfig struct {
	LowPitch  float64 `json:"low_pitch"`
	HighPitch float64 `json:"high_pitch"`
}

// Config is the complete configuration of an auditory.Analyzer
type Config struct {
	Filterbank  FilterbankConfig  `json:"filterbank"`
	Correlogram CorrelogramConfig `json:"correlogram"`
	Pitch       PitchConfig       `json:"pitch"`
}

// DefaultConfig mirrors the classic Auditory Toolbox defaults: a 64-channel
// bank down to 100 Hz at 16 kHz, correlogram frames at 12 Hz with 256 lags,
// and an unconstrained pitch range.
func DefaultConfig() *Config {
	return &Config{
		Filterbank: FilterbankConfig{
			SampleRate:      16000,
			NumChannels:     64,
			LowestFrequency: 100,
		},
		Correlogram: CorrelogramConfig{
			FrameRate: 12,
			Width:     256,
		},
		Pitch: PitchConfig{
			LowPitch:  0,
			HighPitch: 20000,
		},
	}
}

// Validate checks the configuration for internally consistent values
func (c *Config) Validate() error {
	fb := c.Filterbank
	if fb.SampleRate <= 0 {
		return fmt.Errorf("filterbank sample rate must be positive, got %g", fb.SampleRate)
	}
	if len(fb.CenterFrequencies) == 0 {
		if fb.NumChannels < 1 {
			return fmt.Errorf("filterbank channel count must be >= 1, got %d", fb.NumChannels)
		}
		if fb.LowestFrequency <= 0 || fb.LowestFrequency >= fb.SampleRate/2 {
			return fmt.Errorf("filterbank lowest frequency %g outside (0, %g)", fb.LowestFrequency, fb.SampleRate/2)
		}
	}

	if c.Correlogram.FrameRate <= 0 {
		return fmt.Errorf("correlogram frame rate must be positive, got %d", c.Correlogram.FrameRate)
	}
	if c.Correlogram.Width <= 0 {
		return fmt.Errorf("correlogram width must be positive, got %d", c.Correlogram.Width)
	}

	if c.Pitch.LowPitch < 0 {
		return fmt.Errorf("lowest pitch must be >= 0, got %g", c.Pitch.LowPitch)
	}
	if c.Pitch.HighPitch <= c.Pitch.LowPitch {
		return fmt.Errorf("pitch range [%g, %g) is invalid", c.Pitch.LowPitch, c.Pitch.HighPitch)
	}

	return nil
}
