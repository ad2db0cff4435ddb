// Package audio supplies raw audio samples to the analysis pipeline. It
// reads uncompressed PCM WAV files only; anything compressed should be
// transcoded upstream before it reaches this library.
package audio

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/RyanBlaney/cochlear/logging"
)

// AudioData represents decoded audio data
type AudioData struct {
	PCM        []float64     `json:"-"` // Interleaved samples in [-1, 1]
	SampleRate int           `json:"sample_rate"`
	Channels   int           `json:"channels"`
	Duration   time.Duration `json:"duration"`
}

// Mono collapses interleaved multi-channel PCM to a single channel by
// averaging. Already-mono data is returned as-is.
func (a *AudioData) Mono() []float64 {
	if a.Channels <= 1 {
		return a.PCM
	}

	frames := len(a.PCM) / a.Channels
	mono := make([]float64, frames)
	for i := range mono {
		sum := 0.0
		for ch := 0; ch < a.Channels; ch++ {
			sum += a.PCM[i*a.Channels+ch]
		}
		mono[i] = sum / float64(a.Channels)
	}

	return mono
}

// ReadWAVFile reads a PCM WAV file from disk
func ReadWAVFile(path string) (*AudioData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	data, err := ReadWAV(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	logging.Debug("WAV file loaded", logging.Fields{
		"path":        path,
		"sample_rate": data.SampleRate,
		"channels":    data.Channels,
		"duration":    data.Duration.Seconds(),
	})

	return data, nil
}

// ReadWAV decodes a RIFF/WAVE stream containing integer PCM (16 or 32 bit)
// or IEEE float (32 or 64 bit) samples.
func ReadWAV(r io.Reader) (*AudioData, error) {
	var riff struct {
		ChunkID   [4]byte
		ChunkSize uint32
		Format    [4]byte
	}
	if err := binary.Read(r, binary.LittleEndian, &riff); err != nil {
		return nil, fmt.Errorf("reading RIFF header: %w", err)
	}
	if string(riff.ChunkID[:]) != "RIFF" || string(riff.Format[:]) != "WAVE" {
		return nil, fmt.Errorf("not a RIFF/WAVE stream")
	}

	var (
		audioFormat   uint16
		channels      uint16
		sampleRate    uint32
		bitsPerSample uint16
		haveFormat    bool
	)

	for {
		var chunk struct {
			ID   [4]byte
			Size uint32
		}
		if err := binary.Read(r, binary.LittleEndian, &chunk); err != nil {
			if err == io.EOF {
				return nil, fmt.Errorf("no data chunk found")
			}
			return nil, fmt.Errorf("reading chunk header: %w", err)
		}

		switch string(chunk.ID[:]) {
		case "fmt ":
			body := make([]byte, chunk.Size)
			if _, err := io.ReadFull(r, body); err != nil {
				return nil, fmt.Errorf("reading fmt chunk: %w", err)
			}
			if len(body) < 16 {
				return nil, fmt.Errorf("fmt chunk too short: %d bytes", len(body))
			}
			audioFormat = binary.LittleEndian.Uint16(body[0:2])
			channels = binary.LittleEndian.Uint16(body[2:4])
			sampleRate = binary.LittleEndian.Uint32(body[4:8])
			bitsPerSample = binary.LittleEndian.Uint16(body[14:16])
			haveFormat = true

		case "data":
			if !haveFormat {
				return nil, fmt.Errorf("data chunk before fmt chunk")
			}
			body := make([]byte, chunk.Size)
			if _, err := io.ReadFull(r, body); err != nil {
				return nil, fmt.Errorf("reading data chunk: %w", err)
			}

			samples, err := decodeSamples(body, audioFormat, bitsPerSample)
			if err != nil {
				return nil, err
			}
			if channels == 0 {
				return nil, fmt.Errorf("fmt chunk declares zero channels")
			}

			frames := len(samples) / int(channels)
			return &AudioData{
				PCM:        samples,
				SampleRate: int(sampleRate),
				Channels:   int(channels),
				Duration:   time.Duration(frames) * time.Second / time.Duration(sampleRate),
			}, nil

		default:
			// Skip unknown chunks (LIST, fact, ...)
			if _, err := io.CopyN(io.Discard, r, int64(chunk.Size)); err != nil {
				return nil, fmt.Errorf("skipping chunk %q: %w", string(chunk.ID[:]), err)
			}
		}
	}
}

const (
	formatPCM       = 1
	formatIEEEFloat = 3
)

func decodeSamples(data []byte, format, bits uint16) ([]float64, error) {
	switch {
	case format == formatPCM && bits == 16:
		n := len(data) / 2
		samples := make([]float64, n)
		for i := range samples {
			v := int16(binary.LittleEndian.Uint16(data[i*2 : i*2+2]))
			samples[i] = float64(v) / 32768
		}
		return samples, nil

	case format == formatPCM && bits == 32:
		n := len(data) / 4
		samples := make([]float64, n)
		for i := range samples {
			v := int32(binary.LittleEndian.Uint32(data[i*4 : i*4+4]))
			samples[i] = float64(v) / 2147483648
		}
		return samples, nil

	case format == formatIEEEFloat && bits == 32:
		n := len(data) / 4
		samples := make([]float64, n)
		for i := range samples {
			bitsVal := binary.LittleEndian.Uint32(data[i*4 : i*4+4])
			samples[i] = float64(math.Float32frombits(bitsVal))
		}
		return samples, nil

	case format == formatIEEEFloat && bits == 64:
		n := len(data) / 8
		samples := make([]float64, n)
		for i := range samples {
			bitsVal := binary.LittleEndian.Uint64(data[i*8 : i*8+8])
			samples[i] = math.Float64frombits(bitsVal)
		}
		return samples, nil

	default:
		return nil, fmt.Errorf("unsupported WAV encoding: format %d, %d bits", format, bits)
	}
}
