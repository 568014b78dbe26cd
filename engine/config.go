// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Config describes the processing context shared by every voice.
type Config struct {
	// SampleRate in Hz.
	SampleRate float64 `json:"sample_rate"`
	// BlockSize is the number of frames computed per processing call.
	BlockSize int `json:"block_size"`
	// InputChannels is the width of the external input bus.
	InputChannels int `json:"input_channels"`
	// OutputChannels is the width of the server mix.
	OutputChannels int `json:"output_channels"`
	// Seed feeds the noise generators. Equal seeds give equal noise.
	Seed int64 `json:"seed"`
}

// DefaultConfig returns 44.1kHz, 256-frame blocks, stereo in and out.
func DefaultConfig() Config {
	return Config{
		SampleRate:     44100,
		BlockSize:      256,
		InputChannels:  2,
		OutputChannels: 2,
		Seed:           1,
	}
}

// Validate checks that cfg can drive a Context.
func (cfg Config) Validate() error {
	if !(cfg.SampleRate > 0) {
		return fmt.Errorf("%w: %v", ErrInvalidSampleRate, cfg.SampleRate)
	}
	if cfg.BlockSize <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidBlockSize, cfg.BlockSize)
	}
	if cfg.InputChannels < 0 {
		return fmt.Errorf("%w: %d inputs", ErrInvalidChannels, cfg.InputChannels)
	}
	if cfg.OutputChannels <= 0 {
		return ErrNoOutputs
	}
	return nil
}

// LoadConfig reads a JSON config from path. Fields missing from the file
// keep their DefaultConfig values; a missing file yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	fp, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer fp.Close()

	if err := json.NewDecoder(fp).Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveConfig writes cfg to path as indented JSON.
func SaveConfig(path string, cfg Config) error {
	fp, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}
	defer fp.Close()

	enc := json.NewEncoder(fp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}
