package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	"Linecode/internel/utils"
	"Linecode/pkg/linecode"
	"Linecode/pkg/pipeline"
	"Linecode/pkg/report"
	"Linecode/pkg/scramble"
	"Linecode/pkg/symbol"
	"Linecode/pkg/waveform"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// SampleData is encoded when no input source is configured.
const SampleData = "010011000000001"

type Config struct {
	Input struct {
		Data     string `yaml:"data"` // bit string, e.g. 010011000000001
		Hex      string `yaml:"hex"`  // bytes as hex, most significant bit first
		File     string `yaml:"file"` // raw bytes read from a file
		Scheme   string `yaml:"scheme"`
		Scramble string `yaml:"scramble"`
		Analog   bool   `yaml:"analog"`
	} `yaml:"input"`

	Output struct {
		Color      bool `yaml:"color"`
		ShowLevels bool `yaml:"show_levels"`
		ShowStats  bool `yaml:"show_stats"`
	} `yaml:"output"`

	Waveform struct {
		SamplesPerLevel int     `yaml:"samples_per_level"`
		Amplitude       float64 `yaml:"amplitude"`
		File            string  `yaml:"file"`
		Format          string  `yaml:"format"`
	} `yaml:"waveform"`

	Batch struct {
		File  string `yaml:"file"` // one bit string per line
		Limit int    `yaml:"limit"`
	} `yaml:"batch"`
}

func Default() *Config {
	var config Config
	config.Input.Scheme = linecode.NRZL.String()
	config.Input.Scramble = scramble.KindNone.String()
	config.Output.ShowLevels = true
	config.Waveform.SamplesPerLevel = 100
	config.Waveform.Amplitude = 1.0
	config.Waveform.Format = waveform.FormatText.String()
	config.Batch.Limit = 4
	return &config
}

// LoadConfig reads filename over the defaults.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	config := Default()
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) Validate() error {
	sources := 0
	for _, s := range []string{c.Input.Data, c.Input.Hex, c.Input.File} {
		if s != "" {
			sources++
		}
	}
	if sources > 1 {
		return fmt.Errorf("%w: only one of input.data, input.hex and input.file may be set", ErrInvalidConfig)
	}
	if _, err := linecode.ParseScheme(c.Input.Scheme); err != nil {
		return fmt.Errorf("%w: input.scheme: %w", ErrInvalidConfig, err)
	}
	if _, err := scramble.ParseKind(c.Input.Scramble); err != nil {
		return fmt.Errorf("%w: input.scramble: %w", ErrInvalidConfig, err)
	}
	if _, err := waveform.ParseFormat(c.Waveform.Format); err != nil {
		return fmt.Errorf("%w: waveform.format: %w", ErrInvalidConfig, err)
	}
	if c.Waveform.SamplesPerLevel < 0 {
		return fmt.Errorf("%w: waveform.samples_per_level must not be negative", ErrInvalidConfig)
	}
	if c.Waveform.Amplitude < 0 || c.Waveform.Amplitude > 1 {
		return fmt.Errorf("%w: waveform.amplitude must be within [0, 1]", ErrInvalidConfig)
	}
	if c.Batch.Limit < 0 {
		return fmt.Errorf("%w: batch.limit must not be negative", ErrInvalidConfig)
	}
	return nil
}

// Bits resolves the configured input source to a bit string, SampleData
// when none is set.
func (c *Config) Bits() (string, error) {
	switch {
	case c.Input.Hex != "":
		data, err := hex.DecodeString(c.Input.Hex)
		if err != nil {
			return "", fmt.Errorf("%w: input.hex: %w", ErrInvalidConfig, err)
		}
		return symbol.FromBytes(data), nil
	case c.Input.File != "":
		data, err := utils.ReadBinary[byte](c.Input.File)
		if err != nil {
			return "", err
		}
		return symbol.FromBytes(data), nil
	case c.Input.Data != "":
		return c.Input.Data, nil
	default:
		return SampleData, nil
	}
}

func CreateRequest(config *Config) (pipeline.Request, error) {
	bits, err := config.Bits()
	if err != nil {
		return pipeline.Request{}, err
	}
	return createRequest(config, bits)
}

// CreateBatch builds one request per line of batch.file, all sharing the
// configured scheme and scrambling.
func CreateBatch(config *Config) ([]pipeline.Request, error) {
	lines, err := utils.ReadLines(config.Batch.File)
	if err != nil {
		return nil, err
	}

	reqs := make([]pipeline.Request, 0, len(lines))
	for _, line := range lines {
		req, err := createRequest(config, line)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}

func createRequest(config *Config, bits string) (pipeline.Request, error) {
	scheme, err := linecode.ParseScheme(config.Input.Scheme)
	if err != nil {
		return pipeline.Request{}, err
	}
	kind, err := scramble.ParseKind(config.Input.Scramble)
	if err != nil {
		return pipeline.Request{}, err
	}
	return pipeline.Request{
		Bits:     bits,
		Scheme:   scheme,
		Scramble: kind,
		Analog:   config.Input.Analog,
	}, nil
}

func CreateWaveform(config *Config) (waveform.Config, waveform.Format, error) {
	format, err := waveform.ParseFormat(config.Waveform.Format)
	if err != nil {
		return waveform.Config{}, format, err
	}
	return waveform.Config{
		SamplesPerLevel: config.Waveform.SamplesPerLevel,
		Amplitude:       config.Waveform.Amplitude,
	}, format, nil
}

func CreatePrinter(config *Config) report.Printer {
	return report.Printer{
		Color:      config.Output.Color,
		ShowLevels: config.Output.ShowLevels,
		ShowStats:  config.Output.ShowStats,
	}
}
