// Package waveform turns a level sequence into sample data for external
// plotters and sound devices.
package waveform

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"Linecode/internel/utils"
)

type Format int

const (
	FormatText   Format = iota // one level per line
	FormatBinary               // little-endian int32 samples
)

var ErrInvalidFormat = errors.New("invalid waveform format")

func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "txt", "text":
		return FormatText, nil
	case "bin", "binary", "pcm":
		return FormatBinary, nil
	}
	return FormatText, fmt.Errorf("%w: %q", ErrInvalidFormat, name)
}

func (f Format) String() string {
	switch f {
	case FormatText:
		return "txt"
	case FormatBinary:
		return "bin"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

type Config struct {
	SamplesPerLevel int     // number of samples used to hold a level
	Amplitude       float64 // fraction of full scale, (0, 1]
}

func (c Config) normalized() Config {
	if c.SamplesPerLevel <= 0 {
		slog.Debug("samples per level is not set, using 1", "component", "waveform")
		c.SamplesPerLevel = 1
	}
	if c.Amplitude <= 0 || c.Amplitude > 1 {
		slog.Debug("amplitude out of range, using full scale", "component", "waveform", "amplitude", c.Amplitude)
		c.Amplitude = 1
	}
	return c
}

// Render holds every level for SamplesPerLevel samples and scales it by
// Amplitude.
func (c Config) Render(levels []float64) []int32 {
	c = c.normalized()

	samples := make([]float64, 0, len(levels)*c.SamplesPerLevel)
	for _, level := range levels {
		for range c.SamplesPerLevel {
			samples = append(samples, level*c.Amplitude)
		}
	}
	return ToInt32(samples)
}

// Export writes levels to filename. The text format keeps the raw levels, the
// binary format the rendered samples.
func (c Config) Export(filename string, format Format, levels []float64) error {
	switch format {
	case FormatText:
		return utils.WriteTxt(filename, levels, func(v float64) string {
			return strconv.FormatFloat(v, 'f', -1, 64)
		})
	case FormatBinary:
		return utils.WriteBinary(filename, c.Render(levels))
	}
	return fmt.Errorf("%w: %v", ErrInvalidFormat, format)
}
