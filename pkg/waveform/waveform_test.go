package waveform

import (
	"os"
	"path/filepath"
	"testing"

	"Linecode/internel/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		config   Config
		levels   []float64
		expected []int32
	}{
		{"Empty", Config{SamplesPerLevel: 4, Amplitude: 1}, nil, []int32{}},
		{"One sample per level", Config{SamplesPerLevel: 1, Amplitude: 1}, []float64{1, 0, -1}, []int32{fullScale, 0, -fullScale}},
		{"Held levels", Config{SamplesPerLevel: 2, Amplitude: 1}, []float64{1, -1}, []int32{fullScale, fullScale, -fullScale, -fullScale}},
		{"Zero config uses defaults", Config{}, []float64{-1}, []int32{-fullScale}},
		{"Half amplitude", Config{SamplesPerLevel: 1, Amplitude: 0.5}, []float64{1}, []int32{fullScale / 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.Render(tt.levels))
		})
	}
}

func TestToInt32(t *testing.T) {
	assert.Equal(t, []int32{fullScale, 0, -fullScale}, ToInt32([]float64{1, 0, -1}))
	assert.Equal(t, []int32{fullScale}, ToInt32([]float32{1}))
	assert.Empty(t, ToInt32([]float64{}))
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	levels := []float64{1, 0, -1, 1}
	config := Config{SamplesPerLevel: 3, Amplitude: 1}

	txt := filepath.Join(dir, "levels.txt")
	require.NoError(t, config.Export(txt, FormatText, levels))
	data, err := os.ReadFile(txt)
	require.NoError(t, err)
	assert.Equal(t, "1\n0\n-1\n1\n", string(data))

	bin := filepath.Join(dir, "levels.bin")
	require.NoError(t, config.Export(bin, FormatBinary, levels))
	samples, err := utils.ReadBinary[int32](bin)
	require.NoError(t, err)
	assert.Len(t, samples, 12)
	assert.Equal(t, config.Render(levels), samples)

	assert.ErrorIs(t, config.Export(bin, Format(9), levels), ErrInvalidFormat)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("BIN")
	require.NoError(t, err)
	assert.Equal(t, FormatBinary, f)

	f, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatText, f)

	_, err = ParseFormat("png")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
