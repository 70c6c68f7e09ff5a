package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"Linecode/cmd/linecode/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunInteractive(t *testing.T) {
	input := strings.Join([]string{
		"1",
		"1011",
		"7", // rejected, asked again
		"5",
		"0",
		"digital",
		"00000000",
		"AMI",
		"B8ZS",
		"1",
		"0110",
		"NRZ-L",
		"q",
	}, "\n")

	var out strings.Builder
	require.NoError(t, runInteractive(strings.NewReader(input), &out, config.Default()))

	text := out.String()
	assert.Contains(t, text, "Invalid choice")
	assert.Contains(t, text, "Levels:             + 0 - +\n")
	assert.Contains(t, text, "Scrambled Data:     000+-0-+\n")
	assert.Contains(t, text, "Signal:             NRZ-L\n")
}

func TestRunInteractiveReportsPipelineErrors(t *testing.T) {
	var out strings.Builder
	require.NoError(t, runInteractive(strings.NewReader("1\n01a\n1\n"), &out, config.Default()))
	assert.Contains(t, out.String(), "Error: input: invalid symbol 'a' at position 2")
}

func TestRunInteractiveAnalogInput(t *testing.T) {
	var out strings.Builder
	require.NoError(t, runInteractive(strings.NewReader("3\n2\nq\n"), &out, config.Default()))

	text := out.String()
	assert.Contains(t, text, "2. Analog Input (PCM/DM) [Not Implemented]")
	assert.Contains(t, text, "Invalid choice")
	assert.Contains(t, text, "Error: analog input (PCM/DM) is not supported")
	assert.NotContains(t, text, "--- Results ---")
}

func TestRunExportsWaveform(t *testing.T) {
	out := filepath.Join(t.TempDir(), "levels.txt")
	require.NoError(t, run([]string{"-data", "0110", "-scheme", "NRZ-L", "-out", out, "-format", "txt"}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "1\n-1\n-1\n1\n", string(data))
}

func TestRunRejectsScrambleWithoutAMI(t *testing.T) {
	err := run([]string{"-data", "0000", "-scheme", "NRZ-I", "-scramble", "HDB3"})
	assert.Error(t, err)
}

func TestRunBatchFile(t *testing.T) {
	batch := filepath.Join(t.TempDir(), "batch.txt")
	require.NoError(t, os.WriteFile(batch, []byte("0101\n1100\n"), 0o644))
	require.NoError(t, run([]string{"-batch", batch, "-scheme", "Manchester", "-limit", "2"}))
}

func TestRunBatchExportsEachRequest(t *testing.T) {
	dir := t.TempDir()
	batch := filepath.Join(dir, "batch.txt")
	require.NoError(t, os.WriteFile(batch, []byte("0110\n1000\n"), 0o644))

	out := filepath.Join(dir, "levels.txt")
	require.NoError(t, run([]string{"-batch", batch, "-scheme", "NRZ-L", "-out", out, "-format", "txt"}))

	got, err := os.ReadFile(filepath.Join(dir, "levels-0.txt"))
	require.NoError(t, err)
	assert.Equal(t, "1\n-1\n-1\n1\n", string(got))

	got, err = os.ReadFile(filepath.Join(dir, "levels-1.txt"))
	require.NoError(t, err)
	assert.Equal(t, "-1\n1\n1\n1\n", string(got))

	assert.NoFileExists(t, out)
}

func TestBatchFilename(t *testing.T) {
	tests := []struct {
		file string
		i    int
		want string
	}{
		{"levels.txt", 0, "levels-0.txt"},
		{"out/wave.bin", 3, "out/wave-3.bin"},
		{"levels", 1, "levels-1"},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			assert.Equal(t, tt.want, batchFilename(tt.file, tt.i))
		})
	}
}
