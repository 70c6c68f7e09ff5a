package linecode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name     string
		levels   []float64
		expected Stats
	}{
		{"Empty", nil, Stats{}},
		{"Single", []float64{1}, Stats{Levels: 1, DCSum: 1, LongestFlatRun: 1}},
		{
			"Alternating AMI",
			[]float64{1, 0, -1, 1},
			Stats{Levels: 4, Transitions: 3, DCSum: 1, LongestFlatRun: 1},
		},
		{
			"Bipolar violation across zeros",
			[]float64{1, 0, 0, 1, -1},
			Stats{Levels: 5, Transitions: 3, DCSum: 1, LongestFlatRun: 2, Violations: 1},
		},
		{
			"Flat NRZ",
			[]float64{1, 1, 1, -1},
			Stats{Levels: 4, Transitions: 1, DCSum: 2, LongestFlatRun: 3, Violations: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Analyze(tt.levels))
		})
	}
}

func TestAnalyzeManchesterIsBalanced(t *testing.T) {
	levels, err := Encode("0000111101", Manchester)
	require.NoError(t, err)

	st := Analyze(levels)
	assert.Zero(t, st.DCSum)
	assert.LessOrEqual(t, st.LongestFlatRun, 2)
}
