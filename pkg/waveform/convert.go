package waveform

import "golang.org/x/exp/constraints"

const fullScale = 0x7fffffff

// ToInt32 converts samples in [-1, 1] to full-scale int32 samples.
func ToInt32[T constraints.Float](input []T) []int32 {
	output := make([]int32, len(input))
	for i, v := range input {
		output[i] = int32(float64(v) * fullScale)
	}
	return output
}
