package linecode

import "Linecode/pkg/symbol"

// 0 = high, 1 = low
func nrzl(levels []float64, symbols string) []float64 {
	for i := 0; i < len(symbols); i++ {
		if symbols[i] == symbol.Zero {
			levels = append(levels, High)
		} else {
			levels = append(levels, Low)
		}
	}
	return levels
}

// 0 = hold, 1 = invert, starting high
func nrzi(levels []float64, symbols string) []float64 {
	current := High
	for i := 0; i < len(symbols); i++ {
		if symbols[i] == symbol.One {
			current = -current
		}
		levels = append(levels, current)
	}
	return levels
}
