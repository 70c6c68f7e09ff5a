package linecode

import "Linecode/pkg/symbol"

// 0 = high-to-low, 1 = low-to-high
func manchester(levels []float64, symbols string) []float64 {
	for i := 0; i < len(symbols); i++ {
		if symbols[i] == symbol.Zero {
			levels = append(levels, High, Low)
		} else {
			levels = append(levels, Low, High)
		}
	}
	return levels
}

// There is always a transition at mid-symbol. A 0 adds one at the start of
// the symbol as well, a 1 does not.
func diffManchester(levels []float64, symbols string) []float64 {
	current := High
	for i := 0; i < len(symbols); i++ {
		if symbols[i] == symbol.Zero {
			current = -current
		}
		levels = append(levels, current)
		current = -current
		levels = append(levels, current)
	}
	return levels
}
