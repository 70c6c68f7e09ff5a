package linecode

import "Linecode/pkg/symbol"

// ami emits zero volts for 0 and alternates pulses for 1, the first one
// positive. Forced pulses from a scrambler set the polarity the next 1
// alternates from.
func ami(levels []float64, symbols string) []float64 {
	lastPositive := false
	for i := 0; i < len(symbols); i++ {
		switch symbols[i] {
		case symbol.Zero:
			levels = append(levels, Idle)
		case symbol.One:
			if lastPositive {
				levels = append(levels, Low)
			} else {
				levels = append(levels, High)
			}
			lastPositive = !lastPositive
		case symbol.Plus:
			levels = append(levels, High)
			lastPositive = true
		case symbol.Minus:
			levels = append(levels, Low)
			lastPositive = false
		}
	}
	return levels
}
