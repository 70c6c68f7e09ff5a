package linecode

// Stats summarises the properties of a level sequence that matter on a real
// line: clocking (transitions, flat runs) and DC balance.
type Stats struct {
	Levels         int
	Transitions    int     // level changes between neighbouring levels
	DCSum          float64 // running digital sum at the end of the sequence
	LongestFlatRun int     // longest run of one repeated level
	Violations     int     // consecutive non-zero pulses of the same sign, zeros skipped
}

// Analyze computes Stats for levels. Violations are only meaningful for AMI
// style bipolar sequences.
func Analyze(levels []float64) Stats {
	st := Stats{Levels: len(levels)}
	if len(levels) == 0 {
		return st
	}

	run := 0
	lastPulse := Idle
	for i, v := range levels {
		st.DCSum += v

		if i > 0 && v != levels[i-1] {
			st.Transitions++
			run = 0
		}
		run++
		st.LongestFlatRun = max(st.LongestFlatRun, run)

		if v == Idle {
			continue
		}
		if v == lastPulse {
			st.Violations++
		}
		lastPulse = v
	}
	return st
}
