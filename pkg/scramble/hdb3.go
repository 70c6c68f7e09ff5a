package scramble

import "Linecode/pkg/symbol"

const hdb3Run = 4

// HDB3 replaces every run of four zeros with 000V when an odd number of
// pulses went out since the last substitution, and with B00V otherwise.
// V repeats the sign of the previous pulse; B takes the alternating sign and
// V follows it.
func HDB3(bits string) (string, error) {
	if err := symbol.Binary.Validate("hdb3", bits); err != nil {
		return "", err
	}

	s := newState(len(bits))
	for i := 0; i < len(bits); i++ {
		if bits[i] == symbol.One {
			s.pulse()
			continue
		}
		s.zero()
		if s.zeroCount < hdb3Run {
			continue
		}
		if s.onesCount%2 == 1 {
			v := s.lastPolarity
			s.substitute(string([]byte{symbol.Zero, symbol.Zero, symbol.Zero, v}))
		} else {
			b := opposite(s.lastPolarity)
			s.substitute(string([]byte{b, symbol.Zero, symbol.Zero, b}))
			s.lastPolarity = b
		}
	}
	return s.String(), nil
}
