package scramble

import "Linecode/pkg/symbol"

const (
	b8zsRun = 8

	// 000VB0VB after a negative and after a positive pulse
	b8zsAfterMinus = "000+-0-+"
	b8zsAfterPlus  = "000-+0+-"
)

// B8ZS replaces every run of eight zeros. The two violations cancel, so the
// polarity of the next real pulse is unaffected.
func B8ZS(bits string) (string, error) {
	if err := symbol.Binary.Validate("b8zs", bits); err != nil {
		return "", err
	}

	s := newState(len(bits))
	for i := 0; i < len(bits); i++ {
		if bits[i] == symbol.One {
			s.pulse()
			continue
		}
		s.zero()
		if s.zeroCount == b8zsRun {
			if s.lastPolarity == symbol.Minus {
				s.substitute(b8zsAfterMinus)
			} else {
				s.substitute(b8zsAfterPlus)
			}
		}
	}
	return s.String(), nil
}
