// Package scramble implements the zero-run substitution codes that precede
// AMI line encoding. Both codes rewrite a bit string into a stream of
// polarity-annotated symbols ('0', '+', '-') of the same length; the
// inserted '+'/'-' pulses include deliberate bipolar violations so a
// receiver can recognise the substitution and keep its clock locked.
package scramble

import (
	"errors"
	"fmt"
	"strings"

	"Linecode/pkg/symbol"
)

type Kind int

const (
	KindNone Kind = iota
	KindB8ZS
	KindHDB3
)

var ErrInvalidKind = errors.New("invalid scrambling kind")

func Kinds() []Kind {
	return []Kind{KindNone, KindB8ZS, KindHDB3}
}

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindB8ZS:
		return "B8ZS"
	case KindHDB3:
		return "HDB3"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind accepts the kind names case-insensitively, "" for none, and the
// menu numbers 0 (none), 1 (B8ZS) and 2 (HDB3).
func ParseKind(name string) (Kind, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "", "NONE", "NO", "0":
		return KindNone, nil
	case "B8ZS", "1":
		return KindB8ZS, nil
	case "HDB3", "2":
		return KindHDB3, nil
	}
	return KindNone, fmt.Errorf("%w: %q", ErrInvalidKind, name)
}

// Apply scrambles bits with the given kind. KindNone validates and returns
// bits unchanged.
func Apply(kind Kind, bits string) (string, error) {
	switch kind {
	case KindNone:
		if err := symbol.Binary.Validate("scramble", bits); err != nil {
			return "", err
		}
		return bits, nil
	case KindB8ZS:
		return B8ZS(bits)
	case KindHDB3:
		return HDB3(bits)
	}
	return "", fmt.Errorf("%w: %v", ErrInvalidKind, kind)
}

// state is the scratch state of a single scan. Every call owns its own.
type state struct {
	out          []byte
	lastPolarity byte // symbol.Plus or symbol.Minus
	zeroCount    int  // consecutive zeros not yet substituted
	onesCount    int  // real pulses since the last substitution
}

func newState(size int) *state {
	return &state{
		out:          make([]byte, 0, size),
		lastPolarity: symbol.Minus,
	}
}

func (s *state) pulse() {
	s.zeroCount = 0
	s.onesCount++
	s.lastPolarity = opposite(s.lastPolarity)
	s.out = append(s.out, s.lastPolarity)
}

func (s *state) zero() {
	s.zeroCount++
	s.out = append(s.out, symbol.Zero)
}

// substitute overwrites the trailing zeros with pattern.
func (s *state) substitute(pattern string) {
	s.out = append(s.out[:len(s.out)-len(pattern)], pattern...)
	s.zeroCount = 0
	s.onesCount = 0
}

func (s *state) String() string {
	return string(s.out)
}

func opposite(p byte) byte {
	if p == symbol.Minus {
		return symbol.Plus
	}
	return symbol.Minus
}
