// Package linecode maps symbol streams to signal levels.
//
// Every scheme is a small transducer that walks the input once, carrying its
// own polarity state, and emits one or two levels per symbol. Nothing is
// shared between calls.
package linecode

import (
	"errors"
	"fmt"
	"strings"

	"Linecode/pkg/symbol"
)

// Signal levels.
const (
	High = 1.0
	Idle = 0.0
	Low  = -1.0
)

type Scheme int

const (
	NRZL Scheme = iota
	NRZI
	Manchester
	DiffManchester
	AMI
)

var ErrInvalidScheme = errors.New("invalid encoding scheme")

// Schemes returns all schemes in menu order.
func Schemes() []Scheme {
	return []Scheme{NRZL, NRZI, Manchester, DiffManchester, AMI}
}

func (s Scheme) String() string {
	switch s {
	case NRZL:
		return "NRZ-L"
	case NRZI:
		return "NRZ-I"
	case Manchester:
		return "Manchester"
	case DiffManchester:
		return "Differential Manchester"
	case AMI:
		return "AMI"
	default:
		return fmt.Sprintf("Scheme(%d)", int(s))
	}
}

// LevelsPerSymbol is the number of levels emitted for every input symbol,
// or 0 for an unknown scheme.
func (s Scheme) LevelsPerSymbol() int {
	switch s {
	case NRZL, NRZI, AMI:
		return 1
	case Manchester, DiffManchester:
		return 2
	default:
		return 0
	}
}

// Alphabet is the set of symbols the scheme accepts. Only AMI understands
// the forced-polarity markers produced by scrambling.
func (s Scheme) Alphabet() symbol.Alphabet {
	if s == AMI {
		return symbol.Extended
	}
	return symbol.Binary
}

func (s Scheme) Valid() bool {
	return s.LevelsPerSymbol() > 0
}

// ParseScheme accepts display names ("NRZ-L", "Differential Manchester"),
// identifiers ("NRZ_L", "DIFF_MANCHESTER") and menu numbers "1" to "5".
func ParseScheme(name string) (Scheme, error) {
	key := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_', '.':
			return -1
		}
		return r
	}, strings.ToUpper(name))

	switch key {
	case "NRZL", "1":
		return NRZL, nil
	case "NRZI", "2":
		return NRZI, nil
	case "MANCHESTER", "3":
		return Manchester, nil
	case "DIFFMANCHESTER", "DIFFERENTIALMANCHESTER", "4":
		return DiffManchester, nil
	case "AMI", "5":
		return AMI, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidScheme, name)
}

type encodeFunc func(levels []float64, symbols string) []float64

func (s Scheme) encoder() (encodeFunc, error) {
	switch s {
	case NRZL:
		return nrzl, nil
	case NRZI:
		return nrzi, nil
	case Manchester:
		return manchester, nil
	case DiffManchester:
		return diffManchester, nil
	case AMI:
		return ami, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrInvalidScheme, s)
}

// Encode maps symbols to levels under scheme. The input must be over the
// scheme's alphabet; an empty input yields an empty sequence.
func Encode(symbols string, scheme Scheme) ([]float64, error) {
	encode, err := scheme.encoder()
	if err != nil {
		return nil, err
	}
	if err := scheme.Alphabet().Validate(scheme.String(), symbols); err != nil {
		return nil, err
	}

	levels := make([]float64, 0, len(symbols)*scheme.LevelsPerSymbol())
	return encode(levels, symbols), nil
}
