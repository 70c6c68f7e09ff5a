package symbol

import (
	"errors"
	"fmt"
	"strings"
)

// Symbols of a (possibly scrambled) line stream.
const (
	Zero  = '0' // zero voltage
	One   = '1' // alternating pulse
	Plus  = '+' // forced positive pulse
	Minus = '-' // forced negative pulse
)

// An Alphabet is the set of symbols an operation accepts.
type Alphabet string

const (
	Binary   Alphabet = "01"
	Extended Alphabet = "01+-"
)

var ErrInvalidSymbol = errors.New("invalid symbol")

// Error reports the first symbol outside an operation's alphabet.
type Error struct {
	Op     string
	Pos    int
	Symbol rune
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: invalid symbol %q at position %d", e.Op, e.Symbol, e.Pos)
}

func (e *Error) Unwrap() error {
	return ErrInvalidSymbol
}

func (a Alphabet) Contains(r rune) bool {
	return strings.ContainsRune(string(a), r)
}

// Validate returns a *Error for the first symbol of s not in a.
func (a Alphabet) Validate(op, s string) error {
	for i, r := range s {
		if !a.Contains(r) {
			return &Error{Op: op, Pos: i, Symbol: r}
		}
	}
	return nil
}
