// Package pipeline runs the "generate" action of the encoder: validate the
// raw bits, scramble them when requested, encode them and look for the
// longest palindrome in the original data.
package pipeline

import (
	"errors"
	"fmt"
	"log/slog"

	"Linecode/pkg/linecode"
	"Linecode/pkg/palindrome"
	"Linecode/pkg/scramble"
	"Linecode/pkg/symbol"
)

var (
	ErrEmptyInput          = errors.New("empty input")
	ErrScrambleRequiresAMI = errors.New("scrambling requires AMI")
	ErrAnalogUnsupported   = errors.New("analog input (PCM/DM) is not supported")
)

type Request struct {
	Bits     string
	Scheme   linecode.Scheme
	Scramble scramble.Kind
	Analog   bool // the input is an analog signal to be digitised first
}

type Result struct {
	Scheme     linecode.Scheme
	Original   string
	Scrambled  string // empty unless scrambling was applied
	Encoded    string // the symbols the encoder consumed
	Levels     []float64
	Palindrome string
	Title      string
	Stats      linecode.Stats
}

// Title names the plot of a request, e.g. "NRZ-L" or "AMI with HDB3".
func (r Request) Title() string {
	if r.Scheme == linecode.AMI && r.Scramble != scramble.KindNone {
		return fmt.Sprintf("%v with %v", r.Scheme, r.Scramble)
	}
	return r.Scheme.String()
}

// Validate checks everything Run would reject before doing any work.
func (r Request) Validate() error {
	if r.Analog {
		return ErrAnalogUnsupported
	}
	if !r.Scheme.Valid() {
		return fmt.Errorf("%w: %v", linecode.ErrInvalidScheme, r.Scheme)
	}
	if r.Scramble != scramble.KindNone && r.Scheme != linecode.AMI {
		return fmt.Errorf("%w: %v requested with %v", ErrScrambleRequiresAMI, r.Scramble, r.Scheme)
	}
	if len(r.Bits) == 0 {
		return ErrEmptyInput
	}
	return symbol.Binary.Validate("input", r.Bits)
}

func Run(req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	logger := slog.With("component", "pipeline", "scheme", req.Scheme.String())

	encoded, err := scramble.Apply(req.Scramble, req.Bits)
	if err != nil {
		return nil, fmt.Errorf("scramble: %w", err)
	}

	levels, err := linecode.Encode(encoded, req.Scheme)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	result := &Result{
		Scheme:     req.Scheme,
		Original:   req.Bits,
		Encoded:    encoded,
		Levels:     levels,
		Palindrome: palindrome.Longest(req.Bits),
		Title:      req.Title(),
		Stats:      linecode.Analyze(levels),
	}
	if req.Scramble != scramble.KindNone {
		result.Scrambled = encoded
	}

	logger.Debug("generated signal",
		"bits", len(req.Bits),
		"levels", len(levels),
		"scramble", req.Scramble.String(),
		"palindrome", len(result.Palindrome))
	return result, nil
}
