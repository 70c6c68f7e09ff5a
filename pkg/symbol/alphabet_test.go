package symbol

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		alphabet Alphabet
		input    string
		pos      int // -1 when valid
	}{
		{"empty binary", Binary, "", -1},
		{"binary", Binary, "0101", -1},
		{"marker in binary", Binary, "01+1", 2},
		{"extended", Extended, "0+-1", -1},
		{"space in extended", Extended, "0+ 1", 2},
		{"letter first", Extended, "a01", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.alphabet.Validate("test", tt.input)
			if tt.pos < 0 {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}
			var symErr *Error
			if !errors.As(err, &symErr) {
				t.Fatalf("expected *Error, got %v", err)
			}
			if symErr.Pos != tt.pos {
				t.Errorf("expected position %d, got %d", tt.pos, symErr.Pos)
			}
			if !errors.Is(err, ErrInvalidSymbol) {
				t.Errorf("expected ErrInvalidSymbol in chain")
			}
		})
	}
}
