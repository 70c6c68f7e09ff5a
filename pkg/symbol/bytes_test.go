package symbol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromBytes(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected string
	}{
		{"Empty", nil, ""},
		{"Zero byte", []byte{0x00}, "00000000"},
		{"Most significant bit first", []byte{0x80}, "10000000"},
		{"Least significant bit last", []byte{0x01}, "00000001"},
		{"Two bytes", []byte{0xA5, 0x01}, "1010010100000001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromBytes(tt.input)
			assert.Equal(t, tt.expected, got)
			assert.NoError(t, Binary.Validate("test", got))
		})
	}
}
