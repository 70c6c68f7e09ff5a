package symbol

import "strings"

// FromBytes spreads data into a bit string, most significant bit first.
func FromBytes(data []byte) string {
	var sb strings.Builder
	sb.Grow(len(data) * 8)
	for _, v := range data {
		for mask := byte(0x80); mask != 0; mask >>= 1 {
			if v&mask != 0 {
				sb.WriteByte(One)
			} else {
				sb.WriteByte(Zero)
			}
		}
	}
	return sb.String()
}
