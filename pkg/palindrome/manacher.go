package palindrome

// separator never collides with a rune of the input
const separator = -1

// Longest returns the longest palindromic substring of s.
func Longest(s string) string {
	runes := []rune(s)
	start, length := span(runes)
	return string(runes[start : start+length])
}

// LongestSpan returns the rune offset and rune length of the longest
// palindromic substring of s.
func LongestSpan(s string) (start, length int) {
	return span([]rune(s))
}

func span(s []rune) (start, length int) {
	if len(s) == 0 {
		return 0, 0
	}

	t := make([]rune, 2*len(s)+1)
	for i, r := range s {
		t[2*i] = separator
		t[2*i+1] = r
	}
	t[len(t)-1] = separator

	// radius[i] is the radius of the palindrome centred at t[i], which is
	// also its length in s
	radius := make([]int, len(t))
	center, right := 0, 0

	for i := 1; i < len(t)-1; i++ {
		if right > i {
			radius[i] = min(right-i, radius[2*center-i])
		}

		for i-1-radius[i] >= 0 && i+1+radius[i] < len(t) && t[i-1-radius[i]] == t[i+1+radius[i]] {
			radius[i]++
		}

		if i+radius[i] > right {
			center, right = i, i+radius[i]
		}
	}

	best := 0
	for i := 1; i < len(t)-1; i++ {
		if radius[i] > radius[best] {
			best = i
		}
	}

	return (best - radius[best]) / 2, radius[best]
}
