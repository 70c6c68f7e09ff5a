// Package palindrome finds the longest palindromic substring of a string in
// linear time with Manacher's algorithm.
//
// The input is interleaved with a separator that cannot occur in it,
//
//	"aba" -> "#a#b#a#"
//
// so that palindromes of odd and of even length both get a single centre.
// Scanning centres from left to right, each radius is seeded from its mirror
// inside the rightmost palindrome found so far and then extended greedily.
//
// Ties go to the leftmost palindrome. An empty input yields "".
package palindrome
