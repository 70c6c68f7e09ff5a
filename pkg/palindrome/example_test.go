package palindrome_test

import (
	"fmt"

	"Linecode/pkg/palindrome"
)

func ExampleLongest() {
	fmt.Println(palindrome.Longest("010011000000001"))
	// Output: 1000000001
}
