package pricing

import (
	"strconv"
	"strings"
	"unicode"
)

// ClampQuantity turns free-form quantity input into an orderable quantity.
// Non-digits are stripped; anything unparsable becomes min, and the result is
// never below min. A min below 1 is treated as 1.
func ClampQuantity(text string, min int) int {
	if min < 1 {
		min = 1
	}

	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) && r < unicode.MaxASCII {
			return r
		}
		return -1
	}, text)

	n, err := strconv.Atoi(digits)
	if err != nil {
		return min
	}
	if n < min {
		return min
	}
	return n
}
