package cart

import (
	"strconv"
	"strings"
)

// ParseQuantity coerces raw user input into a quantity of at least 1.
// Non-numeric, zero, or negative input yields fallback: 1 for new lines,
// the prior quantity on updates. Favors availability over strict validation.
func ParseQuantity(raw string, fallback int) int {
	if fallback < 1 {
		fallback = 1
	}

	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
