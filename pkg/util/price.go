package util

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePrice extracts the whole-dollar amount from a display price such as
// "$10.00" or "$1,500". Cents are dropped; anything unparseable yields 0.
func ParsePrice(s string) int {
	whole := s
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		whole = s[:idx]
	}
	var digits strings.Builder
	for _, r := range whole {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	n, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0
	}
	return n
}

// FormatPrice renders a whole-dollar amount as a display string
func FormatPrice(amount int) string {
	return fmt.Sprintf("$%d", amount)
}
