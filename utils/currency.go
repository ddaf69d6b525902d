package utils

import (
	"fmt"
	"strings"
)

// FormatUSD renders an amount like $1,250.00 for log lines and messages.
func FormatUSD(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	formatted := fmt.Sprintf("%.2f", amount)
	parts := strings.Split(formatted, ".")
	integerPart := parts[0]
	decimalPart := parts[1]

	var groups []string
	for i := len(integerPart); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		groups = append([]string{integerPart[start:i]}, groups...)
	}

	out := "$" + strings.Join(groups, ",") + "." + decimalPart
	if negative {
		return "-" + out
	}
	return out
}
