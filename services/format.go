package services

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatINR renders an amount in Indian Rupee notation with two decimal
// places. Grouping follows the Indian numbering system: the rightmost three
// digits form one group, every two digits after that form the next
// (₹12,34,567.00).
func FormatINR(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	raw := strconv.FormatFloat(amount, 'f', 2, 64)
	dot := strings.IndexByte(raw, '.')
	intPart, decPart := raw[:dot], raw[dot+1:]

	return sign + "₹" + groupIndianDigits(intPart) + "." + decPart
}

// groupIndianDigits inserts commas per the Indian system: last three digits
// together, pairs before that.
func groupIndianDigits(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	groups := []string{digits[len(digits)-3:]}
	rest := digits[:len(digits)-3]
	for len(rest) > 2 {
		groups = append(groups, rest[len(rest)-2:])
		rest = rest[:len(rest)-2]
	}
	if rest != "" {
		groups = append(groups, rest)
	}

	var b strings.Builder
	for i := len(groups) - 1; i >= 0; i-- {
		b.WriteString(groups[i])
		if i > 0 {
			b.WriteByte(',')
		}
	}
	return b.String()
}

// formatQuantity drops a trailing ".00" so whole quantities print as
// integers while fractional ones keep two decimals.
func formatQuantity(qty float64) string {
	s := fmt.Sprintf("%.2f", qty)
	return strings.TrimSuffix(s, ".00")
}
