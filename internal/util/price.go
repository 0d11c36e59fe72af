package util

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatBDT renders an amount as Bangladeshi taka with the ৳ sign and
// Indian-style digit grouping (12,34,567). Amounts are whole taka, so the
// fractional part is rounded away.
func FormatBDT(amount decimal.Decimal) string {
	d := amount.Round(0)
	s := d.Abs().String()

	var b strings.Builder
	if d.IsNegative() {
		b.WriteByte('-')
	}
	b.WriteString("৳")
	b.WriteString(groupIndian(s))
	return b.String()
}

// groupIndian inserts commas after the last three digits and then every two.
func groupIndian(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	head := digits[:n-3]
	tail := digits[n-3:]

	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	parts = append(parts, tail)
	return strings.Join(parts, ",")
}
