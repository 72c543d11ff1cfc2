package utils

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

func IntPtr(i int) *int {
	return &i
}

// FormatRupees renders an amount the way the storefront shows prices:
// rupee sign, Indian digit grouping (12,34,567) and paise only when non-zero.
func FormatRupees(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}

	rounded := amount.Round(2)
	whole := rounded.Truncate(0)
	paise := rounded.Sub(whole).Shift(2).IntPart()

	out := sign + "₹" + groupIndian(whole.String())
	if paise != 0 {
		out += "." + leftPad(strconv.FormatInt(paise, 10), 2)
	}
	return out
}

func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	return strings.Join(parts, ",") + "," + tail
}

func leftPad(s string, n int) string {
	for len(s) < n {
		s = "0" + s
	}
	return s
}
