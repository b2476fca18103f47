package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatRupiah renders an amount the way prices appear throughout the app:
// "Rp55.000", whole rupiah with dot thousand separators. Fractional parts
// are rounded away; rental prices are whole-rupiah amounts.
func FormatRupiah(amount decimal.Decimal) string {
	negative := amount.IsNegative()
	digits := amount.Abs().Round(0).BigInt().String()

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteString("Rp")

	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
		if len(digits) > lead {
			b.WriteByte('.')
		}
	}
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(digits[i : i+3])
		if i+3 < len(digits) {
			b.WriteByte('.')
		}
	}
	return b.String()
}
