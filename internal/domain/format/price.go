package format

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencySuffix is appended to stored price strings.
const CurrencySuffix = "đ"

// ParsePrice recovers the numeric value from a stored price string by
// stripping everything but digits and separators, then treating the first
// comma as a decimal point ("50000đ" -> 50000, "12,5" -> 12.5).
// Unparseable input yields zero; prices are display strings first and
// numbers second.
func ParsePrice(s string) decimal.Decimal {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' {
			b.WriteRune(r)
		}
	}
	clean := strings.Replace(b.String(), ",", ".", 1)
	if clean == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// CanonicalPrice ensures a non-empty price carries the currency suffix.
// Empty stays empty; a suffixed value passes through unchanged.
func CanonicalPrice(s string) string {
	if s == "" {
		return s
	}
	if strings.HasSuffix(s, CurrencySuffix) {
		return s
	}
	return s + CurrencySuffix
}
