package money

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("invalid amount")

// ParseCents converts a decimal amount string into cents. Both dot and comma
// decimal separators are accepted ("12.34" and "12,34"); anything past the
// second decimal place is rounded half-up. Negative amounts are rejected.
func ParseCents(s string) (int64, error) {
	clean := strings.TrimSpace(s)
	if clean == "" {
		return 0, ErrInvalidAmount
	}

	// "1.234,56" style input: dots are thousand separators.
	if strings.Contains(clean, ",") {
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.ReplaceAll(clean, ",", ".")
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, ErrInvalidAmount
	}

	if d.IsNegative() {
		return 0, ErrInvalidAmount
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}

// FormatCents renders cents as a plain decimal string with two places.
func FormatCents(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}
