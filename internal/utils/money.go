package utils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// moneyPrecision is the number of decimal places kept for amounts. Both
// supported currencies (USD, ZWL) use two.
const moneyPrecision = 2

// ParseAmount converts a client-supplied numeric string into a decimal,
// rejecting anything that is not a plain non-negative number. Amounts arrive
// as strings on the wire so no float rounding ever touches them.
func ParseAmount(s string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return decimal.Zero, fmt.Errorf("amount is required")
	}
	amount, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", s)
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("amount must not be negative")
	}
	return amount, nil
}

// ParseOptionalAmount is ParseAmount with blank treated as zero. Used for
// fields like discounts and starting capital where omission means none.
func ParseOptionalAmount(s string) (decimal.Decimal, error) {
	if strings.TrimSpace(s) == "" {
		return decimal.Zero, nil
	}
	return ParseAmount(s)
}

// FormatMoney renders an amount with the standard money precision.
// Example: 12.3456 returns "12.35", 12 returns "12".
func FormatMoney(amount decimal.Decimal) string {
	return amount.Round(moneyPrecision).String()
}
