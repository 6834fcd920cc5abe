package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a user-entered amount string to decimal.Decimal.
// It tolerates comma decimal separators, currency symbols and whitespace.
// Unparseable input yields decimal.Zero; callers that need to reject bad
// input should use decimal.NewFromString directly.
func ParseAmount(amountStr string) decimal.Decimal {
	amount := strings.ReplaceAll(amountStr, ",", ".")
	amount = strings.TrimSpace(amount)
	amount = strings.ReplaceAll(amount, " ", "")
	amount = strings.ReplaceAll(amount, "$", "")
	amount = strings.ReplaceAll(amount, "'", "")

	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero
	}
	return dec
}
