package entity

import (
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/bank-reconciler/internal/domain/error"
	"github.com/shopspring/decimal"
)

// MaxDecimalPlaces defines the maximum number of significant decimal places allowed for GBP amounts
const MaxDecimalPlaces = 2

// currencyPrefixes are stripped from statement amounts before parsing
var currencyPrefixes = []string{"GBP", "£"}

// ParseAmount parses a signed statement amount into an exact decimal
// Accepted forms:
//   - "25", "25.5", "-25.50"
//   - "£1,250.00", "GBP 12.00"
//   - "(25.00)" for a negative value, as some banks export debits
func ParseAmount(raw string) (decimal.Decimal, error) {
	amount := strings.TrimSpace(raw)
	if amount == "" {
		return decimal.Zero, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	negative := false
	if strings.HasPrefix(amount, "(") && strings.HasSuffix(amount, ")") {
		negative = true
		amount = strings.TrimSpace(amount[1 : len(amount)-1])
	}

	if strings.HasPrefix(amount, "-") {
		negative = !negative
		amount = strings.TrimSpace(amount[1:])
	}

	for _, prefix := range currencyPrefixes {
		amount = strings.TrimSpace(strings.TrimPrefix(amount, prefix))
	}
	amount = strings.ReplaceAll(amount, ",", "")

	if amount == "" || strings.ContainsAny(amount, "eE+-") {
		return decimal.Zero, fmt.Errorf("%w: %q is not a plain decimal", errs.ErrInvalidAmount, raw)
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}

	if !value.Equal(value.Truncate(MaxDecimalPlaces)) {
		return decimal.Zero, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
	}

	if negative {
		value = value.Neg()
	}
	return value, nil
}

// FormatAmount renders an amount with exactly two decimal places
// For example:
// - 25 becomes "25.00"
// - -3.5 becomes "-3.50"
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(MaxDecimalPlaces)
}

// canonicalAmount is the representation used in natural keys, so that
// "25", "25.0" and "25.00" identify the same statement line
func canonicalAmount(amount decimal.Decimal) string {
	return amount.Round(MaxDecimalPlaces).StringFixed(MaxDecimalPlaces)
}
