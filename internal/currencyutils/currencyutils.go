// Package currencyutils parses user-typed amounts and formats amounts for display.
package currencyutils

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

var symbols = regexp.MustCompile(`(?i)rs\.?|inr|chf|eur|usd|gbp|[€$£¥₣₤₧₹₺₽₩฿₫₲₴₸₼₪\s]`)

// ParseAmount parses an amount typed by a user. Currency symbols and codes are
// ignored and the formats "1,234.56", "1.234,56", "1'234.56" and "1234,56" are
// all understood.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	standardized := StandardizeAmount(amountStr)
	if standardized == "" {
		return decimal.Zero, errors.New("amount is empty")
	}

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}
	return amount, nil
}

// StandardizeAmount rewrites an amount into the form decimal.NewFromString accepts
func StandardizeAmount(amountStr string) string {
	s := symbols.ReplaceAllString(amountStr, "")
	s = strings.ReplaceAll(s, "'", "")

	hasComma := strings.Contains(s, ",")
	hasDot := strings.Contains(s, ".")
	switch {
	case hasComma && hasDot:
		if strings.LastIndex(s, ".") < strings.LastIndex(s, ",") {
			// 1.234,56
			s = strings.ReplaceAll(s, ".", "")
			s = strings.ReplaceAll(s, ",", ".")
		} else {
			// 1,234.56
			s = strings.ReplaceAll(s, ",", "")
		}
	case hasComma:
		parts := strings.Split(s, ",")
		if len(parts) == 2 && len(parts[1]) <= 2 {
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	}
	return s
}

// FormatAmount renders amount with two decimals after symbol. Alphabetic
// codes such as "CHF" are separated by a space, symbols such as "₹" are not.
func FormatAmount(amount decimal.Decimal, symbol string) string {
	symbol = strings.TrimSpace(symbol)
	formatted := amount.StringFixed(2)
	if symbol == "" {
		return formatted
	}
	last, _ := utf8.DecodeLastRuneInString(symbol)
	if unicode.IsLetter(last) {
		return symbol + " " + formatted
	}
	return symbol + formatted
}
