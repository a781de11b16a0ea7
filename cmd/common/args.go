// Package common contains shared functionality for command handlers
package common

import (
	"fmt"
	"strconv"
	"strings"

	"fjacquet/expense-ledger/internal/currencyutils"
	"fjacquet/expense-ledger/internal/dateutils"
	"fjacquet/expense-ledger/internal/models"

	"github.com/shopspring/decimal"
)

// ParseDateArg parses a positional date argument, naming it in the error
func ParseDateArg(name, value string) (models.Date, error) {
	d, err := dateutils.ParseDate(value)
	if err != nil {
		return models.Date{}, fmt.Errorf("invalid %s: %w", name, err)
	}
	return d, nil
}

// ParseAmountArg parses an amount such as 250.50, ₹1,500 or 1'234.56
func ParseAmountArg(name, value string) (decimal.Decimal, error) {
	d, err := currencyutils.ParseAmount(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s '%s': must be a number", name, value)
	}
	return d, nil
}

// ParseIntArg parses a whole number argument such as an ID or a count
func ParseIntArg(name, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid %s '%s': must be a whole number", name, value)
	}
	return n, nil
}

// ParseTypeArg maps income/expense in any letter case to a TransactionType.
// When allowAny is set, "" and "any" yield models.TypeAny.
func ParseTypeArg(value string, allowAny bool) (models.TransactionType, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	switch {
	case v == "income":
		return models.TypeIncome, nil
	case v == "expense":
		return models.TypeExpense, nil
	case allowAny && (v == "" || v == "any"):
		return models.TypeAny, nil
	}
	if allowAny {
		return "", fmt.Errorf("invalid type '%s': must be Income, Expense or any", value)
	}
	return "", fmt.Errorf("invalid type '%s': must be Income or Expense", value)
}
