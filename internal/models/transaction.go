// Package models provides the data structures used throughout the application.
package models

import (
	"github.com/shopspring/decimal"
)

// TransactionType tags a transaction as income or expense.
// Values other than TypeIncome and TypeExpense are kept as-is but count
// towards neither total.
type TransactionType string

// Transaction types
const (
	TypeIncome  TransactionType = "Income"
	TypeExpense TransactionType = "Expense"

	// TypeAny is used as a filter meaning "do not restrict by type"
	TypeAny TransactionType = ""
)

// IsKnown returns true for Income and Expense
func (t TransactionType) IsKnown() bool {
	return t == TypeIncome || t == TypeExpense
}

// Matches reports whether t satisfies the filter; TypeAny matches everything
func (t TransactionType) Matches(filter TransactionType) bool {
	return filter == TypeAny || t == filter
}

func (t TransactionType) String() string {
	return string(t)
}

// Transaction is a single recorded income or expense.
// It is never modified after the ledger assigns its ID.
type Transaction struct {
	ID          int             `json:"id" yaml:"id"`
	Date        Date            `json:"date" yaml:"date"`
	Category    string          `json:"category" yaml:"category"`
	Amount      decimal.Decimal `json:"amount" yaml:"amount"`
	Description string          `json:"description" yaml:"description"`
	Type        TransactionType `json:"type" yaml:"type"`
}

// IsIncome returns true if the transaction is tagged exactly "Income"
func (t Transaction) IsIncome() bool {
	return t.Type == TypeIncome
}

// IsExpense returns true if the transaction is tagged exactly "Expense"
func (t Transaction) IsExpense() bool {
	return t.Type == TypeExpense
}
