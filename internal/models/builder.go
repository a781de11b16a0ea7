package models

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// TransactionBuilder provides a fluent API for constructing transactions
// before they are handed to the ledger. The ID is left at zero: the ledger
// assigns it on insertion.
type TransactionBuilder struct {
	tx  Transaction
	err error
}

// NewTransactionBuilder creates a new TransactionBuilder with default values
func NewTransactionBuilder() *TransactionBuilder {
	return &TransactionBuilder{
		tx: Transaction{
			Type:   TypeExpense,
			Amount: decimal.Zero,
		},
	}
}

// WithDate sets the transaction date
func (b *TransactionBuilder) WithDate(date Date) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	b.tx.Date = date
	return b
}

// WithCategory sets the category key
func (b *TransactionBuilder) WithCategory(category string) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	b.tx.Category = category
	return b
}

// WithAmount sets the amount
func (b *TransactionBuilder) WithAmount(amount decimal.Decimal) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	b.tx.Amount = amount
	return b
}

// WithAmountFromString parses and sets the amount
func (b *TransactionBuilder) WithAmountFromString(amount string) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	dec, err := decimal.NewFromString(amount)
	if err != nil {
		b.err = fmt.Errorf("invalid amount string '%s': %w", amount, err)
		return b
	}
	b.tx.Amount = dec
	return b
}

// WithDescription sets the free-form description
func (b *TransactionBuilder) WithDescription(description string) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	b.tx.Description = description
	return b
}

// WithType sets the income/expense tag
func (b *TransactionBuilder) WithType(t TransactionType) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	b.tx.Type = t
	return b
}

// AsIncome is shorthand for WithType(TypeIncome)
func (b *TransactionBuilder) AsIncome() *TransactionBuilder {
	return b.WithType(TypeIncome)
}

// AsExpense is shorthand for WithType(TypeExpense)
func (b *TransactionBuilder) AsExpense() *TransactionBuilder {
	return b.WithType(TypeExpense)
}

// Build returns the transaction or the first error recorded by a With* call
func (b *TransactionBuilder) Build() (Transaction, error) {
	if b.err != nil {
		return Transaction{}, b.err
	}
	if b.tx.Category == "" {
		return Transaction{}, errors.New("category cannot be empty")
	}
	return b.tx, nil
}
