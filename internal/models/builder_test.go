package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransactionBuilder(t *testing.T) {
	builder := NewTransactionBuilder()

	assert.NotNil(t, builder)
	assert.Nil(t, builder.err)
	assert.Equal(t, TypeExpense, builder.tx.Type)
	assert.True(t, builder.tx.Amount.IsZero())
	assert.Zero(t, builder.tx.ID)
}

func TestTransactionBuilder_Build(t *testing.T) {
	tx, err := NewTransactionBuilder().
		WithDate(NewDate(15, 11, 2025)).
		WithCategory(CategorySalary).
		WithAmount(decimal.NewFromInt(20000)).
		WithDescription("November salary").
		AsIncome().
		Build()

	require.NoError(t, err)
	assert.Equal(t, NewDate(15, 11, 2025), tx.Date)
	assert.Equal(t, CategorySalary, tx.Category)
	assert.Equal(t, "20000", tx.Amount.String())
	assert.Equal(t, "November salary", tx.Description)
	assert.Equal(t, TypeIncome, tx.Type)
}

func TestTransactionBuilder_WithAmountFromString(t *testing.T) {
	tests := []struct {
		name        string
		amount      string
		expectError bool
		expected    string
	}{
		{name: "decimal amount", amount: "250.50", expected: "250.50"},
		{name: "integer amount", amount: "100", expected: "100.00"},
		{name: "negative is accepted", amount: "-5", expected: "-5.00"},
		{name: "garbage", amount: "ten", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx, err := NewTransactionBuilder().
				WithCategory(CategoryFood).
				WithAmountFromString(tt.amount).
				Build()

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid amount string 'ten'")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, tx.Amount.StringFixed(2))
		})
	}
}

func TestTransactionBuilder_ErrorShortCircuits(t *testing.T) {
	b := NewTransactionBuilder().
		WithAmountFromString("oops").
		WithCategory(CategoryFood).
		WithDescription("ignored")

	assert.Empty(t, b.tx.Category, "setters after an error are skipped")
	_, err := b.Build()
	assert.Error(t, err)
}

func TestTransactionBuilder_RequiresCategory(t *testing.T) {
	_, err := NewTransactionBuilder().WithAmount(decimal.NewFromInt(1)).Build()
	assert.EqualError(t, err, "category cannot be empty")
}
