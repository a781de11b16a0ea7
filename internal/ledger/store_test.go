package ledger

import (
	"testing"

	"fjacquet/expense-ledger/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storeTx(category string, amount int64) models.Transaction {
	return models.Transaction{
		Date:     models.NewDate(1, 11, 2025),
		Category: category,
		Amount:   decimal.NewFromInt(amount),
		Type:     models.TypeExpense,
	}
}

func TestTransactionStore_AddAssignsSequentialIDs(t *testing.T) {
	s := NewTransactionStore()
	assert.Equal(t, 1, s.NextID())

	first := s.Add(storeTx("Food", 10))
	second := s.Add(models.Transaction{ID: 99, Category: "Rent"})

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID, "caller supplied IDs are ignored")
	assert.Equal(t, 3, s.NextID())
	assert.Equal(t, 2, s.Count())
}

func TestTransactionStore_RemoveByID(t *testing.T) {
	s := NewTransactionStore()
	s.Add(storeTx("A", 1))
	s.Add(storeTx("B", 2))
	s.Add(storeTx("C", 3))

	removed, ok := s.RemoveByID(2)
	require.True(t, ok)
	assert.Equal(t, "B", removed.Category)

	all := s.ListAll()
	require.Len(t, all, 2)
	assert.Equal(t, 1, all[0].ID)
	assert.Equal(t, 3, all[1].ID)

	_, ok = s.RemoveByID(2)
	assert.False(t, ok)
	_, ok = s.RemoveByID(42)
	assert.False(t, ok)
	assert.Equal(t, 2, s.Count())
}

func TestTransactionStore_IDsNeverReused(t *testing.T) {
	s := NewTransactionStore()
	s.Add(storeTx("A", 1))
	s.RemoveByID(1)

	next := s.Add(storeTx("A", 1))
	assert.Equal(t, 2, next.ID)
}

func TestTransactionStore_RestoreKeepsID(t *testing.T) {
	s := NewTransactionStore()
	s.Add(storeTx("A", 1))
	s.Add(storeTx("B", 2))
	removed, _ := s.RemoveByID(1)

	s.Restore(removed)

	all := s.ListAll()
	require.Len(t, all, 2)
	assert.Equal(t, 2, all[0].ID)
	assert.Equal(t, 1, all[1].ID, "restored transaction goes to the end with its original ID")
	assert.Equal(t, 3, s.NextID())
}

func TestTransactionStore_ListAllReturnsCopy(t *testing.T) {
	s := NewTransactionStore()
	s.Add(storeTx("A", 1))

	all := s.ListAll()
	all[0].Category = "mutated"

	got, ok := s.Get(1)
	require.True(t, ok)
	assert.Equal(t, "A", got.Category)
}
