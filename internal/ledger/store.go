package ledger

import (
	"slices"

	"fjacquet/expense-ledger/internal/models"
)

// TransactionStore owns the canonical ordered sequence of transactions and
// hands out IDs. IDs start at 1 and are never reused, even after removal.
type TransactionStore struct {
	transactions []models.Transaction
	nextID       int
}

// NewTransactionStore creates an empty store whose first ID will be 1
func NewTransactionStore() *TransactionStore {
	return &TransactionStore{nextID: 1}
}

// Add assigns the next ID to tx, appends it and returns the stored copy.
// Any ID already set on tx is ignored.
func (s *TransactionStore) Add(tx models.Transaction) models.Transaction {
	tx.ID = s.nextID
	s.nextID++
	s.transactions = append(s.transactions, tx)
	return tx
}

// RemoveByID removes the first transaction with the given ID, preserving the
// order of the rest. It returns the removed transaction and true, or false if
// no transaction has that ID.
func (s *TransactionStore) RemoveByID(id int) (models.Transaction, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return models.Transaction{}, false
	}
	removed := s.transactions[i]
	s.transactions = slices.Delete(s.transactions, i, i+1)
	return removed, true
}

// Restore re-appends a previously removed transaction verbatim, keeping its ID.
func (s *TransactionStore) Restore(tx models.Transaction) {
	s.transactions = append(s.transactions, tx)
}

// Get returns the transaction with the given ID
func (s *TransactionStore) Get(id int) (models.Transaction, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return models.Transaction{}, false
	}
	return s.transactions[i], true
}

// ListAll returns a copy of every transaction in store order
func (s *TransactionStore) ListAll() []models.Transaction {
	return slices.Clone(s.transactions)
}

// Count returns the number of stored transactions
func (s *TransactionStore) Count() int {
	return len(s.transactions)
}

// NextID returns the ID the next Add will assign
func (s *TransactionStore) NextID() int {
	return s.nextID
}

// each calls fn for every transaction in store order without copying
func (s *TransactionStore) each(fn func(models.Transaction)) {
	for _, tx := range s.transactions {
		fn(tx)
	}
}

func (s *TransactionStore) indexOf(id int) int {
	return slices.IndexFunc(s.transactions, func(tx models.Transaction) bool {
		return tx.ID == id
	})
}
