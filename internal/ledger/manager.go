// Package ledger implements the in-memory expense ledger: the transaction
// store, the category index, the undo log and the read-only queries over them.
package ledger

import (
	"sync"

	"fjacquet/expense-ledger/internal/ledgererror"
	"fjacquet/expense-ledger/internal/logging"
	"fjacquet/expense-ledger/internal/models"

	"github.com/shopspring/decimal"
)

// Manager is the ledger aggregate. Every mutation updates the store, the
// category index and the undo log together under one lock, so callers never
// observe them out of step.
type Manager struct {
	mu     sync.RWMutex
	store  *TransactionStore
	index  *CategoryIndex
	undo   *UndoLog
	logger logging.Logger
}

// NewManager creates an empty ledger. A nil logger discards all output.
func NewManager(logger logging.Logger) *Manager {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &Manager{
		store:  NewTransactionStore(),
		index:  NewCategoryIndex(),
		undo:   NewUndoLog(),
		logger: logger.WithField(logging.FieldComponent, "ledger"),
	}
}

// Add records a new transaction and returns its ID. It never fails.
func (m *Manager) Add(date models.Date, category string, amount decimal.Decimal, description string, txType models.TransactionType) int {
	return m.AddTransaction(models.Transaction{
		Date:        date,
		Category:    category,
		Amount:      amount,
		Description: description,
		Type:        txType,
	})
}

// AddTransaction records tx with a freshly assigned ID and returns that ID.
// Any ID already set on tx is ignored.
func (m *Manager) AddTransaction(tx models.Transaction) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := m.store.Add(tx)
	m.index.OnInsert(stored)
	m.undo.PushInsertion(stored)

	m.logger.Debug("Transaction added",
		logging.F(logging.FieldOperation, logging.OpAdd),
		logging.F(logging.FieldTransactionID, stored.ID),
		logging.F(logging.FieldCategory, stored.Category))
	return stored.ID
}

// Delete removes the transaction with the given ID and returns it.
// If no such transaction exists it returns a *ledgererror.NotFoundError and
// leaves every structure untouched.
func (m *Manager) Delete(id int) (models.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed, ok := m.store.RemoveByID(id)
	if !ok {
		m.logger.Warn("Transaction ID not found",
			logging.F(logging.FieldOperation, logging.OpDelete),
			logging.F(logging.FieldTransactionID, id))
		return models.Transaction{}, &ledgererror.NotFoundError{ID: id}
	}
	m.index.OnRemove(removed)
	m.undo.PushDeletion(removed)

	m.logger.Debug("Transaction deleted",
		logging.F(logging.FieldOperation, logging.OpDelete),
		logging.F(logging.FieldTransactionID, id),
		logging.F(logging.FieldCategory, removed.Category))
	return removed, nil
}

// Undo reverses the most recent add or delete and returns the entry it
// applied. Undo itself is not recorded, so there is no redo. With an empty
// log it returns ledgererror.ErrEmptyUndoLog and changes nothing.
func (m *Manager) Undo() (UndoEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.undo.Pop()
	if !ok {
		m.logger.Warn("No operation to undo", logging.F(logging.FieldOperation, logging.OpUndo))
		return UndoEntry{}, ledgererror.ErrEmptyUndoLog
	}

	switch entry.Kind {
	case UndoInsertion:
		if removed, found := m.store.RemoveByID(entry.Transaction.ID); found {
			m.index.OnRemove(removed)
		}
	case UndoDeletion:
		m.store.Restore(entry.Transaction)
		m.index.OnInsert(entry.Transaction)
	}

	m.logger.Debug("Undo performed",
		logging.F(logging.FieldOperation, logging.OpUndo),
		logging.F(logging.FieldUndoKind, entry.Kind.String()),
		logging.F(logging.FieldTransactionID, entry.Transaction.ID),
		logging.F(logging.FieldUndoDepth, m.undo.Len()))
	return entry, nil
}

// UndoDepth returns how many mutations can still be undone
func (m *Manager) UndoDepth() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.undo.Len()
}

// Get returns the transaction with the given ID
func (m *Manager) Get(id int) (models.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	tx, ok := m.store.Get(id)
	if !ok {
		return models.Transaction{}, &ledgererror.NotFoundError{ID: id}
	}
	return tx, nil
}

// NextID returns the ID the next Add will assign
func (m *Manager) NextID() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.store.NextID()
}
