package ledger

import (
	"fmt"

	"fjacquet/expense-ledger/internal/models"
)

// UndoKind identifies which mutation an UndoEntry reverses
type UndoKind int

const (
	// UndoInsertion records an add; undoing it removes the transaction
	UndoInsertion UndoKind = iota + 1
	// UndoDeletion records a delete; undoing it restores the transaction
	UndoDeletion
)

func (k UndoKind) String() string {
	switch k {
	case UndoInsertion:
		return "insertion"
	case UndoDeletion:
		return "deletion"
	default:
		return fmt.Sprintf("UndoKind(%d)", int(k))
	}
}

// UndoEntry is one reversible mutation with a full copy of the affected transaction
type UndoEntry struct {
	Kind        UndoKind           `json:"kind" yaml:"kind"`
	Transaction models.Transaction `json:"transaction" yaml:"transaction"`
}

// UndoLog is a LIFO stack of mutations. Read top to bottom it is the
// reverse-chronological list of mutations not yet undone.
type UndoLog struct {
	entries []UndoEntry
}

// NewUndoLog creates an empty log
func NewUndoLog() *UndoLog {
	return &UndoLog{}
}

// PushInsertion records that tx was added
func (u *UndoLog) PushInsertion(tx models.Transaction) {
	u.entries = append(u.entries, UndoEntry{Kind: UndoInsertion, Transaction: tx})
}

// PushDeletion records that tx was removed
func (u *UndoLog) PushDeletion(tx models.Transaction) {
	u.entries = append(u.entries, UndoEntry{Kind: UndoDeletion, Transaction: tx})
}

// Pop removes and returns the most recent entry, or false if the log is empty
func (u *UndoLog) Pop() (UndoEntry, bool) {
	if len(u.entries) == 0 {
		return UndoEntry{}, false
	}
	last := u.entries[len(u.entries)-1]
	u.entries[len(u.entries)-1] = UndoEntry{}
	u.entries = u.entries[:len(u.entries)-1]
	return last, true
}

// Peek returns the most recent entry without removing it
func (u *UndoLog) Peek() (UndoEntry, bool) {
	if len(u.entries) == 0 {
		return UndoEntry{}, false
	}
	return u.entries[len(u.entries)-1], true
}

// Len returns the number of entries that can still be undone
func (u *UndoLog) Len() int {
	return len(u.entries)
}

// IsEmpty reports whether there is nothing to undo
func (u *UndoLog) IsEmpty() bool {
	return len(u.entries) == 0
}
