// Package ledgererror defines the typed errors returned by the ledger and its
// import layer.
package ledgererror

import (
	"errors"
	"fmt"
)

// ErrTransactionNotFound is matched by every NotFoundError via errors.Is
var ErrTransactionNotFound = errors.New("transaction not found")

// ErrEmptyUndoLog is returned when undo is requested with nothing to reverse
var ErrEmptyUndoLog = errors.New("no operation to undo")

// NotFoundError reports a delete that referenced an unknown transaction ID.
// No state is changed when it is returned.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("transaction ID %d not found", e.ID)
}

// Is makes errors.Is(err, ErrTransactionNotFound) succeed
func (e *NotFoundError) Is(target error) bool {
	return target == ErrTransactionNotFound
}

// ImportError represents a row that could not be turned into a transaction
type ImportError struct {
	File  string
	Line  int
	Field string
	Value string
	Err   error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("%s:%d: failed to parse %s='%s': %v",
		e.File, e.Line, e.Field, e.Value, e.Err)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

// ValidationError represents an import row that failed validation
type ValidationError struct {
	File   string
	Line   int
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s:%d: %s", e.File, e.Line, e.Reason)
}

// UnsupportedFormatError is returned for input or output formats the
// application cannot handle
type UnsupportedFormatError struct {
	Format    string
	Supported []string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported format: %s. Supported formats are %v", e.Format, e.Supported)
}
