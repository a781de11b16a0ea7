package importer

import (
	"strconv"

	"fjacquet/expense-ledger/internal/models"
)

// Record is one transaction row of a seed file. CSV files use the csv tags as
// header names; YAML files use the yaml keys.
type Record struct {
	Date        string `csv:"Date" yaml:"date" validate:"required"`
	Category    string `csv:"Category" yaml:"category" validate:"required"`
	Amount      string `csv:"Amount" yaml:"amount" validate:"required,numeric"`
	Description string `csv:"Description" yaml:"description"`
	Type        string `csv:"Type" yaml:"type" validate:"required,oneof=Income Expense"`
}

// ExportRecord is one row of an exported CSV file
type ExportRecord struct {
	ID          string `csv:"ID"`
	Date        string `csv:"Date"`
	Category    string `csv:"Category"`
	Amount      string `csv:"Amount"`
	Description string `csv:"Description"`
	Type        string `csv:"Type"`
}

func toExportRecord(tx models.Transaction) ExportRecord {
	return ExportRecord{
		ID:          strconv.Itoa(tx.ID),
		Date:        tx.Date.String(),
		Category:    tx.Category,
		Amount:      tx.Amount.StringFixed(2),
		Description: tx.Description,
		Type:        tx.Type.String(),
	}
}
