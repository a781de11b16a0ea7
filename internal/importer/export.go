package importer

import (
	"encoding/csv"
	"fmt"
	"io"

	"fjacquet/expense-ledger/internal/fileutils"
	"fjacquet/expense-ledger/internal/logging"
	"fjacquet/expense-ledger/internal/models"

	"github.com/gocarina/gocsv"
)

// WriteCSV writes transactions as ID,Date,Category,Amount,Description,Type
// rows, amounts fixed to two decimals.
func (i *Importer) WriteCSV(w io.Writer, transactions []models.Transaction) error {
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}

	rows := make([]ExportRecord, len(transactions))
	for n, tx := range transactions {
		rows[n] = toExportRecord(tx)
	}

	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = i.delimiter
	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// ExportFile writes transactions to csvFile, creating parent directories
func (i *Importer) ExportFile(transactions []models.Transaction, csvFile string) error {
	file, err := fileutils.CreateFile(csvFile, models.PermissionReportFile, models.PermissionDirectory)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			i.logger.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := i.WriteCSV(file, transactions); err != nil {
		return err
	}

	i.logger.Info("Exported transactions",
		logging.F(logging.FieldOperation, logging.OpExport),
		logging.F(logging.FieldOutputFile, csvFile),
		logging.F(logging.FieldCount, len(transactions)),
		logging.F(logging.FieldDelimiter, string(i.delimiter)))
	return nil
}
