// Package importer reads seed transactions from CSV and YAML files and
// exports ledger contents back to CSV.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"fjacquet/expense-ledger/internal/dateutils"
	"fjacquet/expense-ledger/internal/fileutils"
	"fjacquet/expense-ledger/internal/ledgererror"
	"fjacquet/expense-ledger/internal/logging"
	"fjacquet/expense-ledger/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"
)

// SupportedExtensions lists the seed file extensions ReadFile understands
var SupportedExtensions = []string{".csv", ".yaml", ".yml"}

// Recorder is anything that can take ownership of a new transaction and
// assign it an ID. *ledger.Manager satisfies it.
type Recorder interface {
	AddTransaction(tx models.Transaction) int
}

// Importer converts seed files into transactions
type Importer struct {
	logger    logging.Logger
	delimiter rune
	validate  *validator.Validate
}

// NewImporter creates an Importer using delimiter for CSV input and output
func NewImporter(logger logging.Logger, delimiter rune) *Importer {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	if delimiter == 0 {
		delimiter = ','
	}
	return &Importer{
		logger:    logger.WithField(logging.FieldComponent, "importer"),
		delimiter: delimiter,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
	}
}

// ReadFile reads a .csv, .yaml or .yml seed file
func (i *Importer) ReadFile(path string) ([]models.Transaction, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".csv" && ext != ".yaml" && ext != ".yml" {
		return nil, &ledgererror.UnsupportedFormatError{Format: ext, Supported: SupportedExtensions}
	}

	file, err := fileutils.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("error opening seed file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			i.logger.WithError(err).Warn("Failed to close file")
		}
	}()

	if ext == ".csv" {
		return i.ReadCSV(file, path)
	}
	return i.ReadYAML(file, path)
}

// ReadCSV decodes CSV rows with a Date,Category,Amount,Description,Type header.
// name is only used in error messages.
func (i *Importer) ReadCSV(r io.Reader, name string) ([]models.Transaction, error) {
	reader := csv.NewReader(r)
	reader.Comma = i.delimiter
	reader.TrimLeadingSpace = true

	var rows []Record
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return []models.Transaction{}, nil
		}
		return nil, fmt.Errorf("error parsing CSV file %s: %w", name, err)
	}

	transactions := make([]models.Transaction, 0, len(rows))
	for n, row := range rows {
		// header is line 1
		tx, err := i.convert(row, name, n+2)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}

	i.logger.Debug("Read CSV seed data",
		logging.F(logging.FieldInputFile, name),
		logging.F(logging.FieldCount, len(transactions)))
	return transactions, nil
}

// ReadYAML decodes either a document with a top-level "transactions" list or
// a bare list of records. Errors report the line of the offending entry.
func (i *Importer) ReadYAML(r io.Reader, name string) ([]models.Transaction, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return []models.Transaction{}, nil
		}
		return nil, fmt.Errorf("error parsing YAML file %s: %w", name, err)
	}

	list, err := recordList(&doc)
	if err != nil {
		return nil, fmt.Errorf("error parsing YAML file %s: %w", name, err)
	}

	transactions := make([]models.Transaction, 0, len(list.Content))
	for _, item := range list.Content {
		var row Record
		if err := item.Decode(&row); err != nil {
			return nil, &ledgererror.ImportError{File: name, Line: item.Line, Field: "record", Value: item.Tag, Err: err}
		}
		tx, err := i.convert(row, name, item.Line)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}

	i.logger.Debug("Read YAML seed data",
		logging.F(logging.FieldInputFile, name),
		logging.F(logging.FieldCount, len(transactions)))
	return transactions, nil
}

// Load reads path and records every transaction in file order, so the first
// row gets the recorder's next ID and each row is individually undoable.
func (i *Importer) Load(path string, into Recorder) (int, error) {
	transactions, err := i.ReadFile(path)
	if err != nil {
		return 0, err
	}
	for _, tx := range transactions {
		into.AddTransaction(tx)
	}
	i.logger.Info("Imported transactions",
		logging.F(logging.FieldOperation, logging.OpImport),
		logging.F(logging.FieldInputFile, path),
		logging.F(logging.FieldCount, len(transactions)))
	return len(transactions), nil
}

func (i *Importer) convert(row Record, name string, line int) (models.Transaction, error) {
	if err := i.validate.Struct(row); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return models.Transaction{}, &ledgererror.ValidationError{File: name, Line: line, Reason: describe(fieldErrs[0])}
		}
		return models.Transaction{}, fmt.Errorf("error validating %s:%d: %w", name, line, err)
	}

	date, err := dateutils.ParseDate(row.Date)
	if err != nil {
		return models.Transaction{}, &ledgererror.ImportError{File: name, Line: line, Field: "Date", Value: row.Date, Err: err}
	}

	tx, err := models.NewTransactionBuilder().
		WithDate(date).
		WithCategory(row.Category).
		WithAmountFromString(row.Amount).
		WithDescription(row.Description).
		WithType(models.TransactionType(row.Type)).
		Build()
	if err != nil {
		return models.Transaction{}, &ledgererror.ImportError{File: name, Line: line, Field: "Amount", Value: row.Amount, Err: err}
	}
	return tx, nil
}

func recordList(doc *yaml.Node) (*yaml.Node, error) {
	root := doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}

	switch root.Kind {
	case yaml.SequenceNode:
		return root, nil
	case yaml.MappingNode:
		for k := 0; k+1 < len(root.Content); k += 2 {
			if root.Content[k].Value == "transactions" {
				if root.Content[k+1].Kind != yaml.SequenceNode {
					return nil, fmt.Errorf("line %d: 'transactions' must be a list", root.Content[k+1].Line)
				}
				return root.Content[k+1], nil
			}
		}
		return nil, errors.New("missing top-level 'transactions' key")
	default:
		return nil, fmt.Errorf("line %d: expected a list of transactions", root.Line)
	}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "numeric":
		return fmt.Sprintf("%s must be numeric, got '%v'", fe.Field(), fe.Value())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed the '%s' check", fe.Field(), fe.Tag())
	}
}
