// Package report renders ledger query results as text tables, JSON or YAML.
// The ledger itself only returns data; everything about presentation lives here.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"fjacquet/expense-ledger/internal/config"
	"fjacquet/expense-ledger/internal/currencyutils"
	"fjacquet/expense-ledger/internal/ledger"
	"fjacquet/expense-ledger/internal/ledgererror"
	"fjacquet/expense-ledger/internal/logging"
	"fjacquet/expense-ledger/internal/models"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// DefaultCurrencySymbol is prefixed to amounts in text output
const DefaultCurrencySymbol = "₹"

// Renderer writes query results in one output format
type Renderer struct {
	format   string
	currency string
	logger   logging.Logger
}

// NewRenderer creates a Renderer for format (text, json or yaml).
// An empty format means text; an empty currency means DefaultCurrencySymbol.
func NewRenderer(logger logging.Logger, format, currency string) (*Renderer, error) {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = config.FormatText
	}
	if !slices.Contains(config.SupportedOutputFormats, format) {
		return nil, &ledgererror.UnsupportedFormatError{Format: format, Supported: config.SupportedOutputFormats}
	}
	if currency == "" {
		currency = DefaultCurrencySymbol
	}
	return &Renderer{
		format:   format,
		currency: currency,
		logger:   logger.WithField(logging.FieldComponent, "report"),
	}, nil
}

// Format returns the output format this renderer writes
func (r *Renderer) Format() string {
	return r.format
}

// Transactions renders a titled list of transactions
func (r *Renderer) Transactions(w io.Writer, title string, txs []models.Transaction) error {
	if r.format != config.FormatText {
		return r.encode(w, transactionList{Title: title, Count: len(txs), Transactions: toViews(txs)})
	}
	if len(txs) == 0 {
		return r.text(w, func(t *textWriter) { t.line("No transactions found.") })
	}
	return r.text(w, func(t *textWriter) {
		t.heading(title)
		t.row("ID", "Date", "Category", "Amount", "Description", "Type")
		for _, tx := range txs {
			t.row(tx.ID, tx.Date, tx.Category, r.money(tx.Amount), tx.Description, tx.Type)
		}
	})
}

// CategorySummary renders the expense total of every category
func (r *Renderer) CategorySummary(w io.Writer, rows []ledger.CategoryTotal) error {
	if r.format != config.FormatText {
		views := make([]categoryTotalView, len(rows))
		for i, row := range rows {
			views[i] = categoryTotalView{Category: row.Category, Total: fixed(row.Total)}
		}
		return r.encode(w, categorySummary{Categories: views})
	}
	if len(rows) == 0 {
		return r.text(w, func(t *textWriter) { t.line("No categories found.") })
	}
	return r.text(w, func(t *textWriter) {
		t.heading("CATEGORY SUMMARY")
		t.row("Category", "Total Amount")
		for _, row := range rows {
			t.row(row.Category, r.money(row.Total))
		}
	})
}

// TopExpenses renders ranked expenses, largest first
func (r *Renderer) TopExpenses(w io.Writer, ranked []ledger.RankedTransaction) error {
	if r.format != config.FormatText {
		views := make([]rankedView, len(ranked))
		for i, rt := range ranked {
			views[i] = rankedView{Rank: rt.Rank, Transaction: toView(rt.Transaction)}
		}
		return r.encode(w, topExpenses{Count: len(views), Expenses: views})
	}
	if len(ranked) == 0 {
		return r.text(w, func(t *textWriter) { t.line("No expenses found.") })
	}
	return r.text(w, func(t *textWriter) {
		t.heading(fmt.Sprintf("TOP %d EXPENSES", len(ranked)))
		t.row("Rank", "Date", "Category", "Amount", "Description")
		for _, rt := range ranked {
			tx := rt.Transaction
			t.row(rt.Rank, tx.Date, tx.Category, r.money(tx.Amount), tx.Description)
		}
	})
}

// Statistics renders the ledger-wide counts and totals
func (r *Renderer) Statistics(w io.Writer, stats ledger.Statistics) error {
	if r.format != config.FormatText {
		return r.encode(w, statisticsView{
			TransactionCount: stats.TransactionCount,
			TotalIncome:      fixed(stats.TotalIncome),
			TotalExpenses:    fixed(stats.TotalExpenses),
			Net:              fixed(stats.Net),
			CategoryCount:    stats.CategoryCount,
		})
	}
	return r.text(w, func(t *textWriter) {
		t.heading("STATISTICS")
		t.row("Total Transactions:", stats.TransactionCount)
		t.row("Total Income:", r.money(stats.TotalIncome))
		t.row("Total Expenses:", r.money(stats.TotalExpenses))
		t.row("Net Balance:", r.money(stats.Net))
		t.row("Categories:", stats.CategoryCount)
	})
}

// Total renders a single labelled amount, such as a monthly total
func (r *Renderer) Total(w io.Writer, label string, amount decimal.Decimal) error {
	if r.format != config.FormatText {
		return r.encode(w, totalView{Label: label, Amount: fixed(amount)})
	}
	return r.text(w, func(t *textWriter) {
		t.line(fmt.Sprintf("%s: %s", label, r.money(amount)))
	})
}

// Categories renders the sorted list of category names
func (r *Renderer) Categories(w io.Writer, names []string) error {
	if r.format != config.FormatText {
		if names == nil {
			names = []string{}
		}
		return r.encode(w, categoryList{Count: len(names), Categories: names})
	}
	if len(names) == 0 {
		return r.text(w, func(t *textWriter) { t.line("No categories found.") })
	}
	return r.text(w, func(t *textWriter) {
		t.heading("CATEGORIES")
		for _, name := range names {
			t.line(name)
		}
	})
}

// Added renders the outcome of an add
func (r *Renderer) Added(w io.Writer, tx models.Transaction) error {
	return r.outcome(w, "add", fmt.Sprintf("Transaction added (ID: %d)", tx.ID), &tx)
}

// Deleted renders the outcome of a delete
func (r *Renderer) Deleted(w io.Writer, tx models.Transaction) error {
	return r.outcome(w, "delete", fmt.Sprintf("Transaction (ID: %d) deleted.", tx.ID), &tx)
}

// Undone renders the outcome of an undo
func (r *Renderer) Undone(w io.Writer, entry ledger.UndoEntry) error {
	var msg string
	switch entry.Kind {
	case ledger.UndoInsertion:
		msg = fmt.Sprintf("Undo performed: added transaction (ID: %d) is now removed.", entry.Transaction.ID)
	case ledger.UndoDeletion:
		msg = fmt.Sprintf("Undo performed: deleted transaction (ID: %d) is now restored.", entry.Transaction.ID)
	default:
		msg = fmt.Sprintf("Undo performed: %s", entry.Kind)
	}
	return r.outcome(w, "undo", msg, &entry.Transaction)
}

// Notice renders a plain informational or error message
func (r *Renderer) Notice(w io.Writer, msg string) error {
	return r.outcome(w, "", msg, nil)
}

func (r *Renderer) outcome(w io.Writer, op, msg string, tx *models.Transaction) error {
	if r.format != config.FormatText {
		o := outcomeView{Operation: op, Message: msg}
		if tx != nil {
			v := toView(*tx)
			o.Transaction = &v
		}
		return r.encode(w, o)
	}
	return r.text(w, func(t *textWriter) { t.line(msg) })
}

func (r *Renderer) encode(w io.Writer, v interface{}) error {
	var err error
	switch r.format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(v)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(v); err == nil {
			err = enc.Close()
		}
	default:
		return &ledgererror.UnsupportedFormatError{Format: r.format, Supported: config.SupportedOutputFormats}
	}
	if err != nil {
		r.logger.WithError(err).Error("Failed to encode report",
			logging.F(logging.FieldFormat, r.format))
		return fmt.Errorf("failed to encode %s report: %w", r.format, err)
	}
	return nil
}

func (r *Renderer) text(w io.Writer, fill func(t *textWriter)) error {
	t := newTextWriter(w)
	fill(t)
	if err := t.flush(); err != nil {
		r.logger.WithError(err).Error("Failed to write report")
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func (r *Renderer) money(d decimal.Decimal) string {
	return currencyutils.FormatAmount(d, r.currency)
}

func fixed(d decimal.Decimal) string {
	return d.StringFixed(2)
}
