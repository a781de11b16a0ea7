package common

import (
	"errors"
	"fmt"
	"io"

	"fjacquet/expense-ledger/internal/container"
	"fjacquet/expense-ledger/internal/dateutils"
	"fjacquet/expense-ledger/internal/ledger"
	"fjacquet/expense-ledger/internal/ledgererror"
	"fjacquet/expense-ledger/internal/models"
	"fjacquet/expense-ledger/internal/report"
)

// Actions runs one user-level operation against a ledger and renders the
// result. Commands and the interactive shell share it so that both parse
// arguments and print results the same way.
type Actions struct {
	Ledger   *ledger.Manager
	Renderer *report.Renderer
	Out      io.Writer

	// TopN is used by Top when no count is given
	TopN int
	// FoldSearch makes keyword searches case-insensitive by default
	FoldSearch bool
}

// NewActions creates Actions writing to out
func NewActions(m *ledger.Manager, r *report.Renderer, out io.Writer) *Actions {
	return &Actions{Ledger: m, Renderer: r, Out: out, TopN: models.DefaultTopExpenses}
}

// FromContainer creates Actions over the container's ledger and renderer,
// taking defaults from its configuration
func FromContainer(app *container.Container, out io.Writer) *Actions {
	a := NewActions(app.GetLedger(), app.GetRenderer(), out)
	cfg := app.GetConfig()
	if cfg.Report.TopN > 0 {
		a.TopN = cfg.Report.TopN
	}
	a.FoldSearch = cfg.Search.CaseInsensitive
	return a
}

// Add records a new transaction from raw arguments
func (a *Actions) Add(dateArg, category, amountArg, description, typeArg string) error {
	date, err := ParseDateArg("date", dateArg)
	if err != nil {
		return err
	}
	amount, err := ParseAmountArg("amount", amountArg)
	if err != nil {
		return err
	}
	txType, err := ParseTypeArg(typeArg, false)
	if err != nil {
		return err
	}
	if category == "" {
		return errors.New("category cannot be empty")
	}

	id := a.Ledger.Add(date, category, amount, description, txType)
	tx, err := a.Ledger.Get(id)
	if err != nil {
		return err
	}
	return a.Renderer.Added(a.Out, tx)
}

// Delete removes a transaction by ID. An unknown ID prints a notice.
func (a *Actions) Delete(idArg string) error {
	id, err := ParseIntArg("transaction ID", idArg)
	if err != nil {
		return err
	}
	tx, err := a.Ledger.Delete(id)
	if err != nil {
		return a.recoverable(err)
	}
	return a.Renderer.Deleted(a.Out, tx)
}

// Undo reverses the most recent add or delete. An empty log prints a notice.
func (a *Actions) Undo() error {
	entry, err := a.Ledger.Undo()
	if err != nil {
		return a.recoverable(err)
	}
	return a.Renderer.Undone(a.Out, entry)
}

// List shows every transaction in store order
func (a *Actions) List() error {
	return a.Renderer.Transactions(a.Out, "ALL TRANSACTIONS", a.Ledger.All())
}

// Category shows the transactions filed under name
func (a *Actions) Category(name string) error {
	return a.Renderer.Transactions(a.Out, "TRANSACTIONS IN CATEGORY: "+name, a.Ledger.ByCategory(name))
}

// Categories shows the sorted category names
func (a *Actions) Categories() error {
	return a.Renderer.Categories(a.Out, a.Ledger.Categories())
}

// Summary shows the expense total of every category
func (a *Actions) Summary() error {
	return a.Renderer.CategorySummary(a.Out, a.Ledger.CategorySummary())
}

// Top shows the largest expenses. An empty countArg means TopN.
func (a *Actions) Top(countArg string) error {
	n := a.TopN
	if countArg != "" {
		var err error
		if n, err = ParseIntArg("count", countArg); err != nil {
			return err
		}
	}
	return a.Renderer.TopExpenses(a.Out, a.Ledger.TopExpenses(n))
}

// Monthly shows the total of one month, optionally restricted to a type
func (a *Actions) Monthly(monthArg, typeArg string) error {
	month, year, err := dateutils.ParseMonth(monthArg)
	if err != nil {
		return err
	}
	txType, err := ParseTypeArg(typeArg, true)
	if err != nil {
		return err
	}
	return a.Renderer.Total(a.Out, monthlyLabel(month, year, txType), a.Ledger.MonthlyTotal(month, year, txType))
}

// Stats shows the ledger-wide statistics
func (a *Actions) Stats() error {
	return a.Renderer.Statistics(a.Out, a.Ledger.Statistics())
}

// SearchDate shows transactions dated within [startArg, endArg]
func (a *Actions) SearchDate(startArg, endArg string) error {
	start, err := ParseDateArg("start date", startArg)
	if err != nil {
		return err
	}
	end, err := ParseDateArg("end date", endArg)
	if err != nil {
		return err
	}
	title := fmt.Sprintf("TRANSACTIONS FROM %s TO %s", start, end)
	return a.Renderer.Transactions(a.Out, title, a.Ledger.SearchByDateRange(start, end))
}

// SearchAmount shows transactions whose amount lies within [minArg, maxArg]
func (a *Actions) SearchAmount(minArg, maxArg string) error {
	lo, err := ParseAmountArg("minimum amount", minArg)
	if err != nil {
		return err
	}
	hi, err := ParseAmountArg("maximum amount", maxArg)
	if err != nil {
		return err
	}
	title := fmt.Sprintf("TRANSACTIONS FROM %s TO %s", lo.StringFixed(2), hi.StringFixed(2))
	return a.Renderer.Transactions(a.Out, title, a.Ledger.SearchByAmountRange(lo, hi))
}

// SearchKeyword shows transactions whose description contains keyword.
// fold forces a case-insensitive match; FoldSearch does the same for every call.
func (a *Actions) SearchKeyword(keyword string, fold bool) error {
	title := fmt.Sprintf("TRANSACTIONS MATCHING '%s'", keyword)
	if fold || a.FoldSearch {
		return a.Renderer.Transactions(a.Out, title, a.Ledger.SearchByKeywordFold(keyword))
	}
	return a.Renderer.Transactions(a.Out, title, a.Ledger.SearchByKeyword(keyword))
}

// recoverable turns the ledger's recoverable errors into a printed notice
func (a *Actions) recoverable(err error) error {
	switch {
	case errors.Is(err, ledgererror.ErrTransactionNotFound):
		return a.Renderer.Notice(a.Out, "Transaction ID not found.")
	case errors.Is(err, ledgererror.ErrEmptyUndoLog):
		return a.Renderer.Notice(a.Out, "No operation to undo.")
	default:
		return err
	}
}

func monthlyLabel(month, year int, txType models.TransactionType) string {
	switch txType {
	case models.TypeExpense:
		return fmt.Sprintf("Total Expenses in %02d/%d", month, year)
	case models.TypeIncome:
		return fmt.Sprintf("Total Income in %02d/%d", month, year)
	default:
		return fmt.Sprintf("Total in %02d/%d", month, year)
	}
}
