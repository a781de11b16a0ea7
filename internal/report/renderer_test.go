package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"fjacquet/expense-ledger/internal/ledger"
	"fjacquet/expense-ledger/internal/ledgererror"
	"fjacquet/expense-ledger/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleLedger(t *testing.T) *ledger.Manager {
	t.Helper()
	m := ledger.NewManager(nil)
	add := func(day int, category, amount, description string, txType models.TransactionType) {
		m.Add(models.NewDate(day, 11, 2025), category, decimal.RequireFromString(amount), description, txType)
	}
	add(1, "Food", "250.50", "Lunch at Café", models.TypeExpense)
	add(4, "Transport", "100", "Uber Ride", models.TypeExpense)
	add(7, "Food", "650", "Groceries", models.TypeExpense)
	add(15, "Salary", "20000", "November salary", models.TypeIncome)
	return m
}

func newRenderer(t *testing.T, format string) *Renderer {
	t.Helper()
	r, err := NewRenderer(nil, format, "")
	require.NoError(t, err)
	return r
}

func TestNewRenderer(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		want    string
		wantErr bool
	}{
		{"empty means text", "", "text", false},
		{"text", "text", "text", false},
		{"json upper case", "JSON", "json", false},
		{"yaml", "yaml", "yaml", false},
		{"xml", "xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRenderer(nil, tt.format, "$")
			if tt.wantErr {
				var ue *ledgererror.UnsupportedFormatError
				assert.True(t, errors.As(err, &ue))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.Format())
		})
	}
}

func TestRenderer_TransactionsText(t *testing.T) {
	m := sampleLedger(t)
	var buf bytes.Buffer

	require.NoError(t, newRenderer(t, "text").Transactions(&buf, "ALL TRANSACTIONS", m.All()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "ALL TRANSACTIONS", lines[0])
	assert.Equal(t, strings.Repeat("=", len("ALL TRANSACTIONS")), lines[1])
	assert.Equal(t, []string{"ID", "Date", "Category", "Amount", "Description", "Type"}, strings.Fields(lines[2]))
	assert.Contains(t, lines[3], "1/11/2025")
	assert.Contains(t, lines[3], "₹250.50")
	assert.Contains(t, lines[3], "Lunch at Café")
	assert.Contains(t, lines[6], "₹20000.00")
	assert.True(t, strings.HasSuffix(lines[6], "Income"))
}

func TestRenderer_EmptyText(t *testing.T) {
	r := newRenderer(t, "text")
	tests := []struct {
		name   string
		render func(buf *bytes.Buffer) error
		want   string
	}{
		{"transactions", func(b *bytes.Buffer) error { return r.Transactions(b, "X", nil) }, "No transactions found.\n"},
		{"summary", func(b *bytes.Buffer) error { return r.CategorySummary(b, nil) }, "No categories found.\n"},
		{"top", func(b *bytes.Buffer) error { return r.TopExpenses(b, nil) }, "No expenses found.\n"},
		{"categories", func(b *bytes.Buffer) error { return r.Categories(b, nil) }, "No categories found.\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, tt.render(&buf))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestRenderer_StatisticsText(t *testing.T) {
	m := sampleLedger(t)
	var buf bytes.Buffer

	require.NoError(t, newRenderer(t, "text").Statistics(&buf, m.Statistics()))

	out := buf.String()
	// widest label is "Total Transactions:" plus two spaces of padding
	assert.Contains(t, out, fmt.Sprintf("%-21s%s\n", "Total Transactions:", "4"))
	assert.Contains(t, out, fmt.Sprintf("%-21s%s\n", "Total Expenses:", "₹1000.50"))
	assert.Contains(t, out, fmt.Sprintf("%-21s%s\n", "Net Balance:", "₹18999.50"))
	assert.Contains(t, out, fmt.Sprintf("%-21s%s\n", "Categories:", "3"))
}

func TestRenderer_CurrencySymbol(t *testing.T) {
	r, err := NewRenderer(nil, "text", "CHF ")
	require.NoError(t, err)
	var buf bytes.Buffer

	require.NoError(t, r.Total(&buf, "Total Expenses in 11/2025", decimal.RequireFromString("3000.5")))
	assert.Equal(t, "Total Expenses in 11/2025: CHF 3000.50\n", buf.String())
}

func TestRenderer_TopExpensesText(t *testing.T) {
	m := sampleLedger(t)
	var buf bytes.Buffer

	require.NoError(t, newRenderer(t, "text").TopExpenses(&buf, m.TopExpenses(2)))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "TOP 2 EXPENSES", lines[0])
	assert.Equal(t, "1", strings.Fields(lines[3])[0])
	assert.Contains(t, lines[3], "Groceries")
	assert.Contains(t, lines[4], "Lunch at Café")
}

func TestRenderer_TransactionsJSON(t *testing.T) {
	m := sampleLedger(t)
	var buf bytes.Buffer

	require.NoError(t, newRenderer(t, "json").Transactions(&buf, "Food", m.ByCategory("Food")))

	var got transactionList
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "Food", got.Title)
	assert.Equal(t, 2, got.Count)
	require.Len(t, got.Transactions, 2)
	assert.Equal(t, transactionView{
		ID: 1, Date: "2025-11-01", Category: "Food", Amount: "250.50",
		Description: "Lunch at Café", Type: "Expense",
	}, got.Transactions[0])
}

func TestRenderer_EmptyJSONListsAreArrays(t *testing.T) {
	var buf bytes.Buffer
	r := newRenderer(t, "json")

	require.NoError(t, r.Transactions(&buf, "none", []models.Transaction{}))
	assert.Contains(t, buf.String(), `"transactions": []`)

	buf.Reset()
	require.NoError(t, r.Categories(&buf, nil))
	assert.Contains(t, buf.String(), `"categories": []`)
}

func TestRenderer_SummaryYAML(t *testing.T) {
	m := sampleLedger(t)
	var buf bytes.Buffer

	require.NoError(t, newRenderer(t, "yaml").CategorySummary(&buf, m.CategorySummary()))

	var got categorySummary
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, []categoryTotalView{
		{Category: "Food", Total: "900.50"},
		{Category: "Salary", Total: "0.00"},
		{Category: "Transport", Total: "100.00"},
	}, got.Categories)
}

func TestRenderer_StatisticsYAML(t *testing.T) {
	m := sampleLedger(t)
	var buf bytes.Buffer

	require.NoError(t, newRenderer(t, "yaml").Statistics(&buf, m.Statistics()))

	var got statisticsView
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 4, got.TransactionCount)
	assert.Equal(t, "20000.00", got.TotalIncome)
	assert.Equal(t, "18999.50", got.Net)
}

func TestRenderer_Outcomes(t *testing.T) {
	m := sampleLedger(t)
	deleted, err := m.Delete(2)
	require.NoError(t, err)
	entry, err := m.Undo()
	require.NoError(t, err)

	t.Run("text", func(t *testing.T) {
		r := newRenderer(t, "text")
		var buf bytes.Buffer
		require.NoError(t, r.Deleted(&buf, deleted))
		require.NoError(t, r.Undone(&buf, entry))
		require.NoError(t, r.Notice(&buf, "No operation to undo."))
		assert.Equal(t, "Transaction (ID: 2) deleted.\n"+
			"Undo performed: deleted transaction (ID: 2) is now restored.\n"+
			"No operation to undo.\n", buf.String())
	})

	t.Run("json", func(t *testing.T) {
		r := newRenderer(t, "json")
		var buf bytes.Buffer
		require.NoError(t, r.Undone(&buf, entry))

		var got outcomeView
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, "undo", got.Operation)
		require.NotNil(t, got.Transaction)
		assert.Equal(t, "Uber Ride", got.Transaction.Description)
	})

	t.Run("added", func(t *testing.T) {
		r := newRenderer(t, "text")
		id := m.Add(models.NewDate(20, 11, 2025), "Food", decimal.NewFromInt(12), "Snack", models.TypeExpense)
		tx, err := m.Get(id)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, r.Added(&buf, tx))
		assert.Equal(t, fmt.Sprintf("Transaction added (ID: %d)\n", id), buf.String())
	})
}
