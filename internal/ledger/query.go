package ledger

import (
	"sort"
	"strings"

	"fjacquet/expense-ledger/internal/models"

	"github.com/shopspring/decimal"
)

// CategoryTotal is one row of the category summary
type CategoryTotal struct {
	Category string          `json:"category" yaml:"category"`
	Total    decimal.Decimal `json:"total" yaml:"total"`
}

// RankedTransaction is one row of the top-expenses report, ranked from 1
type RankedTransaction struct {
	Rank        int                `json:"rank" yaml:"rank"`
	Transaction models.Transaction `json:"transaction" yaml:"transaction"`
}

// Statistics summarises the whole ledger
type Statistics struct {
	TransactionCount int             `json:"transaction_count" yaml:"transaction_count"`
	TotalIncome      decimal.Decimal `json:"total_income" yaml:"total_income"`
	TotalExpenses    decimal.Decimal `json:"total_expenses" yaml:"total_expenses"`
	Net              decimal.Decimal `json:"net" yaml:"net"`
	CategoryCount    int             `json:"category_count" yaml:"category_count"`
}

// ByCategory returns the transactions filed under category in insertion
// order. Unknown and emptied categories both yield an empty slice.
func (m *Manager) ByCategory(category string) []models.Transaction {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.index.Bucket(category)
}

// Categories returns the names of all non-empty categories, sorted
func (m *Manager) Categories() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.index.Categories()
}

// All returns every transaction in store order, oldest first
func (m *Manager) All() []models.Transaction {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.store.ListAll()
}

// MonthlyTotal sums the amounts of transactions dated in month/year.
// With models.TypeAny every type is counted, otherwise only exact matches.
func (m *Manager) MonthlyTotal(month, year int, txType models.TransactionType) decimal.Decimal {
	m.mu.RLock()
	defer m.mu.RUnlock()

	total := decimal.Zero
	m.store.each(func(tx models.Transaction) {
		if tx.Date.InMonth(month, year) && tx.Type.Matches(txType) {
			total = total.Add(tx.Amount)
		}
	})
	return total
}

// CategorySummary returns, for every category, the sum of its Expense
// transactions, sorted by category name. Income never contributes, so an
// income-only category is listed with a zero total.
func (m *Manager) CategorySummary() []CategoryTotal {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := m.index.Categories()
	summary := make([]CategoryTotal, 0, len(names))
	for _, name := range names {
		total := decimal.Zero
		for _, tx := range m.index.bucket(name) {
			if tx.IsExpense() {
				total = total.Add(tx.Amount)
			}
		}
		summary = append(summary, CategoryTotal{Category: name, Total: total})
	}
	return summary
}

// SearchByDateRange returns transactions dated between start and end inclusive
func (m *Manager) SearchByDateRange(start, end models.Date) []models.Transaction {
	return m.filter(func(tx models.Transaction) bool {
		return tx.Date.Within(start, end)
	})
}

// SearchByAmountRange returns transactions with lo <= amount <= hi
func (m *Manager) SearchByAmountRange(lo, hi decimal.Decimal) []models.Transaction {
	return m.filter(func(tx models.Transaction) bool {
		return tx.Amount.GreaterThanOrEqual(lo) && tx.Amount.LessThanOrEqual(hi)
	})
}

// SearchByKeyword returns transactions whose description contains keyword.
// Matching is case-sensitive; see SearchByKeywordFold.
func (m *Manager) SearchByKeyword(keyword string) []models.Transaction {
	return m.filter(func(tx models.Transaction) bool {
		return strings.Contains(tx.Description, keyword)
	})
}

// SearchByKeywordFold is SearchByKeyword ignoring case
func (m *Manager) SearchByKeywordFold(keyword string) []models.Transaction {
	needle := strings.ToLower(keyword)
	return m.filter(func(tx models.Transaction) bool {
		return strings.Contains(strings.ToLower(tx.Description), needle)
	})
}

// TopExpenses returns up to n Expense transactions ranked by descending
// amount. Equal amounts keep store order. n <= 0 yields nothing.
func (m *Manager) TopExpenses(n int) []RankedTransaction {
	if n <= 0 {
		return []RankedTransaction{}
	}
	expenses := m.filter(models.Transaction.IsExpense)
	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].Amount.GreaterThan(expenses[j].Amount)
	})
	if n > len(expenses) {
		n = len(expenses)
	}
	ranked := make([]RankedTransaction, n)
	for i := 0; i < n; i++ {
		ranked[i] = RankedTransaction{Rank: i + 1, Transaction: expenses[i]}
	}
	return ranked
}

// TotalIncome sums every transaction typed exactly Income
func (m *Manager) TotalIncome() decimal.Decimal {
	return m.sumType(models.TypeIncome)
}

// TotalExpenses sums every transaction typed exactly Expense
func (m *Manager) TotalExpenses() decimal.Decimal {
	return m.sumType(models.TypeExpense)
}

// TransactionCount returns the number of transactions in the ledger
func (m *Manager) TransactionCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.store.Count()
}

// Statistics computes count, totals, net balance and category count from a
// single consistent view of the ledger.
func (m *Manager) Statistics() Statistics {
	m.mu.RLock()
	defer m.mu.RUnlock()

	income, expenses := decimal.Zero, decimal.Zero
	m.store.each(func(tx models.Transaction) {
		switch tx.Type {
		case models.TypeIncome:
			income = income.Add(tx.Amount)
		case models.TypeExpense:
			expenses = expenses.Add(tx.Amount)
		}
	})
	return Statistics{
		TransactionCount: m.store.Count(),
		TotalIncome:      income,
		TotalExpenses:    expenses,
		Net:              income.Sub(expenses),
		CategoryCount:    m.index.CategoryCount(),
	}
}

func (m *Manager) sumType(txType models.TransactionType) decimal.Decimal {
	m.mu.RLock()
	defer m.mu.RUnlock()

	total := decimal.Zero
	m.store.each(func(tx models.Transaction) {
		if tx.Type == txType {
			total = total.Add(tx.Amount)
		}
	})
	return total
}

func (m *Manager) filter(keep func(models.Transaction) bool) []models.Transaction {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []models.Transaction{}
	m.store.each(func(tx models.Transaction) {
		if keep(tx) {
			out = append(out, tx)
		}
	})
	return out
}
