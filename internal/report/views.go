package report

import "fjacquet/expense-ledger/internal/models"

// Structured output shapes. Amounts are fixed two-decimal strings so JSON and
// YAML consumers see exactly what the text tables show.

type transactionView struct {
	ID          int    `json:"id" yaml:"id"`
	Date        string `json:"date" yaml:"date"`
	Category    string `json:"category" yaml:"category"`
	Amount      string `json:"amount" yaml:"amount"`
	Description string `json:"description" yaml:"description"`
	Type        string `json:"type" yaml:"type"`
}

type transactionList struct {
	Title        string            `json:"title" yaml:"title"`
	Count        int               `json:"count" yaml:"count"`
	Transactions []transactionView `json:"transactions" yaml:"transactions"`
}

type categoryTotalView struct {
	Category string `json:"category" yaml:"category"`
	Total    string `json:"total" yaml:"total"`
}

type categorySummary struct {
	Categories []categoryTotalView `json:"categories" yaml:"categories"`
}

type rankedView struct {
	Rank        int             `json:"rank" yaml:"rank"`
	Transaction transactionView `json:"transaction" yaml:"transaction"`
}

type topExpenses struct {
	Count    int          `json:"count" yaml:"count"`
	Expenses []rankedView `json:"expenses" yaml:"expenses"`
}

type statisticsView struct {
	TransactionCount int    `json:"transaction_count" yaml:"transaction_count"`
	TotalIncome      string `json:"total_income" yaml:"total_income"`
	TotalExpenses    string `json:"total_expenses" yaml:"total_expenses"`
	Net              string `json:"net" yaml:"net"`
	CategoryCount    int    `json:"category_count" yaml:"category_count"`
}

type totalView struct {
	Label  string `json:"label" yaml:"label"`
	Amount string `json:"amount" yaml:"amount"`
}

type categoryList struct {
	Count      int      `json:"count" yaml:"count"`
	Categories []string `json:"categories" yaml:"categories"`
}

type outcomeView struct {
	Operation   string           `json:"operation,omitempty" yaml:"operation,omitempty"`
	Message     string           `json:"message" yaml:"message"`
	Transaction *transactionView `json:"transaction,omitempty" yaml:"transaction,omitempty"`
}

func toView(tx models.Transaction) transactionView {
	return transactionView{
		ID:          tx.ID,
		Date:        tx.Date.ISO(),
		Category:    tx.Category,
		Amount:      fixed(tx.Amount),
		Description: tx.Description,
		Type:        tx.Type.String(),
	}
}

func toViews(txs []models.Transaction) []transactionView {
	views := make([]transactionView, len(txs))
	for i, tx := range txs {
		views[i] = toView(tx)
	}
	return views
}
