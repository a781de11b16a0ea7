// Package demo replays a fixed November 2025 scenario through every ledger
// operation and prints each result.
package demo

import (
	"io"

	"fjacquet/expense-ledger/cmd/common"
	"fjacquet/expense-ledger/cmd/root"
	"fjacquet/expense-ledger/internal/ledger"
	"fjacquet/expense-ledger/internal/models"
	"fjacquet/expense-ledger/internal/report"

	"github.com/spf13/cobra"
)

// Cmd represents the demo command
var Cmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the built-in demonstration scenario",
	Long: `Run the built-in demonstration scenario on a fresh ledger: six November
2025 transactions, every report and search, then one undo. Any --input
seed file is ignored.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m := ledger.NewManager(root.App.GetLogger())
		return Run(m, root.App.GetRenderer(), cmd.OutOrStdout())
	},
}

// scenario rows are date, category, amount, description, type
var scenario = [][5]string{
	{"1/11/2025", models.CategoryFood, "250.50", "Lunch at Café", "Expense"},
	{"4/11/2025", models.CategoryTransport, "100", "Uber Ride", "Expense"},
	{"7/11/2025", models.CategoryFood, "650", "Groceries", "Expense"},
	{"10/11/2025", models.CategoryEntertainment, "500", "Movie Tickets", "Expense"},
	{"12/11/2025", models.CategoryUtilities, "1500", "Electricity Bill", "Expense"},
	{"15/11/2025", models.CategorySalary, "20000", "November salary", "Income"},
}

// Run plays the scenario against m
func Run(m *ledger.Manager, r *report.Renderer, out io.Writer) error {
	a := common.NewActions(m, r, out)

	steps := []func() error{
		func() error { return r.Notice(out, "--- ADDING TRANSACTIONS ---") },
	}
	for _, row := range scenario {
		steps = append(steps, func() error { return a.Add(row[0], row[1], row[2], row[3], row[4]) })
	}
	steps = append(steps,
		a.List,
		a.Stats,
		func() error { return a.Category(models.CategoryFood) },
		a.Summary,
		func() error { return a.Top("3") },
		func() error { return a.SearchDate("5/11/2025", "12/11/2025") },
		func() error { return a.SearchAmount("100", "700") },
		func() error { return a.SearchKeyword("Food", false) },
		func() error { return a.Monthly("11/2025", "expense") },
		func() error { return r.Notice(out, "--- TESTING UNDO ---") },
		a.Undo,
		a.List,
		func() error { return r.Notice(out, "Demo complete!") },
	)

	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}
