// Package report provides the read-only report commands
package report

import (
	"fjacquet/expense-ledger/cmd/common"
	"fjacquet/expense-ledger/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the report command
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Show reports over the ledger",
	Long: `Show read-only reports over the ledger: every transaction, one category,
the per-category expense summary, the top expenses, a monthly total,
overall statistics or the list of categories.`,
}

var monthlyType string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every transaction in insertion order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return actions(cmd).List()
	},
}

var categoryCmd = &cobra.Command{
	Use:   "category <name>",
	Short: "List the transactions of one category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return actions(cmd).Category(args[0])
	},
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the expense total of every category",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return actions(cmd).Summary()
	},
}

var topCmd = &cobra.Command{
	Use:   "top [n]",
	Short: "Show the n largest expenses (default from report.top_n)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n := ""
		if len(args) == 1 {
			n = args[0]
		}
		return actions(cmd).Top(n)
	},
}

var monthlyCmd = &cobra.Command{
	Use:   "monthly <MM/YYYY>",
	Short: "Show the total of one month",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return actions(cmd).Monthly(args[0], monthlyType)
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show transaction count, totals, net balance and category count",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return actions(cmd).Stats()
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the categories that hold transactions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return actions(cmd).Categories()
	},
}

func init() {
	monthlyCmd.Flags().StringVarP(&monthlyType, "type", "t", "expense", "Transaction type to total: income, expense or any")

	Cmd.AddCommand(listCmd, categoryCmd, summaryCmd, topCmd, monthlyCmd, statsCmd, categoriesCmd)
}

func actions(cmd *cobra.Command) *common.Actions {
	return common.FromContainer(root.App, cmd.OutOrStdout())
}
