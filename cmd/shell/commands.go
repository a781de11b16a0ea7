package shell

import (
	"fjacquet/expense-ledger/cmd/common"

	"github.com/spf13/cobra"
)

// newLineCommand builds the command tree for one shell line. A fresh tree per
// line keeps flag values from leaking between lines. add and search-amount
// skip flag parsing so that negative amounts are read as arguments.
func newLineCommand(a *common.Actions) *cobra.Command {
	line := &cobra.Command{
		Use:           "ledger>",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	line.CompletionOptions.DisableDefaultCmd = true

	var ignoreCase bool
	keyword := &cobra.Command{
		Use:   "search-keyword <keyword>",
		Short: "Transactions whose description contains keyword",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.SearchKeyword(args[0], ignoreCase)
		},
	}
	keyword.Flags().BoolVar(&ignoreCase, "ignore-case", false, "Ignore letter case")

	line.AddCommand(
		&cobra.Command{
			Use:                "add <date> <category> <amount> <description> <type>",
			Short:              "Record a transaction (type is Income or Expense)",
			Args:               cobra.ExactArgs(5),
			DisableFlagParsing: true,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.Add(args[0], args[1], args[2], args[3], args[4])
			},
		},
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a transaction by ID",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.Delete(args[0])
			},
		},
		&cobra.Command{
			Use:   "undo",
			Short: "Reverse the most recent add or delete",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.Undo()
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List every transaction",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.List()
			},
		},
		&cobra.Command{
			Use:   "category <name>",
			Short: "List the transactions of one category",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.Category(args[0])
			},
		},
		&cobra.Command{
			Use:   "categories",
			Short: "List category names",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.Categories()
			},
		},
		&cobra.Command{
			Use:   "summary",
			Short: "Expense total per category",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.Summary()
			},
		},
		&cobra.Command{
			Use:   "top [n]",
			Short: "The n largest expenses",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if len(args) == 0 {
					return a.Top("")
				}
				return a.Top(args[0])
			},
		},
		&cobra.Command{
			Use:   "monthly <MM/YYYY> [type]",
			Short: "Total of one month (type defaults to expense)",
			Args:  cobra.RangeArgs(1, 2),
			RunE: func(cmd *cobra.Command, args []string) error {
				txType := "expense"
				if len(args) == 2 {
					txType = args[1]
				}
				return a.Monthly(args[0], txType)
			},
		},
		&cobra.Command{
			Use:   "stats",
			Short: "Counts, totals and net balance",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.Stats()
			},
		},
		&cobra.Command{
			Use:   "search-date <start> <end>",
			Short: "Transactions dated between start and end, inclusive",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.SearchDate(args[0], args[1])
			},
		},
		&cobra.Command{
			Use:                "search-amount <min> <max>",
			Short:              "Transactions with an amount between min and max, inclusive",
			Args:               cobra.ExactArgs(2),
			DisableFlagParsing: true,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.SearchAmount(args[0], args[1])
			},
		},
		keyword,
	)
	return line
}
