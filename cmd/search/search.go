// Package search provides the range and keyword search commands
package search

import (
	"fjacquet/expense-ledger/cmd/common"
	"fjacquet/expense-ledger/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the search command
var Cmd = &cobra.Command{
	Use:   "search",
	Short: "Search transactions by date range, amount range or keyword",
	Long: `Search transactions by an inclusive date range, an inclusive amount range
or a keyword contained in the description. Results keep insertion order.`,
}

var ignoreCase bool

var dateCmd = &cobra.Command{
	Use:     "date <start> <end>",
	Short:   "Transactions dated between start and end, inclusive",
	Example: "  ledger search date 5/11/2025 12/11/2025 -i seed.csv",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return common.FromContainer(root.App, cmd.OutOrStdout()).SearchDate(args[0], args[1])
	},
}

var amountCmd = &cobra.Command{
	Use:     "amount <min> <max>",
	Short:   "Transactions whose amount is between min and max, inclusive",
	Example: "  ledger search amount 100 700 -i seed.csv",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return common.FromContainer(root.App, cmd.OutOrStdout()).SearchAmount(args[0], args[1])
	},
}

var keywordCmd = &cobra.Command{
	Use:   "keyword <keyword>",
	Short: "Transactions whose description contains keyword",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return common.FromContainer(root.App, cmd.OutOrStdout()).SearchKeyword(args[0], ignoreCase)
	},
}

func init() {
	keywordCmd.Flags().BoolVar(&ignoreCase, "ignore-case", false, "Match the keyword regardless of letter case")

	Cmd.AddCommand(dateCmd, amountCmd, keywordCmd)
}
