// Package export writes the ledger to a CSV file
package export

import (
	"fmt"

	"fjacquet/expense-ledger/cmd/root"

	"github.com/spf13/cobra"
)

var outputFile string

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export the ledger to CSV",
	Long: `Export every transaction, in insertion order, to a CSV file with the
columns ID,Date,Category,Amount,Description,Type. The CSV delimiter
comes from import.csv_delimiter.`,
	Example: "  ledger export -i seed.yaml -o november.csv",
	Args:    cobra.NoArgs,
	RunE:    exportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output CSV file")
	_ = Cmd.MarkFlagRequired("output")
}

func exportFunc(cmd *cobra.Command, args []string) error {
	transactions := root.App.GetLedger().All()
	if err := root.App.GetImporter().ExportFile(transactions, outputFile); err != nil {
		return err
	}
	return root.App.GetRenderer().Notice(cmd.OutOrStdout(),
		fmt.Sprintf("Exported %d transactions to %s", len(transactions), outputFile))
}
