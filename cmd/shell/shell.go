// Package shell provides an interactive session over one ledger so that adds,
// deletes and undos can be combined with reports in a single run.
package shell

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"fjacquet/expense-ledger/cmd/common"
	"fjacquet/expense-ledger/cmd/root"
	"fjacquet/expense-ledger/internal/config"
	"fjacquet/expense-ledger/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the shell command
var Cmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive ledger session",
	Long: `Start an interactive session. Each line is one command such as

  add 1/11/2025 Food 250.50 "Lunch at Café" Expense
  delete 3
  undo
  top 3

Type "help" for the full list and "quit" to leave. A seed file given with
--input is loaded before the first prompt.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := common.FromContainer(root.App, cmd.OutOrStdout())
		return Run(a, cmd.InOrStdin(), root.Log)
	},
}

// Run reads commands from in until EOF or quit. Argument and ledger errors are
// printed and the session continues.
func Run(a *common.Actions, in io.Reader, logger logging.Logger) error {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	prompt := a.Renderer.Format() == config.FormatText
	scanner := bufio.NewScanner(in)

	for {
		if prompt {
			fmt.Fprintf(a.Out, "ledger [%d txn, %d undo]> ", a.Ledger.TransactionCount(), a.Ledger.UndoDepth())
		}
		if !scanner.Scan() {
			break
		}

		args, err := Tokenize(scanner.Text())
		if err != nil {
			fmt.Fprintf(a.Out, "Error: %v\n", err)
			continue
		}
		if len(args) == 0 {
			continue
		}
		if args[0] == "quit" || args[0] == "exit" {
			return nil
		}

		if err := dispatch(a, args); err != nil {
			logger.WithError(err).Debug("Shell command failed", logging.F(logging.FieldOperation, args[0]))
			fmt.Fprintf(a.Out, "Error: %v\n", err)
		}
	}
	return scanner.Err()
}

// Tokenize splits a line on spaces. Double quotes group words, and a doubled
// quote inside quotes is a literal quote.
func Tokenize(line string) ([]string, error) {
	r := csv.NewReader(strings.NewReader(line))
	r.Comma = ' '
	r.LazyQuotes = true

	fields, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot parse line: %w", err)
	}

	args := fields[:0]
	for _, f := range fields {
		if f != "" {
			args = append(args, f)
		}
	}
	return args, nil
}

func dispatch(a *common.Actions, args []string) error {
	cmd := newLineCommand(a)
	cmd.SetArgs(args)
	cmd.SetOut(a.Out)
	cmd.SetErr(a.Out)
	return cmd.Execute()
}
