package main

import (
	"fmt"
	"os"
	"strings"

	"fjacquet/expense-ledger/cmd/demo"
	"fjacquet/expense-ledger/cmd/export"
	"fjacquet/expense-ledger/cmd/report"
	"fjacquet/expense-ledger/cmd/root"
	"fjacquet/expense-ledger/cmd/search"
	"fjacquet/expense-ledger/cmd/shell"
	"fjacquet/expense-ledger/internal/config"
	"fjacquet/expense-ledger/internal/logging"

	"github.com/sirupsen/logrus"
)

func init() {
	// 1. Load .env silently first (no logging yet)
	config.LoadEnv()

	// 2. The startup logger follows LOG_LEVEL until configuration is read
	root.Log = logging.NewLogrusAdapter(configureLogLevelDirectly().String(), "text")

	// 3. Initialize root command flags
	root.Init()

	// 4. Add all subcommands
	root.Cmd.AddCommand(report.Cmd)
	root.Cmd.AddCommand(search.Cmd)
	root.Cmd.AddCommand(export.Cmd)
	root.Cmd.AddCommand(demo.Cmd)
	root.Cmd.AddCommand(shell.Cmd)
}

// configureLogLevelDirectly sets the global logrus level from LOG_LEVEL and
// returns it
func configureLogLevelDirectly() logrus.Level {
	logLevelStr := config.GetEnv("LOG_LEVEL", "info")

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	return logLevel
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
