// Package root contains the root command for the application
package root

import (
	"fmt"
	"strings"
	"sync"

	"fjacquet/expense-ledger/internal/config"
	"fjacquet/expense-ledger/internal/container"
	"fjacquet/expense-ledger/internal/logging"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to all commands
type CommonFlags struct {
	Input    string
	Format   string
	Currency string
	Config   string
}

var (
	// Log is the shared logger instance for commands
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// App holds the wired dependencies once PersistentPreRunE has run
	App *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "ledger",
		Short: "An in-memory personal finance ledger with undo and reports.",
		Long: `ledger records income and expense transactions in memory, indexes them
by category, undoes the last add or delete, and reports totals, top
expenses and range or keyword searches.

Transactions can be seeded from a CSV or YAML file with --input.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: Setup,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if App == nil {
				return nil
			}
			return App.Close()
		},
	}

	// SharedFlags holds the values of the persistent flags
	SharedFlags = CommonFlags{}

	initOnce sync.Once
)

// Init initializes the root command's persistent flags. It is safe to call
// more than once.
func Init() {
	initOnce.Do(func() {
		Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Seed file to import (.csv, .yaml or .yml)")
		Cmd.PersistentFlags().StringVarP(&SharedFlags.Format, "format", "f", "", "Output format: text, json or yaml")
		Cmd.PersistentFlags().StringVar(&SharedFlags.Currency, "currency", "", "Currency symbol shown in text output")
		Cmd.PersistentFlags().StringVar(&SharedFlags.Config, "config", "", "Config file (default: config.yaml in $HOME/.ledger, .ledger or .)")
	})
}

// Setup loads configuration, applies flag overrides, wires the container and
// imports the seed file. It runs before every subcommand.
func Setup(cmd *cobra.Command, args []string) error {
	if loaded := config.LoadEnv(); loaded != "" {
		Log.Debug("Loaded environment file", logging.F(logging.FieldInputFile, loaded))
	}

	cfg, err := config.InitializeConfigFromFile(SharedFlags.Config)
	if err != nil {
		return err
	}
	ApplyFlags(cfg, SharedFlags)

	app, err := container.NewContainer(cfg)
	if err != nil {
		return err
	}
	App = app
	Log = app.GetLogger()

	if _, err := app.LoadSeed(cfg.Import.File); err != nil {
		return fmt.Errorf("failed to import seed file: %w", err)
	}
	return nil
}

// ApplyFlags overrides configuration values with any non-empty flag
func ApplyFlags(cfg *config.Config, flags CommonFlags) {
	if flags.Input != "" {
		cfg.Import.File = flags.Input
	}
	if flags.Format != "" {
		cfg.Output.Format = strings.ToLower(flags.Format)
	}
	if flags.Currency != "" {
		cfg.Display.CurrencySymbol = flags.Currency
	}
}
