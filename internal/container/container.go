// Package container provides dependency injection for the ledger application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"

	"fjacquet/expense-ledger/internal/config"
	"fjacquet/expense-ledger/internal/importer"
	"fjacquet/expense-ledger/internal/ledger"
	"fjacquet/expense-ledger/internal/logging"
	"fjacquet/expense-ledger/internal/report"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation - all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger   logging.Logger
	config   *config.Config
	ledger   *ledger.Manager
	importer *importer.Importer
	renderer *report.Renderer
}

// NewContainer creates and wires all application dependencies, logging to
// stderr with the configured level and format.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	return NewContainerWithLogger(cfg, logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format))
}

// NewContainerWithLogger is NewContainer with a caller-supplied logger
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	renderer, err := report.NewRenderer(logger, cfg.Output.Format, cfg.Display.CurrencySymbol)
	if err != nil {
		return nil, fmt.Errorf("failed to create report renderer: %w", err)
	}

	c := &Container{
		logger:   logger,
		config:   cfg,
		ledger:   ledger.NewManager(logger),
		importer: importer.NewImporter(logger, cfg.Delimiter()),
		renderer: renderer,
	}

	logger.Debug("Container initialized successfully",
		logging.F(logging.FieldFormat, renderer.Format()),
		logging.F(logging.FieldDelimiter, string(cfg.Delimiter())))
	return c, nil
}

// LoadSeed imports path into the ledger. An empty path is a no-op.
func (c *Container) LoadSeed(path string) (int, error) {
	if path == "" {
		return 0, nil
	}
	return c.importer.Load(path, c.ledger)
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetLedger returns the single ledger aggregate all commands operate on.
func (c *Container) GetLedger() *ledger.Manager {
	return c.ledger
}

// GetImporter returns the seed importer and CSV exporter.
func (c *Container) GetImporter() *importer.Importer {
	return c.importer
}

// GetRenderer returns the report renderer for the configured output format.
func (c *Container) GetRenderer() *report.Renderer {
	return c.renderer
}

// Close performs cleanup of container resources.
func (c *Container) Close() error {
	c.logger.Debug("Container closed",
		logging.F(logging.FieldCount, c.ledger.TransactionCount()),
		logging.F(logging.FieldUndoDepth, c.ledger.UndoDepth()))
	return nil
}
