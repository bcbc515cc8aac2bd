// Package container provides dependency injection for the expense tracker.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"
	"io"
	"os"

	"fjacquet/expense-tracker/internal/config"
	"fjacquet/expense-tracker/internal/controller"
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/report"
	"fjacquet/expense-tracker/internal/shell"
	"fjacquet/expense-tracker/internal/store"
	"fjacquet/expense-tracker/internal/view"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation: all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger     logging.Logger
	config     *config.Config
	out        io.Writer
	store      *store.TransactionStore
	view       *view.TableView
	generator  *report.Generator
	controller *controller.Controller
}

// NewContainer creates and wires all application dependencies. The table view
// writes to out, or to standard output when out is nil.
func NewContainer(cfg *config.Config, out io.Writer) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if out == nil {
		out = os.Stdout
	}

	// Create logger first as it's needed by other components
	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)

	transactionStore := store.NewTransactionStore(logger)
	tableView := view.NewTableView(out, cfg.Display.DecimalPlaces, logger)
	generator := report.NewGenerator(cfg.DelimiterRune(), logger)
	ctrl := controller.New(transactionStore, tableView, logger)

	logger.Info("Container initialized successfully",
		logging.F("decimal_places", cfg.Display.DecimalPlaces),
		logging.F(logging.FieldFormat, cfg.Export.Format))

	return &Container{
		logger:     logger,
		config:     cfg,
		out:        out,
		store:      transactionStore,
		view:       tableView,
		generator:  generator,
		controller: ctrl,
	}, nil
}

// NewShell returns an interpreter bound to the container's controller. The
// configured prompt is only shown for interactive sessions.
func (c *Container) NewShell(interactive bool) *shell.Shell {
	opts := shell.Options{
		Echo:          c.config.Shell.EchoCommands,
		DecimalPlaces: c.config.Display.DecimalPlaces,
		ExportFormat:  c.config.Export.Format,
	}
	if interactive {
		opts.Prompt = c.config.Shell.Prompt
	}
	return shell.New(c.controller, c.generator, c.out, opts, c.logger)
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetStore returns the transaction store.
func (c *Container) GetStore() *store.TransactionStore {
	return c.store
}

// GetView returns the table view the controller renders to.
func (c *Container) GetView() *view.TableView {
	return c.view
}

// GetGenerator returns the export generator.
func (c *Container) GetGenerator() *report.Generator {
	return c.generator
}

// GetController returns the controller.
func (c *Container) GetController() *controller.Controller {
	return c.controller
}

// Close performs cleanup of container resources.
func (c *Container) Close() error {
	c.logger.Info("Container closed", logging.F(logging.FieldCount, c.store.Len()))
	return nil
}
