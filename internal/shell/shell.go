// Package shell implements the line-oriented command interpreter that drives
// the controller from a terminal or a script file.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"fjacquet/expense-tracker/internal/controller"
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"
	"fjacquet/expense-tracker/internal/trackererror"
	"fjacquet/expense-tracker/internal/validation"
	"fjacquet/expense-tracker/internal/view"

	"github.com/shopspring/decimal"
)

// Controller is the subset of the controller the shell drives.
type Controller interface {
	AddTransaction(amount decimal.Decimal, category string) error
	RemoveTransaction(tx *models.Transaction) bool
	RemoveVisible(row int) (*models.Transaction, error)
	Find(id string) (*models.Transaction, bool)
	ApplyFilter(kindToken, rawParameter string) error
	ClearFilter()
	ActiveFilter() controller.FilterState
	Visible() ([]*models.Transaction, decimal.Decimal)
	Refresh()
}

// Exporter writes rows to a file in a given format.
type Exporter interface {
	Export(rows []view.Row, path, format string) error
}

// Options tune the interpreter.
type Options struct {
	// Prompt is written before every line read. Empty disables it.
	Prompt string
	// Echo writes each command back before executing it.
	Echo bool
	// DecimalPlaces is used for exported amounts.
	DecimalPlaces int
	// ExportFormat is used when neither the command nor the file extension names one.
	ExportFormat string
}

// Shell reads commands line by line and applies them to the controller.
type Shell struct {
	ctrl     Controller
	exporter Exporter
	out      io.Writer
	opts     Options
	logger   logging.Logger
}

// New creates a Shell writing its messages to out.
func New(ctrl Controller, exporter Exporter, out io.Writer, opts Options, logger logging.Logger) *Shell {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if opts.ExportFormat == "" {
		opts.ExportFormat = "csv"
	}
	return &Shell{
		ctrl:     ctrl,
		exporter: exporter,
		out:      out,
		opts:     opts,
		logger:   logger,
	}
}

// Run executes commands from in until end of input, a quit command or
// cancellation of ctx. Cancellation is honoured while a read is blocked.
// The prompt is written before each read, so an interactive session that
// ends with end of input gets a final newline after the last prompt.
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	readCtx, stop := context.WithCancel(ctx)
	defer stop()
	lines, readErr := readLines(readCtx, in)

	lineNo := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.opts.Prompt != "" {
			s.print(s.opts.Prompt)
		}

		var line string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case next, ok := <-lines:
			if !ok {
				if s.opts.Prompt != "" {
					s.print("\n")
				}
				if err := <-readErr; err != nil {
					return fmt.Errorf("failed to read commands: %w", err)
				}
				return nil
			}
			line = next
		}

		lineNo++
		if s.opts.Echo && strings.TrimSpace(line) != "" {
			s.println(line)
		}
		if quit := s.Execute(line); quit {
			s.logger.Debug("Shell stopped by quit command", logging.F(logging.FieldRow, lineNo))
			return nil
		}
	}
}

// readLines scans in on its own goroutine. It stops at end of input or when
// ctx is done; a read that never returns keeps the goroutine parked until
// in is closed.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				errc <- nil
				return
			}
		}
		errc <- scanner.Err()
	}()
	return lines, errc
}

// Execute runs a single command line and reports whether the shell should stop.
// Rejections are written as messages; they never stop the shell.
func (s *Shell) Execute(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return false
	}

	cmd, args := strings.ToLower(fields[0]), fields[1:]
	switch cmd {
	case "add":
		s.add(args)
	case "filter":
		s.filter(args)
	case "clear":
		s.ctrl.ClearFilter()
		s.println("Active filter: " + s.ctrl.ActiveFilter().String())
	case "remove", "rm":
		s.remove(args)
	case "list", "ls":
		s.ctrl.Refresh()
	case "export":
		s.export(args)
	case "categories":
		s.println(strings.Join(validation.ValidCategories(), ", "))
	case "help", "?":
		s.print(helpText)
	case "quit", "exit":
		return true
	default:
		s.println(fmt.Sprintf("Unknown command: %s (type 'help' for a list)", cmd))
	}
	return false
}

func (s *Shell) add(args []string) {
	if len(args) < 2 {
		s.println("Usage: add <amount> <category>")
		return
	}
	amount, err := models.ParseAmount(args[0])
	if err != nil {
		s.logger.WithError(err).Debug("Unparsable amount", logging.F(logging.FieldAmount, args[0]))
		s.println(trackererror.Message(trackererror.ErrInvalidAmount))
		return
	}
	if err := s.ctrl.AddTransaction(amount, strings.Join(args[1:], " ")); err != nil {
		s.println(trackererror.Message(err))
	}
}

func (s *Shell) filter(args []string) {
	if len(args) == 0 {
		s.println("Active filter: " + s.ctrl.ActiveFilter().String())
		return
	}
	if err := s.ctrl.ApplyFilter(args[0], strings.Join(args[1:], " ")); err != nil {
		s.println(trackererror.Message(err))
		return
	}
	s.println("Active filter: " + s.ctrl.ActiveFilter().String())
}

func (s *Shell) remove(args []string) {
	if len(args) != 1 {
		s.println("Usage: remove <row|id>")
		return
	}
	if row, err := strconv.Atoi(args[0]); err == nil {
		tx, err := s.ctrl.RemoveVisible(row)
		if err != nil {
			s.println(trackererror.Message(err))
			return
		}
		s.println("Removed " + tx.String())
		return
	}

	if tx, ok := s.ctrl.Find(args[0]); ok && s.ctrl.RemoveTransaction(tx) {
		s.println("Removed " + tx.String())
		return
	}
	s.println(fmt.Sprintf("No transaction with id %s", args[0]))
}

func (s *Shell) export(args []string) {
	if len(args) == 0 || len(args) > 2 {
		s.println("Usage: export <path> [csv|json|yaml]")
		return
	}
	path := args[0]
	format := s.formatFor(path)
	if len(args) == 2 {
		format = args[1]
	}

	visible, total := s.ctrl.Visible()
	rows := view.BuildRows(visible, total, int32(s.opts.DecimalPlaces))
	if err := s.exporter.Export(rows, path, format); err != nil {
		s.logger.WithError(err).Warn("Export failed",
			logging.F(logging.FieldOutputFile, path),
			logging.F(logging.FieldFormat, format))
		s.println("Export failed: " + err.Error())
		return
	}
	s.println(fmt.Sprintf("Exported %d transactions to %s", len(rows)-1, path))
}

func (s *Shell) formatFor(path string) string {
	switch ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")); ext {
	case "csv", "json", "yaml", "yml":
		return ext
	default:
		return s.opts.ExportFormat
	}
}

func (s *Shell) print(text string) {
	if _, err := io.WriteString(s.out, text); err != nil {
		s.logger.WithError(err).Debug("Failed to write shell output")
	}
}

func (s *Shell) println(text string) {
	s.print(text + "\n")
}

const helpText = `Commands:
  add <amount> <category>     record an expense (amount in (0, 1000])
  filter <kind> [parameter]   kind is none, category or amount-min
  clear                       remove the active filter
  remove <row|id>             delete the transaction on a displayed row, or by id
  list                        redraw the table
  export <path> [format]      write the displayed rows as csv, json or yaml
  categories                  list the accepted categories
  help                        show this text
  quit                        leave the shell
`
