// Package view renders the visible transactions as a numbered table followed
// by a total row.
package view

import (
	"fmt"
	"io"
	"strconv"
	"sync"

	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"
)

// TotalLabel marks the summary row.
const TotalLabel = "Total"

// Row is one displayed line. The summary row has Serial set to TotalLabel and
// only Amount filled in.
type Row struct {
	Serial    string `csv:"serial" json:"serial" yaml:"serial"`
	ID        string `csv:"id" json:"id,omitempty" yaml:"id,omitempty"`
	Amount    string `csv:"amount" json:"amount" yaml:"amount"`
	Category  string `csv:"category" json:"category,omitempty" yaml:"category,omitempty"`
	Timestamp string `csv:"date" json:"date,omitempty" yaml:"date,omitempty"`
}

// BuildRows turns the visible transactions into numbered rows (starting at 1,
// in the given order) plus a trailing total row. Nil entries are skipped.
func BuildRows(visible []*models.Transaction, total decimal.Decimal, places int32) []Row {
	rows := make([]Row, 0, len(visible)+1)
	n := 0
	for _, tx := range visible {
		if tx == nil {
			continue
		}
		n++
		rows = append(rows, Row{
			Serial:    strconv.Itoa(n),
			ID:        tx.ID(),
			Amount:    models.FormatAmount(tx.Amount(), places),
			Category:  tx.Category(),
			Timestamp: tx.Timestamp(),
		})
	}
	rows = append(rows, Row{
		Serial: TotalLabel,
		Amount: models.FormatAmount(total, places),
	})
	return rows
}

// TableView writes each render as an aligned text table.
type TableView struct {
	mu       sync.Mutex
	out      io.Writer
	places   int32
	logger   logging.Logger
	lastRows []Row
}

// NewTableView creates a TableView writing to out with the given number of
// decimal places for amounts.
func NewTableView(out io.Writer, places int, logger logging.Logger) *TableView {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &TableView{
		out:    out,
		places: int32(places),
		logger: logger,
	}
}

// Render writes the table. Write errors are logged, not returned: the caller
// is the refresh cycle, which cannot do anything about them.
func (v *TableView) Render(visible []*models.Transaction, total decimal.Decimal) {
	rows := BuildRows(visible, total, v.places)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.lastRows = rows

	if err := writeTable(v.out, rows); err != nil {
		v.logger.WithError(err).Error("Failed to render transactions table")
	}
}

// LastRows returns a copy of the rows of the most recent render, or nil
// before the first one.
func (v *TableView) LastRows() []Row {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.lastRows == nil {
		return nil
	}
	out := make([]Row, len(v.lastRows))
	copy(out, v.lastRows)
	return out
}

const amountColumn = 1

var (
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	amountStyle = cellStyle.Align(lipgloss.Right)
)

// Table builds the bordered table for rows: a header, one line per row and
// the total line last.
func Table(rows []Row) *table.Table {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "Amount", "Category", "Date").
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == amountColumn {
				return amountStyle
			}
			return cellStyle
		})
	for _, r := range rows {
		t.Row(r.Serial, r.Amount, r.Category, r.Timestamp)
	}
	return t
}

func writeTable(out io.Writer, rows []Row) error {
	_, err := fmt.Fprintln(out, Table(rows).String())
	return err
}
