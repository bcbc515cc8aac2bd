package view

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2024, time.March, 5, 14, 7, 0, 0, time.UTC)

func tx(amount int64, category string) *models.Transaction {
	return models.NewTransactionAt(decimal.NewFromInt(amount), category, fixedTime)
}

func TestBuildRows(t *testing.T) {
	food := tx(100, "Food")
	rent := tx(200, "Rent")

	rows := BuildRows([]*models.Transaction{food, nil, rent}, decimal.NewFromInt(300), 2)

	require.Len(t, rows, 3)
	assert.Equal(t, Row{Serial: "1", ID: food.ID(), Amount: "100.00", Category: "Food", Timestamp: "05-03-2024 14:07"}, rows[0])
	assert.Equal(t, "2", rows[1].Serial)
	assert.Equal(t, "Rent", rows[1].Category)
	assert.Equal(t, Row{Serial: TotalLabel, Amount: "300.00"}, rows[2])
}

func TestBuildRows_Empty(t *testing.T) {
	rows := BuildRows(nil, decimal.Zero, 0)
	assert.Equal(t, []Row{{Serial: TotalLabel, Amount: "0"}}, rows)
}

func TestTableView_Render(t *testing.T) {
	var buf bytes.Buffer
	v := NewTableView(&buf, 2, logging.NewMockLogger())

	assert.Nil(t, v.LastRows())

	v.Render([]*models.Transaction{tx(125, "Food"), tx(30, "Other")}, decimal.NewFromInt(155))

	lines := cellLines(buf.String())
	require.Len(t, lines, 4)
	assert.Equal(t, []string{"#", "Amount", "Category", "Date"}, lines[0])
	assert.Equal(t, []string{"1", "125.00", "Food", "05-03-2024", "14:07"}, lines[1])
	assert.Equal(t, []string{"2", "30.00", "Other", "05-03-2024", "14:07"}, lines[2])
	assert.Equal(t, []string{"Total", "155.00"}, lines[3])
	assert.True(t, strings.HasPrefix(buf.String(), "┌"), "table is bordered")

	rows := v.LastRows()
	require.Len(t, rows, 3)
	rows[0].Category = "changed"
	assert.Equal(t, "Food", v.LastRows()[0].Category, "LastRows must return a copy")
}

// cellLines returns the cell contents of every table line that holds cells,
// dropping border characters.
func cellLines(rendered string) [][]string {
	var out [][]string
	for _, line := range strings.Split(rendered, "\n") {
		if !strings.Contains(line, "│") {
			continue
		}
		out = append(out, strings.Fields(strings.ReplaceAll(line, "│", " ")))
	}
	return out
}

func TestTable_AlignsAmountsRight(t *testing.T) {
	rows := []Row{
		{Serial: "1", Amount: "5.00", Category: "Food"},
		{Serial: TotalLabel, Amount: "125.00"},
	}

	rendered := Table(rows).String()

	var amountEnds []int
	for _, line := range strings.Split(rendered, "\n") {
		if idx := strings.Index(line, ".00"); idx >= 0 {
			amountEnds = append(amountEnds, idx)
		}
	}
	require.Len(t, amountEnds, 2)
	assert.Equal(t, amountEnds[0], amountEnds[1])
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestTableView_RenderLogsWriteErrors(t *testing.T) {
	logger := logging.NewMockLogger()
	v := NewTableView(failingWriter{}, 2, logger)

	v.Render([]*models.Transaction{tx(10, "Food")}, decimal.NewFromInt(10))

	assert.True(t, logger.HasEntry("ERROR", "Failed to render transactions table"))
	assert.Len(t, v.LastRows(), 2)
}
