// Package report serialises the displayed rows for export.
package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/view"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"
)

// Supported export formats.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Generator renders rows as CSV, JSON or YAML.
type Generator struct {
	logger    logging.Logger
	delimiter rune
}

// NewGenerator creates a Generator. A zero delimiter means comma.
func NewGenerator(delimiter rune, logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if delimiter == 0 {
		delimiter = ','
	}
	return &Generator{
		logger:    logger.WithField("component", "ReportGenerator"),
		delimiter: delimiter,
	}
}

// Generate renders rows in the given format. The format is case-insensitive.
func (g *Generator) Generate(rows []view.Row, format string) ([]byte, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatCSV:
		return g.generateCSV(rows)
	case FormatJSON:
		return g.generateJSON(rows)
	case FormatYAML, "yml":
		return g.generateYAML(rows)
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}

func (g *Generator) generateCSV(rows []view.Row) ([]byte, error) {
	var buf bytes.Buffer
	csvWriter := csv.NewWriter(&buf)
	csvWriter.Comma = g.delimiter

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		g.logger.WithError(err).Error("Failed to marshal CSV export")
		return nil, fmt.Errorf("failed to marshal CSV export: %w", err)
	}
	return buf.Bytes(), nil
}

func (g *Generator) generateJSON(rows []view.Row) ([]byte, error) {
	out, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON export")
		return nil, fmt.Errorf("failed to marshal JSON export: %w", err)
	}
	return append(out, '\n'), nil
}

func (g *Generator) generateYAML(rows []view.Row) ([]byte, error) {
	out, err := yaml.Marshal(rows)
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal YAML export")
		return nil, fmt.Errorf("failed to marshal YAML export: %w", err)
	}
	return out, nil
}

// WriteFile writes data to path, creating parent directories as needed.
func (g *Generator) WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create export directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil { // #nosec G306 -- exports are meant to be shared
		return fmt.Errorf("failed to write export file %s: %w", path, err)
	}

	g.logger.Info("Export written",
		logging.F(logging.FieldOutputFile, path),
		logging.F("bytes", len(data)))
	return nil
}

// Export renders rows and writes them to path in one step.
func (g *Generator) Export(rows []view.Row, path, format string) error {
	data, err := g.Generate(rows, format)
	if err != nil {
		return err
	}
	return g.WriteFile(path, data)
}
