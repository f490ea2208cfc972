package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/invtab/invtab/internal/table"
)

// CSVFormatter writes a table as delimited text: a header row of the
// effective column names followed by one line per row. Numeric cells use
// their native decimal textual form; absent cells become empty fields.
type CSVFormatter struct {
	writer io.Writer
}

// NewCSVFormatter creates a new CSV formatter
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// SetOutput sets the output writer
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// Format writes the table as CSV
func (c *CSVFormatter) Format(t *table.Table) error {
	csvWriter := csv.NewWriter(c.writer)

	if err := csvWriter.Write(t.Columns); err != nil {
		return err
	}
	for _, row := range t.Rows {
		record := make([]string, len(t.Columns))
		for i, col := range t.Columns {
			record[i] = row[col].Text()
		}
		if err := csvWriter.Write(record); err != nil {
			return err
		}
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}
	return nil
}

// ExportCSV writes the table to a delimited file at path.
func ExportCSV(t *table.Table, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	formatter := NewCSVFormatter(f)
	if err := formatter.Format(t); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
