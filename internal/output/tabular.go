package output

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/invtab/invtab/internal/table"
)

// TableFormatter renders a table as an aligned text grid for console
// display, preserving column and row order.
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new text table formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// SetOutput sets the output writer
func (f *TableFormatter) SetOutput(w io.Writer) {
	f.writer = w
}

// Format writes the table as an aligned text grid
func (f *TableFormatter) Format(t *table.Table) error {
	tw := tablewriter.NewWriter(f.writer)
	tw.SetHeader(t.Columns)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	for _, row := range t.Rows {
		record := make([]string, len(t.Columns))
		for i, col := range t.Columns {
			record[i] = row[col].Text()
		}
		tw.Append(record)
	}
	tw.Render()
	return nil
}
