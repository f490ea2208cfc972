// Package output renders tables for display and export.
//
// Two formatters are provided: a text table for console display and CSV
// for file export. Both preserve the table's column and row order; absent
// cells render as empty fields.
package output

import (
	"io"

	"github.com/invtab/invtab/internal/table"
)

// Formatter defines the interface for table renderers.
type Formatter interface {
	// Format writes the table in the formatter's specific format
	Format(t *table.Table) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}
