// Package table provides the in-memory record table: an ordered row
// collection over a dynamic, named column set. Rows are maps from column
// name to a tagged scalar Value; the Table keeps the effective column set
// in first-seen order so heterogeneous batches can be merged without
// losing column ordering.
package table

import "errors"

// ErrEmptyTable is returned by operations that require at least one row.
var ErrEmptyTable = errors.New("table is empty")

// Row maps column names to cell values. Rows stored in a Table carry a
// value for every effective column; cells whose column was missing in the
// row's origin file hold the absent marker.
type Row map[string]Value

// Table is an ordered sequence of rows plus the effective column set.
type Table struct {
	Columns []string
	Rows    []Row
}

// New returns a table with the given column order and no rows.
func New(columns []string) *Table {
	return &Table{Columns: columns}
}

// Empty reports whether the table has zero rows.
func (t *Table) Empty() bool {
	return t == nil || len(t.Rows) == 0
}

// Len returns the row count.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// HasColumn reports whether name is in the effective column set.
func (t *Table) HasColumn(name string) bool {
	if t == nil {
		return false
	}
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Head returns a view of the first n rows. n larger than the row count
// yields all rows; n <= 0 yields zero rows. Never an error.
func (t *Table) Head(n int) *Table {
	if n < 0 {
		n = 0
	}
	if n > t.Len() {
		n = t.Len()
	}
	out := New(t.Columns)
	if n > 0 {
		out.Rows = t.Rows[:n]
	}
	return out
}
