// Package query evaluates a single column=substring predicate against a
// table. The predicate is parsed into a small value type rather than
// split ad hoc, so the search micro-language has one owner.
package query

import (
	"errors"
	"fmt"
	"strings"

	"github.com/invtab/invtab/internal/table"
)

var (
	// ErrSyntax is returned when the predicate string does not split into
	// exactly two =-delimited parts.
	ErrSyntax = errors.New("invalid search syntax, expected column=value")

	// ErrUnknownColumn is returned when the predicate names a column
	// outside the table's effective column set.
	ErrUnknownColumn = errors.New("unknown column")
)

// Predicate is a parsed search expression: case-insensitive substring
// containment of Substring in the named column's textual value.
type Predicate struct {
	Column    string
	Substring string
}

// ParsePredicate parses a string of the shape "column=substring". Exactly
// one = is required; both sides are trimmed of surrounding whitespace.
func ParsePredicate(s string) (*Predicate, error) {
	parts := strings.Split(s, "=")
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	column := strings.TrimSpace(parts[0])
	if column == "" {
		return nil, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	return &Predicate{
		Column:    column,
		Substring: strings.TrimSpace(parts[1]),
	}, nil
}

// Apply filters t down to the rows matching the predicate, preserving row
// order and the full column set. An absent cell never matches a non-empty
// substring; an empty substring matches every row. Zero matches is a
// valid empty result, not an error.
func (p *Predicate) Apply(t *table.Table) (*table.Table, error) {
	if t.Empty() {
		return nil, table.ErrEmptyTable
	}
	if !t.HasColumn(p.Column) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, p.Column)
	}

	needle := strings.ToLower(p.Substring)
	out := table.New(t.Columns)
	for _, row := range t.Rows {
		cell := row[p.Column]
		if cell.IsAbsent() && needle != "" {
			continue
		}
		if strings.Contains(strings.ToLower(cell.Text()), needle) {
			out.Rows = append(out.Rows, row)
		}
	}
	return out, nil
}
