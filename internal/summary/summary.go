// Package summary computes the grouped inventory report: rows partitioned
// by category, quantities summed and unit prices averaged per group. The
// output is a derived table, recomputed in full on every call and never
// retained by the input table.
package summary

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/invtab/invtab/internal/table"
)

// Required input columns and output column names.
const (
	GroupColumn    = "category"
	QuantityColumn = "quantity"
	PriceColumn    = "unit_price"

	TotalColumn   = "Total Quantity"
	AverageColumn = "Average Price"
)

// ErrMissingColumns is returned when any required column is absent from
// the table's effective column set.
var ErrMissingColumns = errors.New("required columns missing")

// TypeMismatchError reports a present but non-numeric value in a column
// that must be numeric, naming the offending row and column.
type TypeMismatchError struct {
	Row    int
	Column string
	Text   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("non-numeric value %q in column %q at row %d", e.Text, e.Column, e.Row)
}

// group accumulates one category's reductions.
type group struct {
	key        table.Value
	total      float64
	totalIsInt bool
	priceSum   float64
	priceCount int
}

// Summarize builds the summary table: one row per distinct group key,
// ordered ascending (numeric when both keys are numeric, lexical
// otherwise). Absent quantities count as zero toward the total; absent
// prices are excluded from both sides of the mean, and a group with no
// numeric price observations averages to NaN.
func Summarize(t *table.Table) (*table.Table, error) {
	if t.Empty() {
		return nil, table.ErrEmptyTable
	}
	var missing []string
	for _, c := range []string{GroupColumn, QuantityColumn, PriceColumn} {
		if !t.HasColumn(c) {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	groups := make(map[string]*group)
	var order []*group
	for i, row := range t.Rows {
		key := row[GroupColumn]
		g, ok := groups[groupKey(key)]
		if !ok {
			g = &group{key: key, totalIsInt: true}
			groups[groupKey(key)] = g
			order = append(order, g)
		}

		if q := row[QuantityColumn]; !q.IsAbsent() {
			n, numeric := q.Num()
			if !numeric {
				return nil, &TypeMismatchError{Row: i, Column: QuantityColumn, Text: q.Text()}
			}
			g.total += n
			if q.Kind() != table.KindInt {
				g.totalIsInt = false
			}
		}
		if p := row[PriceColumn]; !p.IsAbsent() {
			n, numeric := p.Num()
			if !numeric {
				return nil, &TypeMismatchError{Row: i, Column: PriceColumn, Text: p.Text()}
			}
			g.priceSum += n
			g.priceCount++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return table.Compare(order[i].key, order[j].key) < 0
	})

	out := table.New([]string{GroupColumn, TotalColumn, AverageColumn})
	for _, g := range order {
		row := table.Row{
			GroupColumn:   g.key,
			TotalColumn:   totalValue(g),
			AverageColumn: averageValue(g),
		}
		out.Rows = append(out.Rows, row)
	}
	return out, nil
}

// groupKey builds the partition key for a cell: kind-tagged so the string
// "1" and the number 1 stay distinct groups, and the absent marker forms
// its own group rather than being dropped.
func groupKey(v table.Value) string {
	return fmt.Sprintf("%d\x00%s", v.Kind(), v.Text())
}

func totalValue(g *group) table.Value {
	if g.totalIsInt {
		return table.FromInt(int64(g.total))
	}
	return table.FromFloat(g.total)
}

func averageValue(g *group) table.Value {
	if g.priceCount == 0 {
		return table.FromFloat(math.NaN())
	}
	return table.FromFloat(g.priceSum / float64(g.priceCount))
}
