package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"

	"github.com/invtab/invtab/internal/table"
)

// errNoRows marks a structurally empty file: no header, no columns, or a
// header with zero data rows beneath it.
var errNoRows = errors.New("no data rows")

// readDelimited parses one comma- or tab-separated file into a batch. The
// first record supplies the column names; every cell is type-inferred
// independently. Malformed delimiter structure (ragged records, bare
// quotes) surfaces as the csv package's parse error.
func readDelimited(path string, comma rune) (*batch, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.Comma = comma
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse failed: %w", err)
	}
	if len(records) == 0 || len(records[0]) == 0 {
		return nil, errNoRows
	}
	if len(records) < 2 {
		return nil, errNoRows
	}

	columns := records[0]
	b := &batch{columns: columns}
	for _, record := range records[1:] {
		row := make(table.Row, len(columns))
		for i, c := range columns {
			row[c] = table.Infer(record[i])
		}
		b.rows = append(b.rows, row)
	}
	return b, nil
}
