// Package loader consolidates the tabular files in a directory into a
// single table. Each file is parsed into a batch of rows with the column
// names taken from its first record; all successfully parsed batches are
// merged with outer-union column semantics. A file that fails to parse is
// skipped and reported, never fatal to the load as a whole.
package loader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/invtab/invtab/internal/table"
)

var (
	// ErrInvalidInput is returned when the path is not an existing directory.
	ErrInvalidInput = errors.New("not a directory")

	// ErrNoData is returned when the directory holds no recognized data files.
	ErrNoData = errors.New("no data files found")

	// ErrNoValidData is returned when every candidate file failed to parse.
	ErrNoValidData = errors.New("no valid data files loaded")
)

// FileReport records the outcome of parsing one candidate file.
type FileReport struct {
	Name string
	Rows int
	Err  error
}

// OK reports whether the file parsed successfully.
func (r FileReport) OK() bool {
	return r.Err == nil
}

// Result is a completed load: the merged table plus the per-file outcomes
// in enumeration order.
type Result struct {
	Table *table.Table
	Files []FileReport
}

// batch holds the rows of one parsed file. Rows in a batch share the
// batch's column set.
type batch struct {
	columns []string
	rows    []table.Row
}

// Load reads every recognized file directly under dir and merges the ones
// that parse into one table. File enumeration order is lexical by name and
// non-recursive. The merged table's column set is the union of each
// batch's columns in first-seen order; rows from a batch lacking a union
// column get the absent marker for that cell.
func Load(dir string) (*Result, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, dir)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if recognized(e.Name()) {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoData, dir)
	}

	res := &Result{}
	var batches []*batch
	for _, name := range names {
		b, err := readFile(filepath.Join(dir, name))
		report := FileReport{Name: name, Err: err}
		if err == nil {
			report.Rows = len(b.rows)
			batches = append(batches, b)
		}
		res.Files = append(res.Files, report)
	}
	if len(batches) == 0 {
		return res, ErrNoValidData
	}

	res.Table = merge(batches)
	return res, nil
}

// recognized reports whether the file name carries a loadable extension.
func recognized(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv", ".tsv", ".parquet":
		return true
	}
	return false
}

func readFile(path string) (*batch, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return readDelimited(path, ',')
	case ".tsv":
		return readDelimited(path, '\t')
	case ".parquet":
		return readParquet(path)
	}
	return nil, fmt.Errorf("unrecognized extension: %s", path)
}

// merge builds the consolidated table from successful batches: union of
// columns in first-seen order, rows concatenated in batch order, missing
// cells filled with the absent marker.
func merge(batches []*batch) *table.Table {
	var columns []string
	seen := make(map[string]bool)
	for _, b := range batches {
		for _, c := range b.columns {
			if !seen[c] {
				seen[c] = true
				columns = append(columns, c)
			}
		}
	}

	out := table.New(columns)
	for _, b := range batches {
		for _, row := range b.rows {
			full := make(table.Row, len(columns))
			for _, c := range columns {
				if v, ok := row[c]; ok {
					full[c] = v
				} else {
					full[c] = table.Absent()
				}
			}
			out.Rows = append(out.Rows, full)
		}
	}
	return out
}
