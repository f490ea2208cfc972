// Package session owns the one record table of an invtab run and exposes
// the tool's operations against it: load, search, summary, show, and
// summary export. The table is replaced wholesale by a successful load and
// left untouched by every failure; search and summary only read it.
package session

import (
	"github.com/invtab/invtab/internal/loader"
	"github.com/invtab/invtab/internal/output"
	"github.com/invtab/invtab/internal/query"
	"github.com/invtab/invtab/internal/summary"
	"github.com/invtab/invtab/internal/table"
)

// DefaultSummaryPath is where ExportSummary writes when no path is given.
const DefaultSummaryPath = "summary_report.csv"

// Session holds the current record table. One Session serves one run,
// interactive or batch; it is not safe for concurrent use.
type Session struct {
	tab *table.Table
}

// New returns a session with an empty table.
func New() *Session {
	return &Session{tab: table.New(nil)}
}

// Table returns the current record table.
func (s *Session) Table() *table.Table {
	return s.tab
}

// Load consolidates the files under dir and replaces the session's table.
// On any error the current table is kept as is; the returned result still
// carries the per-file reports when enumeration succeeded.
func (s *Session) Load(dir string) (*loader.Result, error) {
	res, err := loader.Load(dir)
	if err != nil {
		return res, err
	}
	s.tab = res.Table
	return res, nil
}

// Search evaluates a column=substring predicate against the table and
// returns the matching rows in order.
func (s *Session) Search(expr string) (*table.Table, error) {
	pred, err := query.ParsePredicate(expr)
	if err != nil {
		return nil, err
	}
	return pred.Apply(s.tab)
}

// Summary computes the grouped report over the current table.
func (s *Session) Summary() (*table.Table, error) {
	return summary.Summarize(s.tab)
}

// Show returns the first n rows of the table. Oversized n yields all
// rows; n <= 0 yields none.
func (s *Session) Show(n int) *table.Table {
	return s.tab.Head(n)
}

// ExportSummary computes the grouped report and writes it to path as CSV,
// falling back to DefaultSummaryPath when path is empty. Returns the
// summary table and the path written.
func (s *Session) ExportSummary(path string) (*table.Table, string, error) {
	sum, err := s.Summary()
	if err != nil {
		return nil, "", err
	}
	if path == "" {
		path = DefaultSummaryPath
	}
	if err := output.ExportCSV(sum, path); err != nil {
		return nil, "", err
	}
	return sum, path, nil
}
