// Package shell implements the line-oriented command loop around a
// session: load, search, summary, show, help, exit. Each command runs to
// completion before the next line is read; command failures are printed
// and never terminate the loop.
package shell

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/invtab/invtab/internal/output"
	"github.com/invtab/invtab/internal/session"
	"github.com/invtab/invtab/internal/table"
)

const intro = `Welcome to invtab. Type 'help' to see available commands.`

const help = `Commands:
  load <folder>           Consolidate the data files in a folder
  search <column=value>   Case-insensitive substring search on a column
  summary [path]          Grouped report, exported as CSV (default summary_report.csv)
  show [n]                Display the first n rows (default 5)
  help                    Show this help
  exit                    Leave the shell`

// defaultShowRows is how many rows `show` displays without an argument.
const defaultShowRows = 5

// Shell runs commands against one session and prints results to out.
type Shell struct {
	sess    *session.Session
	out     io.Writer
	printer *Printer
}

// New returns a shell over sess writing to out.
func New(sess *session.Session, out io.Writer) *Shell {
	return &Shell{
		sess:    sess,
		out:     out,
		printer: NewPrinter(out),
	}
}

// Run reads commands from in until exit or EOF.
func (s *Shell) Run(in io.Reader) error {
	s.printer.Infof("%s", intro)
	scanner := bufio.NewScanner(in)
	for {
		if _, err := io.WriteString(s.out, "(invtab) "); err != nil {
			return err
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		if s.Execute(scanner.Text()) {
			return nil
		}
	}
}

// Execute dispatches one command line and reports whether the shell
// should exit.
func (s *Shell) Execute(line string) bool {
	name, arg := splitCommand(line)
	switch name {
	case "":
	case "load":
		s.Load(arg)
	case "search":
		s.Search(arg)
	case "summary":
		s.Summary(arg)
	case "show":
		s.Show(arg)
	case "help", "?":
		s.printer.Infof("%s", help)
	case "exit", "quit":
		s.printer.Successf("Goodbye.")
		return true
	default:
		s.printer.Errorf("Unknown command %q. Type 'help' for the command list.", name)
	}
	return false
}

// Load consolidates the files under the given folder into the session,
// reporting each file's outcome.
func (s *Shell) Load(arg string) {
	res, err := s.sess.Load(strings.TrimSpace(arg))
	if res != nil {
		for _, f := range res.Files {
			if f.OK() {
				s.printer.Successf("Loaded %s (%d rows)", f.Name, f.Rows)
			} else {
				s.printer.Errorf("Skipped %s: %v", f.Name, f.Err)
			}
		}
	}
	if err != nil {
		s.printer.Errorf("Load failed: %v", err)
		return
	}
	s.printer.Successf("Consolidated %d rows across %d columns.", res.Table.Len(), len(res.Table.Columns))
}

// Search runs a column=substring query and renders the matching rows.
func (s *Shell) Search(arg string) {
	result, err := s.sess.Search(arg)
	if err != nil {
		s.printer.Errorf("Search failed: %v", err)
		return
	}
	if result.Empty() {
		s.printer.Infof("No results found.")
		return
	}
	s.printer.Infof("%d matching rows:", result.Len())
	s.render(result)
}

// Summary renders the grouped report and exports it to the given path,
// or to the default path when arg is empty.
func (s *Shell) Summary(arg string) {
	sum, path, err := s.sess.ExportSummary(strings.TrimSpace(arg))
	if err != nil {
		s.printer.Errorf("Summary failed: %v", err)
		return
	}
	s.render(sum)
	s.printer.Successf("Summary report exported to %s.", path)
}

// Show renders the first n rows, defaulting to 5 when arg is empty.
func (s *Shell) Show(arg string) {
	n := defaultShowRows
	if trimmed := strings.TrimSpace(arg); trimmed != "" {
		parsed, err := strconv.Atoi(trimmed)
		if err != nil {
			s.printer.Errorf("Invalid row count %q.", trimmed)
			return
		}
		n = parsed
	}
	if s.sess.Table().Empty() {
		s.printer.Errorf("The table is empty. Load data first.")
		return
	}
	s.render(s.sess.Show(n))
}

func (s *Shell) render(t *table.Table) {
	var sb strings.Builder
	_ = output.NewTableFormatter(&sb).Format(t)
	s.printer.Infof("%s", strings.TrimRight(sb.String(), "\n"))
}

// splitCommand separates the command word from its argument string.
func splitCommand(line string) (string, string) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return "", ""
	}
	parts := strings.SplitN(trimmed, " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.TrimSpace(parts[1])
}
