package shell

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

// Printer writes styled status lines: green for success, red for errors,
// blue for informational output such as rendered tables.
type Printer struct {
	out io.Writer
}

// NewPrinter returns a printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{out: w}
}

func (p *Printer) Successf(format string, args ...interface{}) {
	fmt.Fprintln(p.out, successStyle.Render(fmt.Sprintf(format, args...)))
}

func (p *Printer) Errorf(format string, args ...interface{}) {
	fmt.Fprintln(p.out, errorStyle.Render(fmt.Sprintf(format, args...)))
}

func (p *Printer) Infof(format string, args ...interface{}) {
	fmt.Fprintln(p.out, infoStyle.Render(fmt.Sprintf(format, args...)))
}
