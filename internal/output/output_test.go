package output

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/invtab/invtab/internal/table"
)

func sampleTable() *table.Table {
	tab := table.New([]string{"category", "quantity", "unit_price"})
	tab.Rows = []table.Row{
		{"category": table.FromString("A"), "quantity": table.FromInt(25), "unit_price": table.FromFloat(5.75)},
		{"category": table.FromString("B"), "quantity": table.FromInt(20), "unit_price": table.Absent()},
	}
	return tab
}

func TestCSVFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	if err := NewCSVFormatter(&buf).Format(sampleTable()); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "category,quantity,unit_price\nA,25,5.75\nB,20,\n"
	if buf.String() != want {
		t.Errorf("Format() = %q, want %q", buf.String(), want)
	}
}

func TestCSVFormatter_EmptyTable(t *testing.T) {
	var buf bytes.Buffer
	tab := table.New([]string{"category", "quantity"})
	if err := NewCSVFormatter(&buf).Format(tab); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if got := buf.String(); got != "category,quantity\n" {
		t.Errorf("Format() = %q, want header only", got)
	}
}

func TestTableFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTableFormatter(&buf).Format(sampleTable()); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"category", "unit_price", "25", "5.75"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered table missing %q:\n%s", want, out)
		}
	}

	// Column order is preserved, not alphabetized.
	if strings.Index(out, "category") > strings.Index(out, "quantity") {
		t.Errorf("column order not preserved:\n%s", out)
	}
}

func TestExportCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")
	if err := ExportCSV(sampleTable(), path); err != nil {
		t.Fatalf("ExportCSV() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	if !strings.HasPrefix(string(data), "category,quantity,unit_price\n") {
		t.Errorf("export missing header: %q", data)
	}
}
