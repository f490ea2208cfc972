package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"

	"github.com/invtab/invtab/internal/table"
)

// stockRow defines the parquet fixture schema.
type stockRow struct {
	Category  string  `parquet:"category"`
	Quantity  int64   `parquet:"quantity"`
	UnitPrice float64 `parquet:"unit_price"`
}

// writeParquetFile writes a parquet fixture into dir.
func writeParquetFile(t *testing.T, dir, name string, rows []stockRow) {
	t.Helper()
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("failed to create fixture: %v", err)
	}
	defer func() { _ = f.Close() }()

	writer := parquet.NewGenericWriter[stockRow](f)
	if _, err := writer.Write(rows); err != nil {
		t.Fatalf("failed to write fixture rows: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}
}

func TestLoad_Parquet(t *testing.T) {
	dir := t.TempDir()
	writeParquetFile(t, dir, "stock.parquet", []stockRow{
		{Category: "A", Quantity: 10, UnitPrice: 5.5},
		{Category: "B", Quantity: 20, UnitPrice: 7.0},
	})

	res, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if res.Table.Len() != 2 {
		t.Fatalf("rows = %d, want 2", res.Table.Len())
	}

	row := res.Table.Rows[0]
	if got := row["category"]; got.Kind() != table.KindString || got.Text() != "A" {
		t.Errorf("category = %v (%v), want string A", got.Text(), got.Kind())
	}
	if got := row["quantity"]; got.Kind() != table.KindInt || got.Text() != "10" {
		t.Errorf("quantity = %v (%v), want int 10", got.Text(), got.Kind())
	}
	if got := row["unit_price"]; got.Kind() != table.KindFloat || got.Text() != "5.5" {
		t.Errorf("unit_price = %v (%v), want float 5.5", got.Text(), got.Kind())
	}
}

func TestLoad_MixedParquetAndCSV(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "extra.csv", "category,quantity,unit_price\nC,5,8.0\n")
	writeParquetFile(t, dir, "stock.parquet", []stockRow{
		{Category: "A", Quantity: 10, UnitPrice: 5.5},
	})

	res, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if res.Table.Len() != 2 {
		t.Errorf("rows = %d, want 2", res.Table.Len())
	}
	// extra.csv enumerates before stock.parquet.
	if got := res.Table.Rows[0]["category"].Text(); got != "C" {
		t.Errorf("first row category = %q, want C (csv enumerates first)", got)
	}
}

func TestLoad_CorruptParquetSkipped(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.csv", "category,quantity,unit_price\nA,1,2.0\n")
	writeFile(t, dir, "broken.parquet", "this is not parquet")

	res, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if res.Table.Len() != 1 {
		t.Errorf("rows = %d, want 1", res.Table.Len())
	}
	var failed int
	for _, f := range res.Files {
		if !f.OK() {
			failed++
			if f.Name != "broken.parquet" {
				t.Errorf("failed file = %s, want broken.parquet", f.Name)
			}
		}
	}
	if failed != 1 {
		t.Errorf("failed files = %d, want 1", failed)
	}
}
