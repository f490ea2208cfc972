package table

import "testing"

func testTable(n int) *Table {
	tab := New([]string{"product", "quantity"})
	for i := 0; i < n; i++ {
		tab.Rows = append(tab.Rows, Row{
			"product":  FromString("item"),
			"quantity": FromInt(int64(i)),
		})
	}
	return tab
}

func TestTable_Head(t *testing.T) {
	tests := []struct {
		name     string
		rows     int
		n        int
		wantRows int
	}{
		{"subset", 5, 3, 3},
		{"exact", 5, 5, 5},
		{"oversized n returns all", 3, 10, 3},
		{"zero", 3, 0, 0},
		{"negative", 3, -1, 0},
		{"empty table", 0, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := testTable(tt.rows).Head(tt.n)
			if got.Len() != tt.wantRows {
				t.Errorf("Head(%d).Len() = %d, want %d", tt.n, got.Len(), tt.wantRows)
			}
			if len(got.Columns) != 2 {
				t.Errorf("Head() columns = %v, want full column set", got.Columns)
			}
		})
	}
}

func TestTable_HasColumn(t *testing.T) {
	tab := testTable(1)
	if !tab.HasColumn("quantity") {
		t.Error("HasColumn(quantity) = false, want true")
	}
	if tab.HasColumn("price") {
		t.Error("HasColumn(price) = true, want false")
	}
}

func TestTable_Empty(t *testing.T) {
	if !New(nil).Empty() {
		t.Error("New(nil).Empty() = false, want true")
	}
	if testTable(1).Empty() {
		t.Error("Empty() = true for table with rows")
	}
	var nilTable *Table
	if !nilTable.Empty() {
		t.Error("nil table Empty() = false, want true")
	}
}
