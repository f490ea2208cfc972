package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/invtab/invtab/internal/table"
)

// readParquet reads one parquet file into a batch. Column order comes from
// the file schema; each leaf value is mapped onto the table's scalar kinds
// per cell. A file that is not valid parquet, or that holds zero rows or
// columns, is a parse failure like any other skipped file.
func readParquet(path string) (*batch, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	stat, err := f.Stat()
	if err != nil {
		return nil, err
	}

	pqFile, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("parse failed: %w", err)
	}

	var columns []string
	for _, field := range pqFile.Schema().Fields() {
		columns = append(columns, field.Name())
	}
	if len(columns) == 0 {
		return nil, errNoRows
	}

	reader := parquet.NewReader(pqFile)
	defer func() { _ = reader.Close() }()

	b := &batch{columns: columns}
	for {
		raw := make(map[string]interface{})
		if err := reader.Read(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("parse failed: %w", err)
		}
		row := make(table.Row, len(columns))
		for _, c := range columns {
			row[c] = fromAny(raw[c])
		}
		b.rows = append(b.rows, row)
	}
	if len(b.rows) == 0 {
		return nil, errNoRows
	}
	return b, nil
}

// fromAny maps a decoded parquet value onto a table cell.
func fromAny(v interface{}) table.Value {
	switch val := v.(type) {
	case nil:
		return table.Absent()
	case string:
		return table.FromString(val)
	case []byte:
		return table.FromString(string(val))
	case bool:
		if val {
			return table.FromString("true")
		}
		return table.FromString("false")
	case int:
		return table.FromInt(int64(val))
	case int8:
		return table.FromInt(int64(val))
	case int16:
		return table.FromInt(int64(val))
	case int32:
		return table.FromInt(int64(val))
	case int64:
		return table.FromInt(val)
	case uint:
		return table.FromInt(int64(val))
	case uint8:
		return table.FromInt(int64(val))
	case uint16:
		return table.FromInt(int64(val))
	case uint32:
		return table.FromInt(int64(val))
	case uint64:
		return table.FromInt(int64(val))
	case float32:
		return table.FromFloat(float64(val))
	case float64:
		return table.FromFloat(val)
	default:
		return table.FromString(fmt.Sprintf("%v", val))
	}
}
