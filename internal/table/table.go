package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Row maps a column identifier to the raw cell value for one record.
type Row map[string]string

// Table holds one breed file fully in memory. Columns keep the header order
// of the source file, Rows keep file order.
type Table struct {
	Columns []string
	Rows    []Row
}

// Load reads a delimited file into a Table. The first line is the header;
// every following line becomes one Row. Short records are padded with empty
// values so each row carries every column.
func Load(path string, delimiter rune) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = delimiter
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read header of %s: file is empty", path)
		}
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}

	t := &Table{Columns: make([]string, len(header))}
	for i, h := range header {
		t.Columns[i] = strings.TrimSpace(h)
	}

	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d of %s: %w", len(t.Rows)+2, path, err)
		}
		row := make(Row, len(t.Columns))
		for i, col := range t.Columns {
			if i < len(rec) {
				row[col] = strings.TrimSpace(rec[i])
			} else {
				row[col] = ""
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.Rows) }

// HasColumn reports whether the header contains the given column identifier.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}
