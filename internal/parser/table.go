package parser

import "fmt"

// Table is a raw tabular source: an ordered header plus string cell rows.
// Rows are always padded to the header width.
type Table struct {
	Columns []string
	Rows    [][]string
}

// ColumnIndex returns the position of the named column, matching headers
// case- and accent-insensitively. Returns -1 when absent.
func (t *Table) ColumnIndex(name string) int {
	want := CanonicalHeader(name)
	for i, col := range t.Columns {
		if CanonicalHeader(col) == want {
			return i
		}
	}
	return -1
}

// HasColumn reports whether the named column exists.
func (t *Table) HasColumn(name string) bool {
	return t.ColumnIndex(name) >= 0
}

// Rename renames a column in place. Reports whether the column existed.
func (t *Table) Rename(from, to string) bool {
	idx := t.ColumnIndex(from)
	if idx < 0 {
		return false
	}
	t.Columns[idx] = to
	return true
}

// SetColumns forces a fixed header onto the table. The source files of a
// multi-file source are positionally identical but inconsistently labeled,
// so the caller assigns the canonical names before concatenation.
func (t *Table) SetColumns(cols []string) error {
	if len(cols) != len(t.Columns) {
		return fmt.Errorf("column count mismatch: table has %d, want %d", len(t.Columns), len(cols))
	}
	t.Columns = append([]string(nil), cols...)
	return nil
}

// DropColumns removes the named columns and their cells.
func (t *Table) DropColumns(names ...string) {
	for _, name := range names {
		idx := t.ColumnIndex(name)
		if idx < 0 {
			continue
		}
		t.Columns = append(t.Columns[:idx], t.Columns[idx+1:]...)
		for i, row := range t.Rows {
			t.Rows[i] = append(row[:idx], row[idx+1:]...)
		}
	}
}

// AppendColumn adds a column with the given cell values.
func (t *Table) AppendColumn(name string, values []string) error {
	if len(values) != len(t.Rows) {
		return fmt.Errorf("value count mismatch: table has %d rows, got %d values", len(t.Rows), len(values))
	}
	t.Columns = append(t.Columns, name)
	for i := range t.Rows {
		t.Rows[i] = append(t.Rows[i], values[i])
	}
	return nil
}

// Cell returns the trimmed cell at (row, column index); empty when out of range.
func (t *Table) Cell(row, col int) string {
	if col < 0 || row < 0 || row >= len(t.Rows) || col >= len(t.Rows[row]) {
		return ""
	}
	return t.Rows[row][col]
}

// Concat appends the rows of other to t. Headers must already match in width;
// other's labels are ignored, matching positional concatenation.
func (t *Table) Concat(other *Table) error {
	if len(other.Columns) != len(t.Columns) {
		return fmt.Errorf("cannot concat: width %d vs %d", len(other.Columns), len(t.Columns))
	}
	t.Rows = append(t.Rows, other.Rows...)
	return nil
}
