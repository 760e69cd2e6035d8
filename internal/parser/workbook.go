package parser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReadWorkbook reads the first sheet of an .xlsx file into a Table. skipRows
// banner rows are discarded before the header row. Rows are trimmed and
// padded to the header width; fully empty rows are dropped.
func ReadWorkbook(path string, skipRows int) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q of %s: %w", sheets[0], path, err)
	}
	if len(rows) <= skipRows {
		return nil, fmt.Errorf("workbook %s: no header row after skipping %d rows", path, skipRows)
	}
	rows = rows[skipRows:]

	header := make([]string, 0, len(rows[0]))
	for _, h := range rows[0] {
		header = append(header, strings.TrimSpace(h))
	}
	if len(header) == 0 {
		return nil, fmt.Errorf("workbook %s: empty header row", path)
	}

	t := &Table{Columns: header}
	for _, raw := range rows[1:] {
		row := make([]string, len(header))
		empty := true
		for i := range header {
			if i < len(raw) {
				row[i] = strings.TrimSpace(raw[i])
			}
			if row[i] != "" {
				empty = false
			}
		}
		if empty {
			continue
		}
		t.Rows = append(t.Rows, row)
	}

	return t, nil
}
