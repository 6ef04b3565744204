package merge

import (
	"fmt"
	"strconv"
	"strings"

	"register-reconciler/core/table"

	"github.com/xuri/excelize/v2"
)

// ColOriginalRow carries the 1-based workbook row number each data row
// came from, so hyperlinks can be reattached after the merge.
const ColOriginalRow = "original_row_index"

// ReadWorkbooks reads each input workbook into a table and collects
// hyperlink metadata across all of them. It verifies that every input
// actually carries its reference column.
func ReadWorkbooks(paths []string, refColumns []string) ([]*table.Table, *table.Metadata, error) {
	if len(paths) != len(refColumns) {
		return nil, nil, fmt.Errorf("paths and refColumns must have the same length")
	}

	meta := table.NewMetadata()
	tables := make([]*table.Table, 0, len(paths))
	for i, path := range paths {
		t, err := readWorkbook(path, meta)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read %q: %w", path, err)
		}
		if !t.HasColumn(refColumns[i]) {
			return nil, nil, fmt.Errorf("reference column %q not found in %q", refColumns[i], path)
		}
		tables = append(tables, t)
	}
	return tables, meta, nil
}

// readWorkbook loads the first sheet of a workbook: the header row
// becomes the table layout, blank rows are skipped, and every data row
// records its original workbook row number. Hyperlink targets are
// captured per cell into the shared metadata.
func readWorkbook(path string, meta *table.Metadata) (*table.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	sheet := sheets[0]

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheet)
	}

	headers := rows[0]
	t := table.New(headers...)
	t.AddColumn(ColOriginalRow)

	for rowIdx, cells := range rows[1:] {
		rowNum := rowIdx + 2 // 1-based, after the header

		blank := true
		for _, cell := range cells {
			if strings.TrimSpace(cell) != "" {
				blank = false
				break
			}
		}
		if blank {
			continue
		}

		row := make(table.Row, len(headers)+1)
		for colIdx, header := range headers {
			if header == "" {
				continue
			}
			value := ""
			if colIdx < len(cells) {
				value = cells[colIdx]
			}
			row.Set(header, value)

			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowNum)
			if err != nil {
				continue
			}
			if hasLink, target, err := f.GetCellHyperLink(sheet, cellName); err == nil && hasLink && target != "" {
				meta.AddHyperlink(rowNum, header, target)
			}
		}
		row.Set(ColOriginalRow, strconv.Itoa(rowNum))
		t.Append(row)
	}
	return t, nil
}
