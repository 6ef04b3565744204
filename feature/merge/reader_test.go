package merge

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeWorkbook creates a single-sheet workbook from a header row and
// data rows.
func writeWorkbook(t *testing.T, path string, rows [][]string) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for r, cells := range rows {
		for c, value := range cells {
			name, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellStr(sheet, name, value))
		}
	}
	require.NoError(t, f.SaveAs(path))
}

func TestReadWorkbooks(t *testing.T) {
	dir := t.TempDir()
	pathA := filepath.Join(dir, "a.xlsx")
	pathB := filepath.Join(dir, "b.xlsx")

	writeWorkbook(t, pathA, [][]string{
		{"Ref", "Title"},
		{"A-100", "Pump Layout"},
		{"", ""},
		{"A-200", "Valve Detail"},
	})
	writeWorkbook(t, pathB, [][]string{
		{"Drawing", "Status"},
		{"A-100", "Issued"},
	})

	tables, meta, err := ReadWorkbooks([]string{pathA, pathB}, []string{"Ref", "Drawing"})
	require.NoError(t, err)
	require.NotNil(t, meta)
	require.Len(t, tables, 2)

	first := tables[0]
	assert.True(t, first.HasColumn("Ref"))
	assert.True(t, first.HasColumn(ColOriginalRow))

	// The blank row is skipped but original row numbers are preserved.
	require.Equal(t, 2, first.Len())
	assert.Equal(t, "A-100", first.Rows[0].Get("Ref"))
	assert.Equal(t, "2", first.Rows[0].Get(ColOriginalRow))
	assert.Equal(t, "A-200", first.Rows[1].Get("Ref"))
	assert.Equal(t, "4", first.Rows[1].Get(ColOriginalRow))

	second := tables[1]
	require.Equal(t, 1, second.Len())
	assert.Equal(t, "Issued", second.Rows[0].Get("Status"))
}

func TestReadWorkbooksMissingRefColumn(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.xlsx")
	writeWorkbook(t, path, [][]string{{"Title"}, {"Pump Layout"}})

	_, _, err := ReadWorkbooks([]string{path, path}, []string{"Ref", "Ref"})
	assert.Error(t, err)
}

func TestReadWorkbooksMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.xlsx")
	_, _, err := ReadWorkbooks([]string{missing, missing}, []string{"Ref", "Ref"})
	assert.Error(t, err)
}

func TestReadWorkbookHyperlinks(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "linked.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetCellStr(sheet, "A1", "Ref"))
	require.NoError(t, f.SetCellStr(sheet, "B1", "Document"))
	require.NoError(t, f.SetCellStr(sheet, "A2", "A-100"))
	require.NoError(t, f.SetCellStr(sheet, "B2", "spec.pdf"))
	require.NoError(t, f.SetCellHyperLink(sheet, "B2", "https://example.com/spec.pdf", "External"))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	tables, meta, err := ReadWorkbooks([]string{path, path}, []string{"Ref", "Ref"})
	require.NoError(t, err)
	require.Len(t, tables, 2)

	assert.Equal(t, "https://example.com/spec.pdf", meta.Hyperlinks[2]["Document"])
}
