package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowBasics(t *testing.T) {
	row := Row{}
	assert.Equal(t, "", row.Get("missing"))

	row.Set("Ref", "A-100")
	assert.Equal(t, "A-100", row.Get("Ref"))

	clone := row.Clone()
	clone.Set("Ref", "B-200")
	assert.Equal(t, "A-100", row.Get("Ref"))
	assert.Equal(t, "B-200", clone.Get("Ref"))
}

func TestTableColumns(t *testing.T) {
	tbl := New("Ref", "Title")
	assert.True(t, tbl.HasColumn("Ref"))
	assert.False(t, tbl.HasColumn("Status"))

	tbl.AddColumn("Status")
	assert.True(t, tbl.HasColumn("Status"))

	// Adding an existing column is a no-op.
	tbl.AddColumn("Status")
	assert.Equal(t, []string{"Ref", "Title", "Status"}, tbl.Columns)
}

func TestRenameColumn(t *testing.T) {
	tbl := New("Ref", "Title")
	tbl.Append(Row{"Ref": "A-100", "Title": "Pump Layout"})

	tbl.RenameColumn("Ref", "number_1")
	assert.Equal(t, []string{"number_1", "Title"}, tbl.Columns)
	assert.Equal(t, "A-100", tbl.Rows[0].Get("number_1"))
	assert.Equal(t, "", tbl.Rows[0].Get("Ref"))
}

func TestDropColumn(t *testing.T) {
	tbl := New("Ref", "Scratch")
	tbl.Append(Row{"Ref": "A-100", "Scratch": "x"})

	tbl.DropColumn("Scratch")
	assert.Equal(t, []string{"Ref"}, tbl.Columns)
	_, ok := tbl.Rows[0]["Scratch"]
	assert.False(t, ok)
}

func TestColumnValues(t *testing.T) {
	tbl := New("Ref")
	tbl.Append(Row{"Ref": "A-100"})
	tbl.Append(Row{"Ref": "A-200"})
	tbl.Append(Row{})

	assert.Equal(t, []string{"A-100", "A-200", ""}, tbl.Column("Ref"))
	assert.Equal(t, 3, tbl.Len())
}

func TestMetadata(t *testing.T) {
	meta := NewMetadata()
	meta.AddHyperlink(2, "Document", "https://example.com/a")
	meta.AddHyperlink(2, "Drawing", "https://example.com/b")
	meta.AddHyperlink(5, "Document", "https://example.com/c")

	require.Len(t, meta.Hyperlinks, 2)
	assert.Equal(t, "https://example.com/a", meta.Hyperlinks[2]["Document"])
	assert.Equal(t, "https://example.com/c", meta.Hyperlinks[5]["Document"])
}
