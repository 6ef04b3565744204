package merge

import (
	"testing"

	"register-reconciler/core/table"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTitle(t *testing.T) {
	assert.Equal(t, "pumplayout", normalizeTitle("Pump Layout"))
	assert.Equal(t, "pumplayout", normalizeTitle("PUMP-LAYOUT!"))
	assert.Equal(t, "", normalizeTitle("  --  "))
}

func TestAddTitleMatch(t *testing.T) {
	tbl := table.New("title_excel1", "title_excel2")
	tbl.Append(table.Row{"title_excel1": "Pump Layout", "title_excel2": "PUMP LAYOUT"})
	tbl.Append(table.Row{"title_excel1": "Pump Layout", "title_excel2": "Valve Detail"})

	AddTitleMatch(tbl, []string{"Title", "Title"})

	assert.Equal(t, "True", tbl.Rows[0].Get(ColTitleMatch))
	assert.Equal(t, "False", tbl.Rows[1].Get(ColTitleMatch))
}

func TestAddTitleMatchThreeWay(t *testing.T) {
	tbl := table.New("title_excel1", "title_excel2", "title_excel3")
	tbl.Append(table.Row{
		"title_excel1": "Pump Layout",
		"title_excel2": "pump layout",
		"title_excel3": "Pump Plan",
	})

	AddTitleMatch(tbl, []string{"Title", "Title", "Title"})
	assert.Equal(t, "True, False", tbl.Rows[0].Get(ColTitleMatch))
}

func TestAddTitleMatchTooFewTitles(t *testing.T) {
	tbl := table.New("title_excel1")
	tbl.Append(table.Row{"title_excel1": "Pump Layout"})

	AddTitleMatch(tbl, []string{"Title", ""})
	assert.Equal(t, "N/A", tbl.Rows[0].Get(ColTitleMatch))
}
