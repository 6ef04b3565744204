package merge

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func TestServiceRun(t *testing.T) {
	dir := t.TempDir()
	register := filepath.Join(dir, "register.xlsx")
	tracker := filepath.Join(dir, "tracker.xlsx")
	output := filepath.Join(dir, "merged.xlsx")

	writeWorkbook(t, register, [][]string{
		{"Dwg No", "Title", "Status", "Rev 1", "Rev 2"},
		{"A-100", "Pump Layout", "Issued", "P01 | Issued For Review | ", "P02 | Construction Issue | "},
		{"A-200", "Valve Detail", "Draft", "P01 | Issued For Review | ", ""},
	})
	writeWorkbook(t, tracker, [][]string{
		{"Drawing", "Drawing Title", "Issued For Review", "Construction Issue"},
		{"A-100", "PUMP LAYOUT", "P01", "P02"},
		{"A-300", "Tank Section", "P01", ""},
	})

	cfg := &RunConfig{
		Inputs: []InputConfig{
			{Path: register, RefColumn: "Dwg No", TitleColumn: "Title"},
			{Path: tracker, RefColumn: "Drawing", TitleColumn: "Drawing Title"},
		},
		Output: output,
		Checks: CheckConfig{StatusColumn: "Status", StatusValue: "Issued"},
		Revision: RevisionConfig{
			Pattern:        "p0x",
			SourceAColumns: []string{"Rev 1", "Rev 2"},
			SourceBColumns: []string{"Issued For Review", "Construction Issue"},
		},
	}

	service := NewService(zap.NewNop())
	report, err := service.Run(cfg)
	require.NoError(t, err)

	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, 3, report.Rows)
	assert.Equal(t, output, report.OutputPath)
	// A-200 fails the status check; A-300 has no register-side entry.
	assert.GreaterOrEqual(t, report.Flagged, 1)

	f, err := excelize.OpenFile(output)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(outputSheet)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	header := rows[0]
	assert.Contains(t, header, "number_1")
	assert.Contains(t, header, "number_2")
	assert.Contains(t, header, ColCommonRef)
	assert.Contains(t, header, ColTitleMatch)
	assert.Contains(t, header, ColChecks)
}

func TestServiceRunInvalidConfig(t *testing.T) {
	service := NewService(zap.NewNop())
	_, err := service.Run(&RunConfig{})
	assert.Error(t, err)
}

func TestServiceRunBadRevisionSettings(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.xlsx")
	b := filepath.Join(dir, "b.xlsx")
	writeWorkbook(t, a, [][]string{{"Ref"}, {"A-100"}})
	writeWorkbook(t, b, [][]string{{"Ref"}, {"A-100"}})

	cfg := &RunConfig{
		Inputs: []InputConfig{
			{Path: a, RefColumn: "Ref"},
			{Path: b, RefColumn: "Ref"},
		},
		Output: filepath.Join(dir, "out.xlsx"),
		Revision: RevisionConfig{
			Pattern:        "fixed", // no fixed code given
			SourceAColumns: []string{"Rev 1"},
			SourceBColumns: []string{"Issue"},
		},
	}

	service := NewService(zap.NewNop())
	_, err := service.Run(cfg)
	assert.Error(t, err)
}
