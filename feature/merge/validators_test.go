package merge

import (
	"testing"

	"register-reconciler/core/table"

	"github.com/stretchr/testify/assert"
)

func TestApplyValidators(t *testing.T) {
	tbl := table.New("number_1", "Status", "Project")
	tbl.Append(table.Row{"number_1": "A-100", "Status": "Issued", "Project": "P-42"})
	tbl.Append(table.Row{"number_1": "A-200", "Status": "Draft", "Project": "P-42"})
	tbl.Append(table.Row{"number_1": "", "Status": "Draft", "Project": "P-99"})

	ApplyValidators(tbl, CheckConfig{
		StatusColumn:  "Status",
		StatusValue:   "Issued",
		ProjectColumn: "Project",
		ProjectValue:  "P-42",
	})

	assert.Equal(t, "", tbl.Rows[0].Get(ColChecks))
	assert.Equal(t, "Status Mismatch: Draft <--> Issued", tbl.Rows[1].Get(ColChecks))
	// Rows without a base reference number are skipped.
	assert.Equal(t, "", tbl.Rows[2].Get(ColChecks))
}

func TestApplyValidatorsCaseInsensitive(t *testing.T) {
	tbl := table.New("number_1", "Status")
	tbl.Append(table.Row{"number_1": "A-100", "Status": " ISSUED "})

	ApplyValidators(tbl, CheckConfig{StatusColumn: "Status", StatusValue: "issued"})
	assert.Equal(t, "", tbl.Rows[0].Get(ColChecks))
}

func TestApplyValidatorsCustomChecks(t *testing.T) {
	tbl := table.New("number_1", "Discipline")
	tbl.Append(table.Row{"number_1": "A-100", "Discipline": "Electrical"})

	ApplyValidators(tbl, CheckConfig{
		CustomChecks: []ColumnCheck{{Column: "Discipline", Expected: "Mechanical"}},
	})
	assert.Equal(t, "Discipline Mismatch: Electrical <--> Mechanical", tbl.Rows[0].Get(ColChecks))
}

func TestApplyValidatorsFilename(t *testing.T) {
	tbl := table.New("number_1", "Filename")
	tbl.Append(table.Row{"number_1": "A-100", "Filename": "A-100_rev2.pdf"})
	tbl.Append(table.Row{"number_1": "A-200", "Filename": "B-999.pdf"})
	tbl.Append(table.Row{"number_1": "A-300", "Filename": ""})

	ApplyValidators(tbl, CheckConfig{FilenameColumn: "Filename"})

	assert.Equal(t, "", tbl.Rows[0].Get(ColChecks))
	assert.Equal(t, "Filename & Drawing Number Mismatch", tbl.Rows[1].Get(ColChecks))
	// Blank filenames are not findings.
	assert.Equal(t, "", tbl.Rows[2].Get(ColChecks))
}

func TestApplyValidatorsAppends(t *testing.T) {
	tbl := table.New("number_1", "Status", "Filename")
	tbl.Append(table.Row{"number_1": "A-100", "Status": "Draft", "Filename": "X.pdf"})

	ApplyValidators(tbl, CheckConfig{
		StatusColumn:   "Status",
		StatusValue:    "Issued",
		FilenameColumn: "Filename",
	})
	assert.Equal(t, "Status Mismatch: Draft <--> Issued\nFilename & Drawing Number Mismatch", tbl.Rows[0].Get(ColChecks))
}
