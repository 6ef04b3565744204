package merge

import (
	"fmt"
	"strings"

	"register-reconciler/core/revision"
	"register-reconciler/core/table"
)

// ColChecks is the field the column validators write their comments to.
const ColChecks = "Comments_1"

// ApplyValidators runs the configured column-vs-expected checks and the
// filename-prefix check against every row, appending findings to the
// Comments_1 field. Rows without a base reference number are skipped.
func ApplyValidators(t *table.Table, cfg CheckConfig) {
	t.AddColumn(ColChecks)

	var checks []ColumnCheck
	if cfg.StatusColumn != "" {
		checks = append(checks, ColumnCheck{Column: cfg.StatusColumn, Expected: cfg.StatusValue})
	}
	if cfg.ProjectColumn != "" {
		checks = append(checks, ColumnCheck{Column: cfg.ProjectColumn, Expected: cfg.ProjectValue})
	}
	checks = append(checks, cfg.CustomChecks...)

	for _, row := range t.Rows {
		if _, ok := row[ColChecks]; !ok {
			row.Set(ColChecks, "")
		}
		ref := strings.TrimSpace(row.Get("number_1"))
		if ref == "" {
			continue
		}

		for _, check := range checks {
			actual := strings.TrimSpace(row.Get(check.Column))
			if !strings.EqualFold(actual, strings.TrimSpace(check.Expected)) {
				comment := fmt.Sprintf("%s Mismatch: %s <--> %s", check.Column, actual, check.Expected)
				row.Set(ColChecks, revision.AppendComment(row.Get(ColChecks), comment))
			}
		}

		if cfg.FilenameColumn != "" {
			filename := strings.TrimSpace(row.Get(cfg.FilenameColumn))
			if filename != "" && !strings.HasPrefix(filename, ref) {
				row.Set(ColChecks, revision.AppendComment(row.Get(ColChecks), "Filename & Drawing Number Mismatch"))
			}
		}
	}
}
