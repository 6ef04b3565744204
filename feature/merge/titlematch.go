package merge

import (
	"fmt"
	"regexp"
	"strings"

	"register-reconciler/core/table"
)

// ColTitleMatch records whether each input's title agrees with the first
// input's, ignoring punctuation, whitespace and case.
const ColTitleMatch = "title_match"

var nonAlphanumeric = regexp.MustCompile(`[^A-Za-z0-9]+`)

func normalizeTitle(s string) string {
	return strings.ToLower(nonAlphanumeric.ReplaceAllString(s, ""))
}

// AddTitleMatch appends the title_match column: "True"/"False" per
// comparison against the baseline title, comma-joined for three-way
// merges, or "N/A" when fewer than two title columns were selected.
func AddTitleMatch(t *table.Table, titleColumns []string) {
	var renamed []string
	for i, column := range titleColumns {
		if column != "" {
			renamed = append(renamed, fmt.Sprintf("title_excel%d", i+1))
		}
	}

	t.AddColumn(ColTitleMatch)
	if len(renamed) < 2 {
		for _, row := range t.Rows {
			row.Set(ColTitleMatch, "N/A")
		}
		return
	}

	baseline, others := renamed[0], renamed[1:]
	for _, row := range t.Rows {
		baseNorm := normalizeTitle(row.Get(baseline))
		results := make([]string, 0, len(others))
		for _, other := range others {
			if normalizeTitle(row.Get(other)) == baseNorm {
				results = append(results, "True")
			} else {
				results = append(results, "False")
			}
		}
		row.Set(ColTitleMatch, strings.Join(results, ", "))
	}
}
