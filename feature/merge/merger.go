package merge

import (
	"fmt"
	"strconv"

	"register-reconciler/core/table"
)

// ColCommonRef is the unified reference column every input contributes to.
const ColCommonRef = "common_ref"

// colOccurrence is a helper column pairing duplicate references off in
// order during the join. It is dropped from the merged result.
const colOccurrence = "refno_count"

// MergeTables outer-joins the input tables on their reference columns.
// Each input's reference column is renamed to number_N and mirrored into
// common_ref; duplicate references within one input are paired by
// occurrence order. Selected title columns are renamed to title_excelN.
func MergeTables(tables []*table.Table, refColumns, titleColumns []string) (*table.Table, error) {
	if len(tables) != len(refColumns) {
		return nil, fmt.Errorf("tables and refColumns must have the same length")
	}

	prepared := make([]*table.Table, len(tables))
	for i, t := range tables {
		working := cloneTable(t)

		numCol := fmt.Sprintf("number_%d", i+1)
		if !working.HasColumn(refColumns[i]) {
			return nil, fmt.Errorf("reference column %q not found in input %d", refColumns[i], i+1)
		}
		working.RenameColumn(refColumns[i], numCol)

		// Occurrence count so duplicates of the same reference join in order.
		counts := make(map[string]int)
		for _, row := range working.Rows {
			ref := row.Get(numCol)
			row.Set(colOccurrence, strconv.Itoa(counts[ref]))
			row.Set(ColCommonRef, ref)
			counts[ref]++
		}
		working.AddColumn(ColCommonRef)

		if i < len(titleColumns) && titleColumns[i] != "" && working.HasColumn(titleColumns[i]) {
			working.RenameColumn(titleColumns[i], fmt.Sprintf("title_excel%d", i+1))
		}
		prepared[i] = working
	}

	merged := prepared[0]
	for _, next := range prepared[1:] {
		merged = outerJoin(merged, next)
	}

	for _, row := range merged.Rows {
		delete(row, colOccurrence)
	}
	fillMissing(merged)
	return merged, nil
}

// outerJoin joins two tables on (common_ref, occurrence). Matched rows
// combine their cells, with the left side winning any column both carry;
// unmatched rows from either side survive with the other side's columns
// left empty. Left rows keep their order, right-only rows follow in
// right order.
func outerJoin(left, right *table.Table) *table.Table {
	type joinKey struct {
		ref string
		occ string
	}
	keyOf := func(row table.Row) joinKey {
		return joinKey{ref: row.Get(ColCommonRef), occ: row.Get(colOccurrence)}
	}

	out := table.New(left.Columns...)
	for _, c := range right.Columns {
		out.AddColumn(c)
	}

	rightIndex := make(map[joinKey]table.Row, len(right.Rows))
	for _, row := range right.Rows {
		rightIndex[keyOf(row)] = row
	}

	matched := make(map[joinKey]bool)
	for _, lrow := range left.Rows {
		key := keyOf(lrow)
		row := lrow.Clone()
		if rrow, ok := rightIndex[key]; ok {
			matched[key] = true
			for column, value := range rrow {
				if existing, exists := row[column]; !exists || existing == "" {
					row[column] = value
				}
			}
		}
		out.Append(row)
	}
	for _, rrow := range right.Rows {
		if !matched[keyOf(rrow)] {
			out.Append(rrow.Clone())
		}
	}
	return out
}

// fillMissing materializes every layout column as at least an empty cell.
func fillMissing(t *table.Table) {
	for _, row := range t.Rows {
		for _, column := range t.Columns {
			if _, ok := row[column]; !ok {
				row[column] = ""
			}
		}
	}
}

func cloneTable(t *table.Table) *table.Table {
	out := table.New(t.Columns...)
	for _, row := range t.Rows {
		out.Append(row.Clone())
	}
	return out
}
