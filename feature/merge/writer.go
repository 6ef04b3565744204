package merge

import (
	"fmt"
	"strconv"
	"strings"

	"register-reconciler/core/align"
	"register-reconciler/core/highlight"
	"register-reconciler/core/table"

	"github.com/xuri/excelize/v2"
)

const outputSheet = "Sheet1"

// emphasisColors maps the engine's renderer-agnostic emphasis classes to
// the concrete font colors used in the output workbook. This is the only
// place that decision is made.
var emphasisColors = map[highlight.Emphasis]string{
	highlight.Neutral:    "000000",
	highlight.Emphasized: "FF0000",
	highlight.Muted:      "FFA500",
}

// WriteStyled writes the merged table to an output workbook and applies
// all styling: column ordering, presence fills, duplicate fonts, the
// Instance/Case column, hyperlinks, check-failure fills, and rich-text
// rendering of the title-match, title-diff and revision highlights.
func WriteStyled(path string, t *table.Table, meta *table.Metadata, titleColumns []string, cfg CheckConfig, revHighlights highlight.Map) error {
	w := &styledWriter{
		f:      excelize.NewFile(),
		table:  t,
		styles: make(map[string]int),
	}
	defer w.f.Close()

	w.columns = orderColumns(t)
	w.colIdx = make(map[string]int, len(w.columns))
	for i, column := range w.columns {
		w.colIdx[column] = i + 1
	}

	if err := w.writeCells(); err != nil {
		return err
	}
	if err := w.applyFormattingAndHyperlinks(meta, cfg); err != nil {
		return err
	}
	if err := w.applyTitleMatchHighlighting(); err != nil {
		return err
	}
	if err := w.applyTitleHighlighting(titleColumns); err != nil {
		return err
	}
	if err := w.applyRevisionHighlighting(revHighlights); err != nil {
		return err
	}
	return w.f.SaveAs(path)
}

// orderColumns arranges the output layout: data columns first, then
// common_ref, the title columns, and the summary columns at the end.
func orderColumns(t *table.Table) []string {
	titleCols := []string{"title_excel1", "title_excel2", "title_excel3"}
	finalCols := []string{ColTitleMatch, ColChecks, "Instance", "Case"}

	excluded := map[string]bool{ColCommonRef: true}
	for _, c := range titleCols {
		excluded[c] = true
	}
	for _, c := range finalCols {
		excluded[c] = true
	}

	var order []string
	for _, c := range t.Columns {
		if !excluded[c] {
			order = append(order, c)
		}
	}
	if t.HasColumn(ColCommonRef) {
		order = append(order, ColCommonRef)
	}
	for _, c := range titleCols {
		if t.HasColumn(c) {
			order = append(order, c)
		}
	}
	for _, c := range finalCols {
		if t.HasColumn(c) {
			order = append(order, c)
		}
	}
	return order
}

type styledWriter struct {
	f       *excelize.File
	table   *table.Table
	columns []string
	colIdx  map[string]int
	styles  map[string]int
}

// style returns a cached style ID, building it on first use.
func (w *styledWriter) style(key string, build func() (int, error)) (int, error) {
	if id, ok := w.styles[key]; ok {
		return id, nil
	}
	id, err := build()
	if err != nil {
		return 0, err
	}
	w.styles[key] = id
	return id, nil
}

func (w *styledWriter) fillStyle(color string) (int, error) {
	return w.style("fill:"+color, func() (int, error) {
		return w.f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
		})
	})
}

func (w *styledWriter) cell(column string, dataRow int) (string, bool) {
	idx, ok := w.colIdx[column]
	if !ok {
		return "", false
	}
	name, err := excelize.CoordinatesToCellName(idx, dataRow+2)
	if err != nil {
		return "", false
	}
	return name, true
}

func (w *styledWriter) writeCells() error {
	for i, column := range w.columns {
		name, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := w.f.SetCellStr(outputSheet, name, column); err != nil {
			return err
		}
	}
	for r, row := range w.table.Rows {
		for i, column := range w.columns {
			name, err := excelize.CoordinatesToCellName(i+1, r+2)
			if err != nil {
				return err
			}
			if err := w.f.SetCellStr(outputSheet, name, row.Get(column)); err != nil {
				return err
			}
		}
	}
	return nil
}

// applyFormattingAndHyperlinks applies presence fills, duplicate fonts,
// the Instance/Case column, hyperlink reinsertion and check-failure
// fills.
func (w *styledWriter) applyFormattingAndHyperlinks(meta *table.Metadata, cfg CheckConfig) error {
	has3 := w.table.HasColumn("number_3")

	numberCols := []string{"number_1", "number_2"}
	if has3 {
		numberCols = append(numberCols, "number_3")
	}

	// Fill colors per presence combination; all-present rows stay unfilled.
	fills := map[string]string{}
	if has3 {
		fills["100"] = "CC99FF"
		fills["010"] = "FFCC66"
		fills["001"] = "AACCFF"
		fills["110"] = "FFC0CB"
		fills["101"] = "90EE90"
		fills["011"] = "FFD700"
	} else {
		fills["10"] = "CC99FF"
		fills["01"] = "FFCC66"
	}

	// Values appearing more than once in a reference column get a bold
	// red font wherever they occur. Blank cells never count.
	dupValues := make(map[string]map[string]bool)
	for _, column := range append(append([]string{}, numberCols...), ColCommonRef) {
		counts := make(map[string]int)
		for _, value := range w.table.Column(column) {
			if value != "" {
				counts[value]++
			}
		}
		dups := make(map[string]bool)
		for value, n := range counts {
			if n > 1 {
				dups[value] = true
			}
		}
		dupValues[column] = dups
	}

	dupFont, err := w.style("font:dup", func() (int, error) {
		return w.f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Color: "FF3300"}})
	})
	if err != nil {
		return err
	}

	// Instance/Case column appended after the ordered layout.
	instHeader := "Instance"
	if has3 {
		instHeader = "Case"
	}
	instCol := len(w.columns) + 1
	headerName, err := excelize.CoordinatesToCellName(instCol, 1)
	if err != nil {
		return err
	}
	if err := w.f.SetCellStr(outputSheet, headerName, instHeader); err != nil {
		return err
	}

	for r, row := range w.table.Rows {
		presence := make([]byte, len(numberCols))
		allPresent := true
		for i, column := range numberCols {
			if strings.TrimSpace(row.Get(column)) != "" {
				presence[i] = '1'
			} else {
				presence[i] = '0'
				allPresent = false
			}
		}

		if color, ok := fills[string(presence)]; ok {
			fill, err := w.fillStyle(color)
			if err != nil {
				return err
			}
			for i, column := range numberCols {
				if presence[i] == '1' {
					if name, ok := w.cell(column, r); ok {
						if err := w.f.SetCellStyle(outputSheet, name, name, fill); err != nil {
							return err
						}
					}
				}
			}
			if name, ok := w.cell(ColCommonRef, r); ok {
				if err := w.f.SetCellStyle(outputSheet, name, name, fill); err != nil {
					return err
				}
			}
		}

		for column, dups := range dupValues {
			if value := row.Get(column); value != "" && dups[value] {
				if name, ok := w.cell(column, r); ok {
					if err := w.f.SetCellStyle(outputSheet, name, name, dupFont); err != nil {
						return err
					}
				}
			}
		}

		instValue := "None"
		if allPresent {
			instValue = ""
		}
		name, err := excelize.CoordinatesToCellName(instCol, r+2)
		if err != nil {
			return err
		}
		if err := w.f.SetCellStr(outputSheet, name, instValue); err != nil {
			return err
		}
	}

	if err := w.reinsertHyperlinks(meta); err != nil {
		return err
	}
	return w.applyCheckFills(cfg)
}

// reinsertHyperlinks reattaches the hyperlink targets captured at read
// time, locating each original row by its original_row_index.
func (w *styledWriter) reinsertHyperlinks(meta *table.Metadata) error {
	if meta == nil || len(meta.Hyperlinks) == 0 {
		return nil
	}

	byOriginal := make(map[string]int)
	for r, row := range w.table.Rows {
		idx := row.Get(ColOriginalRow)
		if _, seen := byOriginal[idx]; idx != "" && !seen {
			byOriginal[idx] = r
		}
	}

	linkStyle, err := w.style("font:link", func() (int, error) {
		return w.f.NewStyle(&excelize.Style{Font: &excelize.Font{Color: "0563C1", Underline: "single"}})
	})
	if err != nil {
		return err
	}

	for originalRow, links := range meta.Hyperlinks {
		r, ok := byOriginal[strconv.Itoa(originalRow)]
		if !ok {
			continue
		}
		for column, target := range links {
			name, ok := w.cell(column, r)
			if !ok {
				continue
			}
			if err := w.f.SetCellHyperLink(outputSheet, name, target, "External"); err != nil {
				return err
			}
			if err := w.f.SetCellStyle(outputSheet, name, name, linkStyle); err != nil {
				return err
			}
		}
	}
	return nil
}

// applyCheckFills marks cells that failed a configured check in light red.
func (w *styledWriter) applyCheckFills(cfg CheckConfig) error {
	var checks []ColumnCheck
	if cfg.StatusColumn != "" {
		checks = append(checks, ColumnCheck{Column: cfg.StatusColumn, Expected: cfg.StatusValue})
	}
	if cfg.ProjectColumn != "" {
		checks = append(checks, ColumnCheck{Column: cfg.ProjectColumn, Expected: cfg.ProjectValue})
	}
	checks = append(checks, cfg.CustomChecks...)
	if len(checks) == 0 {
		return nil
	}

	lightRed, err := w.fillStyle("FFCCCC")
	if err != nil {
		return err
	}

	for _, check := range checks {
		if check.Column == "" {
			continue
		}
		if _, ok := w.colIdx[check.Column]; !ok {
			continue
		}
		for r, row := range w.table.Rows {
			if strings.TrimSpace(row.Get("number_1")) == "" {
				continue
			}
			actual := strings.TrimSpace(row.Get(check.Column))
			if !strings.EqualFold(actual, strings.TrimSpace(check.Expected)) {
				if name, ok := w.cell(check.Column, r); ok {
					if err := w.f.SetCellStyle(outputSheet, name, name, lightRed); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

// applyTitleMatchHighlighting colors "True" green and "False" red in the
// title_match column.
func (w *styledWriter) applyTitleMatchHighlighting() error {
	if _, ok := w.colIdx[ColTitleMatch]; !ok {
		return nil
	}
	for r, row := range w.table.Rows {
		text := row.Get(ColTitleMatch)
		if text == "" {
			continue
		}
		tokens := strings.Split(text, ",")
		runs := make([]excelize.RichTextRun, 0, len(tokens)*2)
		for i, token := range tokens {
			token = strings.TrimSpace(token)
			color := "000000"
			switch strings.ToLower(token) {
			case "true":
				color = "008000"
			case "false":
				color = "FF0000"
			}
			runs = append(runs, richRun(token, color))
			if i < len(tokens)-1 {
				runs = append(runs, richRun(", ", "000000"))
			}
		}
		if name, ok := w.cell(ColTitleMatch, r); ok {
			if err := w.f.SetCellRichText(outputSheet, name, runs); err != nil {
				return err
			}
		}
	}
	return nil
}

// applyTitleHighlighting diffs each selected title column against the
// baseline (first) title and writes the character-accurate rich text
// back into both columns.
func (w *styledWriter) applyTitleHighlighting(titleColumns []string) error {
	var renamed []string
	for i, column := range titleColumns {
		if column != "" {
			renamed = append(renamed, fmt.Sprintf("title_excel%d", i+1))
		}
	}
	if len(renamed) < 2 {
		return nil
	}

	baseline := renamed[0]
	if _, ok := w.colIdx[baseline]; !ok {
		return nil
	}

	for _, other := range renamed[1:] {
		if _, ok := w.colIdx[other]; !ok {
			continue
		}
		for r, row := range w.table.Rows {
			left, right := row.Get(baseline), row.Get(other)
			if left == "" && right == "" {
				continue
			}
			leftSegs, rightSegs := align.Diff(left, right)
			if err := w.setRichSegments(baseline, r, leftSegs); err != nil {
				return err
			}
			if err := w.setRichSegments(other, r, rightSegs); err != nil {
				return err
			}
		}
	}
	return nil
}

// applyRevisionHighlighting renders the reconciler's highlight map as
// rich text in the affected cells.
func (w *styledWriter) applyRevisionHighlighting(revHighlights highlight.Map) error {
	for r, cells := range revHighlights {
		if r < 0 || r >= w.table.Len() {
			continue
		}
		for column, segments := range cells {
			if err := w.setRichSegments(column, r, segments); err != nil {
				return err
			}
		}
	}
	return nil
}

func (w *styledWriter) setRichSegments(column string, dataRow int, segments []highlight.Segment) error {
	name, ok := w.cell(column, dataRow)
	if !ok || len(segments) == 0 {
		return nil
	}
	runs := make([]excelize.RichTextRun, 0, len(segments))
	for _, seg := range segments {
		if seg.Text == "" {
			continue
		}
		runs = append(runs, richRun(seg.Text, emphasisColors[seg.Emphasis]))
	}
	if len(runs) == 0 {
		return nil
	}
	return w.f.SetCellRichText(outputSheet, name, runs)
}

func richRun(text, color string) excelize.RichTextRun {
	return excelize.RichTextRun{
		Text: text,
		Font: &excelize.Font{Family: "Calibri", Size: 11, Color: color},
	}
}
