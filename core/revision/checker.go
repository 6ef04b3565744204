package revision

import (
	"fmt"
	"strings"

	"register-reconciler/core/highlight"
	"register-reconciler/core/table"
)

// ColComments is the well-known row field the reconciler writes its
// newline-joined comments to.
const ColComments = "Comments-Revision"

// Checker cross-matches Source A revision histories against Source B for
// one row at a time. It is pure and carries only immutable state, so a
// single Checker may be used concurrently across rows.
type Checker struct {
	settings *Settings
	rule     *PatternRule
	strict   string
}

// NewChecker validates the settings and resolves the pattern rule and
// strict date layout. Configuration errors surface here, before any row
// is processed: every row would fail identically otherwise.
func NewChecker(s *Settings) (*Checker, error) {
	rule, err := BuildPatternRule(s)
	if err != nil {
		return nil, err
	}
	c := &Checker{settings: s, rule: rule}
	if s.DateCheck && s.DateStrict {
		layout, err := resolveStrictLayout(s.DateFormat)
		if err != nil {
			return nil, err
		}
		c.strict = layout
	}
	return c, nil
}

// Rule exposes the resolved pattern rule.
func (c *Checker) Rule() *PatternRule {
	return c.rule
}

// Result is the outcome of one row's evaluation: the joined comment
// string and the highlight segments for every column that accumulated at
// least one mismatch flag.
type Result struct {
	Comments   string
	Highlights map[string][]highlight.Segment
}

// AppendComment appends a comment to an existing comment string with a
// newline separator. Blank comments are dropped so no duplicate blank
// lines appear.
func AppendComment(existing, comment string) string {
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return existing
	}
	if existing == "" {
		return comment
	}
	return existing + "\n" + comment
}

// CheckRow evaluates one row: parses both sources, extends Source B with
// the generated latest entry, pairs entries positionally and accumulates
// comments and highlight flags. All failures are data; nothing aborts the
// row.
func (c *Checker) CheckRow(row table.Row) Result {
	comments := ""

	entriesA, states, parseComments := c.parseSourceA(row)
	for _, m := range parseComments {
		comments = AppendComment(comments, m)
	}

	entriesB, bComments := c.parseSourceB(row)
	for _, m := range bComments {
		comments = AppendComment(comments, m)
	}

	generated, haveGenerated := c.generateLatest(entriesB)
	if haveGenerated {
		entriesB = append(entriesB, generated)
	}

	// Blank Source B cells are skipped entirely when pairing: only
	// entries that carried a real code (or were generated) take part.
	compressed := make([]Entry, 0, len(entriesB))
	for _, entry := range entriesB {
		if entry.Code != "" {
			compressed = append(compressed, entry)
		}
	}
	if len(compressed) == 0 && !haveGenerated {
		comments = AppendComment(comments, "no reference revisions in Input 2")
	}

	maxLen := len(entriesA)
	if len(compressed) > maxLen {
		maxLen = len(compressed)
	}

	for pos := 0; pos < maxLen; pos++ {
		var a, b *Entry
		if pos < len(entriesA) {
			a = &entriesA[pos]
		}
		if pos < len(compressed) {
			b = &compressed[pos]
		}

		if a == nil {
			if b != nil {
				comments = AppendComment(comments, fmt.Sprintf("missing Rev in position %d", pos+1))
			}
			continue
		}

		column := a.Column

		if a.Code != "" {
			if !c.rule.Matches(a.Code) {
				comments = AppendComment(comments, fmt.Sprintf("invalid Revision tag in %s", column))
				mergeFlags(states, column, true, false, false)
			}
		} else if b != nil && b.Code != "" {
			comments = AppendComment(comments, fmt.Sprintf("incorrect Rev in %s", column))
			mergeFlags(states, column, true, true, true)
			continue
		}

		if b == nil {
			if a.Code != "" || a.Description != "" || a.RawDate != "" {
				comments = AppendComment(comments, fmt.Sprintf("extra revision in %s", column))
				mergeFlags(states, column, true, true, true)
			}
			continue
		}

		if b.Code != "" && !c.rule.Matches(b.Code) {
			comments = AppendComment(comments, fmt.Sprintf("Input 2 invalid revision at position %d", pos+1))
		}

		if a.Code != "" && b.Code != "" && a.Code != b.Code {
			comments = AppendComment(comments, fmt.Sprintf("incorrect Rev in %s", column))
			mergeFlags(states, column, true, false, false)
		}

		// Description is suppressed only for generated entries when the
		// description check is off; dates mirror this but the conditions
		// are deliberately asymmetric.
		if c.settings.DescriptionCheck || !b.Generated {
			if a.Description != "" && b.Description != "" && a.Description != b.Description {
				comments = AppendComment(comments, fmt.Sprintf("incorrect Description in %s", column))
				mergeFlags(states, column, false, true, false)
			} else if a.Description != "" && b.Description == "" && !b.Generated {
				comments = AppendComment(comments, fmt.Sprintf("incorrect Description in %s", column))
				mergeFlags(states, column, false, true, false)
			}
		}

		if c.settings.DateCheck || !b.Generated {
			if a.HasDate && b.HasDate && !a.Date.Equal(b.Date) {
				comments = AppendComment(comments, fmt.Sprintf("incorrect Date in %s", column))
				mergeFlags(states, column, false, false, true)
			} else if a.HasDate && !b.HasDate && !b.Generated {
				comments = AppendComment(comments, fmt.Sprintf("incorrect Date in %s", column))
				mergeFlags(states, column, false, false, true)
			}
		}
	}

	result := Result{Comments: comments}
	for column, state := range states {
		if state.Any() {
			if result.Highlights == nil {
				result.Highlights = make(map[string][]highlight.Segment)
			}
			result.Highlights[column] = state.Segments()
		}
	}
	return result
}

// mergeFlags folds flags into the column's highlight state, creating it
// lazily. A single merge operation keeps the accumulation explicit
// instead of mutating map entries ad hoc.
func mergeFlags(states map[string]*HighlightState, column string, code, description, date bool) {
	if column == "" {
		return
	}
	state, ok := states[column]
	if !ok {
		state = &HighlightState{}
		states[column] = state
	}
	state.Merge(code, description, date)
}
