package revision

import (
	"fmt"
	"strings"
	"time"

	"register-reconciler/core/table"
)

// Source tags where an entry came from.
type Source string

const (
	// SourceA entries are parsed from Source A revision cells.
	SourceA Source = "A"
	// SourceB entries are parsed from Source B columns.
	SourceB Source = "B"
	// SourceGenerated entries are synthesized by the latest-entry generator.
	SourceGenerated Source = "generated"
)

// Entry is one revision record: code, description and date, plus the raw
// unparsed strings, the owning column identity and the source tag.
// Entries are created fresh per row and never mutated after date
// normalization.
type Entry struct {
	Code        string
	Description string
	Date        time.Time
	HasDate     bool

	RawCode        string
	RawDescription string
	RawDate        string

	Column    string
	Source    Source
	Generated bool
}

// splitCell splits a Source A cell into its code, description and date
// parts on the literal "|" separator, trimming surrounding spaces and
// commas. Missing parts are empty strings.
func splitCell(text string) (code, description, date string) {
	parts := strings.Split(text, "|")
	trimmed := make([]string, 3)
	for i := 0; i < 3; i++ {
		if i < len(parts) {
			trimmed[i] = strings.Trim(parts[i], " ,")
		}
	}
	return trimmed[0], trimmed[1], trimmed[2]
}

// parseSourceA extracts the ordered Source A entries from a row, seeding
// a highlight state per column with the original cell text. Date parse
// failures and incremental continuity breaks become comments and flags.
func (c *Checker) parseSourceA(row table.Row) ([]Entry, map[string]*HighlightState, []string) {
	entries := make([]Entry, 0, len(c.settings.SourceAColumns))
	states := make(map[string]*HighlightState, len(c.settings.SourceAColumns))
	var comments []string

	for _, column := range c.settings.SourceAColumns {
		text := row.Get(column)
		code, description, rawDate := splitCell(text)

		state := &HighlightState{OriginalText: text}
		states[column] = state

		date, hasDate, err := c.normalizeDate(rawDate, false)
		if err != nil {
			comments = append(comments, fmt.Sprintf("invalid Date format in %s", column))
			state.Merge(false, false, true)
		}

		entries = append(entries, Entry{
			Code:           code,
			Description:    description,
			Date:           date,
			HasDate:        hasDate,
			RawCode:        code,
			RawDescription: description,
			RawDate:        rawDate,
			Column:         column,
			Source:         SourceA,
		})
	}

	comments = append(comments, c.checkContinuity(entries, states)...)
	return entries, states, comments
}

// checkContinuity validates that decodable Source A codes increase by
// exactly the rule's step, naming the expected code when they do not.
func (c *Checker) checkContinuity(entries []Entry, states map[string]*HighlightState) []string {
	if c.rule.Kind != KindIncremental {
		return nil
	}
	var comments []string
	previous := 0
	havePrevious := false
	for i := range entries {
		entry := &entries[i]
		if entry.Code == "" {
			continue
		}
		value, ok := c.rule.Decode(entry.Code)
		if !ok {
			continue
		}
		if havePrevious {
			expected := previous + c.rule.Step
			if value != expected {
				if expectedCode, err := c.rule.Encode(expected); err == nil {
					comments = append(comments, fmt.Sprintf("unexpected increment at %s (expected %s)", entry.Column, expectedCode))
				} else {
					comments = append(comments, fmt.Sprintf("unexpected increment at %s", entry.Column))
				}
				states[entry.Column].Merge(true, false, false)
			}
		}
		previous = value
		havePrevious = true
	}
	return comments
}

// parseSourceB extracts the ordered Source B entries from a row. Each
// configured column carries its description and an optional reference
// date embedded in the column identity ("description|date"); the cell
// text itself is solely the revision code.
func (c *Checker) parseSourceB(row table.Row) ([]Entry, []string) {
	entries := make([]Entry, 0, len(c.settings.SourceBColumns))
	var comments []string

	for _, column := range c.settings.SourceBColumns {
		headerParts := strings.Split(column, "|")
		description := strings.TrimSpace(headerParts[0])
		rawDate := ""
		if len(headerParts) > 1 {
			rawDate = strings.TrimSpace(headerParts[1])
		}

		date, hasDate, err := c.normalizeDate(rawDate, true)
		if err != nil && c.settings.DateCheck {
			comments = append(comments, fmt.Sprintf("invalid reference date in column %s", column))
		}

		code := strings.TrimSpace(row.Get(column))
		entries = append(entries, Entry{
			Code:           code,
			Description:    description,
			Date:           date,
			HasDate:        hasDate,
			RawCode:        code,
			RawDescription: description,
			RawDate:        rawDate,
			Column:         column,
			Source:         SourceB,
		})
	}
	return entries, comments
}
