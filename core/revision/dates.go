package revision

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// fuzzyDatePattern finds date-shaped substrings: D/M/Y and D-M-Y numeric
// forms, and D Month Y forms with optional separators.
var fuzzyDatePattern = regexp.MustCompile(
	`(?:\d{1,2}[/-]\d{1,2}[/-]\d{2,4})|(?:\d{1,2}\s*-?\s*[A-Za-z]{3,9}\s*-?\s*\d{2,4})`)

// strictLayouts maps the configurable strict format names to Go layouts.
var strictLayouts = map[string]string{
	"DD/MM/YY":    "02/01/06",
	"DD/MM/YYYY":  "02/01/2006",
	"DD-MMM-YYYY": "02-Jan-2006",
	"YYYY-MM-DD":  "2006-01-02",
}

// dayFirstLayouts are tried in order against a fuzzy candidate, most
// specific first: 4-digit years before 2-digit, named months before
// numeric forms of the same width.
var dayFirstLayouts = []string{
	"2 January 2006",
	"2 Jan 2006",
	"2-January-2006",
	"2-Jan-2006",
	"2January2006",
	"2Jan2006",
	"2/1/2006",
	"2-1-2006",
	"2 January 06",
	"2 Jan 06",
	"2-January-06",
	"2-Jan-06",
	"2Jan06",
	"2/1/06",
	"2-1-06",
	"2006-1-2",
	"2006/1/2",
}

// resolveStrictLayout turns a strict format name into a Go time layout.
// Unknown names are accepted only if they already are a valid layout,
// verified by round-tripping the reference date.
func resolveStrictLayout(name string) (string, error) {
	if layout, ok := strictLayouts[name]; ok {
		return layout, nil
	}
	ref := time.Date(2006, time.January, 2, 0, 0, 0, 0, time.UTC)
	if t, err := time.Parse(name, ref.Format(name)); err == nil && t.Equal(ref) {
		return name, nil
	}
	return "", fmt.Errorf("unknown date format %q", name)
}

// normalizeDate parses a raw date string per the configured policy.
// Blank input and globally disabled date checking (outside header dates)
// yield no date and no error. Header dates are always parsed leniently:
// they gate whether description/date mismatch comments are emitted at all.
func (c *Checker) normalizeDate(raw string, forHeader bool) (time.Time, bool, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return time.Time{}, false, nil
	}
	if !c.settings.DateCheck && !forHeader {
		return time.Time{}, false, nil
	}

	if c.settings.DateCheck && c.settings.DateStrict {
		t, err := time.Parse(c.strict, text)
		if err != nil {
			return time.Time{}, false, fmt.Errorf("invalid date %q: %w", text, err)
		}
		return t, true, nil
	}

	candidate := text
	if c.settings.DateCheck && !c.settings.DateStrict {
		// The last date-shaped substring wins: trailing dates supersede
		// earlier ones in free text like "supersedes 01/02/24, now 03/04/24".
		if matches := fuzzyDatePattern.FindAllString(text, -1); len(matches) > 0 {
			candidate = matches[len(matches)-1]
		}
	}
	t, ok := parseDayFirst(candidate)
	if !ok {
		return time.Time{}, false, fmt.Errorf("unable to parse date %q", text)
	}
	return t, true, nil
}

// parseDayFirst parses a candidate substring with day-first precedence.
func parseDayFirst(candidate string) (time.Time, bool) {
	normalized := canonicalizeDateText(candidate)
	for _, layout := range dayFirstLayouts {
		if t, err := time.Parse(layout, normalized); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

var (
	dashRuns   = regexp.MustCompile(`\s*-\s*`)
	letterRuns = regexp.MustCompile(`[A-Za-z]+`)
)

// canonicalizeDateText collapses whitespace, tightens dashes, and
// title-cases month names so the fixed layout list can match them.
func canonicalizeDateText(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	s = dashRuns.ReplaceAllString(s, "-")
	return letterRuns.ReplaceAllStringFunc(s, func(word string) string {
		return strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	})
}
