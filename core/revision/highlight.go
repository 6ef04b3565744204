package revision

import (
	"strings"

	"register-reconciler/core/highlight"
)

// HighlightState accumulates mismatch flags for one field-group while a
// row is evaluated. Flags only ever go from false to true; the original
// cell text is kept to rebuild segments afterwards.
type HighlightState struct {
	Code         bool
	Description  bool
	Date         bool
	OriginalText string
}

// Merge folds new flags into the state. Existing true flags are never
// cleared.
func (st *HighlightState) Merge(code, description, date bool) {
	st.Code = st.Code || code
	st.Description = st.Description || description
	st.Date = st.Date || date
}

// Any reports whether at least one flag is set.
func (st *HighlightState) Any() bool {
	return st.Code || st.Description || st.Date
}

// Segments converts the accumulated flags for one cell's text into an
// ordered segment list. The text is split on the literal "|" separator;
// separators become neutral segments of their own, and the content
// segments map left to right onto the code, description and date flags.
// Concatenating the segments reconstructs the original text exactly.
func (st *HighlightState) Segments() []highlight.Segment {
	parts := strings.Split(st.OriginalText, "|")
	flags := []bool{st.Code, st.Description, st.Date}

	segments := make([]highlight.Segment, 0, len(parts)*2)
	for i, part := range parts {
		if i > 0 {
			segments = append(segments, highlight.Segment{Text: "|", Emphasis: highlight.Neutral})
		}
		emphasis := highlight.Neutral
		if i < len(flags) && flags[i] {
			emphasis = highlight.Emphasized
		}
		segments = append(segments, highlight.Segment{Text: part, Emphasis: emphasis})
	}
	return segments
}
