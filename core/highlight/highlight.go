package highlight

// Emphasis classifies how a segment of cell text should be rendered.
// The engine never picks concrete colors; mapping emphasis classes to
// fonts/colors is the renderer's job.
type Emphasis string

const (
	// Neutral marks text that matched or carries no finding.
	Neutral Emphasis = "neutral"
	// Emphasized marks text involved in a mismatch.
	Emphasized Emphasis = "emphasized"
	// Muted marks text that differs only in a minor way (e.g. letter case).
	Muted Emphasis = "muted"
)

// Segment is one run of cell text with a single emphasis class.
// Concatenating the Text of all segments for a cell reconstructs the
// cell's original content exactly.
type Segment struct {
	Text     string   `json:"text"`
	Emphasis Emphasis `json:"emphasis"`
}

// Map associates highlighted cells with their segment lists,
// keyed by row index and then by column identity.
type Map map[int]map[string][]Segment

// Add records the segments for one cell, allocating the row bucket
// on first use.
func (m Map) Add(row int, column string, segments []Segment) {
	cells, ok := m[row]
	if !ok {
		cells = make(map[string][]Segment)
		m[row] = cells
	}
	cells[column] = segments
}

// Text joins the segments back into the original cell content.
func Text(segments []Segment) string {
	var out string
	for _, seg := range segments {
		out += seg.Text
	}
	return out
}
