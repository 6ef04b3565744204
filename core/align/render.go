package align

import (
	"register-reconciler/core/highlight"
)

// Render walks an alignment and rebuilds the original left-hand text as
// emphasis segments: literal text between tokens stays neutral, exact
// tokens stay neutral, case-only tokens are muted, similar tokens are
// compared character by character against their aligned counterpart, and
// one-sided tokens are fully emphasized. Concatenating the segments
// yields the original string.
func Render(original string, pairs []Pair) []highlight.Segment {
	var segments []highlight.Segment
	emit := func(text string, emphasis highlight.Emphasis) {
		if text != "" {
			segments = append(segments, highlight.Segment{Text: text, Emphasis: emphasis})
		}
	}

	cursor := 0
	for _, pair := range pairs {
		token := pair.Left
		if token == nil {
			continue
		}
		if token.Start > cursor {
			emit(original[cursor:token.Start], highlight.Neutral)
		}
		switch pair.Flag {
		case Exact:
			emit(token.Text, highlight.Neutral)
		case CaseOnly:
			emit(token.Text, highlight.Muted)
		case CharLevel:
			segments = append(segments, charSegments(token.Text, pair.Right.Text)...)
		default:
			emit(token.Text, highlight.Emphasized)
		}
		cursor = token.Start + len(token.Text)
	}
	if cursor < len(original) {
		emit(original[cursor:], highlight.Neutral)
	}
	return segments
}

// charSegments compares a token against its aligned counterpart at the
// same character offsets: matching characters stay neutral, differing or
// surplus characters are emphasized. Adjacent characters with the same
// emphasis collapse into one segment.
func charSegments(own, other string) []highlight.Segment {
	ownRunes := []rune(own)
	otherRunes := []rune(other)

	var segments []highlight.Segment
	var run []rune
	var runEmphasis highlight.Emphasis
	flush := func() {
		if len(run) > 0 {
			segments = append(segments, highlight.Segment{Text: string(run), Emphasis: runEmphasis})
			run = run[:0]
		}
	}

	for i, r := range ownRunes {
		emphasis := highlight.Emphasized
		if i < len(otherRunes) && otherRunes[i] == r {
			emphasis = highlight.Neutral
		}
		if len(run) > 0 && emphasis != runEmphasis {
			flush()
		}
		runEmphasis = emphasis
		run = append(run, r)
	}
	flush()
	return segments
}

// Diff tokenizes, aligns and renders two free-text fields, returning the
// segment lists for the left and right strings.
func Diff(left, right string) ([]highlight.Segment, []highlight.Segment) {
	pairs := Align(Tokenize(left), Tokenize(right))
	return Render(left, pairs), Render(right, Swapped(pairs))
}

// Flags returns the flag sequence of an alignment, in order.
func Flags(pairs []Pair) []Flag {
	flags := make([]Flag, len(pairs))
	for i, p := range pairs {
		flags[i] = p.Flag
	}
	return flags
}
