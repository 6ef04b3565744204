package align

import (
	"testing"

	"register-reconciler/core/highlight"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tokens := Tokenize("ABC-123 (Rev A)")
	require.Len(t, tokens, 7)

	expected := []Token{
		{Text: "ABC", Start: 0},
		{Text: "-", Start: 3},
		{Text: "123", Start: 4},
		{Text: "(", Start: 8},
		{Text: "Rev", Start: 9},
		{Text: "A", Start: 13},
		{Text: ")", Start: 14},
	}
	assert.Equal(t, expected, tokens)
}

func TestTokenizeDashes(t *testing.T) {
	// En and em dashes tokenize individually, like hyphens.
	tokens := Tokenize("a–b—c_d")
	texts := make([]string, len(tokens))
	for i, tok := range tokens {
		texts[i] = tok.Text
	}
	assert.Equal(t, []string{"a", "–", "b", "—", "c", "_", "d"}, texts)
}

func TestTokenizeEmpty(t *testing.T) {
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("   "))
}

func TestAlignIdentical(t *testing.T) {
	pairs := Align(Tokenize("Pump Station Layout"), Tokenize("Pump Station Layout"))
	require.Len(t, pairs, 3)
	for _, pair := range pairs {
		assert.Equal(t, Exact, pair.Flag)
	}
}

func TestAlignCaseOnly(t *testing.T) {
	pairs := Align(Tokenize("Pump LAYOUT"), Tokenize("Pump layout"))
	require.Len(t, pairs, 2)
	assert.Equal(t, Exact, pairs[0].Flag)
	assert.Equal(t, CaseOnly, pairs[1].Flag)
}

func TestAlignSingleWordCaseOnly(t *testing.T) {
	pairs := Align(Tokenize("Foo"), Tokenize("foo"))
	require.Len(t, pairs, 1)
	assert.Equal(t, CaseOnly, pairs[0].Flag)
}

func TestAlignCharLevel(t *testing.T) {
	// "DRAWING1" vs "DRAWING2" share 7 of 8 characters, above the
	// similarity threshold, so they align as one substitution.
	pairs := Align(Tokenize("DRAWING1"), Tokenize("DRAWING2"))
	require.Len(t, pairs, 1)
	assert.Equal(t, CharLevel, pairs[0].Flag)
}

func TestAlignDissimilarTokens(t *testing.T) {
	// Short numeric codes fall below the threshold and become a
	// delete plus insert rather than a fuzzy substitution.
	pairs := Align(Tokenize("123"), Tokenize("124"))
	require.Len(t, pairs, 2)
	assert.Equal(t, []Flag{Deleted, Inserted}, Flags(pairs))
}

func TestAlignDeletionInsertion(t *testing.T) {
	pairs := Align(Tokenize("A B C"), Tokenize("A C"))
	assert.Equal(t, []Flag{Exact, Deleted, Exact}, Flags(pairs))

	pairs = Align(Tokenize("A C"), Tokenize("A B C"))
	assert.Equal(t, []Flag{Exact, Inserted, Exact}, Flags(pairs))
}

func TestAlignEmptySides(t *testing.T) {
	pairs := Align(Tokenize("A B"), nil)
	assert.Equal(t, []Flag{Deleted, Deleted}, Flags(pairs))

	pairs = Align(nil, Tokenize("A B"))
	assert.Equal(t, []Flag{Inserted, Inserted}, Flags(pairs))

	assert.Empty(t, Align(nil, nil))
}

func TestSwapped(t *testing.T) {
	pairs := Align(Tokenize("A B"), Tokenize("A"))
	swapped := Swapped(pairs)
	assert.Equal(t, []Flag{Exact, Inserted}, Flags(swapped))
	assert.Equal(t, "A", swapped[0].Left.Text)
	assert.Nil(t, swapped[1].Left)
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, similarity("abc", "abc"))
	assert.Equal(t, 0.0, similarity("abc", "xyz"))
	assert.Equal(t, 1.0, similarity("", ""))
	assert.InDelta(t, 0.875, similarity("DRAWING1", "DRAWING2"), 1e-9)
}

func TestRenderReconstructsOriginal(t *testing.T) {
	inputs := []struct {
		left  string
		right string
	}{
		{"Pump Station Layout", "Pump Station Layout"},
		{"Pump Station Layout", "pump station plan"},
		{"ABC-123 (Rev A)", "ABC-124"},
		{"  leading and trailing  ", "different text"},
		{"", "something"},
	}
	for _, tc := range inputs {
		leftSegs, rightSegs := Diff(tc.left, tc.right)
		assert.Equal(t, tc.left, highlight.Text(leftSegs), "left %q", tc.left)
		assert.Equal(t, tc.right, highlight.Text(rightSegs), "right %q", tc.right)
	}
}

func TestRenderEmphasis(t *testing.T) {
	leftSegs, rightSegs := Diff("ABC DRAWING1", "ABC DRAWING2")

	// "ABC" and the space stay neutral; "DRAWING" matches character by
	// character and only the final digit is emphasized.
	assert.Equal(t, []highlight.Segment{
		{Text: "ABC", Emphasis: highlight.Neutral},
		{Text: " ", Emphasis: highlight.Neutral},
		{Text: "DRAWING", Emphasis: highlight.Neutral},
		{Text: "1", Emphasis: highlight.Emphasized},
	}, leftSegs)
	assert.Equal(t, []highlight.Segment{
		{Text: "ABC", Emphasis: highlight.Neutral},
		{Text: " ", Emphasis: highlight.Neutral},
		{Text: "DRAWING", Emphasis: highlight.Neutral},
		{Text: "2", Emphasis: highlight.Emphasized},
	}, rightSegs)
}

func TestRenderCaseOnlyMuted(t *testing.T) {
	leftSegs, _ := Diff("Pump Layout", "pump Layout")
	require.Len(t, leftSegs, 3)
	assert.Equal(t, highlight.Muted, leftSegs[0].Emphasis)
	assert.Equal(t, highlight.Neutral, leftSegs[2].Emphasis)
}

func TestRenderDeleted(t *testing.T) {
	leftSegs, rightSegs := Diff("Pump Station Layout", "Pump Layout")

	assert.Equal(t, []highlight.Segment{
		{Text: "Pump", Emphasis: highlight.Neutral},
		{Text: " ", Emphasis: highlight.Neutral},
		{Text: "Station", Emphasis: highlight.Emphasized},
		{Text: " ", Emphasis: highlight.Neutral},
		{Text: "Layout", Emphasis: highlight.Neutral},
	}, leftSegs)
	assert.Equal(t, "Pump Layout", highlight.Text(rightSegs))
	for _, seg := range rightSegs {
		assert.Equal(t, highlight.Neutral, seg.Emphasis)
	}
}
