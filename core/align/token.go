package align

import "regexp"

// Token is one atomic unit of comparison: a run of alphanumerics, a
// single dash-like separator, or any other single symbol, with its byte
// offset in the source string. Whitespace never becomes a token; the
// renderer reinserts it from the original text using the offsets.
type Token struct {
	Text  string
	Start int
}

// tokenPattern matches maximal alphanumeric runs, single dash-like
// characters (hyphen, underscore, en/em dash) and any other single
// non-space, non-word character.
var tokenPattern = regexp.MustCompile(`[A-Za-z0-9]+|[-_\x{2013}\x{2014}]|[^\sA-Za-z0-9_]`)

// Tokenize splits a string into tokens with their start offsets.
func Tokenize(s string) []Token {
	matches := tokenPattern.FindAllStringIndex(s, -1)
	tokens := make([]Token, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, Token{Text: s[m[0]:m[1]], Start: m[0]})
	}
	return tokens
}
