// Package align compares free-text fields (titles, drawing numbers)
// between sources with a token-level edit-distance alignment and a fuzzy
// substitution cost, producing a character-accurate highlight map of
// matches, near-matches and mismatches.
//
// It is independent of the revision reconciler but shares its output
// shape: ordered (text, emphasis) segments that reconstruct the input
// exactly. Like the reconciler it is pure and synchronous; cost is
// quadratic in the token count, which is a handful of tokens per cell.
package align
