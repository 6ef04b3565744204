package align

import (
	"math"
	"strings"
)

// Flag classifies one aligned token pair.
type Flag string

const (
	// Exact tokens are byte-equal.
	Exact Flag = "EXACT"
	// CaseOnly tokens are equal ignoring letter case.
	CaseOnly Flag = "CASE_ONLY"
	// CharLevel tokens are similar but not equal; the renderer compares
	// them character by character.
	CharLevel Flag = "CHAR_LEVEL"
	// Deleted tokens are present only in the left sequence.
	Deleted Flag = "DELETED"
	// Inserted tokens are present only in the right sequence.
	Inserted Flag = "INSERTED"
)

// charLevelThreshold is the minimum similarity ratio for two unequal
// tokens to align as a substitution instead of a delete plus insert.
const charLevelThreshold = 0.8

// Pair is one step of the alignment. Left is nil for insertions, Right
// is nil for deletions; both are set for substitutions.
type Pair struct {
	Left  *Token
	Right *Token
	Flag  Flag
}

// Align computes the minimum-cost alignment of two token sequences with
// a classic edit-distance dynamic program over dense (n+1)x(m+1) cost
// and choice matrices. Substitutions cost 0 for exact matches, 0.5 for
// case-only matches and 1-ratio for similar tokens; dissimilar tokens
// cannot substitute. On cost ties, substitution is preferred over
// deletion and deletion over insertion.
func Align(left, right []Token) []Pair {
	n, m := len(left), len(right)

	cost := make([][]float64, n+1)
	choice := make([][]byte, n+1)
	subFlag := make([][]Flag, n+1)
	for i := 0; i <= n; i++ {
		cost[i] = make([]float64, m+1)
		choice[i] = make([]byte, m+1)
		subFlag[i] = make([]Flag, m+1)
	}
	for i := 1; i <= n; i++ {
		cost[i][0] = float64(i)
		choice[i][0] = 'U'
	}
	for j := 1; j <= m; j++ {
		cost[0][j] = float64(j)
		choice[0][j] = 'L'
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			a, b := left[i-1].Text, right[j-1].Text

			substitute := math.Inf(1)
			var flag Flag
			switch {
			case a == b:
				substitute = cost[i-1][j-1]
				flag = Exact
			case strings.EqualFold(a, b):
				substitute = cost[i-1][j-1] + 0.5
				flag = CaseOnly
			default:
				if ratio := similarity(a, b); ratio >= charLevelThreshold {
					substitute = cost[i-1][j-1] + (1 - ratio)
					flag = CharLevel
				}
			}

			deletion := cost[i-1][j] + 1
			insertion := cost[i][j-1] + 1

			best := math.Min(substitute, math.Min(deletion, insertion))
			cost[i][j] = best
			switch {
			case best == substitute:
				choice[i][j] = 'D'
				subFlag[i][j] = flag
			case best == deletion:
				choice[i][j] = 'U'
			default:
				choice[i][j] = 'L'
			}
		}
	}

	// Iterative backtrack from (n,m) to (0,0), then reverse into
	// original order.
	pairs := make([]Pair, 0, n+m)
	for i, j := n, m; i > 0 || j > 0; {
		switch choice[i][j] {
		case 'D':
			pairs = append(pairs, Pair{Left: &left[i-1], Right: &right[j-1], Flag: subFlag[i][j]})
			i--
			j--
		case 'U':
			pairs = append(pairs, Pair{Left: &left[i-1], Flag: Deleted})
			i--
		default:
			pairs = append(pairs, Pair{Right: &right[j-1], Flag: Inserted})
			j--
		}
	}
	for i, j := 0, len(pairs)-1; i < j; i, j = i+1, j-1 {
		pairs[i], pairs[j] = pairs[j], pairs[i]
	}
	return pairs
}

// Swapped mirrors an alignment so the right-hand sequence can be
// rendered with the same walk: Left/Right swap and the one-sided flags
// flip.
func Swapped(pairs []Pair) []Pair {
	out := make([]Pair, len(pairs))
	for i, p := range pairs {
		q := Pair{Left: p.Right, Right: p.Left, Flag: p.Flag}
		switch p.Flag {
		case Deleted:
			q.Flag = Inserted
		case Inserted:
			q.Flag = Deleted
		}
		out[i] = q
	}
	return out
}

// similarity is the normalized match ratio between two strings: twice
// the length of their longest common subsequence over the total length.
// Equal strings score 1, disjoint strings 0.
func similarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	if len(ra)+len(rb) == 0 {
		return 1
	}
	previous := make([]int, len(rb)+1)
	current := make([]int, len(rb)+1)
	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			if ra[i-1] == rb[j-1] {
				current[j] = previous[j-1] + 1
			} else if previous[j] >= current[j-1] {
				current[j] = previous[j]
			} else {
				current[j] = current[j-1]
			}
		}
		previous, current = current, previous
	}
	return 2 * float64(previous[len(rb)]) / float64(len(ra)+len(rb))
}
