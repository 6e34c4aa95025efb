// internal/align/align.go
package align

import "strings"

// Pair assigns one structure-sequence index (A) to one score-record
// index (B).
type Pair struct {
	A int
	B int
}

// MatchLength returns the length of the longest common subsequence of a
// and b. Letters compare case-insensitively. Symmetric in its arguments;
// 0 when either side is empty.
func MatchLength(a, b string) int {
	ua, ub := strings.ToUpper(a), strings.ToUpper(b)
	if len(ua) == 0 || len(ub) == 0 {
		return 0
	}
	lcs := table(ua, ub)
	return lcs[len(ua)][len(ub)]
}

// Align returns the index assignments of a longest common subsequence of
// a and b, in ascending A order. Identical sequences (ignoring case) take
// an O(n) fast path with no table. Positions outside the subsequence get
// no pair; callers treat them as unscored.
func Align(a, b string) []Pair {
	ua, ub := strings.ToUpper(a), strings.ToUpper(b)
	if ua == ub {
		out := make([]Pair, len(ua))
		for i := range out {
			out[i] = Pair{A: i, B: i}
		}
		return out
	}
	if len(ua) == 0 || len(ub) == 0 {
		return nil
	}
	lcs := table(ua, ub)

	// Backtrack from the full-length cell. On a tie between skipping an
	// A element and skipping a B element, the B index retreats first;
	// downstream assignments near indels depend on this staying stable.
	var out []Pair
	i, j := len(ua), len(ub)
	for i > 0 && j > 0 {
		switch {
		case ua[i-1] == ub[j-1]:
			out = append(out, Pair{A: i - 1, B: j - 1})
			i--
			j--
		case lcs[i][j-1] >= lcs[i-1][j]:
			j--
		default:
			i--
		}
	}
	for l, r := 0, len(out)-1; l < r; l, r = l+1, r-1 {
		out[l], out[r] = out[r], out[l]
	}
	return out
}

// table fills the (len(a)+1)x(len(b)+1) LCS length table. Quadratic in
// time and space; callers accept that for chain-scale inputs.
func table(a, b string) [][]int {
	lcs := make([][]int, len(a)+1)
	for i := range lcs {
		lcs[i] = make([]int, len(b)+1)
	}
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			switch {
			case a[i-1] == b[j-1]:
				lcs[i][j] = lcs[i-1][j-1] + 1
			case lcs[i-1][j] >= lcs[i][j-1]:
				lcs[i][j] = lcs[i-1][j]
			default:
				lcs[i][j] = lcs[i][j-1]
			}
		}
	}
	return lcs
}
