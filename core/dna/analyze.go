// core/dna/analyze.go
package dna

// DefaultWindow is the token width used for codon counting.
const DefaultWindow = 3

// GCContent returns the fraction of G and C bases in seq, in [0,1].
// An empty sequence yields 0; rejecting empty input is an upstream
// validation concern, not an analysis one.
func GCContent(seq string) float64 {
	if len(seq) == 0 {
		return 0
	}
	gc := 0
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'G', 'C', 'g', 'c':
			gc++
		}
	}
	return float64(gc) / float64(len(seq))
}

// CodonCounts tallies non-overlapping windows of the given width,
// starting at index 0. A trailing partial window is dropped, never
// padded. window <= 0 falls back to DefaultWindow.
func CodonCounts(seq string, window int) map[string]int {
	if window <= 0 {
		window = DefaultWindow
	}
	counts := make(map[string]int)
	for i := 0; i+window <= len(seq); i += window {
		counts[seq[i:i+window]]++
	}
	return counts
}

// LCSLength returns the length of the longest common subsequence of a
// and b. Two rolling rows keep memory at O(min(len(a), len(b))).
// The result is symmetric in its arguments and LCSLength(x, x) == len(x).
func LCSLength(a, b string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	if len(b) > len(a) {
		a, b = b, a
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			switch {
			case a[i-1] == b[j-1]:
				curr[j] = prev[j-1] + 1
			case prev[j] >= curr[j-1]:
				curr[j] = prev[j]
			default:
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// lcsString reconstructs one longest common subsequence of a and b
// using the full DP table. Used only for record-level aggregation where
// the subsequence value itself is reported.
func lcsString(a, b string) string {
	m, n := len(a), len(b)
	if m == 0 || n == 0 {
		return ""
	}
	dp := make([][]int, m+1)
	for i := range dp {
		dp[i] = make([]int, n+1)
	}
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			switch {
			case a[i-1] == b[j-1]:
				dp[i][j] = dp[i-1][j-1] + 1
			case dp[i-1][j] >= dp[i][j-1]:
				dp[i][j] = dp[i-1][j]
			default:
				dp[i][j] = dp[i][j-1]
			}
		}
	}
	out := make([]byte, dp[m][n])
	k := len(out)
	for i, j := m, n; i > 0 && j > 0; {
		switch {
		case a[i-1] == b[j-1]:
			k--
			out[k] = a[i-1]
			i--
			j--
		case dp[i-1][j] >= dp[i][j-1]:
			i--
		default:
			j--
		}
	}
	return string(out)
}

// isSubsequence reports whether sub occurs in seq as an ordered, not
// necessarily contiguous, subsequence.
func isSubsequence(sub, seq string) bool {
	i := 0
	for j := 0; i < len(sub) && j < len(seq); j++ {
		if sub[i] == seq[j] {
			i++
		}
	}
	return i == len(sub)
}
