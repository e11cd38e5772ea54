// core/dna/record.go
package dna

// SequenceStats is the per-sequence slice of a record analysis.
type SequenceStats struct {
	GCContent float64        `json:"gc_content"`
	Codons    map[string]int `json:"codons"`
}

// LCS describes the best longest common subsequence found across the
// sequences of one record. Sequences holds the 1-based ids of every
// sequence containing the winning value as a subsequence.
type LCS struct {
	Value     string `json:"value"`
	Sequences []int  `json:"sequences"`
	Length    int    `json:"length"`
}

// Analysis is the full derived view of one record's sequences. It is
// deterministic in its input and carries everything the output writer
// needs, nothing it must further compute.
type Analysis struct {
	Sequences        []SequenceStats `json:"sequences"`
	CompositionRatio float64         `json:"composition_ratio"`
	MostCommonCodon  string          `json:"most_common_codon,omitempty"`
	LCS              LCS             `json:"lcs"`
}

// AnalyzeRecord computes per-sequence GC content and codon counts, the
// record-wide composition ratio and most common codon, and the best
// pairwise LCS among the sequences. Ties for best LCS break by length,
// then by number of participating sequences, then by value, so the
// result is independent of map iteration and evaluation order.
func AnalyzeRecord(seqs []string, window int) Analysis {
	if window <= 0 {
		window = DefaultWindow
	}
	out := Analysis{Sequences: make([]SequenceStats, 0, len(seqs))}

	totalGC, totalLen := 0, 0
	freq := make(map[string]int)
	for _, s := range seqs {
		codons := CodonCounts(s, window)
		out.Sequences = append(out.Sequences, SequenceStats{
			GCContent: GCContent(s),
			Codons:    codons,
		})
		for c, n := range codons {
			freq[c] += n
		}
		for i := 0; i < len(s); i++ {
			switch s[i] {
			case 'G', 'C', 'g', 'c':
				totalGC++
			}
		}
		totalLen += len(s)
	}
	if totalLen > 0 {
		out.CompositionRatio = float64(totalGC) / float64(totalLen)
	}
	out.MostCommonCodon = mostCommon(freq)
	out.LCS = bestLCS(seqs)
	return out
}

// mostCommon returns the highest-count key, breaking count ties by the
// lexicographically smallest key.
func mostCommon(freq map[string]int) string {
	best, bestN := "", 0
	for c, n := range freq {
		if n > bestN || (n == bestN && (best == "" || c < best)) {
			best, bestN = c, n
		}
	}
	return best
}

// bestLCS scans all sequence pairs and keeps the strongest result.
func bestLCS(seqs []string) LCS {
	best := LCS{Sequences: []int{}}
	if len(seqs) < 2 {
		return best
	}
	for i := 0; i < len(seqs); i++ {
		for j := i + 1; j < len(seqs); j++ {
			value := lcsString(seqs[i], seqs[j])
			if value == "" {
				continue
			}
			var members []int
			for k, s := range seqs {
				if isSubsequence(value, s) {
					members = append(members, k+1)
				}
			}
			cand := LCS{Value: value, Sequences: members, Length: len(value)}
			if better(cand, best) {
				best = cand
			}
		}
	}
	return best
}

func better(a, b LCS) bool {
	if a.Length != b.Length {
		return a.Length > b.Length
	}
	if len(a.Sequences) != len(b.Sequences) {
		return len(a.Sequences) > len(b.Sequences)
	}
	return b.Value == "" || a.Value < b.Value
}
