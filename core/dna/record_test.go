package dna

import "testing"

func TestAnalyzeRecordScenario(t *testing.T) {
	// Two eight-base sequences: half G+C overall, best pairwise LCS
	// of length 6, ATG is the most frequent codon.
	a := AnalyzeRecord([]string{"ATGCATGC", "ATGGATCC"}, 3)

	if a.CompositionRatio != 0.5 {
		t.Fatalf("CompositionRatio = %v, want 0.5", a.CompositionRatio)
	}
	if a.LCS.Length != 6 {
		t.Fatalf("LCS.Length = %d, want 6", a.LCS.Length)
	}
	if len(a.LCS.Sequences) != 2 || a.LCS.Sequences[0] != 1 || a.LCS.Sequences[1] != 2 {
		t.Fatalf("LCS.Sequences = %v, want [1 2]", a.LCS.Sequences)
	}
	if a.MostCommonCodon != "ATG" {
		t.Fatalf("MostCommonCodon = %q, want ATG", a.MostCommonCodon)
	}
	if len(a.Sequences) != 2 {
		t.Fatalf("per-sequence stats = %d entries, want 2", len(a.Sequences))
	}
	if a.Sequences[0].GCContent != 0.5 {
		t.Fatalf("Sequences[0].GCContent = %v, want 0.5", a.Sequences[0].GCContent)
	}
}

func TestAnalyzeRecordSingleSequence(t *testing.T) {
	a := AnalyzeRecord([]string{"ATGCATGC"}, 3)
	if a.LCS.Length != 0 || a.LCS.Value != "" {
		t.Fatalf("single sequence should yield empty LCS, got %+v", a.LCS)
	}
	if a.CompositionRatio != 0.5 {
		t.Fatalf("CompositionRatio = %v, want 0.5", a.CompositionRatio)
	}
}

func TestAnalyzeRecordEmpty(t *testing.T) {
	a := AnalyzeRecord(nil, 3)
	if a.CompositionRatio != 0 {
		t.Fatalf("CompositionRatio = %v, want 0", a.CompositionRatio)
	}
	if a.MostCommonCodon != "" {
		t.Fatalf("MostCommonCodon = %q, want empty", a.MostCommonCodon)
	}
	if len(a.Sequences) != 0 {
		t.Fatalf("Sequences = %v, want none", a.Sequences)
	}
}

func TestAnalyzeRecordDeterministicTieBreak(t *testing.T) {
	// Both codons appear once; the lexicographically smaller wins.
	a := AnalyzeRecord([]string{"TTTAAA"}, 3)
	if a.MostCommonCodon != "AAA" {
		t.Fatalf("MostCommonCodon = %q, want AAA", a.MostCommonCodon)
	}
	b := AnalyzeRecord([]string{"TTTAAA"}, 3)
	if a.MostCommonCodon != b.MostCommonCodon {
		t.Fatalf("tie-break not deterministic: %q vs %q", a.MostCommonCodon, b.MostCommonCodon)
	}
}

func TestBestLCSPicksLongestPair(t *testing.T) {
	// The short first sequence only shares two bases with the others;
	// the last two share a five-base subsequence.
	lcs := bestLCS([]string{"ACAA", "GGTTAC", "GGTTCA"})
	if lcs.Length != 5 {
		t.Fatalf("LCS length = %d, want 5", lcs.Length)
	}
	if len(lcs.Sequences) != 2 || lcs.Sequences[0] != 2 || lcs.Sequences[1] != 3 {
		t.Fatalf("LCS members = %v, want [2 3]", lcs.Sequences)
	}
}
