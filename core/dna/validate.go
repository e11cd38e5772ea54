// core/dna/validate.go
package dna

import (
	"fmt"
	"strings"
)

// Normalize trims surrounding whitespace and uppercases bases.
func Normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Validate returns a normalized sequence or an error if any base is
// outside the ACGT alphabet.
func Validate(raw string) (string, error) {
	s := Normalize(raw)
	if s == "" {
		return "", fmt.Errorf("empty sequence")
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'A', 'C', 'G', 'T':
		default:
			return "", fmt.Errorf("invalid base %q at %d; allowed: A C G T", s[i], i+1)
		}
	}
	return s, nil
}
