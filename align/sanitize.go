package align

import "fmt"

// baseTable maps input bytes to their sanitized base. Letters outside
// A/C/G/T become the ambiguity code N; everything else is invalid (0).
var baseTable [256]byte

func init() {
	for c := 'A'; c <= 'Z'; c++ {
		baseTable[c] = 'N'
		baseTable[c+'a'-'A'] = 'N'
	}
	for _, c := range []byte("ACGTN") {
		baseTable[c] = c
		baseTable[c+'a'-'A'] = c
	}
}

// sanitize uppercases a sequence and maps ambiguous letters to N.
// Non-letter bytes fail with ErrAlphabet. The returned slice is a fresh
// copy; length always equals len(s).
func sanitize(s string) ([]byte, error) {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		b := baseTable[s[i]]
		if b == 0 {
			return nil, fmt.Errorf("symbol %q at offset %d: %w", s[i], i, ErrAlphabet)
		}
		out[i] = b
	}
	return out, nil
}
