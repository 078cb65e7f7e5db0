package bio

import "fmt"

// Codon is an ordered triple of bases. There are exactly 64 distinct
// codons.
type Codon [3]Base

// NCodon is the number of distinct codons.
const NCodon = 64

// ParseCodon converts a 3-symbol sequence into a Codon. U/T and case
// normalization is performed once here, not at the call sites.
func ParseCodon(s string) (Codon, error) {
	var c Codon
	if len(s) != 3 {
		return c, fmt.Errorf("%w: %q has %d symbols, want 3", ErrInvalidCodon, s, len(s))
	}
	for i := 0; i < 3; i++ {
		b, err := ParseBase(s[i])
		if err != nil {
			return c, err
		}
		c[i] = b
	}
	return c, nil
}

// String returns the codon in canonical (DNA, capital) symbols.
func (c Codon) String() string {
	return string([]byte{c[0].Symbol(), c[1].Symbol(), c[2].Symbol()})
}

// AllCodons returns all 64 codons ordered by base value at every
// position (C, T, A, G).
func AllCodons() []Codon {
	codons := make([]Codon, 0, NCodon)
	for b0 := Base(0); b0 < NBase; b0++ {
		for b1 := Base(0); b1 < NBase; b1++ {
			for b2 := Base(0); b2 < NBase; b2++ {
				codons = append(codons, Codon{b0, b1, b2})
			}
		}
	}
	return codons
}
