// Package gray maps bases and codons to Gray codes. The first bit of
// a base's code is its functional group (keto=1), the second its
// chemical type (purine=1), so bases that differ in exactly one of the
// two oppositions (the C-A-G-T ring) have codes at Hamming distance
// one.
package gray

import (
	"fmt"

	"bitbucket.org/mgrlab/genomat/bio"
)

// baseCode is the fixed Base -> 2-bit Gray code bijection
// (keto bit, purine bit): C=00, A=01, G=11, T=10.
var baseCode = [bio.NBase]string{
	bio.C: "00",
	bio.A: "01",
	bio.G: "11",
	bio.T: "10",
}

// codeBase is the inverse of baseCode, built in init.
var codeBase map[string]bio.Base

func init() {
	codeBase = make(map[string]bio.Base, bio.NBase)
	for b := bio.Base(0); b < bio.NBase; b++ {
		codeBase[baseCode[b]] = b
	}
}

// Code returns the 2-bit Gray code of a base.
func Code(b bio.Base) string {
	return baseCode[b]
}

// Value returns the Gray code of a base as an integer in [0; 3].
func Value(b bio.Base) int {
	c := baseCode[b]
	return int(c[0]-'0')<<1 | int(c[1]-'0')
}

// Encode returns the positional 6-bit Gray code of a codon: the first
// base's code followed by the second's and the third's.
func Encode(c bio.Codon) string {
	return baseCode[c[0]] + baseCode[c[1]] + baseCode[c[2]]
}

// Decode converts a 6-bit string back into a codon.
func Decode(s string) (bio.Codon, error) {
	var c bio.Codon
	if len(s) != 6 {
		return c, fmt.Errorf("%w: code %q has %d bits, want 6", bio.ErrInvalidCodon, s, len(s))
	}
	for i := 0; i < 3; i++ {
		b, ok := codeBase[s[2*i:2*i+2]]
		if !ok {
			return c, fmt.Errorf("%w: %q is not a bit pair", bio.ErrInvalidSymbol, s[2*i:2*i+2])
		}
		c[i] = b
	}
	return c, nil
}

// Hamming returns the number of positions at which two equal-length
// bit strings differ.
func Hamming(a, b string) (int, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: bit strings have different lengths (%d and %d)",
			bio.ErrInvalidCodon, len(a), len(b))
	}
	d := 0
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			d++
		}
	}
	return d, nil
}
