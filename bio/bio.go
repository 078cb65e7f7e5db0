// Package bio provides the nucleotide alphabet, binary attribute
// vectors and the genetic code used by the genomatrix construction.
package bio

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidSymbol is returned when a symbol is not one of the
	// four recognized bases after U/T and case normalization.
	ErrInvalidSymbol = errors.New("invalid nucleotide symbol")
	// ErrInvalidCodon is returned when a codon-shaped input does not
	// have exactly three bases.
	ErrInvalidCodon = errors.New("invalid codon")
)

// Base is one of the four nucleotide bases. U is normalized to T
// during parsing, so RNA and DNA input is interchangeable.
type Base byte

// The four bases. The numeric values index the fixed lookup tables
// below and must not be reordered.
const (
	C Base = iota
	T
	A
	G
	// NBase is the alphabet size.
	NBase = 4
)

// baseSymbol maps a base to its canonical (DNA, capital) symbol.
var baseSymbol = [NBase]byte{'C', 'T', 'A', 'G'}

// complement maps every base to its Watson-Crick pair.
var complement = [NBase]Base{C: G, G: C, A: T, T: A}

// AttributeVector is an ordered triple of bits describing a base:
// chemical type (purine=1, pyrimidine=0), functional group (amino=1,
// keto=0) and hydrogen bonding (strong=1, weak=0).
type AttributeVector [3]int

// attributes is the fixed Base -> AttributeVector bijection.
var attributes = [NBase]AttributeVector{
	C: {0, 1, 1},
	T: {0, 0, 0},
	A: {1, 1, 0},
	G: {1, 0, 1},
}

// ParseBase converts a symbol to a Base. Lowercase letters are
// accepted and U is treated as T.
func ParseBase(s byte) (Base, error) {
	if s >= 'a' && s <= 'z' {
		s -= 'a' - 'A'
	}
	switch s {
	case 'C':
		return C, nil
	case 'T', 'U':
		return T, nil
	case 'A':
		return A, nil
	case 'G':
		return G, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSymbol, s)
}

// Symbol returns the canonical one-letter symbol of the base.
func (b Base) Symbol() byte {
	return baseSymbol[b]
}

// String returns the canonical symbol as a string.
func (b Base) String() string {
	return string(baseSymbol[b])
}

// Complement returns the Watson-Crick complement (A<->T, C<->G).
func (b Base) Complement() Base {
	return complement[b]
}

// Attributes returns the fixed attribute vector of the base.
func Attributes(b Base) AttributeVector {
	return attributes[b]
}

// BaseFromAttributes performs the inverse lookup of Attributes.
func BaseFromAttributes(v AttributeVector) (Base, error) {
	for b := Base(0); b < NBase; b++ {
		if attributes[b] == v {
			return b, nil
		}
	}
	return 0, fmt.Errorf("%w: no base with attributes %v", ErrInvalidSymbol, v)
}

// Similarity computes the cosine similarity of two attribute vectors
// over the signed {-1,+1} embedding of the bits. The result is in
// [-1; 1] and equals 1 for identical bases.
func Similarity(a, b Base) float64 {
	va, vb := attributes[a], attributes[b]
	dot := 0.0
	for i := range va {
		dot += float64(2*va[i]-1) * float64(2*vb[i]-1)
	}
	return dot / math.Sqrt(3*3)
}
