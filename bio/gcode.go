package bio

import (
	"fmt"
	"strings"
)

var (
	// GeneticCode maps a codon string (capital DNA letters) to its
	// amino acid one-letter code; '_' marks a stop codon. This is the
	// standard (NCBI transl_table=1) code.
	GeneticCode = map[string]byte{
		"CCA": 'P', "CCC": 'P', "CCG": 'P', "CCT": 'P',
		"CTA": 'L', "CTC": 'L', "CTG": 'L', "CTT": 'L',
		"CAA": 'Q', "CAG": 'Q', "CAC": 'H', "CAT": 'H',
		"CGA": 'R', "CGC": 'R', "CGG": 'R', "CGT": 'R',
		"TCA": 'S', "TCC": 'S', "TCG": 'S', "TCT": 'S',
		"TTA": 'L', "TTG": 'L', "TTC": 'F', "TTT": 'F',
		"TAA": '_', "TAG": '_', "TAC": 'Y', "TAT": 'Y',
		"TGA": '_', "TGG": 'W', "TGC": 'C', "TGT": 'C',
		"ACA": 'T', "ACC": 'T', "ACG": 'T', "ACT": 'T',
		"ATA": 'I', "ATC": 'I', "ATT": 'I', "ATG": 'M',
		"AAA": 'K', "AAG": 'K', "AAC": 'N', "AAT": 'N',
		"AGA": 'R', "AGG": 'R', "AGC": 'S', "AGT": 'S',
		"GCA": 'A', "GCC": 'A', "GCG": 'A', "GCT": 'A',
		"GTA": 'V', "GTC": 'V', "GTG": 'V', "GTT": 'V',
		"GAA": 'E', "GAG": 'E', "GAC": 'D', "GAT": 'D',
		"GGA": 'G', "GGC": 'G', "GGG": 'G', "GGT": 'G',
	}
	// degeneracy maps an amino acid to the number of its synonymous
	// codons. Filled in init from GeneticCode.
	degeneracy map[byte]int
)

func init() {
	degeneracy = make(map[byte]int, 21)
	for _, aa := range GeneticCode {
		degeneracy[aa]++
	}
}

// AminoAcid returns the amino acid encoded by the codon ('_' for a
// stop codon).
func (c Codon) AminoAcid() byte {
	return GeneticCode[c.String()]
}

// IsStopCodon tests if the codon is a stop codon.
func (c Codon) IsStopCodon() bool {
	return c.AminoAcid() == '_'
}

// Degeneracy returns the number of codons synonymous with c
// (including c itself).
func Degeneracy(c Codon) int {
	return degeneracy[c.AminoAcid()]
}

// Translate translates a nucleotide sequence string into a protein
// string. An error is returned if the sequence length is not
// divisible by three or a codon cannot be parsed; a stop codon is
// only accepted in the terminal position.
func Translate(nseq string) (string, error) {
	if len(nseq)%3 != 0 {
		return "", fmt.Errorf("%w: sequence length doesn't divide by 3", ErrInvalidCodon)
	}
	var b strings.Builder
	for i := 0; i < len(nseq); i += 3 {
		c, err := ParseCodon(nseq[i : i+3])
		if err != nil {
			return b.String(), err
		}
		if c.IsStopCodon() {
			if i+3 >= len(nseq) {
				// a terminal stop codon is fine
				break
			}
			return b.String(), fmt.Errorf("%w: premature stop codon %s", ErrInvalidCodon, c)
		}
		b.WriteByte(c.AminoAcid())
	}
	return b.String(), nil
}
