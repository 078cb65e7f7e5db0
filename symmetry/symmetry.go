// Package symmetry analyzes complementarity relations of codons and
// their positions in the genomatrix. Two relations hold for the
// Kronecker construction and are asserted as invariants here: the
// per-position complement of the cell at (i, j) sits at the point
// reflection (n-1-i, n-1-j), and the reverse complement sits at the
// bit-reversed reflection.
package symmetry

import (
	"fmt"

	"bitbucket.org/mgrlab/genomat/bio"
	"bitbucket.org/mgrlab/genomat/genomatrix"
)

// Complement returns the per-position Watson-Crick complement of a
// codon (A<->T, C<->G), keeping the base order.
func Complement(c bio.Codon) bio.Codon {
	return bio.Codon{c[0].Complement(), c[1].Complement(), c[2].Complement()}
}

// ReverseComplement returns the Watson-Crick complement with the base
// order reversed. It is an involution: applying it twice returns the
// original codon.
func ReverseComplement(c bio.Codon) bio.Codon {
	return bio.Codon{c[2].Complement(), c[1].Complement(), c[0].Complement()}
}

// complementSeq complements a sequence of any length, keeping order.
func complementSeq(seq string) (string, error) {
	out := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		b, err := bio.ParseBase(seq[i])
		if err != nil {
			return "", err
		}
		out[i] = b.Complement().Symbol()
	}
	return string(out), nil
}

// reverseComplementSeq complements a sequence and reverses it.
func reverseComplementSeq(seq string) (string, error) {
	comp, err := complementSeq(seq)
	if err != nil {
		return "", err
	}
	out := []byte(comp)
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out), nil
}

// revBits reverses the lowest width bits of x.
func revBits(x, width int) int {
	r := 0
	for t := 0; t < width; t++ {
		r = r<<1 | x&1
		x >>= 1
	}
	return r
}

// ReverseComplementPosition returns the grid position of the reverse
// complement of the cell at (i, j) in an order-wide matrix:
// (rev(n-1-i), rev(n-1-j)) with rev the order-bit reversal.
func ReverseComplementPosition(i, j, order int) (int, int) {
	n := 1 << order
	return revBits(n-1-i, order), revBits(n-1-j, order)
}

// CheckComplementReflection verifies over the whole grid that the
// complement of every cell occupies the point reflection of the
// cell's position through the grid center.
func CheckComplementReflection(m *genomatrix.Matrix) error {
	n := m.Size()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			seq, err := m.At(i, j)
			if err != nil {
				return err
			}
			comp, err := complementSeq(seq)
			if err != nil {
				return err
			}
			mirror, err := m.At(n-1-i, n-1-j)
			if err != nil {
				return err
			}
			if comp != mirror {
				return fmt.Errorf("complement of %s at (%d, %d) is %s, reflection holds %s",
					seq, i, j, comp, mirror)
			}
		}
	}
	return nil
}

// CheckReverseComplementPositions verifies over the whole grid that
// the reverse complement of every cell occupies the bit-reversed
// point reflection of the cell's position.
func CheckReverseComplementPositions(m *genomatrix.Matrix) error {
	for _, c := range m.Cells() {
		rc, err := reverseComplementSeq(c.Seq)
		if err != nil {
			return err
		}
		ri, rj, err := m.Position(rc)
		if err != nil {
			return err
		}
		wi, wj := ReverseComplementPosition(c.Row, c.Col, m.Order())
		if ri != wi || rj != wj {
			return fmt.Errorf("reverse complement of %s at (%d, %d) is at (%d, %d), want (%d, %d)",
				c.Seq, c.Row, c.Col, ri, rj, wi, wj)
		}
	}
	return nil
}

// IsRumerWholeFamily reports whether the first two bases of the codon
// determine the amino acid for every choice of the third base (a
// whole degeneracy family of four).
func IsRumerWholeFamily(c bio.Codon) bool {
	aa := c.AminoAcid()
	for b := bio.Base(0); b < bio.NBase; b++ {
		if (bio.Codon{c[0], c[1], b}).AminoAcid() != aa {
			return false
		}
	}
	return true
}
