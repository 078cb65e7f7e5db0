// Package transform generates Hadamard matrices and computes the
// degeneracy spectrum of a binarized genomatrix.
package transform

import (
	"errors"
	"fmt"
	"math"

	"github.com/gonum/matrix/mat64"

	"bitbucket.org/mgrlab/genomat/bio"
	"bitbucket.org/mgrlab/genomat/genomatrix"
	"bitbucket.org/mgrlab/genomat/gray"
)

// ErrDimension is returned when a requested transform size is not a
// power of two or does not match the genomatrix.
var ErrDimension = errors.New("dimension error")

// Hadamard generates the n x n Sylvester-Hadamard matrix:
// H(1)=[[1]], H(2k)=[[H, H], [H, -H]]. Entries are +1 and -1 and
// H times its transpose equals n times the identity.
func Hadamard(n int) (*mat64.Dense, error) {
	if n < 1 || n&(n-1) != 0 {
		return nil, fmt.Errorf("%w: size %d is not a power of two", ErrDimension, n)
	}
	h := mat64.NewDense(n, n, nil)
	h.Set(0, 0, 1)
	for k := 1; k < n; k *= 2 {
		for i := 0; i < k; i++ {
			for j := 0; j < k; j++ {
				v := h.At(i, j)
				h.Set(i, j+k, v)
				h.Set(i+k, j, v)
				h.Set(i+k, j+k, -v)
			}
		}
	}
	return h, nil
}

// Binarize embeds every cell of the genomatrix as a signed scalar.
// The fixed embedding: the cell's concatenated Gray code read as an
// integer v in [0; 4^k-1] is mapped to (2v-max)/max, so the all-zero
// code (CC...C) becomes -1 and the all-one code (GG...G) becomes +1.
func Binarize(m *genomatrix.Matrix) (*mat64.Dense, error) {
	n := m.Size()
	max := float64(uint(1)<<(2*uint(m.Order())) - 1)
	b := mat64.NewDense(n, n, nil)
	for _, c := range m.Cells() {
		v := 0
		for t := 0; t < len(c.Seq); t++ {
			base, err := bio.ParseBase(c.Seq[t])
			if err != nil {
				return nil, err
			}
			v = v<<2 | gray.Value(base)
		}
		b.Set(c.Row, c.Col, (2*float64(v)-max)/max)
	}
	return b, nil
}

// Spectrum binarizes the genomatrix, applies the matching Hadamard
// transform scaled by 1/sqrt(n), and returns the per-column mean
// absolute value of the result. The computation is deterministic:
// identical inputs yield bit-identical output.
func Spectrum(m *genomatrix.Matrix) ([]float64, error) {
	n := m.Size()
	h, err := Hadamard(n)
	if err != nil {
		return nil, err
	}
	b, err := Binarize(m)
	if err != nil {
		return nil, err
	}

	res := mat64.NewDense(n, n, nil)
	res.Mul(h, b)
	res.Scale(1/math.Sqrt(float64(n)), res)

	spectrum := make([]float64, n)
	for j := 0; j < n; j++ {
		sum := 0.0
		for i := 0; i < n; i++ {
			sum += math.Abs(res.At(i, j))
		}
		spectrum[j] = sum / float64(n)
	}
	return spectrum, nil
}
