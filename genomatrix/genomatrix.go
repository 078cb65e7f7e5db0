// Package genomatrix builds the genetic-code matrices by iterated
// Kronecker product of the fixed 2x2 base matrix. The order-3 matrix
// is the 8x8 grid holding all 64 codons, each exactly once.
package genomatrix

import (
	"bytes"
	"errors"
	"fmt"

	"bitbucket.org/mgrlab/genomat/bio"
)

// ErrDimension is returned for an unsupported matrix order or an
// out-of-bounds grid position.
var ErrDimension = errors.New("dimension error")

// MaxOrder is the highest supported Kronecker order (codons).
const MaxOrder = 3

// kernel is the fixed 2x2 base matrix. The convention is pinned here
// and held invariant everywhere: [0][0]=C, [0][1]=A, [1][0]=T,
// [1][1]=G.
var kernel = [2][2]bio.Base{
	{bio.C, bio.A},
	{bio.T, bio.G},
}

// Matrix is an immutable square grid of base sequences of length
// equal to its order.
type Matrix struct {
	order int
	n     int
	cells [][]string
	pos   map[string][2]int
}

// Cell is a sequence together with its grid position.
type Cell struct {
	Row, Col int
	Seq      string
}

// Build constructs the order-k genomatrix (2^k x 2^k) as the k-fold
// left-associated Kronecker product of the base matrix.
func Build(k int) (*Matrix, error) {
	if k < 1 || k > MaxOrder {
		return nil, fmt.Errorf("%w: unsupported order %d", ErrDimension, k)
	}
	m := base()
	for i := 1; i < k; i++ {
		m = Kronecker(m, base())
	}
	m.index()
	return m, nil
}

// base returns the order-1 matrix holding the kernel.
func base() *Matrix {
	cells := make([][]string, 2)
	for i := range cells {
		cells[i] = make([]string, 2)
		for j := range cells[i] {
			cells[i][j] = kernel[i][j].String()
		}
	}
	return &Matrix{order: 1, n: 2, cells: cells}
}

// Kronecker computes the Kronecker product of two matrices: cell
// (i, j) of the product of M (m x m) and N (n x n) is
// M[i/n][j/n] concatenated with N[i%n][j%n].
func Kronecker(m, n *Matrix) *Matrix {
	size := m.n * n.n
	cells := make([][]string, size)
	for i := 0; i < size; i++ {
		cells[i] = make([]string, size)
		for j := 0; j < size; j++ {
			cells[i][j] = m.cells[i/n.n][j/n.n] + n.cells[i%n.n][j%n.n]
		}
	}
	p := &Matrix{order: m.order + n.order, n: size, cells: cells}
	p.index()
	return p
}

// index fills the inverse lookup table.
func (m *Matrix) index() {
	m.pos = make(map[string][2]int, m.n*m.n)
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			m.pos[m.cells[i][j]] = [2]int{i, j}
		}
	}
}

// Order returns the Kronecker order of the matrix.
func (m *Matrix) Order() int {
	return m.order
}

// Size returns the number of rows (and columns).
func (m *Matrix) Size() int {
	return m.n
}

// At returns the sequence at the given grid position.
func (m *Matrix) At(i, j int) (string, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return "", fmt.Errorf("%w: position (%d, %d) outside %dx%d matrix",
			ErrDimension, i, j, m.n, m.n)
	}
	return m.cells[i][j], nil
}

// CodonAt returns the codon at the given position of an order-3
// matrix.
func (m *Matrix) CodonAt(i, j int) (bio.Codon, error) {
	if m.order != MaxOrder {
		return bio.Codon{}, fmt.Errorf("%w: order-%d matrix holds no codons", ErrDimension, m.order)
	}
	s, err := m.At(i, j)
	if err != nil {
		return bio.Codon{}, err
	}
	return bio.ParseCodon(s)
}

// Cells returns all cells in row-major order.
func (m *Matrix) Cells() []Cell {
	cells := make([]Cell, 0, m.n*m.n)
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			cells = append(cells, Cell{Row: i, Col: j, Seq: m.cells[i][j]})
		}
	}
	return cells
}

// Position performs the inverse lookup: the unique grid position of a
// sequence. The sequence is normalized (case, U/T) before the lookup.
func (m *Matrix) Position(seq string) (row, col int, err error) {
	if len(seq) != m.order {
		return 0, 0, fmt.Errorf("%w: sequence %q has %d bases, order-%d matrix needs %d",
			bio.ErrInvalidCodon, seq, len(seq), m.order, m.order)
	}
	norm := make([]byte, m.order)
	for i := 0; i < len(seq); i++ {
		b, err := bio.ParseBase(seq[i])
		if err != nil {
			return 0, 0, err
		}
		norm[i] = b.Symbol()
	}
	p, ok := m.pos[string(norm)]
	if !ok {
		// every valid normalized sequence is present, see the tests
		return 0, 0, fmt.Errorf("%w: sequence %q not in matrix", bio.ErrInvalidCodon, seq)
	}
	return p[0], p[1], nil
}

// String returns a tab-separated representation of the grid.
func (m *Matrix) String() string {
	var buffer bytes.Buffer
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			buffer.WriteString(m.cells[i][j])
			if j < m.n-1 {
				buffer.WriteByte('\t')
			}
		}
		buffer.WriteByte('\n')
	}
	return buffer.String()
}
