package genomatrix

import (
	"errors"
	"testing"

	"bitbucket.org/mgrlab/genomat/bio"
)

func TestBuildOrder1(tst *testing.T) {
	m, err := Build(1)
	if err != nil {
		tst.Error("Error: ", err)
	}
	if m.Size() != 2 {
		tst.Errorf("order-1 size=%d, want 2", m.Size())
	}

	// The pinned convention: [0][0]=C, [0][1]=A, [1][0]=T, [1][1]=G.
	want := [2][2]string{{"C", "A"}, {"T", "G"}}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			s, err := m.At(i, j)
			if err != nil {
				tst.Error("Error: ", err)
			}
			if s != want[i][j] {
				tst.Errorf("cell (%d, %d)=%s, want %s", i, j, s, want[i][j])
			}
		}
	}
}

func TestBuildOrderRange(tst *testing.T) {
	for _, k := range []int{1, 2, 3} {
		m, err := Build(k)
		if err != nil {
			tst.Error("Error: ", err)
		}
		if m.Size() != 1<<k {
			tst.Errorf("order-%d size=%d, want %d", k, m.Size(), 1<<k)
		}
	}
	for _, k := range []int{-1, 0, 4} {
		if _, err := Build(k); !errors.Is(err, ErrDimension) {
			tst.Errorf("Build(%d): expected ErrDimension, got %v", k, err)
		}
	}
}

func TestKroneckerAssociativity(tst *testing.T) {
	left := Kronecker(Kronecker(base(), base()), base())
	right := Kronecker(base(), Kronecker(base(), base()))

	if left.Size() != right.Size() {
		tst.Fatalf("size mismatch: %d != %d", left.Size(), right.Size())
	}
	for i := 0; i < left.Size(); i++ {
		for j := 0; j < left.Size(); j++ {
			l, _ := left.At(i, j)
			r, _ := right.At(i, j)
			if l != r {
				tst.Errorf("cell (%d, %d): %s != %s", i, j, l, r)
			}
		}
	}
}

func TestAllCodonsOnce(tst *testing.T) {
	m, err := Build(3)
	if err != nil {
		tst.Error("Error: ", err)
	}

	cells := m.Cells()
	if len(cells) != bio.NCodon {
		tst.Errorf("got %d cells, want %d", len(cells), bio.NCodon)
	}
	seen := make(map[string]bool, bio.NCodon)
	for _, c := range cells {
		if seen[c.Seq] {
			tst.Errorf("codon %s appears more than once", c.Seq)
		}
		seen[c.Seq] = true
	}
	for _, c := range bio.AllCodons() {
		if !seen[c.String()] {
			tst.Errorf("codon %s missing from the matrix", c)
		}
	}
}

// The index formula is pinned: the base at codon position t of cell
// (i, j) is kernel[i>>(2-t)&1][j>>(2-t)&1].
func TestIndexFormula(tst *testing.T) {
	m, err := Build(3)
	if err != nil {
		tst.Error("Error: ", err)
	}

	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			s, err := m.At(i, j)
			if err != nil {
				tst.Error("Error: ", err)
			}
			for t := 0; t < 3; t++ {
				want := kernel[i>>(2-t)&1][j>>(2-t)&1].Symbol()
				if s[t] != want {
					tst.Errorf("cell (%d, %d) base %d is %c, want %c", i, j, t, s[t], want)
				}
			}
		}
	}

	// spot checks
	checks := map[[2]int]string{
		{0, 0}: "CCC",
		{7, 7}: "GGG",
		{2, 3}: "CGA",
		{7, 0}: "TTT",
		{0, 7}: "AAA",
	}
	for p, want := range checks {
		s, err := m.At(p[0], p[1])
		if err != nil {
			tst.Error("Error: ", err)
		}
		if s != want {
			tst.Errorf("cell (%d, %d)=%s, want %s", p[0], p[1], s, want)
		}
	}
}

func TestAtBounds(tst *testing.T) {
	m, err := Build(3)
	if err != nil {
		tst.Error("Error: ", err)
	}
	for _, p := range [][2]int{{8, 0}, {0, 8}, {-1, 0}, {0, -1}, {8, 8}} {
		if _, err := m.At(p[0], p[1]); !errors.Is(err, ErrDimension) {
			tst.Errorf("At(%d, %d): expected ErrDimension, got %v", p[0], p[1], err)
		}
	}
}

func TestPosition(tst *testing.T) {
	m, err := Build(3)
	if err != nil {
		tst.Error("Error: ", err)
	}

	for _, c := range m.Cells() {
		i, j, err := m.Position(c.Seq)
		if err != nil {
			tst.Error("Error: ", err)
		}
		if i != c.Row || j != c.Col {
			tst.Errorf("Position(%s)=(%d, %d), want (%d, %d)", c.Seq, i, j, c.Row, c.Col)
		}
	}

	// U/T and case normalization happens at the boundary
	i, j, err := m.Position("uga")
	if err != nil {
		tst.Error("Error: ", err)
	}
	if s, _ := m.At(i, j); s != "TGA" {
		tst.Errorf("Position(uga) points at %s, want TGA", s)
	}

	if _, _, err := m.Position("AT"); !errors.Is(err, bio.ErrInvalidCodon) {
		tst.Error("expected ErrInvalidCodon for wrong-length sequence")
	}
	if _, _, err := m.Position("AXG"); !errors.Is(err, bio.ErrInvalidSymbol) {
		tst.Error("expected ErrInvalidSymbol for bad symbol")
	}
}

func TestCodonAt(tst *testing.T) {
	m3, err := Build(3)
	if err != nil {
		tst.Error("Error: ", err)
	}
	c, err := m3.CodonAt(0, 0)
	if err != nil {
		tst.Error("Error: ", err)
	}
	if c.String() != "CCC" {
		tst.Errorf("CodonAt(0, 0)=%s, want CCC", c)
	}

	m2, err := Build(2)
	if err != nil {
		tst.Error("Error: ", err)
	}
	if _, err := m2.CodonAt(0, 0); !errors.Is(err, ErrDimension) {
		tst.Error("expected ErrDimension for CodonAt on order-2 matrix")
	}
}
