package gray

import (
	"errors"
	"testing"

	"bitbucket.org/mgrlab/genomat/bio"
)

func TestCodeBijection(tst *testing.T) {
	seen := make(map[string]bool, bio.NBase)
	for b := bio.Base(0); b < bio.NBase; b++ {
		code := Code(b)
		if len(code) != 2 {
			tst.Errorf("Code(%v)=%q, want 2 bits", b, code)
		}
		if seen[code] {
			tst.Errorf("code %q is not unique", code)
		}
		seen[code] = true
	}
}

// Neighbors in the C-A-G-T ring differ in exactly one physicochemical
// opposition and must differ in exactly one bit; the diagonal pairs
// (complements) differ in two.
func TestRingAdjacency(tst *testing.T) {
	ring := []bio.Base{bio.C, bio.A, bio.G, bio.T}
	for i, b := range ring {
		next := ring[(i+1)%len(ring)]
		d, err := Hamming(Code(b), Code(next))
		if err != nil {
			tst.Error("Error: ", err)
		}
		if d != 1 {
			tst.Errorf("Hamming(%v, %v)=%d, want 1", b, next, d)
		}
	}
	for _, pair := range [][2]bio.Base{{bio.C, bio.G}, {bio.A, bio.T}} {
		d, err := Hamming(Code(pair[0]), Code(pair[1]))
		if err != nil {
			tst.Error("Error: ", err)
		}
		if d != 2 {
			tst.Errorf("Hamming(%v, %v)=%d, want 2", pair[0], pair[1], d)
		}
	}
}

func TestEncode(tst *testing.T) {
	codes := map[string]string{
		"ATG": "011011",
		"ATA": "011001",
		"CCC": "000000",
		"GGG": "111111",
	}
	for s, want := range codes {
		c, err := bio.ParseCodon(s)
		if err != nil {
			tst.Error("Error: ", err)
		}
		if got := Encode(c); got != want {
			tst.Errorf("Encode(%s)=%s, want %s", s, got, want)
		}
	}
}

func TestDecode(tst *testing.T) {
	for _, s := range []string{"ATG", "CAT", "GTC"} {
		c, err := bio.ParseCodon(s)
		if err != nil {
			tst.Error("Error: ", err)
		}
		back, err := Decode(Encode(c))
		if err != nil {
			tst.Error("Error: ", err)
		}
		if back != c {
			tst.Errorf("round trip %s -> %s -> %s", s, Encode(c), back)
		}
	}

	if _, err := Decode("0110"); !errors.Is(err, bio.ErrInvalidCodon) {
		tst.Error("expected ErrInvalidCodon for 4-bit code")
	}
	if _, err := Decode("01x011"); !errors.Is(err, bio.ErrInvalidSymbol) {
		tst.Error("expected ErrInvalidSymbol for non-bit symbol")
	}
}

func TestHamming(tst *testing.T) {
	atg, _ := bio.ParseCodon("ATG")
	ata, _ := bio.ParseCodon("ATA")
	d, err := Hamming(Encode(atg), Encode(ata))
	if err != nil {
		tst.Error("Error: ", err)
	}
	if d != 2 {
		tst.Errorf("Hamming(ATG, ATA)=%d, want 2", d)
	}

	if d, err = Hamming("0000", "0000"); err != nil || d != 0 {
		tst.Errorf("Hamming of identical strings: d=%d, err=%v", d, err)
	}
	if _, err = Hamming("00", "000"); !errors.Is(err, bio.ErrInvalidCodon) {
		tst.Error("expected error for length mismatch")
	}
}
