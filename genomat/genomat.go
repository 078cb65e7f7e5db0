/*

Genomat builds the genetic-code matrices (genomatrices) by iterated
Kronecker product, encodes bases and codons as Gray codes, verifies
the complementarity symmetries of the construction and computes the
Hadamard degeneracy spectrum.

Print the 8x8 codon matrix:

	genomat matrix

Encode a codon and compare two codons:

	genomat encode ATG
	genomat hamming ATG ATA

Compute the spectrum of the order-3 matrix, caching the result:

	genomat --cache spectra.db spectrum 3

To see all the options run:

	genomat --help

*/
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/op/go-logging"

	bolt "go.etcd.io/bbolt"

	"bitbucket.org/mgrlab/genomat/bio"
	"bitbucket.org/mgrlab/genomat/cache"
	"bitbucket.org/mgrlab/genomat/genomatrix"
	"bitbucket.org/mgrlab/genomat/gray"
	"bitbucket.org/mgrlab/genomat/symmetry"
	"bitbucket.org/mgrlab/genomat/transform"
)

// These three variables are set during the compilation.
var githash = ""
var gitbranch = ""
var buildstamp = ""
var version = fmt.Sprintf("branch: %s, revision: %s, build time: %s", gitbranch, githash, buildstamp)

// Logger settings.
var log = logging.MustGetLogger("genomat")
var formatter = logging.MustStringFormatter(`%{message}`)

// command-line options
var (
	// application
	app = kingpin.New("genomat", "genetic code matrix construction and spectral analysis").Version(version)

	// input/output
	outLogF   = app.Flag("log", "write log to a file").String()
	jsonF     = app.Flag("json", "write json output to a file").String()
	settingsF = app.Flag("settings", "read run settings from a YAML file").ExistingFile()
	cacheF    = app.Flag("cache", "bbolt file caching computed spectra").String()
	logLevel  = app.Flag("loglevel", "set loglevel "+
		"('critical', 'error', 'warning', 'notice', 'info', 'debug')").
		Default("notice").
		Enum("critical", "error", "warning", "notice", "info", "debug")

	// commands
	matrixCmd   = app.Command("matrix", "print the order-k genomatrix")
	matrixOrder = matrixCmd.Arg("order", "matrix order (1, 2 or 3)").Default("3").Int()

	encodeCmd   = app.Command("encode", "print the 6-bit Gray code of a codon")
	encodeCodon = encodeCmd.Arg("codon", "codon (3 bases, U/T interchangeable)").Required().String()

	hammingCmd = app.Command("hamming", "Hamming distance between the Gray codes of two codons")
	hammingA   = hammingCmd.Arg("first", "first codon").Required().String()
	hammingB   = hammingCmd.Arg("second", "second codon").Required().String()

	positionCmd   = app.Command("position", "grid position of a codon in the order-3 matrix")
	positionCodon = positionCmd.Arg("codon", "codon").Required().String()

	symmetryCmd   = app.Command("symmetry", "verify the complementarity invariants of the matrix")
	symmetryOrder = symmetryCmd.Arg("order", "matrix order (1, 2 or 3)").Default("3").Int()

	spectrumCmd   = app.Command("spectrum", "compute the Hadamard degeneracy spectrum")
	spectrumOrder = spectrumCmd.Arg("order", "matrix order (1, 2 or 3)").Default("3").Int()
)

// runMatrix prints the order-k matrix.
func runMatrix(order int, summary *RunSummary) error {
	m, err := genomatrix.Build(order)
	if err != nil {
		return err
	}
	fmt.Print(m)
	summary.Order = order
	summary.Cells = m.Cells()
	return nil
}

// runEncode prints the Gray code of a codon.
func runEncode(s string, summary *RunSummary) error {
	c, err := bio.ParseCodon(s)
	if err != nil {
		return err
	}
	code := gray.Encode(c)
	log.Infof("Codon %s, amino acid %c, degeneracy %d", c, c.AminoAcid(), bio.Degeneracy(c))
	fmt.Println(code)
	summary.Codon = c.String()
	summary.GrayCode = code
	return nil
}

// runHamming prints the Hamming distance between two codon codes.
func runHamming(a, b string, summary *RunSummary) error {
	ca, err := bio.ParseCodon(a)
	if err != nil {
		return err
	}
	cb, err := bio.ParseCodon(b)
	if err != nil {
		return err
	}
	d, err := gray.Hamming(gray.Encode(ca), gray.Encode(cb))
	if err != nil {
		return err
	}
	fmt.Println(d)
	summary.Codon = ca.String()
	summary.SecondCodon = cb.String()
	summary.Hamming = &d
	return nil
}

// runPosition prints the grid position of a codon.
func runPosition(s string, summary *RunSummary) error {
	m, err := genomatrix.Build(genomatrix.MaxOrder)
	if err != nil {
		return err
	}
	i, j, err := m.Position(s)
	if err != nil {
		return err
	}
	rc, err := m.At(symmetry.ReverseComplementPosition(i, j, m.Order()))
	if err != nil {
		return err
	}
	log.Infof("Reverse complement %s", rc)
	fmt.Printf("%d\t%d\n", i, j)
	summary.Codon = s
	summary.Position = []int{i, j}
	return nil
}

// runSymmetry verifies the complementarity invariants.
func runSymmetry(order int, summary *RunSummary) error {
	m, err := genomatrix.Build(order)
	if err != nil {
		return err
	}
	if err := symmetry.CheckComplementReflection(m); err != nil {
		return err
	}
	log.Info("Complement point reflection holds")
	if err := symmetry.CheckReverseComplementPositions(m); err != nil {
		return err
	}
	log.Info("Reverse complement positions hold")
	fmt.Println("ok")
	summary.Order = order
	summary.SymmetryOK = true
	return nil
}

// runSpectrum computes (or loads from the cache) the spectrum.
func runSpectrum(order int, cio *cache.IO, summary *RunSummary) error {
	r, err := cio.Load(order)
	if err != nil {
		log.Error("Error reading cache:", err)
	}
	if r == nil {
		m, err := genomatrix.Build(order)
		if err != nil {
			return err
		}
		s, err := transform.Spectrum(m)
		if err != nil {
			return err
		}
		r = &cache.Result{Order: order, Spectrum: s}
		if err := cio.Save(r); err != nil {
			log.Error("Error writing cache:", err)
		}
	}
	fmt.Println(r.Spectrum)
	summary.Order = order
	summary.Spectrum = r.Spectrum
	return nil
}

func main() {
	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))

	// logging
	logging.SetFormatter(formatter)

	var backend *logging.LogBackend
	if *outLogF != "" {
		f, err := os.OpenFile(*outLogF, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			log.Fatal("Error creating log file:", err)
		}
		defer f.Close()
		backend = logging.NewLogBackend(f, "", 0)
	} else {
		backend = logging.NewLogBackend(os.Stderr, "", 0)
	}
	logging.SetBackend(backend)

	level, err := logging.LogLevel(*logLevel)
	if err != nil {
		log.Fatal(err)
	}
	logging.SetLevel(level, "genomat")
	logging.SetLevel(level, "cache")

	// print revision
	log.Info(version)

	// print commandline
	log.Info("Command line:", os.Args)

	settings, err := readSettings(*settingsF)
	if err != nil {
		log.Fatal("Error reading settings:", err)
	}
	settings.apply()

	var db *bolt.DB
	if *cacheF != "" {
		db, err = bolt.Open(*cacheF, 0644, nil)
		if err != nil {
			log.Fatal("Error opening cache file:", err)
		}
		defer db.Close()
	}
	cio := cache.NewIO(db)

	startTime := time.Now()
	summary := &RunSummary{
		Version:     version,
		CommandLine: os.Args,
		Command:     cmd,
	}

	switch cmd {
	case matrixCmd.FullCommand():
		err = runMatrix(*matrixOrder, summary)
	case encodeCmd.FullCommand():
		err = runEncode(*encodeCodon, summary)
	case hammingCmd.FullCommand():
		err = runHamming(*hammingA, *hammingB, summary)
	case positionCmd.FullCommand():
		err = runPosition(*positionCodon, summary)
	case symmetryCmd.FullCommand():
		err = runSymmetry(*symmetryOrder, summary)
	case spectrumCmd.FullCommand():
		err = runSpectrum(*spectrumOrder, cio, summary)
	}
	if err != nil {
		log.Fatal(err)
	}

	deltaT := time.Since(startTime)
	log.Noticef("Running time: %v", deltaT)
	summary.Time = deltaT.Seconds()

	// output summary in json format
	if *jsonF != "" {
		j, err := json.Marshal(summary)
		if err != nil {
			log.Error(err)
		} else {
			log.Debug(string(j))
			f, err := os.Create(*jsonF)
			if err != nil {
				log.Error("Error creating json output file:", err)
			} else {
				f.Write(j)
				f.Close()
			}
		}
	}
}
