package main

import "bitbucket.org/mgrlab/genomat/genomatrix"

// RunSummary stores genomat run summary information.
type RunSummary struct {
	// Version stores genomat version.
	Version string `json:"version"`
	// CommandLine is an array storing binary name and all command-line parameters.
	CommandLine []string `json:"commandLine"`
	// Command is the subcommand that was run.
	Command string `json:"command"`
	// Order is the matrix order the command operated on.
	Order int `json:"order,omitempty"`
	// Cells are the matrix cells with their positions (matrix command).
	Cells []genomatrix.Cell `json:"cells,omitempty"`
	// Codon is the (first) input codon.
	Codon string `json:"codon,omitempty"`
	// SecondCodon is the second input codon (hamming command).
	SecondCodon string `json:"secondCodon,omitempty"`
	// GrayCode is the 6-bit code of the input codon (encode command).
	GrayCode string `json:"grayCode,omitempty"`
	// Hamming is the Hamming distance between the two codon codes.
	Hamming *int `json:"hamming,omitempty"`
	// Position is the grid position of the input codon.
	Position []int `json:"position,omitempty"`
	// SymmetryOK reports that all symmetry invariants held.
	SymmetryOK bool `json:"symmetryOK,omitempty"`
	// Spectrum is the computed (or cached) spectrum.
	Spectrum []float64 `json:"spectrum,omitempty"`
	// Time is the computations time in seconds.
	Time float64 `json:"time"`
}
