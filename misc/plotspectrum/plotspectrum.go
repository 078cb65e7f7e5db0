// plotspectrum creates a plot of the Hadamard degeneracy spectrum of
// a genomatrix.
package main

import (
	"flag"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"bitbucket.org/mgrlab/genomat/genomatrix"
	"bitbucket.org/mgrlab/genomat/transform"
)

func main() {
	order := flag.Int("order", 3, "matrix order (1, 2 or 3)")
	out := flag.String("out", "spectrum.png", "output file name")
	flag.Parse()

	m, err := genomatrix.Build(*order)
	if err != nil {
		panic(err)
	}
	s, err := transform.Spectrum(m)
	if err != nil {
		panic(err)
	}
	fmt.Println(s)

	p := plot.New()
	p.Title.Text = fmt.Sprintf("order-%d spectrum", *order)
	p.X.Label.Text = "column"
	p.Y.Label.Text = "mean |magnitude|"

	pts := make(plotter.XYs, len(s))
	for i, v := range s {
		pts[i].X = float64(i)
		pts[i].Y = v
	}

	err = plotutil.AddLinePoints(p,
		"spectrum", pts)
	if err != nil {
		panic(err)
	}

	if err := p.Save(4*vg.Inch, 4*vg.Inch, *out); err != nil {
		panic(err)
	}
}
