// Plotting. Each alignment gets two pages in one pdf. The first has
// raw counts, the second the same numbers divided by the number of
// sequences. Columns are stacked bars, internal gaps below, end-runs
// on top.

package gapstat

import (
	"fmt"
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgpdf"
)

// A4 landscape
var (
	pgWidth  = vg.Points(842)
	pgHeight = vg.Points(595)
)

var (
	clrIntnl = color.RGBA{R: 214, G: 39, B: 40, A: 255}  // internal gaps
	clrLtail = color.RGBA{R: 31, G: 119, B: 180, A: 255} // leading/trailing runs
	clrDvdr  = color.RGBA{R: 120, G: 120, B: 120, A: 255}
)

// barPage makes one page with the two stacked bar sets. The first bar
// sits at x = 1, so the axis numbering agrees with the table output.
// Divider lines are drawn at the inner segment boundaries, from the
// same segment list the counting used.
func barPage(gc *GapCount, intnl, ltail plotter.Values, ymax float64, ylabel string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s, %d sequences", gc.Name, gc.NSeq)
	p.X.Label.Text = "alignment position"
	p.Y.Label.Text = ylabel
	p.Y.Min, p.Y.Max = 0, ymax

	bIntnl, err := plotter.NewBarChart(intnl, vg.Points(2))
	if err != nil {
		return nil, err
	}
	bLtail, err := plotter.NewBarChart(ltail, vg.Points(2))
	if err != nil {
		return nil, err
	}
	for _, b := range []*plotter.BarChart{bIntnl, bLtail} {
		b.LineStyle.Width = 0
		b.XMin = 1
	}
	bIntnl.Color = clrIntnl
	bLtail.Color = clrLtail
	bLtail.StackOn(bIntnl)
	p.Add(bIntnl, bLtail)
	p.Legend.Add(labelIntnl, bIntnl)
	p.Legend.Add(labelLtail, bLtail)
	p.Legend.Top = true

	for _, sg := range gc.Segs[1:] { // only inner boundaries
		x := float64(sg.From) + 0.5
		dv, err := plotter.NewLine(plotter.XYs{{X: x, Y: 0}, {X: x, Y: ymax}})
		if err != nil {
			return nil, err
		}
		dv.LineStyle.Color = clrDvdr
		dv.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		p.Add(dv)
	}
	return p, nil
}

// pages builds the two plots for one alignment. rawmax is the y-axis
// top shared by the raw pages of every alignment in the run.
func pages(gc *GapCount, rawmax float64) ([]*plot.Plot, error) {
	ncol := len(gc.Internal)
	intnl := make(plotter.Values, ncol)
	ltail := make(plotter.Values, ncol)
	frIntnl := make(plotter.Values, ncol)
	frLtail := make(plotter.Values, ncol)
	nseq := float64(gc.NSeq)
	for i := 0; i < ncol; i++ {
		intnl[i] = float64(gc.Internal[i])
		ltail[i] = float64(gc.LeadTrail[i])
		frIntnl[i] = intnl[i] / nseq
		frLtail[i] = ltail[i] / nseq
	}
	raw, err := barPage(gc, intnl, ltail, rawmax, "gaps")
	if err != nil {
		return nil, err
	}
	frc, err := barPage(gc, frIntnl, frLtail, 1.05, "fraction of sequences")
	if err != nil {
		return nil, err
	}
	return []*plot.Plot{raw, frc}, nil
}

// rawYMax finds the tallest stacked bar over all the alignments, so
// the raw pages share one y-axis and can be compared by eye.
func rawYMax(counts []*GapCount) float64 {
	m := 0
	for _, gc := range counts {
		for i := range gc.Internal {
			if t := gc.Internal[i] + gc.LeadTrail[i]; t > m {
				m = t
			}
		}
	}
	if m == 0 {
		return 1
	}
	return 1.05 * float64(m)
}

// WritePdf renders all the pages into one pdf file. The caller has
// already checked that fname does not exist.
func WritePdf(fname string, counts []*GapCount) error {
	cnvs := vgpdf.New(pgWidth, pgHeight)
	rawmax := rawYMax(counts)
	npage := 0
	for _, gc := range counts {
		pp, err := pages(gc, rawmax)
		if err != nil {
			return err
		}
		for _, p := range pp {
			if npage > 0 {
				cnvs.NextPage()
			}
			p.Draw(draw.New(cnvs))
			npage++
		}
	}

	fp, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer fp.Close()
	if _, err := cnvs.WriteTo(fp); err != nil {
		return err
	}
	return nil
}
