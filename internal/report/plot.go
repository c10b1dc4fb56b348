package report

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ErrNoCurve is returned by Plot when the report has no sweep curve.
var ErrNoCurve = errors.New("report has no concentration curve")

const (
	figWidth  = 6 * vg.Inch
	figHeight = 4 * vg.Inch
)

// NewPlot draws the free energy of separation (kJ per mole of minority
// species) against mole percent on a logarithmic x axis, with a dashed
// vertical line at the scenario's own concentration.
func NewPlot(r *Report) (*plot.Plot, error) {
	if len(r.Curve) == 0 {
		return nil, ErrNoCurve
	}
	species := r.Scenario.Species

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Minimum work to separate %s from an ideal gas mixture", species)
	p.X.Label.Text = fmt.Sprintf("Mole percent %s", species)
	p.Y.Label.Text = fmt.Sprintf("Free energy of separation (kJ/mol %s)", species)
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}

	xys := make(plotter.XYs, len(r.Curve))
	yMax := 0.0
	for i, pt := range r.Curve {
		xys[i].X = pt.MolePercent
		xys[i].Y = pt.SeparationPerMole / 1000
		if xys[i].Y > yMax {
			yMax = xys[i].Y
		}
	}

	curve, err := plotter.NewLine(xys)
	if err != nil {
		return nil, fmt.Errorf("building curve: %w", err)
	}
	curve.LineStyle.Width = vg.Points(1.5)

	pct := 100 * r.Quantities.MoleFraction
	ref, err := plotter.NewLine(plotter.XYs{{X: pct, Y: 0}, {X: pct, Y: yMax}})
	if err != nil {
		return nil, fmt.Errorf("building reference line: %w", err)
	}
	ref.LineStyle.Color = color.RGBA{R: 200, G: 30, B: 30, A: 255}
	ref.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}

	p.Add(plotter.NewGrid(), curve, ref)
	p.Legend.Top = true
	p.Legend.Add("ideal gas, "+sig(r.Quantities.Temperature, 4)+" K", curve)
	p.Legend.Add(fmt.Sprintf("%s in scenario (%s%%)", species, sig(pct, 3)), ref)
	return p, nil
}

// Plot renders the concentration curve of r to path. The image format
// follows the file extension (png, svg, pdf, ...).
func Plot(r *Report, path string) error {
	p, err := NewPlot(r)
	if err != nil {
		return err
	}
	if err := p.Save(figWidth, figHeight, path); err != nil {
		return fmt.Errorf("saving plot: %w", err)
	}
	return nil
}
