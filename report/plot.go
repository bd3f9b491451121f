package report

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/tspcompare/geom"
	"github.com/katalvlaran/tspcompare/tsp"
)

var (
	tourColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	cityColor = color.RGBA{R: 214, G: 39, B: 40, A: 255}
)

// PlotTour draws cities as points and tour as a closed line, and saves the
// figure to path. The image format follows the file extension (.png, .svg,
// .pdf, ...).
func PlotTour(path, title string, cities []geom.City, tour []int) error {
	if err := tsp.ValidatePermutation(tour, len(cities)); err != nil {
		return fmt.Errorf("plot %s: %w", path, err)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"

	pts := make(plotter.XYs, len(cities))
	for i, c := range cities {
		pts[i] = plotter.XY{X: c.X, Y: c.Y}
	}

	// Closed: the first city is repeated at the end.
	path0 := make(plotter.XYs, 0, len(tour)+1)
	for _, c := range tour {
		path0 = append(path0, pts[c])
	}
	path0 = append(path0, pts[tour[0]])

	line, err := plotter.NewLine(path0)
	if err != nil {
		return err
	}
	line.Color = tourColor
	line.Width = vg.Points(1.5)

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Color = cityColor
	scatter.GlyphStyle.Radius = vg.Points(3)

	p.Add(line, scatter)
	if err = p.Save(6*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	return nil
}
