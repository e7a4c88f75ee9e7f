package gallery

import (
	"errors"
	"image/color"
	"math"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/ukaji3/csvchart-go/pkg/csvchart"
	"github.com/ukaji3/csvchart-go/pkg/csvchart/models"
)

var radarGridColor = color.Gray{Y: 200}

// addRadar draws values as a closed polygon on one spoke per category,
// over a grid of concentric rings at each integer up to the maximum value.
func addRadar(chart *csvchart.Chart, categories []string, values []float64, col color.Color) error {
	if len(categories) < 3 || len(categories) != len(values) {
		return errors.New("radar: need at least three categories with one value each")
	}

	n := len(categories)
	maxValue := 0.0
	for _, v := range values {
		maxValue = math.Max(maxValue, v)
	}
	rings := int(math.Ceil(maxValue))

	// grid
	for ring := 1; ring <= rings; ring++ {
		line, err := plotter.NewLine(radarXYs(constant(n, float64(ring)), true))
		if err != nil {
			return err
		}
		line.Color = radarGridColor
		line.Width = vg.Points(0.5)
		chart.Plot.Add(line)
	}
	for i := 0; i < n; i++ {
		end := radarXY(float64(rings), i, n)
		spoke, err := plotter.NewLine(plotter.XYs{{}, end})
		if err != nil {
			return err
		}
		spoke.Color = radarGridColor
		spoke.Width = vg.Points(0.5)
		chart.Plot.Add(spoke)
	}

	outline := radarXYs(values, true)
	poly, err := plotter.NewPolygon(outline)
	if err != nil {
		return err
	}
	poly.Color = withAlpha(col, 0.25)
	poly.LineStyle.Width = 0

	line, err := plotter.NewLine(outline)
	if err != nil {
		return err
	}
	line.Color = col

	chart.AddSeries(models.Series{
		Mark:   models.MarkRadar,
		Points: points(indexes(n), values),
		Labels: categories,
		Color:  col,
	}, poly, line)

	labelRadius := float64(rings) * 1.12
	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    radarXYs(constant(n, labelRadius), false),
		Labels: categories,
	})
	if err != nil {
		return err
	}
	chart.Plot.Add(labels)

	limit := float64(rings) * 1.25
	chart.Plot.X.Min, chart.Plot.X.Max = -limit, limit
	chart.Plot.Y.Min, chart.Plot.Y.Max = -limit, limit
	chart.Plot.HideAxes()

	return nil
}

// radarXY places value v on spoke i of n. Spoke 0 points along +x.
func radarXY(v float64, i, n int) plotter.XY {
	angle := 2 * math.Pi * float64(i) / float64(n)
	return plotter.XY{X: v * math.Cos(angle), Y: v * math.Sin(angle)}
}

func radarXYs(values []float64, closed bool) plotter.XYs {
	xys := make(plotter.XYs, 0, len(values)+1)
	for i, v := range values {
		xys = append(xys, radarXY(v, i, len(values)))
	}
	if closed {
		xys = append(xys, xys[0])
	}
	return xys
}

func constant(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
