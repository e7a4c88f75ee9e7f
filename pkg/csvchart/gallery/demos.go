package gallery

import (
	"image/color"
	"math"
	"math/rand"
	"time"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/ukaji3/csvchart-go/pkg/csvchart"
	"github.com/ukaji3/csvchart-go/pkg/csvchart/models"
)

var (
	blue   = color.RGBA{B: 255, A: 255}
	green  = color.RGBA{G: 128, A: 255}
	orange = color.RGBA{R: 255, G: 165, A: 255}
)

// ScatterPoints is the number of points in the scatter demo.
const ScatterPoints = 50

// AreaChart stacks three bands over sin(x) on [0, 6].
func AreaChart() (*csvchart.Chart, error) {
	chart := csvchart.NewChart("Area Chart", "", "")

	x := linspace(0, 6, 100)
	y1 := mapf(x, math.Sin)
	y2 := mapf(y1, func(v float64) float64 { return v + 1 })
	y3 := mapf(y2, func(v float64) float64 { return v + 1 })
	zero := make([]float64, len(x))

	bands := []struct {
		name         string
		lower, upper []float64
		color        color.Color
	}{
		{"Band 1", zero, y1, blue},
		{"Band 2", y1, y2, green},
		{"Band 3", y2, y3, orange},
	}
	for _, b := range bands {
		fill := withAlpha(b.color, 0.6)
		poly, err := plotter.NewPolygon(bandXYs(x, b.lower, b.upper))
		if err != nil {
			return nil, err
		}
		poly.Color = fill
		poly.LineStyle.Width = 0

		chart.AddSeries(models.Series{
			Name:   b.name,
			Mark:   models.MarkArea,
			Points: points(x, b.upper),
			Color:  fill,
		}, poly)
	}

	return chart, nil
}

// PieChart shows four slices with their percentage of the total.
func PieChart() (*csvchart.Chart, error) {
	chart := csvchart.NewChart("Pie Chart", "", "")

	values := []float64{10, 20, 30, 40}
	labels := []string{"Slice 1", "Slice 2", "Slice 3", "Slice 4"}

	pie, err := newPie(values, labels, pieColors)
	if err != nil {
		return nil, err
	}
	chart.AddSeries(models.Series{
		Mark:   models.MarkWedge,
		Points: points(indexes(len(values)), values),
		Labels: labels,
	}, pie)
	chart.Plot.HideAxes()

	return chart, nil
}

// LineChart plots sin, cos and their sum on [0, 10].
func LineChart() (*csvchart.Chart, error) {
	chart := csvchart.NewChart("Line Chart", "", "")

	x := linspace(0, 10, 100)
	sin := mapf(x, math.Sin)
	cos := mapf(x, math.Cos)
	sum := make([]float64, len(x))
	for i := range x {
		sum[i] = sin[i] + cos[i]
	}

	if err := addLines(chart, x, []curve{
		{"sin(x)", sin, blue},
		{"cos(x)", cos, green},
		{"sin(x)+cos(x)", sum, orange},
	}, true); err != nil {
		return nil, err
	}

	return chart, nil
}

// BarChart draws two grouped bar sets over four categories.
func BarChart() (*csvchart.Chart, error) {
	chart := csvchart.NewChart("Bar Chart", "", "")

	categories := []string{"A", "B", "C", "D"}
	sets := []struct {
		name   string
		values []float64
		color  color.Color
	}{
		{"Set 1", []float64{5, 7, 8, 6}, blue},
		{"Set 2", []float64{4, 3, 9, 5}, orange},
	}

	w := vg.Points(20)
	for i, set := range sets {
		bar, err := plotter.NewBarChart(plotter.Values(set.values), w)
		if err != nil {
			return nil, err
		}
		bar.Color = set.color
		bar.LineStyle.Width = 0
		bar.Offset = vg.Length(2*i-1) * w / 2

		chart.AddSeries(models.Series{
			Name:   set.name,
			Mark:   models.MarkBar,
			Points: points(indexes(len(set.values)), set.values),
			Labels: categories,
			Color:  set.color,
		}, bar)
		chart.Plot.Legend.Add(set.name, bar)
	}
	chart.Plot.NominalX(categories...)
	chart.Plot.Legend.Top = true

	return chart, nil
}

// SplineChart plots three sine curves offset by 0.5.
func SplineChart() (*csvchart.Chart, error) {
	chart := csvchart.NewChart("Spline Chart", "", "")

	x := linspace(0, 10, 100)
	y1 := mapf(x, math.Sin)
	y2 := mapf(y1, func(v float64) float64 { return v + 0.5 })
	y3 := mapf(y2, func(v float64) float64 { return v + 0.5 })

	if err := addLines(chart, x, []curve{
		{"Spline 1", y1, blue},
		{"Spline 2", y2, green},
		{"Spline 3", y3, orange},
	}, true); err != nil {
		return nil, err
	}

	return chart, nil
}

// ScatterChart draws random points of random size in the unit square.
func ScatterChart() (*csvchart.Chart, error) {
	return ScatterChartFrom(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// ScatterChartFrom draws the scatter demo using rng.
func ScatterChartFrom(rng *rand.Rand) (*csvchart.Chart, error) {
	chart := csvchart.NewChart("Scatter Chart", "", "")

	x := make([]float64, ScatterPoints)
	y := make([]float64, ScatterPoints)
	sizes := make([]float64, ScatterPoints)
	for i := range x {
		x[i] = rng.Float64()
	}
	for i := range y {
		y[i] = rng.Float64()
	}
	for i := range sizes {
		sizes[i] = rng.Float64() * 100
	}

	pts := points(x, y)
	sc, err := plotter.NewScatter(csvchart.XYs(pts))
	if err != nil {
		return nil, err
	}
	fill := withAlpha(blue, 0.6)
	sc.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		// marker size is an area in square points
		return draw.GlyphStyle{
			Color:  fill,
			Radius: vg.Points(math.Sqrt(sizes[i] / math.Pi)),
			Shape:  draw.CircleGlyph{},
		}
	}

	chart.AddSeries(models.Series{
		Mark:   models.MarkScatter,
		Points: pts,
		Color:  fill,
	}, sc)

	return chart, nil
}

// SimpleLineChart plots sin(x) on [0, 10].
func SimpleLineChart() (*csvchart.Chart, error) {
	chart := csvchart.NewChart("Simple Line Chart", "", "")

	x := linspace(0, 10, 100)
	if err := addLines(chart, x, []curve{{"", mapf(x, math.Sin), blue}}, false); err != nil {
		return nil, err
	}

	return chart, nil
}

// SimpleBarChart draws one bar per month.
func SimpleBarChart() (*csvchart.Chart, error) {
	chart := csvchart.NewChart("Simple Bar Chart", "", "")

	months := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}
	values := []float64{5, 6, 7, 8, 5, 6}

	bar, err := plotter.NewBarChart(plotter.Values(values), vg.Points(30))
	if err != nil {
		return nil, err
	}
	bar.Color = blue
	bar.LineStyle.Width = 0

	chart.AddSeries(models.Series{
		Mark:   models.MarkBar,
		Points: points(indexes(len(values)), values),
		Labels: months,
		Color:  blue,
	}, bar)
	chart.Plot.NominalX(months...)

	return chart, nil
}

// RadarChart draws five category scores as a filled polygon.
func RadarChart() (*csvchart.Chart, error) {
	chart := csvchart.NewChart("Radar Chart", "", "")

	categories := []string{"A", "B", "C", "D", "E"}
	values := []float64{4, 3, 2, 5, 4}

	if err := addRadar(chart, categories, values, blue); err != nil {
		return nil, err
	}

	return chart, nil
}

type curve struct {
	name  string
	y     []float64
	color color.Color
}

func addLines(chart *csvchart.Chart, x []float64, curves []curve, legend bool) error {
	for _, c := range curves {
		pts := points(x, c.y)
		line, err := plotter.NewLine(csvchart.XYs(pts))
		if err != nil {
			return err
		}
		line.Color = c.color

		chart.AddSeries(models.Series{
			Name:   c.name,
			Mark:   models.MarkLine,
			Points: pts,
			Color:  c.color,
		}, line)
		if legend {
			chart.Plot.Legend.Add(c.name, line)
		}
	}
	if legend {
		chart.Plot.Legend.Top = true
	}
	return nil
}

// linspace returns n evenly spaced samples over [start, stop].
func linspace(start, stop float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

func mapf(xs []float64, f func(float64) float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = f(x)
	}
	return out
}

func indexes(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

func points(xs, ys []float64) []models.XY {
	pts := make([]models.XY, len(xs))
	for i := range xs {
		pts[i] = models.XY{X: xs[i], Y: ys[i]}
	}
	return pts
}

// bandXYs outlines the region between lower and upper.
func bandXYs(x, lower, upper []float64) plotter.XYs {
	xys := make(plotter.XYs, 0, 2*len(x))
	for i := range x {
		xys = append(xys, plotter.XY{X: x[i], Y: upper[i]})
	}
	for i := len(x) - 1; i >= 0; i-- {
		xys = append(xys, plotter.XY{X: x[i], Y: lower[i]})
	}
	return xys
}

func withAlpha(c color.Color, alpha float64) color.Color {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: uint8(math.Round(alpha * 255)),
	}
}
