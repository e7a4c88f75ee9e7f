package gallery

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var pieColors = []color.Color{
	color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 255},
	color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 255},
	color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 255},
	color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 255},
}

// pieRange is the data range around the unit circle, leaving room for labels.
const pieRange = 1.3

// pie draws wedges proportional to its values around the data origin.
// Wedges start at angle 0 and run counter-clockwise.
type pie struct {
	values []float64
	labels []string
	colors []color.Color
	total  float64
}

func newPie(values []float64, labels []string, colors []color.Color) (*pie, error) {
	if len(values) == 0 {
		return nil, errors.New("pie: no values")
	}
	if len(labels) != len(values) {
		return nil, fmt.Errorf("pie: %d labels for %d values", len(labels), len(values))
	}
	var total float64
	for _, v := range values {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("pie: invalid value %v", v)
		}
		total += v
	}
	if total == 0 {
		return nil, errors.New("pie: values sum to zero")
	}
	return &pie{values: values, labels: labels, colors: colors, total: total}, nil
}

// Plot implements plot.Plotter.
func (p *pie) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	center := vg.Point{X: trX(0), Y: trY(0)}
	radius := trX(1) - trX(0)
	if ry := trY(1) - trY(0); ry < radius {
		radius = ry
	}

	sty := plt.X.Tick.Label
	sty.XAlign = text.XCenter
	sty.YAlign = text.YCenter

	start := 0.0
	for i, v := range p.values {
		sweep := 2 * math.Pi * v / p.total

		var path vg.Path
		path.Move(center)
		path.Line(polar(center, radius, start))
		path.Arc(center, radius, start, sweep)
		path.Close()
		c.SetColor(p.colors[i%len(p.colors)])
		c.Fill(path)

		mid := start + sweep/2
		c.FillText(sty, polar(center, radius*1.15, mid), p.labels[i])
		c.FillText(sty, polar(center, radius*0.6, mid), fmt.Sprintf("%.1f%%", 100*v/p.total))

		start += sweep
	}
}

// DataRange implements plot.DataRanger.
func (p *pie) DataRange() (xmin, xmax, ymin, ymax float64) {
	return -pieRange, pieRange, -pieRange, pieRange
}

func polar(center vg.Point, r vg.Length, angle float64) vg.Point {
	return vg.Point{
		X: center.X + r*vg.Length(math.Cos(angle)),
		Y: center.Y + r*vg.Length(math.Sin(angle)),
	}
}
