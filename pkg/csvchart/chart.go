package csvchart

import (
	"gonum.org/v1/plot"

	"github.com/ukaji3/csvchart-go/pkg/csvchart/models"
)

// Chart is a rendered chart ready for export.
type Chart struct {
	// Title is the chart title (may be empty).
	Title string
	// XLabel is the x axis label.
	XLabel string
	// YLabel is the y axis label.
	YLabel string
	// Series holds the plotted data in draw order.
	Series []models.Series
	// Plot is the drawable plot.
	Plot *plot.Plot
}

// NewChart creates an empty chart with its title and axis labels set.
func NewChart(title, xLabel, yLabel string) *Chart {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	return &Chart{
		Title:  title,
		XLabel: xLabel,
		YLabel: yLabel,
		Plot:   p,
	}
}

// AddSeries records a series and adds its plotters to the plot.
func (c *Chart) AddSeries(s models.Series, plotters ...plot.Plotter) {
	c.Series = append(c.Series, s)
	c.Plot.Add(plotters...)
}
