package csvchart

import (
	"fmt"
	"log/slog"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/ukaji3/csvchart-go/pkg/csvchart/models"
	"github.com/ukaji3/csvchart-go/pkg/csvchart/parser"
)

// Render renders a chart from data using default options.
func Render(data *models.TabularData, req models.ChartRequest) (*Chart, error) {
	return RenderWithOptions(data, req, DefaultOptions())
}

// RenderWithOptions renders a chart from data.
// The x and y columns are read in row order; no sorting or aggregation
// takes place.
func RenderWithOptions(data *models.TabularData, req models.ChartRequest, opts Options) (*Chart, error) {
	if data == nil {
		data = models.NewTabularData(nil, nil)
	}
	if name, missing := req.MissingColumn(data); missing {
		return nil, &RenderError{Column: name, Err: ErrUnknownColumn}
	}

	xs, _ := data.Column(req.XColumn)
	ys, _ := data.Column(req.YColumn)

	yv, err := numericColumn(req.YColumn, ys)
	if err != nil {
		return nil, err
	}

	chart := NewChart(req.Title, req.XColumn, req.YColumn)
	series := models.Series{
		Name:  req.YColumn,
		Color: opts.SeriesColor(req.UseCustomColor),
	}

	switch req.Kind {
	case models.KindLine, models.KindScatter:
		xv, err := numericColumn(req.XColumn, xs)
		if err != nil {
			return nil, err
		}
		series.Points = zipPoints(xv, yv)
		if req.Kind == models.KindLine {
			series.Mark = models.MarkLine
		} else {
			series.Mark = models.MarkScatter
		}

	case models.KindBar:
		series.Mark = models.MarkBar
		series.Labels = append([]string(nil), xs...)
		series.Points = make([]models.XY, len(yv))
		for i, y := range yv {
			series.Points[i] = models.XY{X: float64(i), Y: y}
		}

	default:
		return nil, fmt.Errorf("render: unsupported chart kind %v", req.Kind)
	}

	if series.Len() == 0 {
		chart.Series = append(chart.Series, series)
		return chart, nil
	}

	p, err := seriesPlotter(series, barWidth(opts, series.Len()))
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	chart.AddSeries(series, p)
	if series.Mark == models.MarkBar {
		chart.Plot.NominalX(series.Labels...)
	}

	slog.Debug("rendered chart",
		"kind", req.Kind.String(),
		"x", req.XColumn,
		"y", req.YColumn,
		"points", series.Len(),
	)

	return chart, nil
}

// numericColumn coerces a column to numbers, reporting the first bad row.
func numericColumn(name string, values []string) ([]float64, error) {
	out, idx, err := parser.ParseNumbers(values)
	if err != nil {
		return nil, &RenderError{
			Column: name,
			Row:    idx + 1,
			Err:    fmt.Errorf("%w: %q", ErrInvalidValue, values[idx]),
		}
	}
	return out, nil
}

func zipPoints(xs, ys []float64) []models.XY {
	pts := make([]models.XY, len(xs))
	for i := range xs {
		pts[i] = models.XY{X: xs[i], Y: ys[i]}
	}
	return pts
}

// XYs converts series points to a plotter.XYs.
func XYs(pts []models.XY) plotter.XYs {
	xys := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		xys[i].X = pt.X
		xys[i].Y = pt.Y
	}
	return xys
}

// seriesPlotter builds the plotter for a line, scatter or bar series.
func seriesPlotter(s models.Series, width vg.Length) (plot.Plotter, error) {
	switch s.Mark {
	case models.MarkLine:
		line, err := plotter.NewLine(XYs(s.Points))
		if err != nil {
			return nil, err
		}
		line.Color = s.Color
		line.Width = vg.Points(1.5)
		return line, nil

	case models.MarkScatter:
		sc, err := plotter.NewScatter(XYs(s.Points))
		if err != nil {
			return nil, err
		}
		sc.GlyphStyle.Color = s.Color
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		sc.GlyphStyle.Radius = vg.Points(3)
		return sc, nil

	case models.MarkBar:
		values := make(plotter.Values, len(s.Points))
		for i, pt := range s.Points {
			values[i] = pt.Y
		}
		bar, err := plotter.NewBarChart(values, width)
		if err != nil {
			return nil, err
		}
		bar.Color = s.Color
		bar.LineStyle.Width = 0
		return bar, nil

	default:
		return nil, fmt.Errorf("unsupported mark %q", s.Mark)
	}
}

// barWidth fits n bars into the plot width, capped at 20pt.
func barWidth(opts Options, n int) vg.Length {
	w := PixelsToLength(opts.Width, opts.DPI) * 0.6 / vg.Length(n)
	if w > vg.Points(20) {
		w = vg.Points(20)
	}
	if w < vg.Points(1) {
		w = vg.Points(1)
	}
	return w
}
