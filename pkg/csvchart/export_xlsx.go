package csvchart

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/csvchart-go/pkg/csvchart/models"
)

// dataSheet is the sheet holding exported series values.
const dataSheet = "Data"

// ChartTypeMap maps series marks to native spreadsheet chart types.
var ChartTypeMap = map[models.Mark]excelize.ChartType{
	models.MarkLine:    excelize.Line,
	models.MarkBar:     excelize.Col,
	models.MarkScatter: excelize.Scatter,
	models.MarkArea:    excelize.Area,
	models.MarkWedge:   excelize.Pie,
	models.MarkRadar:   excelize.Radar,
}

// encodeXLSX writes the series values to a workbook and adds a native chart
// built from them. Each series occupies two columns: x (or label) and y.
func encodeXLSX(w io.Writer, chart *Chart, opts Options) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", dataSheet); err != nil {
		return err
	}

	var (
		series    []excelize.ChartSeries
		chartType excelize.ChartType
		typed     bool
	)
	for i, s := range chart.Series {
		xCol, yCol := 2*i+1, 2*i+2
		if err := writeSeries(f, s, chart.XLabel, xCol, yCol); err != nil {
			return err
		}
		if s.Len() == 0 {
			continue
		}
		if !typed {
			ct, ok := ChartTypeMap[s.Mark]
			if !ok {
				return fmt.Errorf("no spreadsheet chart type for mark %q", s.Mark)
			}
			chartType, typed = ct, true
		}
		series = append(series, excelize.ChartSeries{
			Name:       cellRef(yCol, 1),
			Categories: rangeRef(xCol, 2, s.Len()+1),
			Values:     rangeRef(yCol, 2, s.Len()+1),
		})
	}

	if len(series) > 0 {
		anchor, err := excelize.CoordinatesToCellName(2*len(chart.Series)+2, 1)
		if err != nil {
			return err
		}
		err = f.AddChart(dataSheet, anchor, &excelize.Chart{
			Type:   chartType,
			Series: series,
			Title:  richText(chart.Title),
			XAxis:  excelize.ChartAxis{Title: richText(chart.XLabel)},
			YAxis:  excelize.ChartAxis{Title: richText(chart.YLabel)},
			Dimension: excelize.ChartDimension{
				Width:  uint(opts.Width),
				Height: uint(opts.Height),
			},
		})
		if err != nil {
			return fmt.Errorf("add chart: %w", err)
		}
	}

	return f.Write(w)
}

// writeSeries writes a header row and one row per point.
// Labelled series write their labels in the x column.
func writeSeries(f *excelize.File, s models.Series, xLabel string, xCol, yCol int) error {
	name := s.Name
	if name == "" {
		name = fmt.Sprintf("Series %d", yCol/2)
	}
	if err := setCell(f, xCol, 1, xLabel); err != nil {
		return err
	}
	if err := setCell(f, yCol, 1, name); err != nil {
		return err
	}

	for i, pt := range s.Points {
		var x interface{} = pt.X
		if i < len(s.Labels) {
			x = s.Labels[i]
		}
		if err := setCell(f, xCol, i+2, x); err != nil {
			return err
		}
		if err := setCell(f, yCol, i+2, pt.Y); err != nil {
			return err
		}
	}
	return nil
}

func richText(s string) []excelize.RichTextRun {
	if s == "" {
		return nil
	}
	return []excelize.RichTextRun{{Text: s}}
}

func setCell(f *excelize.File, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(dataSheet, cell, value)
}

// cellRef returns an absolute reference such as Data!$B$1.
func cellRef(col, row int) string {
	name, _ := excelize.ColumnNumberToName(col)
	return fmt.Sprintf("%s!$%s$%d", dataSheet, name, row)
}

// rangeRef returns an absolute column range such as Data!$A$2:$A$10.
func rangeRef(col, fromRow, toRow int) string {
	name, _ := excelize.ColumnNumberToName(col)
	return fmt.Sprintf("%s!$%s$%d:$%s$%d", dataSheet, name, fromRow, name, toRow)
}
