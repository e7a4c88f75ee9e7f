package models

import (
	"fmt"
	"strings"
)

// Kind is the rendering style of a user-requested chart.
type Kind int

const (
	// KindLine joins points in row order.
	KindLine Kind = iota
	// KindBar draws one bar per row, positioned by row order.
	KindBar
	// KindScatter draws one marker per row.
	KindScatter
)

// Kinds lists every chart kind in menu order.
var Kinds = []Kind{KindLine, KindBar, KindScatter}

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "Line"
	case KindBar:
		return "Bar"
	case KindScatter:
		return "Scatter"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind parses a chart kind name, ignoring case.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "line":
		return KindLine, nil
	case "bar":
		return KindBar, nil
	case "scatter":
		return KindScatter, nil
	default:
		return 0, fmt.Errorf("invalid chart kind: %s (must be line, bar, or scatter)", s)
	}
}

// ChartRequest describes the chart a user asked for.
type ChartRequest struct {
	// Kind selects the series style.
	Kind Kind
	// XColumn names the column plotted on the x axis.
	XColumn string
	// YColumn names the column plotted on the y axis.
	YColumn string
	// UseCustomColor switches from the default to the alternate color.
	UseCustomColor bool
	// Title is the optional chart title.
	Title string
}

// MissingColumn returns the first requested column absent from data.
func (r ChartRequest) MissingColumn(data *TabularData) (string, bool) {
	for _, name := range []string{r.XColumn, r.YColumn} {
		if !data.HasColumn(name) {
			return name, true
		}
	}
	return "", false
}
