package models

import "image/color"

// Mark is how a series is drawn.
type Mark string

const (
	MarkLine    Mark = "line"
	MarkBar     Mark = "bar"
	MarkScatter Mark = "scatter"
	MarkArea    Mark = "area"
	MarkWedge   Mark = "wedge"
	MarkRadar   Mark = "radar"
)

// XY is a single data point.
type XY struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Series represents one plotted data series.
type Series struct {
	// Name is the legend name (may be empty).
	Name string `json:"name,omitempty"`
	// Mark is the drawing style.
	Mark Mark `json:"mark"`
	// Points holds the plotted values in draw order.
	Points []XY `json:"points"`
	// Labels holds category names for nominal axes, pie slices and radar spokes.
	Labels []string `json:"labels,omitempty"`
	// Color is the series color.
	Color color.Color `json:"-"`
}

// Len returns the number of points in the series.
func (s Series) Len() int {
	return len(s.Points)
}
