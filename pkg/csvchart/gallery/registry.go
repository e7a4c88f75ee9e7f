// Package gallery provides a catalog of demonstration charts built from
// synthetic sample data.
package gallery

import (
	"errors"
	"fmt"

	"github.com/ukaji3/csvchart-go/pkg/csvchart"
)

// ErrUnknownChart indicates a chart name that is not registered.
var ErrUnknownChart = errors.New("unknown chart")

// Builder produces a demonstration chart.
type Builder func() (*csvchart.Chart, error)

type entry struct {
	name  string
	build Builder
}

// Registry is an ordered catalog of named chart builders.
type Registry struct {
	entries []entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends a builder under name. Names must be non-empty and unique.
func (r *Registry) Register(name string, build Builder) error {
	if name == "" {
		return errors.New("chart name must not be empty")
	}
	if build == nil {
		return fmt.Errorf("chart %q: nil builder", name)
	}
	if r.index(name) >= 0 {
		return fmt.Errorf("chart %q already registered", name)
	}
	r.entries = append(r.entries, entry{name: name, build: build})
	return nil
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.name
	}
	return names
}

// Len returns the number of registered charts.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Render builds the chart registered under name.
func (r *Registry) Render(name string) (*csvchart.Chart, error) {
	idx := r.index(name)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownChart, name)
	}
	chart, err := r.entries[idx].build()
	if err != nil {
		return nil, fmt.Errorf("chart %q: %w", name, err)
	}
	return chart, nil
}

func (r *Registry) index(name string) int {
	for i, e := range r.entries {
		if e.name == name {
			return i
		}
	}
	return -1
}

// Default returns a registry holding the nine built-in demonstration charts.
func Default() *Registry {
	r := NewRegistry()
	for _, e := range []entry{
		{"Area Chart", AreaChart},
		{"Pie Chart", PieChart},
		{"Line Chart", LineChart},
		{"Bar Chart", BarChart},
		{"Spline Chart", SplineChart},
		{"Scatter Chart", ScatterChart},
		{"Simple Line Chart", SimpleLineChart},
		{"Simple Bar Chart", SimpleBarChart},
		{"Radar Chart", RadarChart},
	} {
		if err := r.Register(e.name, e.build); err != nil {
			panic(err)
		}
	}
	return r
}
