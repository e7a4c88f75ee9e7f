package csvchart

import (
	"errors"
	"fmt"

	"github.com/ukaji3/csvchart-go/pkg/csvchart/parser"
)

// ErrEmptyFile indicates the input file has no header row.
var ErrEmptyFile = parser.ErrNoHeader

// ErrUnknownColumn indicates a chart request names a column the data does not have.
var ErrUnknownColumn = errors.New("unknown column")

// ErrInvalidValue indicates a cell cannot be read as a number.
var ErrInvalidValue = errors.New("invalid value")

// ErrUnsupportedFormat indicates an export path with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported format")

// ParseError represents a failure to load tabular data.
type ParseError struct {
	Path string
	Line int // 0 when the failure is not tied to a line
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse %s: line %d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// RenderError represents a chart request the data cannot satisfy.
type RenderError struct {
	Column string
	Row    int // 1-based data row, 0 when not tied to a row
	Err    error
}

func (e *RenderError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("render: column %q row %d: %v", e.Column, e.Row, e.Err)
	}
	return fmt.Sprintf("render: column %q: %v", e.Column, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// IOError represents a failure to write an exported chart.
type IOError struct {
	Path string
	Op   string // "encode", "write"
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("export %s (%s): %v", e.Path, e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
