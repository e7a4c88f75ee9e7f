// Package parser reads delimited text and spreadsheet files into tables.
package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ukaji3/csvchart-go/pkg/csvchart/models"
)

// ErrNoHeader indicates the input has no header row.
var ErrNoHeader = errors.New("no header row")

// LineError reports a problem on a specific input line.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// ReadCSV parses comma-separated text. The first record is the header.
func ReadCSV(r io.Reader) (*models.TabularData, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, err
	}
	columns := NormalizeHeader(header)

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(record) > len(columns) {
			line, _ := reader.FieldPos(0)
			return nil, &LineError{
				Line: line,
				Err:  fmt.Errorf("record has %d fields, header has %d", len(record), len(columns)),
			}
		}
		rows = append(rows, record)
	}

	return models.NewTabularData(columns, rows), nil
}

// NormalizeHeader trims header names, strips a UTF-8 byte-order mark and
// names empty headers by position.
func NormalizeHeader(header []string) []string {
	columns := make([]string, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		h = strings.TrimSpace(h)
		if h == "" {
			h = fmt.Sprintf("Column_%d", i+1)
		}
		columns[i] = h
	}
	return columns
}
