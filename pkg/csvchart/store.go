package csvchart

import (
	"encoding/csv"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/csvchart-go/pkg/csvchart/models"
	"github.com/ukaji3/csvchart-go/pkg/csvchart/parser"
	"github.com/xuri/excelize/v2"
)

// Load reads tabular data from a file. Spreadsheet files (.xlsx, .xlsm) are
// read from their first sheet; everything else is read as comma-separated
// text.
func Load(path string) (*models.TabularData, error) {
	var (
		data *models.TabularData
		err  error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		data, err = loadSheet(path)
	default:
		data, err = loadCSV(path)
	}
	if err != nil {
		return nil, newParseError(path, err)
	}

	data.Source = filepath.Base(path)
	slog.Debug("loaded table", "path", path, "columns", data.Width(), "rows", data.Len())

	return data, nil
}

func loadCSV(path string) (*models.TabularData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return parser.ReadCSV(f)
}

func loadSheet(path string) (*models.TabularData, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return parser.ReadSheet(f, "")
}

func newParseError(path string, err error) *ParseError {
	pe := &ParseError{Path: path, Err: err}

	var lineErr *parser.LineError
	var csvErr *csv.ParseError
	switch {
	case errors.As(err, &lineErr):
		pe.Line = lineErr.Line
		pe.Err = lineErr.Err
	case errors.As(err, &csvErr):
		pe.Line = csvErr.Line
		pe.Err = csvErr.Err
	}

	return pe
}

// Session holds the table a user most recently loaded.
type Session struct {
	data *models.TabularData
	path string
}

// Load reads path and replaces the session's table. On failure the previous
// table is kept.
func (s *Session) Load(path string) error {
	data, err := Load(path)
	if err != nil {
		return err
	}
	s.data = data
	s.path = path
	return nil
}

// Data returns the loaded table, or nil when nothing has been loaded.
func (s *Session) Data() *models.TabularData {
	return s.data
}

// Path returns the path of the loaded table.
func (s *Session) Path() string {
	return s.path
}
