package csvchart_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/csvchart-go/pkg/csvchart"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadCSV(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "data.csv", "a,b,c\n1,2,3\n4,5,6\n7,8,9\n")

	data, err := csvchart.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "data.csv", data.Source)
	assert.Equal(t, []string{"a", "b", "c"}, data.Columns())
	assert.Equal(t, 3, data.Len())
	assert.Equal(t, []string{"7", "8", "9"}, data.Row(2))
}

func TestLoadEmptyFile(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "empty.csv", "")

	_, err := csvchart.Load(path)
	require.Error(t, err)

	var pe *csvchart.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, path, pe.Path)
	assert.ErrorIs(t, err, csvchart.ErrEmptyFile)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := csvchart.Load(filepath.Join(t.TempDir(), "missing.csv"))

	var pe *csvchart.ParseError
	require.ErrorAs(t, err, &pe)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadLongRecord(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "long.csv", "a,b\n1,2\n3,4,5\n")

	_, err := csvchart.Load(path)

	var pe *csvchart.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 3, pe.Line)
}

func TestLoadMalformedQuote(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "bad.csv", "a,b\n1,\"2\n")

	_, err := csvchart.Load(path)

	var pe *csvchart.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Positive(t, pe.Line)
}

func TestLoadXLSX(t *testing.T) {
	t.Parallel()

	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"x", "y"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{1, 2}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]interface{}{3, 4}))

	path := filepath.Join(t.TempDir(), "data.xlsx")
	require.NoError(t, f.SaveAs(path))

	data, err := csvchart.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, data.Columns())
	assert.Equal(t, 2, data.Len())
	assert.Equal(t, []string{"3", "4"}, data.Row(1))
}

func TestSessionLoadReplacesData(t *testing.T) {
	t.Parallel()

	first := writeFile(t, "first.csv", "a\n1\n")
	second := writeFile(t, "second.csv", "b,c\n1,2\n3,4\n")

	var s csvchart.Session
	assert.Nil(t, s.Data())

	require.NoError(t, s.Load(first))
	assert.Equal(t, []string{"a"}, s.Data().Columns())

	require.NoError(t, s.Load(second))
	assert.Equal(t, []string{"b", "c"}, s.Data().Columns())
	assert.Equal(t, 2, s.Data().Len())
	assert.Equal(t, second, s.Path())
}

func TestSessionFailedLoadKeepsData(t *testing.T) {
	t.Parallel()

	good := writeFile(t, "good.csv", "a\n1\n")
	empty := writeFile(t, "empty.csv", "")

	var s csvchart.Session
	require.NoError(t, s.Load(good))

	err := s.Load(empty)
	require.True(t, errors.Is(err, csvchart.ErrEmptyFile))
	assert.Equal(t, []string{"a"}, s.Data().Columns())
	assert.Equal(t, good, s.Path())
}
