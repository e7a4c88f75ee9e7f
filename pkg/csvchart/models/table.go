package models

// TabularData holds a parsed header row and its data rows.
//
// Every row carries exactly one value per declared column. When the header
// repeats a name, lookups resolve to the last column with that name.
type TabularData struct {
	// Source is the file name the data was loaded from (no path).
	Source string
	columns []string
	rows    [][]string
	index   map[string]int
}

// NewTabularData builds a table from a header and rows. Short rows are
// padded with empty values and long rows are truncated to the header width.
func NewTabularData(columns []string, rows [][]string) *TabularData {
	t := &TabularData{
		columns: append([]string(nil), columns...),
		rows:    make([][]string, 0, len(rows)),
		index:   make(map[string]int, len(columns)),
	}
	for i, name := range t.columns {
		t.index[name] = i
	}
	for _, row := range rows {
		t.rows = append(t.rows, t.normalize(row))
	}
	return t
}

func (t *TabularData) normalize(row []string) []string {
	out := make([]string, len(t.columns))
	copy(out, row)
	return out
}

// Columns returns the header names in file order.
func (t *TabularData) Columns() []string {
	return append([]string(nil), t.columns...)
}

// Width returns the number of declared columns.
func (t *TabularData) Width() int {
	return len(t.columns)
}

// Len returns the number of data rows.
func (t *TabularData) Len() int {
	return len(t.rows)
}

// HasColumn reports whether a column with the given name exists.
func (t *TabularData) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Column returns the values of the named column in row order.
func (t *TabularData) Column(name string) ([]string, bool) {
	idx, ok := t.index[name]
	if !ok {
		return nil, false
	}
	values := make([]string, len(t.rows))
	for i, row := range t.rows {
		values[i] = row[idx]
	}
	return values, true
}

// Row returns a copy of the i-th data row in column order.
func (t *TabularData) Row(i int) []string {
	return append([]string(nil), t.rows[i]...)
}

// Value returns the cell at row i in the named column.
func (t *TabularData) Value(i int, name string) (string, bool) {
	idx, ok := t.index[name]
	if !ok || i < 0 || i >= len(t.rows) {
		return "", false
	}
	return t.rows[i][idx], true
}

// Record returns the i-th row keyed by column name.
func (t *TabularData) Record(i int) map[string]string {
	rec := make(map[string]string, len(t.columns))
	for idx, name := range t.columns {
		rec[name] = t.rows[i][idx]
	}
	return rec
}
