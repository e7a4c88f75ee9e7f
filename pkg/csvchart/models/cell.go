// Package models defines data structures for tabular data and charts.
package models

// CellRow represents a single data row with typed cell values.
type CellRow struct {
	// R is the data row index (1-based, header excluded).
	R int `json:"r"`
	// C maps column name to cell value (int64, float64 or string).
	C map[string]interface{} `json:"c"`
}

// TableView is the JSON shape of a loaded table.
type TableView struct {
	// Source is the file name the table was loaded from (no path).
	Source string `json:"source,omitempty"`
	// Columns lists the header names in file order.
	Columns []string `json:"columns"`
	// Rows contains the data rows.
	Rows []CellRow `json:"rows"`
}
