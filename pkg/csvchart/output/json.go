// Package output serializes loaded tables to JSON.
package output

import (
	"encoding/json"

	"github.com/ukaji3/csvchart-go/pkg/csvchart/models"
	"github.com/ukaji3/csvchart-go/pkg/csvchart/parser"
)

// TableView converts tabular data to its JSON view. Cell values are typed
// as int64, float64 or string; empty cells are omitted.
func TableView(data *models.TabularData) models.TableView {
	view := models.TableView{
		Source:  data.Source,
		Columns: data.Columns(),
		Rows:    make([]models.CellRow, 0, data.Len()),
	}

	for i := 0; i < data.Len(); i++ {
		cells := make(map[string]interface{})
		for name, value := range data.Record(i) {
			if value == "" {
				continue
			}
			cells[name] = parser.ParseValue(value)
		}
		view.Rows = append(view.Rows, models.CellRow{R: i + 1, C: cells})
	}

	return view
}

// TableToJSON serializes tabular data to JSON.
func TableToJSON(data *models.TabularData, pretty bool) ([]byte, error) {
	view := TableView(data)
	if pretty {
		return json.MarshalIndent(view, "", "  ")
	}
	return json.Marshal(view)
}
