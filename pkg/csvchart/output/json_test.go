package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/csvchart-go/pkg/csvchart/models"
)

func TestTableView(t *testing.T) {
	t.Parallel()

	data := models.NewTabularData(
		[]string{"name", "count", "ratio"},
		[][]string{{"a", "1", "0.5"}, {"b", "", "x"}},
	)
	data.Source = "in.csv"

	view := TableView(data)
	assert.Equal(t, "in.csv", view.Source)
	assert.Equal(t, []string{"name", "count", "ratio"}, view.Columns)
	require.Len(t, view.Rows, 2)

	assert.Equal(t, 1, view.Rows[0].R)
	assert.Equal(t, map[string]interface{}{"name": "a", "count": int64(1), "ratio": 0.5}, view.Rows[0].C)
	assert.Equal(t, map[string]interface{}{"name": "b", "ratio": "x"}, view.Rows[1].C)
}

func TestTableToJSON(t *testing.T) {
	t.Parallel()

	data := models.NewTabularData([]string{"a", "b"}, [][]string{{"1", "2"}})

	out, err := TableToJSON(data, false)
	require.NoError(t, err)
	assert.JSONEq(t, `{"columns":["a","b"],"rows":[{"r":1,"c":{"a":1,"b":2}}]}`, string(out))

	pretty, err := TableToJSON(data, true)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(pretty), "\n  "))

	var roundTrip map[string]interface{}
	require.NoError(t, json.Unmarshal(pretty, &roundTrip))
}

func TestTableToJSONEmptyTable(t *testing.T) {
	t.Parallel()

	out, err := TableToJSON(models.NewTabularData([]string{"a"}, nil), false)
	require.NoError(t, err)
	assert.JSONEq(t, `{"columns":["a"],"rows":[]}`, string(out))
}
