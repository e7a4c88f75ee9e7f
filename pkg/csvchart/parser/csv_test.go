package parser

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestReadCSV(t *testing.T) {
	data, err := ReadCSV(strings.NewReader("a,b,c\n1,2,3\n4,5,6\n"))
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}

	if data.Width() != 3 {
		t.Errorf("Expected 3 columns, got %d", data.Width())
	}
	if data.Len() != 2 {
		t.Errorf("Expected 2 rows, got %d", data.Len())
	}
	if !reflect.DeepEqual(data.Columns(), []string{"a", "b", "c"}) {
		t.Errorf("Unexpected columns %v", data.Columns())
	}
	if !reflect.DeepEqual(data.Row(1), []string{"4", "5", "6"}) {
		t.Errorf("Unexpected second row %v", data.Row(1))
	}
}

func TestReadCSVShortRowsArePadded(t *testing.T) {
	data, err := ReadCSV(strings.NewReader("a,b,c\n1\n"))
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}
	if !reflect.DeepEqual(data.Row(0), []string{"1", "", ""}) {
		t.Errorf("Expected padded row, got %q", data.Row(0))
	}
}

func TestReadCSVLongRowFails(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("a,b\n1,2\n3,4,5\n"))
	var lineErr *LineError
	if !errors.As(err, &lineErr) {
		t.Fatalf("Expected LineError, got %v", err)
	}
	if lineErr.Line != 3 {
		t.Errorf("Expected line 3, got %d", lineErr.Line)
	}
}

func TestReadCSVEmpty(t *testing.T) {
	for _, input := range []string{"", "\n\n"} {
		_, err := ReadCSV(strings.NewReader(input))
		if !errors.Is(err, ErrNoHeader) {
			t.Errorf("ReadCSV(%q) error = %v, expected ErrNoHeader", input, err)
		}
	}
}

func TestReadCSVHeaderOnly(t *testing.T) {
	data, err := ReadCSV(strings.NewReader("x,y\n"))
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}
	if data.Width() != 2 || data.Len() != 0 {
		t.Errorf("Expected 2 columns and 0 rows, got %d and %d", data.Width(), data.Len())
	}
}

func TestReadCSVDuplicateHeaderLastWins(t *testing.T) {
	data, err := ReadCSV(strings.NewReader("a,a\n1,2\n"))
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}
	if data.Width() != 2 {
		t.Errorf("Expected both header entries kept, got %d", data.Width())
	}
	v, _ := data.Value(0, "a")
	if v != "2" {
		t.Errorf("Expected last duplicate to win, got %q", v)
	}
	if data.Record(0)["a"] != "2" {
		t.Errorf("Expected record lookup to agree, got %q", data.Record(0)["a"])
	}
}

func TestNormalizeHeader(t *testing.T) {
	tests := []struct {
		input    []string
		expected []string
	}{
		{[]string{" a ", "b"}, []string{"a", "b"}},
		{[]string{"\ufeffid", "name"}, []string{"id", "name"}},
		{[]string{"x", "", "z"}, []string{"x", "Column_2", "z"}},
	}

	for _, tt := range tests {
		result := NormalizeHeader(tt.input)
		if !reflect.DeepEqual(result, tt.expected) {
			t.Errorf("NormalizeHeader(%q) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}
