package models

import "testing"

func TestParseKind(t *testing.T) {
	tests := []struct {
		input    string
		expected Kind
		wantErr  bool
	}{
		{"line", KindLine, false},
		{"Bar", KindBar, false},
		{" SCATTER ", KindScatter, false},
		{"pie", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		result, err := ParseKind(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseKind(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && result != tt.expected {
			t.Errorf("ParseKind(%q) = %v, expected %v", tt.input, result, tt.expected)
		}
	}
}

func TestKindString(t *testing.T) {
	for _, k := range Kinds {
		parsed, err := ParseKind(k.String())
		if err != nil || parsed != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), parsed, err)
		}
	}
	if Kind(9).String() != "Kind(9)" {
		t.Errorf("unexpected name for unknown kind: %s", Kind(9))
	}
}

func TestMissingColumn(t *testing.T) {
	data := NewTabularData([]string{"a", "b"}, nil)

	tests := []struct {
		req      ChartRequest
		expected string
		missing  bool
	}{
		{ChartRequest{XColumn: "a", YColumn: "b"}, "", false},
		{ChartRequest{XColumn: "c", YColumn: "b"}, "c", true},
		{ChartRequest{XColumn: "a", YColumn: "d"}, "d", true},
		{ChartRequest{XColumn: "", YColumn: "b"}, "", true},
	}

	for _, tt := range tests {
		got, missing := tt.req.MissingColumn(data)
		if got != tt.expected || missing != tt.missing {
			t.Errorf("MissingColumn(%+v) = %q, %v; expected %q, %v", tt.req, got, missing, tt.expected, tt.missing)
		}
	}
}
