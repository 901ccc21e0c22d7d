package excel

import "testing"

func TestColumnIndex(t *testing.T) {
	cases := []struct {
		column string
		want   int
	}{
		{"A", 0},
		{"B", 1},
		{"Z", 25},
		{"AA", 26},
		{"c", 2},
		{"", -1},
		{"1", -1},
	}
	for _, tc := range cases {
		if got := columnIndex(tc.column); got != tc.want {
			t.Errorf("columnIndex(%q) = %d, want %d", tc.column, got, tc.want)
		}
	}
}

func TestExcelRow_MissingCells(t *testing.T) {
	config := DefaultImportConfig()
	data := excelRow([]string{"High Frequency", "abate"}, config)

	if data.list != "High Frequency" || data.word != "abate" {
		t.Errorf("unexpected row data: %+v", data)
	}
	if data.definition != "" {
		t.Errorf("missing cell should read as empty, got %q", data.definition)
	}
}

func TestExcelRow_TrimsWhitespace(t *testing.T) {
	config := DefaultImportConfig()
	data := excelRow([]string{" List 1 ", " ephemeral ", " lasting a short time "}, config)

	if data.word != "ephemeral" {
		t.Errorf("expected trimmed word, got %q", data.word)
	}
	if data.definition != "lasting a short time" {
		t.Errorf("expected trimmed definition, got %q", data.definition)
	}
}
