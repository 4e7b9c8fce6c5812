package table

import (
	"strings"
	"testing"
)

func TestColumnWidths(t *testing.T) {
	columns := []string{"id", "name"}
	data := [][]string{
		{"1", "short"},
		{"2", "a much longer value here"},
	}

	widths := columnWidths(columns, data)
	if widths[0] != 2 {
		t.Errorf("widths[0] = %d, want 2", widths[0])
	}
	if widths[1] != len("a much longer value here") {
		t.Errorf("widths[1] = %d", widths[1])
	}
}

func TestColumnWidthsCapped(t *testing.T) {
	columns := []string{"c"}
	data := [][]string{{strings.Repeat("x", 200)}}

	widths := columnWidths(columns, data)
	if widths[0] != maxCellWidth {
		t.Errorf("widths[0] = %d, want cap %d", widths[0], maxCellWidth)
	}
}

func TestTSV(t *testing.T) {
	got := TSV([]string{"a", "b"}, [][]string{{"1", "2"}, {"3", "4"}})
	want := "a\tb\n1\t2\n3\t4"
	if got != want {
		t.Errorf("TSV() = %q, want %q", got, want)
	}
}
