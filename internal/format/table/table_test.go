package table

import (
	"reflect"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestFormatAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"Autoplay", "on", "12"},
		{"Subtitles", "off", "3"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignLeft, AlignRight})
	want := []string{
		"Autoplay   on   12",
		"Subtitles  off   3",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected output:\n%q\nwant\n%q", got, want)
	}
}

func TestFormatMeasuresStyledCells(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("on")
	got := Format([][]string{{styled, "x"}, {"off", "y"}}, nil)
	if got[0] != styled+"   x" {
		t.Fatalf("expected styled cell padded by visible width, got %q", got[0])
	}
	if got[1] != "off  y" {
		t.Fatalf("unexpected second row %q", got[1])
	}
}

func TestFormatPadsShortRows(t *testing.T) {
	got := Format([][]string{{"a", "b"}, {"ccc"}}, nil)
	if got[0] != "a    b" || got[1] != "ccc  " {
		t.Fatalf("unexpected output %q", got)
	}
	if Format(nil, nil) != nil {
		t.Fatalf("expected nil for no rows")
	}
}

func TestWidths(t *testing.T) {
	got := Widths([][]string{{"ab", "c"}, {"d", "efgh", "i"}})
	if !reflect.DeepEqual(got, []int{2, 4, 1}) {
		t.Fatalf("unexpected widths %v", got)
	}
}
