package scan

import (
	"reflect"
	"strings"
	"testing"
)

func TestSectionizeCoversFileWithoutGaps(t *testing.T) {
	lines := []string{
		"RX 1 RY 1 TX 1 TY 1",
		"  first body  ",
		"RX 2 RY 2 TX 2 TY 2",
		"second body",
		"tail line",
	}
	markers := FindMarkers(lines)
	if len(markers) != 2 {
		t.Fatalf("expected 2 markers, got %d", len(markers))
	}
	sectors := Sectionize(lines, markers)
	if len(sectors) != 2 {
		t.Fatalf("expected 2 sectors, got %d", len(sectors))
	}
	if sectors[0].Name != "Sector 1" || sectors[1].Name != "Sector 2" {
		t.Fatalf("unexpected sector names: %q, %q", sectors[0].Name, sectors[1].Name)
	}
	if got := len(sectors[0].Lines) + len(sectors[1].Lines); got != len(lines) {
		t.Fatalf("sectors cover %d lines, file has %d", got, len(lines))
	}
	if sectors[0].StartLine != 1 || sectors[1].StartLine != 3 {
		t.Fatalf("unexpected start lines: %d, %d", sectors[0].StartLine, sectors[1].StartLine)
	}
	if sectors[0].Lines[1] != "first body" {
		t.Fatalf("expected trimmed sector line, got %q", sectors[0].Lines[1])
	}
	if !reflect.DeepEqual(sectors[1].Lines, []string{"RX 2 RY 2 TX 2 TY 2", "second body", "tail line"}) {
		t.Fatalf("unexpected last sector lines: %v", sectors[1].Lines)
	}
}

func TestSectionizeLabelPreview(t *testing.T) {
	marker := "RX 1 RY 1 TX 1 TY 1 " + strings.Repeat("x", 100)
	lines := []string{marker}
	sectors := Sectionize(lines, FindMarkers(lines))
	if len(sectors) != 1 {
		t.Fatalf("expected 1 sector, got %d", len(sectors))
	}
	want := "Sector 1 - Line 1: " + marker[:60]
	if sectors[0].Label != want {
		t.Fatalf("unexpected label:\n got %q\nwant %q", sectors[0].Label, want)
	}
}

func TestSectionizeIsDeterministic(t *testing.T) {
	lines := []string{
		"RX 1 RY 1 TX 1 TY 1",
		"body",
		"RX 2 RY 2 TX 2 TY 2",
		"more body",
	}
	markers := FindMarkers(lines)
	first := Sectionize(lines, markers)
	second := Sectionize(lines, markers)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical sector boundaries on re-run")
	}
}
