package plot

import (
	"bytes"
	"strings"
	"testing"
)

func TestScatter(t *testing.T) {
	var buf bytes.Buffer
	err := Scatter(&buf, "OrigTg_Coords", []Points{
		{Name: "OrigTg_Coords", X: []float64{0, 5, 10}, Y: []float64{0, 2, 4}},
	}, 10, 4)
	if err != nil {
		t.Fatalf("Scatter failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "OrigTg_Coords") {
		t.Fatalf("expected title in output")
	}
	if !strings.Contains(out, "x: [0, 10]") {
		t.Fatalf("expected x-axis bounds in output, got:\n%s", out)
	}
	if !strings.Contains(out, "Legend:") {
		t.Fatalf("expected legend in output")
	}
	if !strings.Contains(out, "4") || !strings.Contains(out, "0") {
		t.Fatalf("expected y-axis labels in output, got:\n%s", out)
	}
}

func TestScatterSharedAxes(t *testing.T) {
	var buf bytes.Buffer
	err := Scatter(&buf, "", []Points{
		{Name: "A", X: []float64{0}, Y: []float64{0}},
		{Name: "B", X: []float64{100}, Y: []float64{50}},
	}, 10, 4)
	if err != nil {
		t.Fatalf("Scatter failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "x: [0, 100]") {
		t.Fatalf("expected shared x range across sets, got:\n%s", out)
	}
}

func TestScatterDegenerateRange(t *testing.T) {
	var buf bytes.Buffer
	err := Scatter(&buf, "", []Points{
		{Name: "P", X: []float64{3, 3}, Y: []float64{7, 7}},
	}, 10, 4)
	if err != nil {
		t.Fatalf("Scatter failed: %v", err)
	}
	if !strings.Contains(buf.String(), "x: [2, 4]") {
		t.Fatalf("expected padded degenerate range, got:\n%s", buf.String())
	}
}

func TestScatterSkipsEmptySets(t *testing.T) {
	var buf bytes.Buffer
	if err := Scatter(&buf, "Empty", nil, 10, 4); err != nil {
		t.Fatalf("Scatter failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output for empty sets, got %q", buf.String())
	}
}
