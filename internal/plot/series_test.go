package plot

import (
	"reflect"
	"testing"
	"time"

	"github.com/sanjiv13/sectorplot/internal/model"
)

func obsAt(sec int, variable string, value float64) model.Observation {
	base := time.Date(2024, 5, 21, 10, 0, 0, 0, time.UTC)
	return model.Observation{
		Time:     base.Add(time.Duration(sec) * time.Second),
		Variable: variable,
		Value:    value,
		Line:     sec + 1,
	}
}

func TestTimeSeriesOrdersByTimestamp(t *testing.T) {
	observations := []model.Observation{
		obsAt(2, "WX", 3),
		obsAt(0, "WX", 1),
		obsAt(1, "WX", 2),
		obsAt(0, "WY", 9),
	}
	series := TimeSeries(observations, []string{"WX"})
	if len(series) != 1 {
		t.Fatalf("expected 1 series, got %d", len(series))
	}
	if !reflect.DeepEqual(series[0].Values, []float64{1, 2, 3}) {
		t.Fatalf("expected chronological values, got %v", series[0].Values)
	}
}

func TestSwappedValueSetsUsesElapsedSeconds(t *testing.T) {
	observations := []model.Observation{
		obsAt(0, "WX", 1),
		obsAt(5, "WX", 2),
	}
	sets := SwappedValueSets(observations, []string{"WX"})
	if len(sets) != 1 {
		t.Fatalf("expected 1 set, got %d", len(sets))
	}
	if !reflect.DeepEqual(sets[0].X, []float64{1, 2}) {
		t.Fatalf("expected values on x, got %v", sets[0].X)
	}
	if !reflect.DeepEqual(sets[0].Y, []float64{0, 5}) {
		t.Fatalf("expected elapsed seconds on y, got %v", sets[0].Y)
	}
}

func TestCoordPointSetsSwap(t *testing.T) {
	coords := []model.CoordObservation{
		{Name: "W_Coords", X: 1, Y: 2},
		{Name: "W_Coords", X: 3, Y: 4},
		{Name: "Other_Coords", X: 9, Y: 9},
	}
	sets := CoordPointSets(coords, []string{"W_Coords"}, false)
	if len(sets) != 1 || !reflect.DeepEqual(sets[0].X, []float64{1, 3}) {
		t.Fatalf("unexpected unswapped sets: %+v", sets)
	}
	swapped := CoordPointSets(coords, []string{"W_Coords"}, true)
	if !reflect.DeepEqual(swapped[0].X, []float64{2, 4}) || !reflect.DeepEqual(swapped[0].Y, []float64{1, 3}) {
		t.Fatalf("unexpected swapped sets: %+v", swapped)
	}
}

func TestVariableSummarySkipsMissingVariables(t *testing.T) {
	observations := []model.Observation{
		obsAt(0, "WX", 1),
		obsAt(1, "WX", 5),
	}
	lines := VariableSummary(observations, []string{"WX", "missing"})
	if len(lines) != 2 { // header + one row
		t.Fatalf("expected 2 lines, got %d: %v", len(lines), lines)
	}
	if !reflect.DeepEqual(lines[0], "Variable Count Min Max Last") {
		t.Fatalf("unexpected header: %q", lines[0])
	}
}

func TestCoordSummaryCounts(t *testing.T) {
	coords := []model.CoordObservation{
		{Name: "W_Coords"},
		{Name: "W_Coords"},
		{Name: "Other_Coords"},
	}
	lines := CoordSummary(coords, []string{"W_Coords"})
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[1] != "W_Coords      2" {
		t.Fatalf("unexpected count row: %q", lines[1])
	}
}

func TestObservationTable(t *testing.T) {
	observations := []model.Observation{
		{Line: 1, Timestamp: "21/05/24 10:00:00.123", Variable: "WX", Value: 1.5},
	}
	lines := ObservationTable(observations)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
}
