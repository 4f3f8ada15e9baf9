package scan

import (
	"reflect"
	"testing"
)

func TestParseSectorPairsAndCoords(t *testing.T) {
	lines := []string{"21/05/24 10:00:00.123 OrigTgX: 5.0 OrigTgY: 3.0"}
	res := ParseSector(lines, "", CoordPairs("", nil))

	if len(res.Observations) != 2 {
		t.Fatalf("expected 2 observations, got %d", len(res.Observations))
	}
	first := res.Observations[0]
	if first.Variable != "OrigTgX" || first.Value != 5.0 {
		t.Fatalf("unexpected first observation: %+v", first)
	}
	if first.Timestamp != "21/05/24 10:00:00.123" {
		t.Fatalf("unexpected timestamp: %q", first.Timestamp)
	}
	if first.Line != 1 {
		t.Fatalf("expected sector-relative line 1, got %d", first.Line)
	}
	if first.Time.Day() != 21 || first.Time.Month() != 5 {
		t.Fatalf("timestamp parsed as day-first failed: %v", first.Time)
	}

	if len(res.Coords) != 1 {
		t.Fatalf("expected 1 coordinate observation, got %d", len(res.Coords))
	}
	coord := res.Coords[0]
	if coord.Name != "OrigTg_Coords" || coord.X != 5.0 || coord.Y != 3.0 {
		t.Fatalf("unexpected coordinate observation: %+v", coord)
	}
	if !reflect.DeepEqual(res.Variables, []string{"OrigTgX", "OrigTgY"}) {
		t.Fatalf("unexpected variables: %v", res.Variables)
	}
	if !reflect.DeepEqual(res.CoordNames, []string{"OrigTg_Coords"}) {
		t.Fatalf("unexpected coord names: %v", res.CoordNames)
	}
}

func TestParseSectorSkipsLinesWithoutTimestamp(t *testing.T) {
	lines := []string{"not a timestamp line X=5"}
	res := ParseSector(lines, "", CoordPairs("", nil))
	if len(res.Observations) != 0 {
		t.Fatalf("expected 0 observations, got %d", len(res.Observations))
	}
}

func TestParseSectorSkipsInvalidDates(t *testing.T) {
	lines := []string{"32/13/24 10:00:00.123 X=5"}
	res := ParseSector(lines, "", CoordPairs("", nil))
	if len(res.Observations) != 0 {
		t.Fatalf("expected 0 observations for invalid date, got %d", len(res.Observations))
	}
}

func TestParseSectorCustomVarSpaceDelimited(t *testing.T) {
	lines := []string{"21/05/24 10:00:00.123 RX 12 RY 7 TX 3 TY 9"}
	res := ParseSector(lines, "RX", CoordPairs("RX", nil))

	// No ':' or '=' separators, so only the custom space-delimited scan hits.
	if len(res.Observations) != 1 {
		t.Fatalf("expected 1 observation, got %d", len(res.Observations))
	}
	obs := res.Observations[0]
	if obs.Variable != "RX" || obs.Value != 12 {
		t.Fatalf("unexpected custom observation: %+v", obs)
	}
	if len(res.Coords) != 0 {
		t.Fatalf("expected no coordinate observations, got %d", len(res.Coords))
	}
}

func TestParseSectorDropsNonNumericTokens(t *testing.T) {
	lines := []string{"21/05/24 10:00:00.123 A: - B= 2"}
	res := ParseSector(lines, "", CoordPairs("", nil))
	if len(res.Observations) != 1 {
		t.Fatalf("expected 1 observation, got %d", len(res.Observations))
	}
	if res.Observations[0].Variable != "B" || res.Observations[0].Value != 2 {
		t.Fatalf("unexpected observation: %+v", res.Observations[0])
	}
}

func TestParseSectorCoordRequiresBothMembers(t *testing.T) {
	lines := []string{
		"21/05/24 10:00:00.123 FusionX: 1.5",
		"21/05/24 10:00:00.223 FusionY: 2.5",
		"21/05/24 10:00:00.323 FusionX: 1.0 FusionY: 2.0",
	}
	res := ParseSector(lines, "", CoordPairs("", nil))
	if len(res.Coords) != 1 {
		t.Fatalf("expected 1 coordinate observation, got %d", len(res.Coords))
	}
	if res.Coords[0].Line != 3 {
		t.Fatalf("expected coordinate from line 3, got %d", res.Coords[0].Line)
	}
}

func TestParseSectorVariablesSorted(t *testing.T) {
	lines := []string{"21/05/24 10:00:00.123 zeta: 1 alpha: 2 mid: 3"}
	res := ParseSector(lines, "", CoordPairs("", nil))
	if !reflect.DeepEqual(res.Variables, []string{"alpha", "mid", "zeta"}) {
		t.Fatalf("expected sorted variables, got %v", res.Variables)
	}
}

func TestParseSectorIdempotent(t *testing.T) {
	lines := []string{
		"21/05/24 10:00:00.123 WX: 1 WY: 2",
		"noise line",
		"21/05/24 10:00:01.456 WX: 3 WY: 4",
	}
	pairs := CoordPairs("", nil)
	first := ParseSector(lines, "", pairs)
	second := ParseSector(lines, "", pairs)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results on re-parse")
	}
}

func TestCoordName(t *testing.T) {
	if got := CoordName("OrigTgX"); got != "OrigTg_Coords" {
		t.Fatalf("unexpected coord name: %q", got)
	}
	if got := CoordName("LXW"); got != "LXW_Coords" {
		t.Fatalf("unexpected coord name for non-X suffix: %q", got)
	}
}
