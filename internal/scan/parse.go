package scan

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/sanjiv13/sectorplot/internal/model"
)

var (
	// timestampPattern anchors each parseable line: a DD/MM/YY timestamp with
	// exactly three sub-second digits, then free text.
	timestampPattern = regexp.MustCompile(`^(\d{2}/\d{2}/\d{2} \d{2}:\d{2}:\d{2}\.\d{3})\s+(.*)`)
	// pairPattern extracts name:value / name=value tokens from the free text.
	pairPattern = regexp.MustCompile(`([\w.]+)\s*[:=]\s*([-\d.]+)`)
)

const timestampLayout = "02/01/06 15:04:05.000"

// Result holds the tables extracted from one sector.
type Result struct {
	Observations []model.Observation
	Coords       []model.CoordObservation
	Variables    []string
	CoordNames   []string
}

// ParseSector extracts observations from one sector's trimmed lines. Lines
// without a valid leading timestamp contribute nothing; malformed numeric
// tokens are dropped silently. Line numbers are 1-indexed within the sector.
func ParseSector(lines []string, customVar string, coordPairs map[string]string) Result {
	var res Result
	variables := map[string]struct{}{}
	coordNames := map[string]struct{}{}

	customVar = strings.TrimSpace(customVar)
	var customPattern *regexp.Regexp
	if customVar != "" {
		// Space-delimited form, e.g. "RX 12" with no : or = separator.
		customPattern = regexp.MustCompile(regexp.QuoteMeta(customVar) + `\s+([-\d.]+)`)
	}
	pairKeys := sortedKeys(coordPairs)

	for i, line := range lines {
		lineNum := i + 1
		m := timestampPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		timestamp, content := m[1], m[2]
		ts, err := time.Parse(timestampLayout, timestamp)
		if err != nil {
			continue
		}

		parsed := map[string]float64{}
		for _, pair := range pairPattern.FindAllStringSubmatch(content, -1) {
			value, err := strconv.ParseFloat(pair[2], 64)
			if err != nil {
				continue
			}
			parsed[pair[1]] = value
			res.Observations = append(res.Observations, model.Observation{
				Timestamp: timestamp,
				Time:      ts,
				Line:      lineNum,
				Variable:  pair[1],
				Value:     value,
			})
			variables[pair[1]] = struct{}{}
		}

		if customPattern != nil {
			if cm := customPattern.FindStringSubmatch(content); cm != nil {
				if value, err := strconv.ParseFloat(cm[1], 64); err == nil {
					res.Observations = append(res.Observations, model.Observation{
						Timestamp: timestamp,
						Time:      ts,
						Line:      lineNum,
						Variable:  customVar,
						Value:     value,
					})
					variables[customVar] = struct{}{}
				}
			}
		}

		for _, xVar := range pairKeys {
			yVar := coordPairs[xVar]
			xVal, okX := parsed[xVar]
			yVal, okY := parsed[yVar]
			if !okX || !okY {
				continue
			}
			name := CoordName(xVar)
			res.Coords = append(res.Coords, model.CoordObservation{
				Timestamp: timestamp,
				Time:      ts,
				Line:      lineNum,
				Name:      name,
				X:         xVal,
				Y:         yVal,
			})
			coordNames[name] = struct{}{}
		}
	}

	res.Variables = sortedSet(variables)
	res.CoordNames = sortedSet(coordNames)
	return res
}

// CoordName derives a coordinate-set name from the X variable name.
func CoordName(xVar string) string {
	if strings.HasSuffix(xVar, "X") {
		return strings.TrimSuffix(xVar, "X") + "_Coords"
	}
	return xVar + "_Coords"
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedSet(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
