package plot

import (
	"fmt"
	"sort"
	"time"

	"github.com/sanjiv13/sectorplot/internal/model"
)

// TimeSeries builds one plottable series per selected variable, ordered by
// timestamp so line segments connect chronologically.
func TimeSeries(observations []model.Observation, vars []string) []Series {
	series := make([]Series, 0, len(vars))
	for _, name := range vars {
		obs := observationsFor(observations, name)
		sortByTime(obs)
		values := make([]float64, len(obs))
		for i, o := range obs {
			values[i] = o.Value
		}
		series = append(series, Series{Name: name, Values: values})
	}
	return series
}

// SwappedValueSets puts value on x and elapsed seconds on y, mirroring the
// swapped-axes toggle of the time-series view.
func SwappedValueSets(observations []model.Observation, vars []string) []Points {
	base := earliestTime(observations, vars)
	sets := make([]Points, 0, len(vars))
	for _, name := range vars {
		obs := observationsFor(observations, name)
		sortByTime(obs)
		set := Points{Name: name}
		for _, o := range obs {
			set.X = append(set.X, o.Value)
			set.Y = append(set.Y, o.Time.Sub(base).Seconds())
		}
		sets = append(sets, set)
	}
	return sets
}

// CoordPointSets builds one scatter set per selected coordinate-set name.
func CoordPointSets(coords []model.CoordObservation, names []string, swap bool) []Points {
	sets := make([]Points, 0, len(names))
	for _, name := range names {
		set := Points{Name: name}
		for _, c := range coords {
			if c.Name != name {
				continue
			}
			x, y := c.X, c.Y
			if swap {
				x, y = y, x
			}
			set.X = append(set.X, x)
			set.Y = append(set.Y, y)
		}
		sets = append(sets, set)
	}
	return sets
}

// VariableSummary formats a per-variable stats table for the selection.
// Variables without observations are skipped.
func VariableSummary(observations []model.Observation, vars []string) []string {
	headers := []string{"Variable", "Count", "Min", "Max", "Last"}
	rows := make([][]string, 0, len(vars))
	for _, name := range vars {
		obs := observationsFor(observations, name)
		if len(obs) == 0 {
			continue
		}
		sortByTime(obs)
		minVal, maxVal := obs[0].Value, obs[0].Value
		for _, o := range obs[1:] {
			if o.Value < minVal {
				minVal = o.Value
			}
			if o.Value > maxVal {
				maxVal = o.Value
			}
		}
		rows = append(rows, []string{
			name,
			fmt.Sprintf("%d", len(obs)),
			fmt.Sprintf("%g", minVal),
			fmt.Sprintf("%g", maxVal),
			fmt.Sprintf("%g", obs[len(obs)-1].Value),
		})
	}
	rightAlign := map[int]bool{1: true, 2: true, 3: true, 4: true}
	return FormatTable(headers, rows, rightAlign)
}

// CoordSummary formats a per-set point count table.
func CoordSummary(coords []model.CoordObservation, names []string) []string {
	headers := []string{"Set", "Points"}
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		count := 0
		for _, c := range coords {
			if c.Name == name {
				count++
			}
		}
		rows = append(rows, []string{name, fmt.Sprintf("%d", count)})
	}
	return FormatTable(headers, rows, map[int]bool{1: true})
}

// ObservationTable formats the full observation list for display.
func ObservationTable(observations []model.Observation) []string {
	headers := []string{"Line", "Timestamp", "Variable", "Value"}
	rows := make([][]string, 0, len(observations))
	for _, obs := range observations {
		rows = append(rows, []string{
			fmt.Sprintf("%d", obs.Line),
			obs.Timestamp,
			obs.Variable,
			fmt.Sprintf("%g", obs.Value),
		})
	}
	return FormatTable(headers, rows, map[int]bool{0: true, 3: true})
}

func observationsFor(observations []model.Observation, name string) []model.Observation {
	var out []model.Observation
	for _, o := range observations {
		if o.Variable == name {
			out = append(out, o)
		}
	}
	return out
}

func sortByTime(obs []model.Observation) {
	sort.SliceStable(obs, func(i, j int) bool {
		if obs[i].Time.Equal(obs[j].Time) {
			return obs[i].Line < obs[j].Line
		}
		return obs[i].Time.Before(obs[j].Time)
	})
}

func earliestTime(observations []model.Observation, vars []string) time.Time {
	selected := make(map[string]struct{}, len(vars))
	for _, name := range vars {
		selected[name] = struct{}{}
	}
	var base time.Time
	for _, o := range observations {
		if _, ok := selected[o.Variable]; !ok {
			continue
		}
		if base.IsZero() || o.Time.Before(base) {
			base = o.Time
		}
	}
	return base
}
