package plot

import (
	"fmt"
	"io"
	"math"

	"github.com/mattn/go-runewidth"
)

// Points is a named set of XY coordinates plotted as a scatter.
type Points struct {
	Name string
	X    []float64
	Y    []float64
}

// Scatter renders the point sets on shared axes. All sets use the same X/Y
// range so relative positions stay comparable.
func Scatter(w io.Writer, title string, sets []Points, width, height int) error {
	return scatterColor(w, title, sets, width, height, false)
}

// ScatterWithColor renders a scatter plot with optional forced color output.
func ScatterWithColor(w io.Writer, title string, sets []Points, width, height int, forceColor bool) error {
	return scatterColor(w, title, sets, width, height, forceColor)
}

func scatterColor(w io.Writer, title string, sets []Points, width, height int, forceColor bool) error {
	sets = dropEmptySets(sets)
	if len(sets) == 0 {
		return nil
	}
	width, height = normalizeSize(width, height)

	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, set := range sets {
		for _, v := range set.X {
			if v < minX {
				minX = v
			}
			if v > maxX {
				maxX = v
			}
		}
		for _, v := range set.Y {
			if v < minY {
				minY = v
			}
			if v > maxY {
				maxY = v
			}
		}
	}
	if math.Abs(maxX-minX) < 1e-9 {
		minX--
		maxX++
	}
	if math.Abs(maxY-minY) < 1e-9 {
		minY--
		maxY++
	}

	grids := make([]cellGrid, 0, len(sets))
	for range sets {
		grids = append(grids, newCellGrid(height, width))
	}
	dotsX := width * 2
	dotsY := height * 4
	for si, set := range sets {
		n := len(set.X)
		if len(set.Y) < n {
			n = len(set.Y)
		}
		for i := 0; i < n; i++ {
			px := clampDot(int(math.Round((set.X[i]-minX)/(maxX-minX)*float64(dotsX-1))), dotsX)
			py := clampDot(int(math.Round((1-(set.Y[i]-minY)/(maxY-minY))*float64(dotsY-1))), dotsY)
			grids[si].setDot(px, py)
		}
	}

	useColor := shouldUseColor(w, forceColor)
	if title != "" {
		if _, err := fmt.Fprintln(w, title); err != nil {
			return err
		}
	}

	labels, labelWidth := valueAxisLabels(minY, maxY, height)
	if err := renderGridRows(w, grids, labels, labelWidth, width, height, useColor); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "x: [%s, %s]\n", formatAxisValue(minX), formatAxisValue(maxX)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, legendLine(setNames(sets), false, useColor)); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

func valueAxisLabels(minY, maxY float64, height int) ([]string, int) {
	labels := make([]string, height)
	if height > 0 {
		labels[0] = formatAxisValue(maxY)
	}
	if height > 2 {
		labels[height/2] = formatAxisValue(minY + (maxY-minY)/2)
	}
	if height > 1 {
		labels[height-1] = formatAxisValue(minY)
	}
	labelWidth := 0
	for _, label := range labels {
		if w := runewidth.StringWidth(label); w > labelWidth {
			labelWidth = w
		}
	}
	return labels, labelWidth
}

func formatAxisValue(v float64) string {
	return fmt.Sprintf("%.4g", v)
}

func setNames(sets []Points) []string {
	names := make([]string, len(sets))
	for i, set := range sets {
		names[i] = set.Name
	}
	return names
}

func dropEmptySets(sets []Points) []Points {
	out := make([]Points, 0, len(sets))
	for _, set := range sets {
		if len(set.X) == 0 || len(set.Y) == 0 {
			continue
		}
		out = append(out, set)
	}
	return out
}
