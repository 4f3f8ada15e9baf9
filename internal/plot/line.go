package plot

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Series is a named sequence of values plotted in order.
type Series struct {
	Name   string
	Values []float64
}

type seriesRange struct {
	min float64
	max float64
}

const (
	axisLabelTop    = "100%"
	axisLabelMid    = "50%"
	axisLabelBottom = "0%"
	axisSeparator   = " │ "
	scaleNote       = "Scaled per series; see min/max below."
)

// Lines renders a multi-series braille line plot. Each series is scaled to
// its own min/max so differently-ranged variables stay readable.
func Lines(w io.Writer, title string, series []Series, width, height int) error {
	return linesColor(w, title, series, width, height, false)
}

// LinesWithColor renders a line plot with optional forced color output.
func LinesWithColor(w io.Writer, title string, series []Series, width, height int, forceColor bool) error {
	return linesColor(w, title, series, width, height, forceColor)
}

func linesColor(w io.Writer, title string, series []Series, width, height int, forceColor bool) error {
	series = dropEmptySeries(series)
	if len(series) == 0 {
		return nil
	}
	width, height = normalizeSize(width, height)

	scaled := make([]Series, 0, len(series))
	for _, s := range series {
		scaled = append(scaled, Series{Name: s.Name, Values: resample(s.Values, width)})
	}

	ranges := make([]seriesRange, 0, len(scaled))
	for _, s := range scaled {
		minVal, maxVal := valueBounds(s.Values)
		if math.Abs(maxVal-minVal) < 1e-9 {
			minVal--
			maxVal++
		}
		ranges = append(ranges, seriesRange{min: minVal, max: maxVal})
	}

	grids := make([]cellGrid, 0, len(scaled))
	for range scaled {
		grids = append(grids, newCellGrid(height, width))
	}
	for si, s := range scaled {
		style := lineStyles[si%len(lineStyles)]
		prevX, prevY := -1, -1
		for x, v := range s.Values {
			row := clampDot(valueToRow(v, ranges[si].min, ranges[si].max, height*4), height*4)
			px := x * 2
			if prevX >= 0 {
				drawSegment(prevX, prevY, px, row, func(dx, dy int) {
					if style.shouldPlot(dx) {
						grids[si].setDot(dx, dy)
					}
				})
			} else if style.shouldPlot(px) {
				grids[si].setDot(px, row)
			}
			prevX, prevY = px, row
		}
	}

	useColor := shouldUseColor(w, forceColor)
	if title != "" {
		if _, err := fmt.Fprintln(w, title); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, scaleNote); err != nil {
		return err
	}
	for i, s := range scaled {
		if _, err := fmt.Fprintf(w, "%s: min=%.2f max=%.2f\n", s.Name, ranges[i].min, ranges[i].max); err != nil {
			return err
		}
	}

	labels := percentAxisLabels(height)
	labelWidth := len(axisLabelTop)
	if err := renderGridRows(w, grids, labels, labelWidth, width, height, useColor); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, legendLine(seriesNames(scaled), true, useColor)); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// WidthFor computes a plot width that fits inside the total terminal width.
func WidthFor(totalWidth int) int {
	if totalWidth <= 0 {
		return minWidth
	}
	axisWidth := runewidth.StringWidth(axisLabelTop) + runewidth.StringWidth(axisSeparator)
	plotWidth := totalWidth - axisWidth
	if plotWidth < minWidth {
		plotWidth = minWidth
	}
	return plotWidth
}

func autoWidth() int {
	return WidthFor(terminalWidth())
}

func normalizeSize(width, height int) (int, int) {
	if height <= 0 {
		height = defaultHeight
	}
	if width <= 0 {
		width = autoWidth()
	}
	if width < minWidth {
		width = minWidth
	}
	return width, height
}

func renderGridRows(w io.Writer, grids []cellGrid, labels []string, labelWidth, width, height int, useColor bool) error {
	for y := 0; y < height; y++ {
		label := ""
		if y < len(labels) {
			label = labels[y]
		}
		var row strings.Builder
		row.WriteString(fmt.Sprintf("%*s%s", labelWidth, label, axisSeparator))
		for x := 0; x < width; x++ {
			mask, colorIdx := composeCells(grids, x, y)
			ch := brailleRune(mask)
			if useColor && colorIdx >= 0 {
				row.WriteString(colorPalette[colorIdx%len(colorPalette)].code)
				row.WriteRune(ch)
				row.WriteString(colorReset)
			} else {
				row.WriteRune(ch)
			}
		}
		if _, err := fmt.Fprintln(w, row.String()); err != nil {
			return err
		}
	}
	return nil
}

func percentAxisLabels(height int) []string {
	labels := make([]string, height)
	if height <= 0 {
		return labels
	}
	labels[0] = axisLabelTop
	if height > 2 {
		labels[height/2] = axisLabelMid
	}
	if height > 1 {
		labels[height-1] = axisLabelBottom
	}
	return labels
}

func legendLine(names []string, withStyles, useColor bool) string {
	parts := make([]string, 0, len(names))
	marker := brailleRune(0x01)
	for i, name := range names {
		label := fmt.Sprintf("%c %s", marker, name)
		if withStyles {
			label = fmt.Sprintf("%c %s (%s)", marker, name, lineStyles[i%len(lineStyles)].name)
		}
		if useColor {
			label = colorPalette[i%len(colorPalette)].code + label + colorReset
		}
		parts = append(parts, label)
	}
	return "Legend: " + strings.Join(parts, "  ")
}

func seriesNames(series []Series) []string {
	names := make([]string, len(series))
	for i, s := range series {
		names[i] = s.Name
	}
	return names
}

func dropEmptySeries(series []Series) []Series {
	out := make([]Series, 0, len(series))
	for _, s := range series {
		if len(s.Values) == 0 {
			continue
		}
		out = append(out, s)
	}
	return out
}

func valueBounds(values []float64) (float64, float64) {
	minVal := math.Inf(1)
	maxVal := math.Inf(-1)
	for _, v := range values {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if minVal == math.Inf(1) {
		minVal = 0
	}
	if maxVal == math.Inf(-1) {
		maxVal = 0
	}
	return minVal, maxVal
}

func valueToRow(v, minVal, maxVal float64, rows int) int {
	if rows <= 1 {
		return 0
	}
	pos := (v - minVal) / (maxVal - minVal)
	return int(math.Round((1 - pos) * float64(rows-1)))
}

// resample stretches or averages values onto the target width.
func resample(values []float64, width int) []float64 {
	if len(values) == 0 || width <= 0 {
		return nil
	}
	if len(values) == width {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, width)
	if len(values) > width {
		for i := 0; i < width; i++ {
			start := int(float64(i) * float64(len(values)) / float64(width))
			end := int(float64(i+1) * float64(len(values)) / float64(width))
			if end <= start {
				end = start + 1
			}
			if end > len(values) {
				end = len(values)
			}
			var sum float64
			for _, v := range values[start:end] {
				sum += v
			}
			out[i] = sum / float64(end-start)
		}
		return out
	}
	if width == 1 || len(values) == 1 {
		for i := range out {
			out[i] = values[0]
		}
		return out
	}
	for i := 0; i < width; i++ {
		pos := float64(i) * float64(len(values)-1) / float64(width-1)
		idx := int(math.Floor(pos))
		if idx >= len(values)-1 {
			out[i] = values[len(values)-1]
			continue
		}
		frac := pos - float64(idx)
		out[i] = values[idx]*(1-frac) + values[idx+1]*frac
	}
	return out
}
