package tui

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sanjiv13/sectorplot/internal/plot"
)

func (m *Model) renderHeader() string {
	if m.screen == screenSectors {
		title := padLines(titleStyle.Render("sectorplot — "+m.cfg.FilePath), m.width)
		count := padLines(headerStyle.Render(fmt.Sprintf("%d sector(s) found. Enter to inspect.", len(m.sectors))), m.width)
		return title + "\n" + count
	}
	tabs := padLines(m.renderTabs(), m.width)
	summary := padLines(m.renderSummaryLine(), m.width)
	return tabs + "\n" + summary
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderSummaryLine() string {
	if !m.haveResult {
		return headerStyle.Render("No sector selected.")
	}
	swap := "off"
	if m.swapAxes {
		swap = "on"
	}
	summary := fmt.Sprintf("%s  obs=%d  coords=%d  swap=%s",
		m.sectorName, len(m.result.Observations), len(m.result.Coords), swap)
	return headerStyle.Render(truncateLine(summary, m.width))
}

func (m *Model) renderBody(height int) string {
	if m.screen == screenSectors {
		if len(m.sectors) == 0 {
			return fitLines("No sectors found matching pattern.", m.width, height)
		}
		return fitLines(tableMutedStyle.Render(m.sectorTable.View()), m.width, height)
	}
	return fitLines(m.viewports[m.activeTab].View(), m.width, height)
}

func (m *Model) renderFooter() string {
	var help string
	switch {
	case m.screen == screenSectors:
		help = "Select: up/down  Inspect: enter  Quit: q"
	case m.activeTab == tabObservations:
		help = "Tabs: left/right  Scroll: up/down/pgup/pgdn  Back: esc  Quit: q"
	default:
		help = "Tabs: left/right  Select: enter  Swap axes: s  Scroll: up/down  Back: esc  Quit: q"
	}
	if m.errMsg != "" {
		return headerStyle.Render(help) + "\n" + errorStyle.Render(m.errMsg)
	}
	return headerStyle.Render(help)
}

func (m *Model) renderTabContents() {
	if len(m.viewports) == 0 {
		return
	}
	width := m.width
	if width <= 0 {
		width = 80
	}
	m.viewports[tabTimeSeries].SetContent(m.renderTimeSeries(width))
	m.viewports[tabCoords].SetContent(m.renderCoordPlot(width))
	m.viewports[tabObservations].SetContent(m.renderObservations())
	for i := range m.viewports {
		m.viewports[i].GotoTop()
	}
}

func (m *Model) renderTimeSeries(width int) string {
	if !m.haveResult {
		return "Select a sector first."
	}
	if len(m.result.Observations) == 0 {
		return "No observations in this sector."
	}
	if len(m.selectedVars) == 0 {
		return "No variables selected. Press enter to choose."
	}
	var buf bytes.Buffer
	plotWidth := plot.WidthFor(width)
	if m.swapAxes {
		sets := plot.SwappedValueSets(m.result.Observations, m.selectedVars)
		if err := plot.ScatterWithColor(&buf, "Time Series (value on x, elapsed seconds on y)", sets, plotWidth, m.plotHeight(), true); err != nil {
			return fmt.Sprintf("Failed to render plot: %v", err)
		}
	} else {
		series := plot.TimeSeries(m.result.Observations, m.selectedVars)
		if err := plot.LinesWithColor(&buf, "Time Series", series, plotWidth, m.plotHeight(), true); err != nil {
			return fmt.Sprintf("Failed to render plot: %v", err)
		}
	}
	summary := strings.Join(plot.VariableSummary(m.result.Observations, m.selectedVars), "\n")
	return strings.TrimRight(buf.String()+summary, "\n")
}

func (m *Model) renderCoordPlot(width int) string {
	if !m.haveResult {
		return "Select a sector first."
	}
	if len(m.result.Coords) == 0 {
		return "No coordinate observations in this sector."
	}
	if len(m.selectedCoords) == 0 {
		return "No coordinate sets selected. Press enter to choose."
	}
	title := "Coordinate Plot"
	if m.swapAxes {
		title = "Coordinate Plot (axes swapped)"
	}
	sets := plot.CoordPointSets(m.result.Coords, m.selectedCoords, m.swapAxes)
	var buf bytes.Buffer
	if err := plot.ScatterWithColor(&buf, title, sets, plot.WidthFor(width), m.plotHeight(), true); err != nil {
		return fmt.Sprintf("Failed to render plot: %v", err)
	}
	counts := strings.Join(plot.CoordSummary(m.result.Coords, m.selectedCoords), "\n")
	return strings.TrimRight(buf.String()+counts, "\n")
}

func (m *Model) renderObservations() string {
	if !m.haveResult {
		return "Select a sector first."
	}
	if len(m.result.Observations) == 0 {
		return "No observations in this sector."
	}
	return strings.Join(plot.ObservationTable(m.result.Observations), "\n")
}

func (m *Model) plotHeight() int {
	if m.cfg.PlotHeight > 0 {
		return m.cfg.PlotHeight
	}
	return 10
}

func defaultSelection(names []string, limit int) []string {
	if limit > len(names) {
		limit = len(names)
	}
	return append([]string(nil), names[:limit]...)
}

func keepKnown(names, available []string) []string {
	known := make(map[string]struct{}, len(available))
	for _, name := range available {
		known[name] = struct{}{}
	}
	var out []string
	seen := map[string]struct{}{}
	for _, name := range names {
		if _, ok := known[name]; !ok {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

func splitSelection(input string) []string {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		out = append(out, f)
	}
	return out
}
