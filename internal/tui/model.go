// Package tui provides the Bubble Tea sector viewer.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sanjiv13/sectorplot/internal/model"
	"github.com/sanjiv13/sectorplot/internal/scan"
)

const (
	screenSectors = iota
	screenDetail
)

const (
	tabTimeSeries = iota
	tabCoords
	tabObservations
)

const defaultVarCount = 4

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	tableMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
	titleStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	modalStyle      = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A")).
			Padding(1, 2)
)

// Model implements the Bubble Tea sector viewer.
type Model struct {
	cfg        model.ScanConfig
	sectors    []model.Sector
	coordPairs map[string]string

	screen      int
	sectorTable table.Model

	sectorName string
	result     scan.Result
	haveResult bool

	tabs      []string
	activeTab int
	viewports []viewport.Model

	selectedVars   []string
	selectedCoords []string
	swapAxes       bool

	inputMode bool
	input     textinput.Model

	width  int
	height int
	errMsg string
}

// NewModel constructs the sector viewer for an already-scanned file.
func NewModel(cfg model.ScanConfig, sectors []model.Sector, coordPairs map[string]string) *Model {
	m := &Model{
		cfg:        cfg,
		sectors:    sectors,
		coordPairs: coordPairs,
		tabs:       []string{"Time Series", "Coordinates", "Observations"},
	}
	m.sectorTable = buildSectorTable(sectors, 0, 1)
	m.initViewports()
	m.initInput()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.renderTabContents()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.inputMode {
			return m.updateInput(msg)
		}
		if msg.String() == "q" {
			return m, tea.Quit
		}
		if m.screen == screenSectors {
			return m.updateSectorScreen(msg)
		}
		return m.updateDetailScreen(msg)
	}
	return m, nil
}

func (m *Model) updateSectorScreen(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.selectSector(m.sectorTable.Cursor())
		return m, tea.ClearScreen
	default:
		var cmd tea.Cmd
		m.sectorTable, cmd = m.sectorTable.Update(msg)
		return m, cmd
	}
}

func (m *Model) updateDetailScreen(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "b":
		m.screen = screenSectors
		m.sectorTable.Focus()
		return m, tea.ClearScreen
	case "left", "h":
		m.moveTab(-1)
		return m, tea.ClearScreen
	case "right", "l":
		m.moveTab(1)
		return m, tea.ClearScreen
	case "s":
		m.swapAxes = !m.swapAxes
		m.renderTabContents()
		return m, nil
	case "enter":
		if m.activeTab == tabTimeSeries || m.activeTab == tabCoords {
			return m.startInput()
		}
		return m, nil
	case "g", "home":
		m.viewports[m.activeTab].GotoTop()
		return m, nil
	case "G", "end":
		m.viewports[m.activeTab].GotoBottom()
		return m, nil
	default:
		vp := m.viewports[m.activeTab]
		var cmd tea.Cmd
		vp, cmd = vp.Update(msg)
		m.viewports[m.activeTab] = vp
		return m, cmd
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.inputMode {
		return fitLines(m.renderSelectionModal(), m.width, m.height)
	}
	headerHeight, bodyHeight, footerHeight := m.layoutHeights()
	header := fitLines(m.renderHeader(), m.width, headerHeight)
	body := fitLines(m.renderBody(bodyHeight), m.width, bodyHeight)
	footer := fitLines(m.renderFooter(), m.width, footerHeight)
	return strings.Join([]string{header, body, footer}, "\n")
}

func (m *Model) initViewports() {
	m.viewports = make([]viewport.Model, len(m.tabs))
	for i := range m.viewports {
		m.viewports[i] = viewport.New(0, 0)
	}
}

func (m *Model) initInput() {
	m.input = textinput.New()
	m.input.Prompt = "Names: "
	m.input.Placeholder = "comma-separated, empty for defaults"
	m.input.CharLimit = 0
	m.input.Cursor.SetMode(cursor.CursorBlink)
}

func (m *Model) layoutHeights() (headerHeight, bodyHeight, footerHeight int) {
	tabsHeight := lipgloss.Height(activeNavStyle.Render("X"))
	if tabsHeight < 1 {
		tabsHeight = 1
	}
	headerHeight = tabsHeight + 1
	footerHeight = 1
	if m.errMsg != "" {
		footerHeight++
	}
	bodyHeight = m.height - headerHeight - footerHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	return headerHeight, bodyHeight, footerHeight
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	_, bodyHeight, _ := m.layoutHeights()
	for i := range m.viewports {
		m.viewports[i].Width = m.width
		m.viewports[i].Height = bodyHeight
	}
	m.sectorTable.SetWidth(m.width)
	m.sectorTable.SetHeight(maxInt(1, bodyHeight-1))
	promptWidth := lipgloss.Width(m.input.Prompt)
	m.input.Width = maxInt(10, modalInnerWidth(m.width)-promptWidth)
}

func (m *Model) moveTab(delta int) {
	count := len(m.tabs)
	if count == 0 {
		return
	}
	next := m.activeTab + delta
	if next < 0 {
		next = count - 1
	}
	if next >= count {
		next = 0
	}
	m.activeTab = next
}

// selectSector parses the chosen sector and resets selections to defaults.
// An out-of-range index degrades to an empty result.
func (m *Model) selectSector(idx int) {
	if idx < 0 || idx >= len(m.sectors) {
		m.sectorName = ""
		m.result = scan.Result{}
		m.haveResult = false
		m.screen = screenDetail
		m.renderTabContents()
		return
	}
	sector := m.sectors[idx]
	m.sectorName = sector.Name
	m.result = scan.ParseSector(sector.Lines, m.cfg.CustomVar, m.coordPairs)
	m.haveResult = true
	m.selectedVars = defaultSelection(m.result.Variables, defaultVarCount)
	m.selectedCoords = append([]string(nil), m.result.CoordNames...)
	m.screen = screenDetail
	m.activeTab = tabTimeSeries
	m.renderTabContents()
}

func (m *Model) startInput() (tea.Model, tea.Cmd) {
	m.inputMode = true
	if m.activeTab == tabCoords {
		m.input.SetValue(strings.Join(m.selectedCoords, ", "))
	} else {
		m.input.SetValue(strings.Join(m.selectedVars, ", "))
	}
	return m, m.input.Focus()
}

func (m *Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.inputMode = false
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		m.applySelection()
		m.inputMode = false
		m.input.Blur()
		m.renderTabContents()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// applySelection filters the typed names against the current result set.
// Unknown names are dropped; an empty selection falls back to defaults.
func (m *Model) applySelection() {
	names := splitSelection(m.input.Value())
	if m.activeTab == tabCoords {
		kept := keepKnown(names, m.result.CoordNames)
		if len(kept) == 0 {
			kept = append([]string(nil), m.result.CoordNames...)
		}
		m.selectedCoords = kept
		return
	}
	kept := keepKnown(names, m.result.Variables)
	if len(kept) == 0 {
		kept = defaultSelection(m.result.Variables, defaultVarCount)
	}
	m.selectedVars = kept
}

func buildSectorTable(sectors []model.Sector, width, height int) table.Model {
	columns := []table.Column{
		{Title: "Sector", Width: 10},
		{Title: "Line", Width: 8},
		{Title: "Marker", Width: 62},
	}
	rows := make([]table.Row, 0, len(sectors))
	for _, sector := range sectors {
		preview := sector.Label
		if idx := strings.Index(preview, ": "); idx >= 0 {
			preview = preview[idx+2:]
		}
		rows = append(rows, table.Row{
			sector.Name,
			fmt.Sprintf("%d", sector.StartLine),
			preview,
		})
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(maxInt(1, height)),
		table.WithFocused(true),
	)
	t.SetWidth(width)
	t.SetStyles(sectorTableStyles())
	return t
}

func sectorTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}

func (m *Model) renderSelectionModal() string {
	what := "Variables"
	available := m.result.Variables
	if m.activeTab == tabCoords {
		what = "Coordinate Sets"
		available = m.result.CoordNames
	}
	body := []string{
		titleStyle.Render("Select " + what),
		m.input.View(),
		headerStyle.Render("Available: " + truncateLine(strings.Join(available, ", "), modalInnerWidth(m.width))),
		headerStyle.Render("Enter to apply / Esc to cancel"),
	}
	box := modalStyle.Width(modalWidth(m.width)).Render(strings.Join(body, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
