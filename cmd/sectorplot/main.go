// Package main provides the CLI entrypoint for sectorplot.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sanjiv13/sectorplot/internal/config"
	"github.com/sanjiv13/sectorplot/internal/model"
	"github.com/sanjiv13/sectorplot/internal/plot"
	"github.com/sanjiv13/sectorplot/internal/scan"
	"github.com/sanjiv13/sectorplot/internal/store"
	"github.com/sanjiv13/sectorplot/internal/tui"
)

const (
	defaultPlotHeight  = 10
	defaultHistoryLast = 20
)

var (
	viewFile       string
	viewCustomVar  string
	viewPlotHeight int

	scanFile string

	extractFile       string
	extractSector     int
	extractCustomVar  string
	extractVars       string
	extractCoords     string
	extractSwap       bool
	extractPlotHeight int

	historyLast int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "sectorplot",
		Short:         "Sector log viewer with terminal plots",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runViewCmd,
	}

	rootCmd.Flags().StringVar(&viewFile, "file", "", "log file to scan")
	rootCmd.Flags().StringVar(&viewCustomVar, "var", "", "additional variable to extract")
	rootCmd.Flags().IntVar(&viewPlotHeight, "plot-height", defaultPlotHeight, "plot height in rows")

	rootCmd.AddCommand(newScanCmd())
	rootCmd.AddCommand(newExtractCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runViewCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "var", &viewCustomVar, fileCfg.Scan.CustomVar)
	applyIntConfig(cmd, "plot-height", &viewPlotHeight, fileCfg.Plot.Height)

	if viewFile == "" {
		return fmt.Errorf("--file is required")
	}
	if viewPlotHeight <= 0 {
		return fmt.Errorf("--plot-height must be > 0")
	}

	cfg := model.ScanConfig{
		FilePath:   viewFile,
		CustomVar:  strings.TrimSpace(viewCustomVar),
		ExtraPairs: fileCfg.Coords,
		PlotHeight: viewPlotHeight,
	}

	lines, err := scan.ReadLines(cfg.FilePath)
	if err != nil {
		return err
	}
	markers := scan.FindMarkers(lines)
	sectors := scan.Sectionize(lines, markers)
	recordScan(cfg.FilePath, len(markers), cfg.CustomVar)

	coordPairs := scan.CoordPairs(cfg.CustomVar, cfg.ExtraPairs)
	model := tui.NewModel(cfg, sectors, coordPairs)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "List sector markers in a log file",
		Args:  cobra.NoArgs,
		RunE:  runScanCmd,
	}
	cmd.Flags().StringVar(&scanFile, "file", "", "log file to scan")
	return cmd
}

func runScanCmd(cmd *cobra.Command, _ []string) error {
	if scanFile == "" {
		return fmt.Errorf("--file is required")
	}
	lines, err := scan.ReadLines(scanFile)
	if err != nil {
		return err
	}
	markers := scan.FindMarkers(lines)
	sectors := scan.Sectionize(lines, markers)
	recordScan(scanFile, len(markers), "")

	out := cmd.OutOrStdout()
	if len(sectors) == 0 {
		_, err := fmt.Fprintln(out, "No sectors found matching pattern.")
		return err
	}
	for _, sector := range sectors {
		if _, err := fmt.Fprintln(out, sector.Label); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract and plot one sector non-interactively",
		Args:  cobra.NoArgs,
		RunE:  runExtractCmd,
	}
	cmd.Flags().StringVar(&extractFile, "file", "", "log file to scan")
	cmd.Flags().IntVar(&extractSector, "sector", 1, "sector number (1-based)")
	cmd.Flags().StringVar(&extractCustomVar, "var", "", "additional variable to extract")
	cmd.Flags().StringVar(&extractVars, "vars", "", "comma-separated variables to plot (default: all)")
	cmd.Flags().StringVar(&extractCoords, "coords", "", "comma-separated coordinate sets to plot (default: all)")
	cmd.Flags().BoolVar(&extractSwap, "swap", false, "swap plot axes")
	cmd.Flags().IntVar(&extractPlotHeight, "plot-height", defaultPlotHeight, "plot height in rows")
	return cmd
}

func runExtractCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "var", &extractCustomVar, fileCfg.Scan.CustomVar)
	applyIntConfig(cmd, "plot-height", &extractPlotHeight, fileCfg.Plot.Height)

	if extractFile == "" {
		return fmt.Errorf("--file is required")
	}
	if extractPlotHeight <= 0 {
		return fmt.Errorf("--plot-height must be > 0")
	}

	lines, err := scan.ReadLines(extractFile)
	if err != nil {
		return err
	}
	markers := scan.FindMarkers(lines)
	sectors := scan.Sectionize(lines, markers)
	out := cmd.OutOrStdout()
	if len(sectors) == 0 {
		_, err := fmt.Fprintln(out, "No sectors found matching pattern.")
		return err
	}
	if extractSector < 1 || extractSector > len(sectors) {
		return fmt.Errorf("--sector must be between 1 and %d", len(sectors))
	}
	sector := sectors[extractSector-1]

	customVar := strings.TrimSpace(extractCustomVar)
	coordPairs := scan.CoordPairs(customVar, fileCfg.Coords)
	result := scan.ParseSector(sector.Lines, customVar, coordPairs)

	if _, err := fmt.Fprintln(out, sector.Label); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if _, err := fmt.Fprintf(out, "observations=%d coords=%d\n\n", len(result.Observations), len(result.Coords)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	vars := selectNames(extractVars, result.Variables)
	if len(result.Observations) > 0 && len(vars) > 0 {
		if extractSwap {
			sets := plot.SwappedValueSets(result.Observations, vars)
			if err := plot.Scatter(out, "Time Series (value on x, elapsed seconds on y)", sets, 0, extractPlotHeight); err != nil {
				return fmt.Errorf("failed to render plot: %w", err)
			}
		} else {
			series := plot.TimeSeries(result.Observations, vars)
			if err := plot.Lines(out, "Time Series", series, 0, extractPlotHeight); err != nil {
				return fmt.Errorf("failed to render plot: %w", err)
			}
		}
		if err := writeLines(out, plot.VariableSummary(result.Observations, vars)); err != nil {
			return err
		}
	}

	coordNames := selectNames(extractCoords, result.CoordNames)
	if len(result.Coords) > 0 && len(coordNames) > 0 {
		title := "Coordinate Plot"
		if extractSwap {
			title = "Coordinate Plot (axes swapped)"
		}
		sets := plot.CoordPointSets(result.Coords, coordNames, extractSwap)
		if _, err := fmt.Fprintln(out, ""); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		if err := plot.Scatter(out, title, sets, 0, extractPlotHeight); err != nil {
			return fmt.Errorf("failed to render plot: %w", err)
		}
		if err := writeLines(out, plot.CoordSummary(result.Coords, coordNames)); err != nil {
			return err
		}
	}
	return nil
}

// selectNames filters a comma-separated request against the available names.
// An empty request selects everything; unknown names are dropped.
func selectNames(request string, available []string) []string {
	request = strings.TrimSpace(request)
	if request == "" {
		return available
	}
	known := make(map[string]struct{}, len(available))
	for _, name := range available {
		known[name] = struct{}{}
	}
	var out []string
	for _, part := range strings.Split(request, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if _, ok := known[part]; ok {
			out = append(out, part)
		}
	}
	return out
}

func writeLines(out io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent scans",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().IntVar(&historyLast, "last", defaultHistoryLast, "limit to last N scans (0 for all)")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	records, err := st.ListScans(context.Background(), historyLast)
	if err != nil {
		return fmt.Errorf("failed to list scans: %w", err)
	}
	out := cmd.OutOrStdout()
	if len(records) == 0 {
		_, err := fmt.Fprintln(out, "No scans recorded yet.")
		return err
	}

	headers := []string{"Scanned", "File", "Markers", "Var"}
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{
			rec.ScannedAt.Local().Format("2006-01-02 15:04:05"),
			rec.Path,
			fmt.Sprintf("%d", rec.Markers),
			rec.CustomVar,
		})
	}
	return writeLines(out, plot.FormatTable(headers, rows, map[int]bool{2: true}))
}

// recordScan appends to the scan history. Failures are reported but never
// abort the command.
func recordScan(path string, markers int, customVar string) {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		logErrf("failed to open scan history: %v\n", err)
		return
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	rec := model.ScanRecord{
		Path:      path,
		ScannedAt: time.Now(),
		Markers:   markers,
		CustomVar: customVar,
	}
	if _, err := st.InsertScan(context.Background(), rec); err != nil {
		logErrf("failed to record scan: %v\n", err)
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# sectorplot configuration
# Uncomment a value to enable it. CLI flags override config values.

[scan]
# custom-var = "RX"       # Additional variable to extract

[plot]
# height = %d             # Plot height in rows

# Extra coordinate pairs, merged after the built-in set.
# [coords]
# "TrackX" = "TrackY"
`, defaultPlotHeight)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
