// Package scan implements the log sectioning and variable extraction pipeline.
package scan

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/sanjiv13/sectorplot/internal/model"
)

// markerPattern matches sector boundary lines as a substring test.
var markerPattern = regexp.MustCompile(`RX [0-9]+ RY [0-9]+ TX [0-9]+ TY [0-9]+`)

// ReadLines reads the whole file into memory as raw lines.
func ReadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only log file.
			_ = cerr
		}
	}()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read log file %s: %w", path, err)
	}
	return lines, nil
}

// FindMarkers returns every line matching the marker pattern, in file order.
// Zero matches is not an error; the caller reports "no sectors found".
func FindMarkers(lines []string) []model.Marker {
	var markers []model.Marker
	for i, line := range lines {
		if markerPattern.MatchString(line) {
			markers = append(markers, model.Marker{
				Line: i + 1,
				Text: strings.TrimSpace(line),
			})
		}
	}
	return markers
}

// ScanMarkers reads a file and locates its sector markers.
func ScanMarkers(path string) ([]model.Marker, error) {
	lines, err := ReadLines(path)
	if err != nil {
		return nil, err
	}
	return FindMarkers(lines), nil
}
