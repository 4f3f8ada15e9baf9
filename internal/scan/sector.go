package scan

import (
	"fmt"
	"strings"

	"github.com/sanjiv13/sectorplot/internal/model"
)

const labelPreviewLen = 60

// Sectionize partitions the file into one sector per marker. Sector i spans
// from its marker line (inclusive) to the next marker line (exclusive); the
// last sector runs to end of file. Lines are whitespace-trimmed.
func Sectionize(lines []string, markers []model.Marker) []model.Sector {
	sectors := make([]model.Sector, 0, len(markers))
	for i, m := range markers {
		start := m.Line - 1
		end := len(lines)
		if i+1 < len(markers) {
			end = markers[i+1].Line - 1
		}
		trimmed := make([]string, 0, end-start)
		for _, line := range lines[start:end] {
			trimmed = append(trimmed, strings.TrimSpace(line))
		}
		name := fmt.Sprintf("Sector %d", i+1)
		sectors = append(sectors, model.Sector{
			Name:      name,
			StartLine: m.Line,
			Lines:     trimmed,
			Label:     fmt.Sprintf("%s - Line %d: %s", name, m.Line, previewText(m.Text)),
		})
	}
	return sectors
}

func previewText(s string) string {
	runes := []rune(s)
	if len(runes) <= labelPreviewLen {
		return s
	}
	return string(runes[:labelPreviewLen])
}
