// Package plot renders braille-cell terminal plots and aligned text tables.
package plot

import (
	"io"
	"math"
	"os"

	"golang.org/x/term"
)

const (
	defaultHeight = 10
	minWidth      = 10
	fallbackWidth = 80
	colorReset    = "\x1b[0m"
)

// A cellGrid is a height x width grid of braille cells; each cell packs a
// 2x4 dot matrix into one byte.
type cellGrid [][]uint8

func newCellGrid(height, width int) cellGrid {
	grid := make(cellGrid, height)
	for y := range grid {
		grid[y] = make([]uint8, width)
	}
	return grid
}

// setDot marks a dot at braille resolution: x in [0, width*2), y in [0, height*4).
func (g cellGrid) setDot(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	cellY := y / 4
	cellX := x / 2
	if cellY >= len(g) {
		return
	}
	if cellX >= len(g[cellY]) {
		return
	}
	g[cellY][cellX] |= dotMask(x%2, y%4)
}

func dotMask(x, y int) uint8 {
	switch {
	case x == 0 && y == 0:
		return 0x01
	case x == 0 && y == 1:
		return 0x02
	case x == 0 && y == 2:
		return 0x04
	case x == 0 && y == 3:
		return 0x40
	case x == 1 && y == 0:
		return 0x08
	case x == 1 && y == 1:
		return 0x10
	case x == 1 && y == 2:
		return 0x20
	case x == 1 && y == 3:
		return 0x80
	default:
		return 0
	}
}

func brailleRune(mask uint8) rune {
	return rune(0x2800 + int(mask))
}

// composeCells merges one cell across all grids. The first grid with a dot
// wins the color slot.
func composeCells(grids []cellGrid, x, y int) (uint8, int) {
	var mask uint8
	colorIdx := -1
	for i, grid := range grids {
		if y < 0 || y >= len(grid) {
			continue
		}
		if x < 0 || x >= len(grid[y]) {
			continue
		}
		cell := grid[y][x]
		if cell == 0 {
			continue
		}
		if colorIdx == -1 {
			colorIdx = i
		}
		mask |= cell
	}
	return mask, colorIdx
}

// drawSegment plots a Bresenham line between two dot positions.
func drawSegment(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := int(math.Abs(float64(x1 - x0)))
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -int(math.Abs(float64(y1 - y0)))
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			if x0 == x1 {
				break
			}
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			if y0 == y1 {
				break
			}
			err += dx
			y0 += sy
		}
	}
}

type lineStyle struct {
	name   string
	period int
	on     int
}

func (ls lineStyle) shouldPlot(x int) bool {
	if ls.period <= 1 {
		return true
	}
	if x < 0 {
		x = -x
	}
	return x%ls.period < ls.on
}

var lineStyles = []lineStyle{
	{name: "solid", period: 1, on: 1},
	{name: "dashed", period: 6, on: 3},
	{name: "dotted", period: 4, on: 1},
	{name: "dashdot", period: 8, on: 3},
}

type ansiColor struct {
	name string
	code string
}

var colorPalette = []ansiColor{
	{name: "cyan", code: "\x1b[36m"},
	{name: "magenta", code: "\x1b[35m"},
	{name: "yellow", code: "\x1b[33m"},
	{name: "green", code: "\x1b[32m"},
	{name: "blue", code: "\x1b[34m"},
}

func shouldUseColor(w io.Writer, force bool) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if force {
		return true
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return fallbackWidth
	}
	return width
}

func clampDot(v, limit int) int {
	if v < 0 {
		return 0
	}
	if v >= limit {
		return limit - 1
	}
	return v
}
