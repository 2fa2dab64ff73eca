package main

import (
	"strconv"
)

type lineRunes struct {
	horizontal rune
	vertical   rune
}

var canalRunes = map[CanalCategory]lineRunes{
	CanalMain:      {horizontal: '━', vertical: '┃'},
	CanalSecondary: {horizontal: '─', vertical: '│'},
	CanalTertiary:  {horizontal: '┄', vertical: '┆'},
}

const (
	sluiceRune  = '●'
	pendingRune = '+'
	cursorRune  = '█'
	parcelRune  = '□'
)

// Render draws the scheme onto a cols x rows character grid. Every line is
// exactly cols runes wide so the grid can be joined with other panels.
func (e *Editor) Render(cols, rows int, cursorX, cursorY int, showCursor bool) []string {
	if cols < 1 || rows < 1 {
		return nil
	}
	grid := make([][]rune, rows)
	for i := range grid {
		grid[i] = make([]rune, cols)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	if e.LayerVisible(LayerParcels) {
		for _, p := range e.parcels {
			drawParcel(grid, p, cols, rows)
		}
	}

	for _, c := range e.canals {
		if !e.canalVisible(c) {
			continue
		}
		runes, ok := canalRunes[c.Category]
		if !ok {
			runes = canalRunes[CanalTertiary]
		}
		for i := 0; i < len(c.Points)-1; i++ {
			x1, y1 := logicalToCell(c.Points[i], cols, rows)
			x2, y2 := logicalToCell(c.Points[i+1], cols, rows)
			drawLineSegment(grid, x1, y1, x2, y2, runes)
		}
	}

	if e.LayerVisible(LayerSluices) {
		for _, s := range e.sluices {
			x, y := logicalToCell(Point{X: s.X, Y: s.Y}, cols, rows)
			grid[y][x] = sluiceRune
		}
	}

	if p, ok := e.Pending(); ok {
		x, y := logicalToCell(p, cols, rows)
		grid[y][x] = pendingRune
	}

	if showCursor && cursorY >= 0 && cursorY < rows && cursorX >= 0 && cursorX < cols {
		grid[cursorY][cursorX] = cursorRune
	}

	lines := make([]string, rows)
	for i, row := range grid {
		lines[i] = string(row)
	}
	return lines
}

func drawParcel(grid [][]rune, p Parcel, cols, rows int) {
	x0, y0 := logicalToCell(Point{X: p.X, Y: p.Y}, cols, rows)
	x1, y1 := logicalToCell(Point{X: p.X + p.Width, Y: p.Y + p.Height}, cols, rows)
	if x1-x0 < 1 || y1-y0 < 1 {
		grid[y0][x0] = parcelRune
		return
	}

	for x := x0 + 1; x < x1; x++ {
		grid[y0][x] = '─'
		grid[y1][x] = '─'
	}
	for y := y0 + 1; y < y1; y++ {
		grid[y][x0] = '│'
		grid[y][x1] = '│'
	}
	grid[y0][x0] = '┌'
	grid[y0][x1] = '┐'
	grid[y1][x0] = '└'
	grid[y1][x1] = '┘'

	label := []rune(strconv.Itoa(p.Number))
	if y1-y0 >= 2 && x1-x0-1 >= len(label) {
		for i, r := range label {
			grid[y0+1][x0+1+i] = r
		}
	}
}

// drawLineSegment walks from (x1,y1) to (x2,y2) with Bresenham's algorithm.
func drawLineSegment(grid [][]rune, x1, y1, x2, y2 int, runes lineRunes) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	r := segmentRune(x2-x1, y2-y1, runes)

	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy
	x, y := x1, y1
	for {
		if isValidPos(grid, x, y) {
			grid[y][x] = r
		}
		if x == x2 && y == y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

func segmentRune(dx, dy int, runes lineRunes) rune {
	adx, ady := abs(dx), abs(dy)
	switch {
	case ady == 0 || adx >= 2*ady:
		return runes.horizontal
	case adx == 0 || ady >= 2*adx:
		return runes.vertical
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}

func isValidPos(grid [][]rune, x, y int) bool {
	return y >= 0 && y < len(grid) && x >= 0 && x < len(grid[y])
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
