package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mobil-koeln/crtm-cli/internal/models"
)

type mapCellType int

const (
	mapCellEmpty mapCellType = iota
	mapCellPath
	mapCellBefore
	mapCellBoard
	mapCellAfter
)

type mapCell struct {
	ch    rune
	ctype mapCellType
}

// gridPoint is a stop position on the map grid
type gridPoint struct {
	col int
	row int
}

// renderRouteMap renders a dots-only geographic map of an itinerary. Stops
// before the board stop are dimmed, the board stop is highlighted.
func renderRouteMap(stops []models.Stop, boardIdx, width, height int) string {
	if len(stops) == 0 || width < 3 || height < 3 {
		return ""
	}

	type stopEntry struct {
		index int
		pos   models.Coordinates
	}
	var valid []stopEntry
	for i, s := range stops {
		if s.Coordinates != (models.Coordinates{}) {
			valid = append(valid, stopEntry{index: i, pos: s.Coordinates})
		}
	}
	if len(valid) == 0 {
		return ""
	}

	minLat, maxLat := valid[0].pos.Latitude, valid[0].pos.Latitude
	minLon, maxLon := valid[0].pos.Longitude, valid[0].pos.Longitude
	for _, v := range valid[1:] {
		minLat = math.Min(minLat, v.pos.Latitude)
		maxLat = math.Max(maxLat, v.pos.Latitude)
		minLon = math.Min(minLon, v.pos.Longitude)
		maxLon = math.Max(maxLon, v.pos.Longitude)
	}

	// Urban itineraries can be a few hundred meters long
	const minSpan = 0.005
	latSpan := maxLat - minLat
	lonSpan := maxLon - minLon
	if latSpan < minSpan {
		mid := (minLat + maxLat) / 2
		minLat, maxLat = mid-minSpan/2, mid+minSpan/2
		latSpan = minSpan
	}
	if lonSpan < minSpan {
		mid := (minLon + maxLon) / 2
		minLon, maxLon = mid-minSpan/2, mid+minSpan/2
		lonSpan = minSpan
	}

	// 10% padding
	minLat -= latSpan * 0.1
	maxLat += latSpan * 0.1
	minLon -= lonSpan * 0.1
	maxLon += lonSpan * 0.1
	latSpan = maxLat - minLat
	lonSpan = maxLon - minLon

	// Terminal cells are about twice as tall as wide
	xScale := float64(width-1) / lonSpan
	yScale := float64(height-1) / latSpan * 2.0
	scale := math.Min(xScale, yScale)

	xOffset := (float64(width-1) - scale*lonSpan) / 2
	yOffset := (float64(height-1) - scale*latSpan/2.0) / 2

	points := make([]gridPoint, len(valid))
	for i, v := range valid {
		col := int(math.Round((v.pos.Longitude-minLon)*scale + xOffset))
		row := int(math.Round((maxLat-v.pos.Latitude)*scale/2.0 + yOffset))
		points[i] = gridPoint{col: clamp(col, 0, width-1), row: clamp(row, 0, height-1)}
	}

	grid := make([][]mapCell, height)
	for r := range grid {
		grid[r] = make([]mapCell, width)
		for c := range grid[r] {
			grid[r][c] = mapCell{ch: ' ', ctype: mapCellEmpty}
		}
	}

	for i := 0; i < len(points)-1; i++ {
		bresenhamLine(grid, points[i], points[i+1])
	}

	for i, v := range valid {
		p := points[i]
		switch {
		case boardIdx >= 0 && v.index < boardIdx:
			grid[p.row][p.col] = mapCell{ch: '○', ctype: mapCellBefore}
		case v.index == boardIdx:
			grid[p.row][p.col] = mapCell{ch: '◉', ctype: mapCellBoard}
		default:
			grid[p.row][p.col] = mapCell{ch: '●', ctype: mapCellAfter}
		}
	}

	styles := map[mapCellType]lipgloss.Style{
		mapCellPath:   lipgloss.NewStyle().Foreground(colorGray),
		mapCellBefore: lipgloss.NewStyle().Foreground(colorGray),
		mapCellBoard:  lipgloss.NewStyle().Foreground(colorGreen).Bold(true),
		mapCellAfter:  lipgloss.NewStyle().Foreground(colorCyan).Bold(true),
	}

	var b strings.Builder
	for r := range grid {
		for _, cell := range grid[r] {
			if style, ok := styles[cell.ctype]; ok {
				b.WriteString(style.Render(string(cell.ch)))
			} else {
				b.WriteRune(cell.ch)
			}
		}
		if r < height-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// bresenhamLine draws a path between two grid points.
func bresenhamLine(grid [][]mapCell, from, to gridPoint) {
	x0, y0, x1, y1 := from.col, from.row, to.col, to.row
	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy

	for {
		if y0 >= 0 && y0 < len(grid) && x0 >= 0 && x0 < len(grid[y0]) {
			if grid[y0][x0].ctype == mapCellEmpty {
				grid[y0][x0] = mapCell{ch: '·', ctype: mapCellPath}
			}
		}

		if x0 == x1 && y0 == y1 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}
