package starmap

import (
	"sort"
	"strings"

	"github.com/Cemonix/ColonyProtocol/internal/models"
)

const planetIcon = '◉'

// Render draws the galaxy as a bordered ASCII grid: Bresenham connection lines,
// planet icons on top of lines, and owner-labelled planet ids on top of both.
func (m *Map) Render(playerNames map[models.PlayerID]string) string {
	grid := make([]rune, gridWidth*gridHeight)
	for i := range grid {
		grid[i] = ' '
	}
	idx := func(x, y int) int { return y*gridWidth + x }

	for x := 0; x < gridWidth; x++ {
		grid[idx(x, 0)] = '#'
		grid[idx(x, gridHeight-1)] = '#'
	}
	for y := 0; y < gridHeight; y++ {
		grid[idx(0, y)] = '#'
		grid[idx(gridWidth-1, y)] = '#'
	}

	ids := make([]models.PlanetID, 0, len(m.Planets))
	for id := range m.Planets {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		from, ok := m.Positions[id]
		if !ok {
			continue
		}
		for _, conn := range m.Planets[id].Connections {
			to, ok := m.Positions[conn.To]
			if !ok {
				continue
			}
			drawLine(grid, from.X, from.Y, to.X, to.Y)
		}
	}

	for _, id := range ids {
		pos := m.Positions[id]
		grid[idx(pos.X, pos.Y)] = planetIcon
	}

	for _, id := range ids {
		pos := m.Positions[id]
		planet := m.Planets[id]
		label := " " + string(id)
		if !planet.IsNeutral() {
			owner := playerNames[planet.Owner]
			if owner == "" {
				owner = string(planet.Owner)
			}
			label = " " + string(id) + " (" + owner + ")"
		}
		for i, ch := range label {
			x := pos.X + 1 + i
			if x >= gridWidth-1 {
				break
			}
			if cur := grid[idx(x, pos.Y)]; cur != '#' && cur != planetIcon {
				grid[idx(x, pos.Y)] = ch
			}
		}
	}

	var b strings.Builder
	b.Grow((gridWidth + 1) * gridHeight)
	for y := 0; y < gridHeight; y++ {
		for x := 0; x < gridWidth; x++ {
			b.WriteRune(grid[idx(x, y)])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// drawLine rasterizes a connection with Bresenham's algorithm, only filling
// empty cells so planets and borders stay visible.
func drawLine(grid []rune, x1, y1, x2, y2 int) {
	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx, sy := 1, 1
	if x1 >= x2 {
		sx = -1
	}
	if y1 >= y2 {
		sy = -1
	}
	err := dx + dy

	var ch rune
	switch {
	case dx == 0:
		ch = '│'
	case dy == 0:
		ch = '─'
	case sx == sy:
		ch = '\\'
	default:
		ch = '/'
	}

	for {
		i := y1*gridWidth + x1
		if grid[i] == ' ' {
			grid[i] = ch
		}
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x1 += sx
		}
		if e2 <= dx {
			err += dx
			y1 += sy
		}
	}
}
