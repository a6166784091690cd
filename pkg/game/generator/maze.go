package generator

import (
	"strconv"
	"strings"

	"darkmaze/pkg/engine/world"
)

// Maze is a finished maze. It is never modified after Generate returns it;
// every accessor hands out copies.
type Maze struct {
	grid  *world.Grid
	path  []world.Coord
	start world.Coord
	end   world.Coord
	seed  int64
}

// Width returns the size of the first grid index
func (m *Maze) Width() int {
	return m.grid.Width()
}

// Height returns the size of the second grid index
func (m *Maze) Height() int {
	return m.grid.Height()
}

// Seed returns the seed of the generator that produced the maze
func (m *Maze) Seed() int64 {
	return m.seed
}

// Start returns the start coordinate
func (m *Maze) Start() world.Coord {
	return m.start
}

// End returns the end coordinate
func (m *Maze) End() world.Coord {
	return m.end
}

// Path returns the main path from start to end, inclusive
func (m *Maze) Path() []world.Coord {
	out := make([]world.Coord, len(m.path))
	copy(out, m.path)
	return out
}

// At returns the cell at x, y; positions outside the maze read as Empty
func (m *Maze) At(x, y int) world.Cell {
	return m.grid.Get(world.Coord{X: x, Y: y})
}

// Grid returns a copy of the cells indexed [x][y]
func (m *Maze) Grid() [][]world.Cell {
	return m.grid.Cells()
}

// Count returns how many cells hold v
func (m *Maze) Count(v world.Cell) int {
	return m.grid.Count(v)
}

// ForEachCell iterates over all cells, x-major
func (m *Maze) ForEachCell(fn func(x, y int, cell world.Cell)) {
	m.grid.ForEachCell(fn)
}

// String renders the debug dump: one line per x, cell values followed by
// three spaces, lines separated by a blank line.
func (m *Maze) String() string {
	var b strings.Builder
	b.Grow(m.Width() * m.Height() * 4)
	for x := 0; x < m.Width(); x++ {
		for y := 0; y < m.Height(); y++ {
			b.WriteString(strconv.Itoa(int(m.At(x, y))))
			b.WriteString("   ")
		}
		b.WriteString("\n\n")
	}
	return b.String()
}
