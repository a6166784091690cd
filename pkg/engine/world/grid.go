package world

// Grid is a width × height array of cells addressed as [x][y].
type Grid struct {
	cells  [][]Cell
	width  int
	height int
}

// NewGrid creates a new grid with the given dimensions, every cell Empty
func NewGrid(width, height int) *Grid {
	g := &Grid{}
	g.Build(width, height)
	return g
}

// Build (re)initializes the grid with the given dimensions
func (g *Grid) Build(width, height int) {
	if width <= 0 || height <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.width = width
	g.height = height
	g.cells = make([][]Cell, width)
	for x := range g.cells {
		g.cells[x] = make([]Cell, height)
	}
}

// Width returns the size of the first index
func (g *Grid) Width() int {
	return g.width
}

// Height returns the size of the second index
func (g *Grid) Height() int {
	return g.height
}

// IsValidPosition checks if an x/y position is within grid bounds
func (g *Grid) IsValidPosition(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Contains checks if a coordinate is within grid bounds
func (g *Grid) Contains(c Coord) bool {
	return g.IsValidPosition(c.X, c.Y)
}

// Get returns the cell at c. Positions outside the grid read as Empty.
func (g *Grid) Get(c Coord) Cell {
	if !g.Contains(c) {
		return Empty
	}
	return g.cells[c.X][c.Y]
}

// Set writes v at c. Returns false if c is out of bounds.
func (g *Grid) Set(c Coord, v Cell) bool {
	if !g.Contains(c) {
		return false
	}
	g.cells[c.X][c.Y] = v
	return true
}

// ForEachCell iterates over all cells, x-major, calling fn for each
func (g *Grid) ForEachCell(fn func(x, y int, cell Cell)) {
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			fn(x, y, g.cells[x][y])
		}
	}
}

// Count returns how many cells hold v
func (g *Grid) Count(v Cell) int {
	n := 0
	g.ForEachCell(func(_, _ int, cell Cell) {
		if cell == v {
			n++
		}
	})
	return n
}

// Find returns every coordinate holding v, x-major
func (g *Grid) Find(v Cell) []Coord {
	var out []Coord
	g.ForEachCell(func(x, y int, cell Cell) {
		if cell == v {
			out = append(out, Coord{X: x, Y: y})
		}
	})
	return out
}

// Cells returns a copy of the cell array indexed [x][y]
func (g *Grid) Cells() [][]Cell {
	out := make([][]Cell, g.width)
	for x := range g.cells {
		out[x] = make([]Cell, g.height)
		copy(out[x], g.cells[x])
	}
	return out
}
