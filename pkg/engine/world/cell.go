// Package world provides generic 2D grid primitives used by the maze generator.
package world

// Cell is the value stored at a grid position.
type Cell int

// Cell values. The numeric values are part of the public grid contract.
const (
	Empty Cell = iota
	Path
	Start
	End
	Treasure
	Enemy
)

// String returns the name of the cell value
func (c Cell) String() string {
	switch c {
	case Empty:
		return "Empty"
	case Path:
		return "Path"
	case Start:
		return "Start"
	case End:
		return "End"
	case Treasure:
		return "Treasure"
	case Enemy:
		return "Enemy"
	default:
		return "Unknown"
	}
}

// Symbol returns the single-character map symbol for a cell value
func (c Cell) Symbol() rune {
	switch c {
	case Path:
		return '.'
	case Start:
		return 'S'
	case End:
		return 'E'
	case Treasure:
		return '$'
	case Enemy:
		return '!'
	default:
		return '#'
	}
}

// IsOpen returns true for any carved cell. Treasure and enemy cells are
// corridor cells with a marker, so they count as open too.
func (c Cell) IsOpen() bool {
	return c != Empty
}

// IsValid returns true if the value is one of the known cell values
func (c Cell) IsValid() bool {
	return c >= Empty && c <= Enemy
}

// AllCells returns every cell value in numeric order
func AllCells() []Cell {
	return []Cell{Empty, Path, Start, End, Treasure, Enemy}
}
