package world

import "fmt"

// Coord is a grid position. X is the first index (0 <= X < width),
// Y the second (0 <= Y < height).
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns the coordinate one step away in the given direction
func (c Coord) Add(dir Direction) Coord {
	dx, dy := dir.Delta()
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Neighbors returns the four cardinal neighbours in rotation order.
// Coordinates may fall outside any particular grid.
func (c Coord) Neighbors() [4]Coord {
	var out [4]Coord
	for i, dir := range AllDirections() {
		out[i] = c.Add(dir)
	}
	return out
}

// IsAdjacent reports whether o is one cardinal step away from c
func (c Coord) IsAdjacent(o Coord) bool {
	dx, dy := c.X-o.X, c.Y-o.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx+dy == 1
}

func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}
