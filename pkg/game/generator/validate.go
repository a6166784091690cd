package generator

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"darkmaze/pkg/engine/world"
)

// ErrInvalidMaze is wrapped by every structural validation failure
var ErrInvalidMaze = errors.New("invalid maze")

func invalid(format string, a ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidMaze, fmt.Sprintf(format, a...))
}

// Validate checks the structural guarantees of a generated maze: known cell
// values, a single start and end, a monotone main path joining them, every open cell reachable
// from the start, and open cells forming a tree.
func Validate(m *Maze) error {
	if m == nil || m.grid == nil {
		return invalid("no grid")
	}

	if starts := m.grid.Find(world.Start); len(starts) != 1 || starts[0] != m.start {
		return invalid("start cells %v, want exactly %v", starts, m.start)
	}
	if ends := m.grid.Find(world.End); len(ends) != 1 || ends[0] != m.end {
		return invalid("end cells %v, want exactly %v", ends, m.end)
	}

	if err := validatePath(m); err != nil {
		return err
	}

	open, edges := 0, 0
	var unknown []world.Coord
	m.ForEachCell(func(x, y int, cell world.Cell) {
		if !cell.IsValid() {
			unknown = append(unknown, world.Coord{X: x, Y: y})
			return
		}
		if !cell.IsOpen() {
			return
		}
		open++
		// count each edge once, from its lower endpoint
		if m.At(x+1, y).IsOpen() {
			edges++
		}
		if m.At(x, y+1).IsOpen() {
			edges++
		}
	})

	if len(unknown) > 0 {
		return invalid("unknown cell values at %v", unknown)
	}

	reached := reachableFrom(m, m.start)
	if reached.Size() != open {
		return invalid("%d of %d open cells reachable from start", reached.Size(), open)
	}
	if edges != open-1 {
		return invalid("open cells contain a loop (%d cells, %d edges)", open, edges)
	}
	return nil
}

func validatePath(m *Maze) error {
	if len(m.path) < 2 {
		return invalid("main path has %d cells", len(m.path))
	}
	if m.path[0] != m.start || m.path[len(m.path)-1] != m.end {
		return invalid("main path runs %v..%v, want %v..%v", m.path[0], m.path[len(m.path)-1], m.start, m.end)
	}
	for i := 1; i < len(m.path); i++ {
		prev, cur := m.path[i-1], m.path[i]
		if !prev.IsAdjacent(cur) || cur.X < prev.X || cur.Y < prev.Y {
			return invalid("main path step %v -> %v is not a forward step", prev, cur)
		}
	}
	return nil
}

// reachableFrom collects all open cells 4-connected to start
func reachableFrom(m *Maze, start world.Coord) mapset.Set[world.Coord] {
	visited := mapset.New[world.Coord]()
	if !m.At(start.X, start.Y).IsOpen() {
		return visited
	}

	queue := []world.Coord{start}
	visited.Put(start)
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, n := range current.Neighbors() {
			if m.At(n.X, n.Y).IsOpen() && !visited.Has(n) {
				visited.Put(n)
				queue = append(queue, n)
			}
		}
	}
	return visited
}
