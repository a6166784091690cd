// Package generator builds dead-end mazes: a carved main path from a start
// region to an end region, tree-like dead-end corridors grown off it, and
// treasure/enemy markers scattered over the corridors.
package generator

// GridGenerator is an interface for maze generation algorithms
type GridGenerator interface {
	Generate() (*Maze, error)
	Name() string
}

var _ GridGenerator = (*DeadEndGenerator)(nil)
