package generator

import (
	"errors"
	"testing"

	"darkmaze/pkg/engine/world"
)

// handMaze builds a 4x4 maze: a straight main path along y=0 with one branch
func handMaze() *Maze {
	g := world.NewGrid(4, 4)
	path := []world.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}
	for _, c := range path {
		g.Set(c, world.Path)
	}
	g.Set(world.Coord{X: 1, Y: 1}, world.Treasure)
	g.Set(world.Coord{X: 1, Y: 2}, world.Enemy)
	g.Set(path[0], world.Start)
	g.Set(path[3], world.End)
	return &Maze{grid: g, path: path, start: path[0], end: path[3], seed: 9}
}

func TestMazeString_DebugDump(t *testing.T) {
	want := "2   0   0   0   \n\n" +
		"1   4   5   0   \n\n" +
		"1   0   0   0   \n\n" +
		"3   0   0   0   \n\n"
	if got := handMaze().String(); got != want {
		t.Errorf("String() =\n%q\nwant\n%q", got, want)
	}
}

func TestMazeAccessorsReturnCopies(t *testing.T) {
	m := handMaze()
	p := m.Path()
	p[0] = world.Coord{X: 3, Y: 3}
	if m.Path()[0] != (world.Coord{X: 0, Y: 0}) {
		t.Error("mutating Path() result changed the maze")
	}
	if m.At(-1, 0) != world.Empty || m.At(0, 4) != world.Empty {
		t.Error("At() outside the grid should read Empty")
	}
}

func TestValidate_HandMaze(t *testing.T) {
	if err := Validate(handMaze()); err != nil {
		t.Errorf("Validate(handMaze) = %v, want nil", err)
	}
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(m *Maze)
	}{
		{"loop", func(m *Maze) {
			m.grid.Set(world.Coord{X: 2, Y: 1}, world.Path)
		}},
		{"detached cell", func(m *Maze) {
			m.grid.Set(world.Coord{X: 3, Y: 3}, world.Path)
		}},
		{"second start", func(m *Maze) {
			m.grid.Set(world.Coord{X: 1, Y: 2}, world.Start)
		}},
		{"missing end", func(m *Maze) {
			m.grid.Set(world.Coord{X: 3, Y: 0}, world.Path)
		}},
		{"start elsewhere", func(m *Maze) {
			m.start = world.Coord{X: 1, Y: 0}
		}},
		{"unknown cell value", func(m *Maze) {
			m.grid.Set(world.Coord{X: 1, Y: 2}, world.Cell(9))
		}},
		{"backwards path", func(m *Maze) {
			m.path = []world.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}, {X: 3, Y: 0}}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := handMaze()
			tt.mutate(m)
			err := Validate(m)
			if !errors.Is(err, ErrInvalidMaze) {
				t.Errorf("Validate() = %v, want ErrInvalidMaze", err)
			}
		})
	}
}
