package world

import "testing"

func TestDirection_RotationOrder(t *testing.T) {
	want := []Direction{South, East, North, West}
	for i, d := range AllDirections() {
		if got := d.Next(); got != want[i] {
			t.Errorf("%v.Next() = %v, want %v", d, got, want[i])
		}
	}
}

func TestDirection_Deltas(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy int
	}{
		{West, -1, 0},
		{South, 0, -1},
		{East, 1, 0},
		{North, 0, 1},
		{Direction(9), 0, 0},
	}
	for _, tt := range tests {
		dx, dy := tt.dir.Delta()
		if dx != tt.dx || dy != tt.dy {
			t.Errorf("%v.Delta() = %d,%d, want %d,%d", tt.dir, dx, dy, tt.dx, tt.dy)
		}
	}
}

func TestCoord_Neighbors(t *testing.T) {
	c := Coord{X: 2, Y: 2}
	for _, n := range c.Neighbors() {
		if !c.IsAdjacent(n) {
			t.Errorf("neighbour %v of %v is not adjacent", n, c)
		}
	}
	if c.IsAdjacent(Coord{X: 3, Y: 3}) {
		t.Error("diagonal counted as adjacent")
	}
}

func TestCell_Symbols(t *testing.T) {
	seen := map[rune]Cell{}
	for _, c := range AllCells() {
		if prev, dup := seen[c.Symbol()]; dup {
			t.Errorf("%v and %v share symbol %q", prev, c, c.Symbol())
		}
		seen[c.Symbol()] = c
	}
	if Empty.IsOpen() || !Treasure.IsOpen() {
		t.Error("IsOpen: Empty must be closed and Treasure open")
	}
}
