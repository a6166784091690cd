package generator

import (
	"github.com/zyedidia/generic/stack"

	"darkmaze/pkg/engine/world"
)

// growDeadEnds grows dead-end corridors off the main path and returns how
// many cells it carved.
//
// The work list holds the current growth point. Each step tries to extend the
// corridor by one cell from that point; the first viable direction in rotation
// from a random starting direction wins. When nothing is viable the cursor
// moves one element along the main path and growth resumes from there.
// Growth stops at the end cell or when the cursor runs off the main path.
func (r *run) growDeadEnds() int {
	carved := 0
	cursor := 1

	work := stack.New[world.Coord]()
	work.Push(r.start)

	for work.Size() > 0 {
		cur := work.Pop()
		if cur == r.end {
			break
		}

		if next, ok := r.extend(cur); ok {
			r.grid.Set(next, world.Path)
			carved++
			work.Push(next)
			continue
		}

		cursor++
		if cursor < len(r.path) {
			work.Push(r.path[cursor])
		}
	}

	return carved
}

// extend picks the first viable neighbour of from, scanning the four
// directions in rotation from a random one
func (r *run) extend(from world.Coord) (world.Coord, bool) {
	dir := world.Direction(r.rng.Intn(4))
	for i := 0; i < 4; i++ {
		candidate := from.Add(dir)
		if r.isViable(candidate, from) {
			return candidate, true
		}
		dir = dir.Next()
	}
	return world.Coord{}, false
}

// isViable reports whether a corridor may grow into c from prev: c must be an
// uncarved cell inside the grid, and none of its other neighbours may be
// carved. Neighbours outside the grid count as uncarved.
func (r *run) isViable(c, prev world.Coord) bool {
	if !r.grid.Contains(c) || r.grid.Get(c).IsOpen() {
		return false
	}
	for _, n := range c.Neighbors() {
		if n == prev {
			continue
		}
		if r.grid.Get(n).IsOpen() {
			return false
		}
	}
	return true
}
