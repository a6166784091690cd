package generator

import "darkmaze/pkg/engine/world"

// carvePath walks from start to end, moving +y or +x on a fair coin and never
// overshooting the end on either axis. Every visited cell is recorded in the
// main path; intermediate cells are marked Path.
//
// The walk only terminates when start precedes end on both axes, which
// Config.Validate guarantees through the quarter-region endpoint choice.
func (r *run) carvePath() {
	cur := r.start
	r.path = append(r.path[:0], cur)

	for cur != r.end {
		switch {
		case r.rng.Intn(2) == 0 && cur.Y+1 <= r.end.Y:
			cur.Y++
		case cur.X+1 <= r.end.X:
			cur.X++
		default:
			continue
		}

		if cur != r.end {
			r.grid.Set(cur, world.Path)
		}
		r.path = append(r.path, cur)
	}
}
