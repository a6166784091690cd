package generator

import "darkmaze/pkg/engine/world"

// placeTreasure upgrades each Path cell to Treasure with probability
// TreasureChance. One draw is made per grid cell, x-major, so the sequence of
// draws does not depend on the maze shape.
func (r *run) placeTreasure() int {
	placed := 0
	r.grid.ForEachCell(func(x, y int, cell world.Cell) {
		if r.rng.Float64() < r.cfg.TreasureChance && cell == world.Path {
			r.grid.Set(world.Coord{X: x, Y: y}, world.Treasure)
			placed++
		}
	})
	return placed
}

// placeEnemies upgrades Path cells to Enemy with probability EnemyChance.
// Cells sharing either the start's x or the start's y are never eligible,
// which keeps a cross-shaped band around the start free of enemies.
// Cells already holding treasure are no longer Path and are skipped.
func (r *run) placeEnemies() int {
	placed := 0
	r.grid.ForEachCell(func(x, y int, cell world.Cell) {
		if r.rng.Float64() < r.cfg.EnemyChance && cell == world.Path &&
			x != r.start.X && y != r.start.Y {
			r.grid.Set(world.Coord{X: x, Y: y}, world.Enemy)
			placed++
		}
	})
	return placed
}
