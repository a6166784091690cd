package server

import (
	"github.com/google/uuid"

	"darkmaze/pkg/engine/world"
	"darkmaze/pkg/game/generator"
)

// MazeQuery holds the optional generation parameters of a maze request.
// Absent fields fall back to the server defaults.
type MazeQuery struct {
	Width    *int     `form:"width"`
	Height   *int     `form:"height"`
	Treasure *float64 `form:"treasure"`
	Enemy    *float64 `form:"enemy"`
	Seed     *int64   `form:"seed"`
}

// apply overlays the query onto defaults
func (q MazeQuery) apply(defaults generator.Config) generator.Config {
	cfg := defaults
	if q.Width != nil {
		cfg.Width = *q.Width
	}
	if q.Height != nil {
		cfg.Height = *q.Height
	}
	if q.Treasure != nil {
		cfg.TreasureChance = *q.Treasure
	}
	if q.Enemy != nil {
		cfg.EnemyChance = *q.Enemy
	}
	if q.Seed != nil {
		cfg.Seed = *q.Seed
	}
	return cfg
}

// MazeResponse is the JSON form of a generated maze. Grid is indexed [x][y]
// and holds the numeric cell values.
type MazeResponse struct {
	ID     uuid.UUID      `json:"id"`
	Seed   int64          `json:"seed"`
	Width  int            `json:"width"`
	Height int            `json:"height"`
	Start  world.Coord    `json:"start"`
	End    world.Coord    `json:"end"`
	Path   []world.Coord  `json:"path"`
	Grid   [][]world.Cell `json:"grid"`
}

// newMazeResponse converts a maze into its response form
func newMazeResponse(id uuid.UUID, m *generator.Maze) *MazeResponse {
	return &MazeResponse{
		ID:     id,
		Seed:   m.Seed(),
		Width:  m.Width(),
		Height: m.Height(),
		Start:  m.Start(),
		End:    m.End(),
		Path:   m.Path(),
		Grid:   m.Grid(),
	}
}
