package renderer

import (
	"io"

	"darkmaze/pkg/game/generator"
)

// Renderer defines the interface for maze output backends.
// Implementations include the plain debug dump and the coloured terminal map;
// the windowed view in package ebiten draws frames instead of writing text.
type Renderer interface {
	// Name identifies the renderer in logs
	Name() string

	// Render writes the maze to w
	Render(w io.Writer, m *generator.Maze) error
}
